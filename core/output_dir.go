package core

import (
	"os"
)

// ValidateOutputDir checks that dir exists and is a directory. The directory
// is never created here; a missing asset catalog is a configuration mistake.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return ErrMissingConfig(EnvOutputDir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrOutputDirMissing(dir)
		}
		return ErrOutputDirAccess(dir, err)
	}

	if !info.IsDir() {
		return ErrOutputNotDir(dir)
	}

	return nil
}
