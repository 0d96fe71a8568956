package core

import (
	"errors"
	"fmt"
)

// ConfigError is a configuration problem with an instruction for fixing it.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Error codes for configuration errors
const (
	ErrCodeMissingConfig    = "MISSING_CONFIG"
	ErrCodeOutputDirMissing = "OUTPUT_DIR_MISSING"
	ErrCodeOutputNotDir     = "OUTPUT_NOT_DIR"
	ErrCodeOutputDirAccess  = "OUTPUT_DIR_ACCESS"
)

// ErrMissingConfig returns an error for a required setting that resolved to empty.
func ErrMissingConfig(varName string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMissingConfig,
		Message: fmt.Sprintf("Missing required configuration: %s", varName),
		Action:  fmt.Sprintf("Set %s in your environment or .env file", varName),
	}
}

// ErrOutputDirMissing returns an error for an output directory that does not exist.
func ErrOutputDirMissing(dir string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutputDirMissing,
		Message: fmt.Sprintf("Output directory not found: %s", dir),
		Action:  fmt.Sprintf("Create the directory or point %s at an existing one", EnvOutputDir),
	}
}

// ErrOutputNotDir returns an error for an output path that is a regular file.
func ErrOutputNotDir(dir string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutputNotDir,
		Message: fmt.Sprintf("Output path is not a directory: %s", dir),
		Action:  fmt.Sprintf("Set %s to a directory", EnvOutputDir),
	}
}

// ErrOutputDirAccess returns an error for an output directory that cannot be inspected.
func ErrOutputDirAccess(dir string, reason error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutputDirAccess,
		Message: fmt.Sprintf("Cannot access output directory %s: %v", dir, reason),
		Action:  "Check the directory permissions",
	}
}

// IsConfigError reports whether err is, or wraps, a *ConfigError and returns it.
func IsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}

// OutputError reports a failed write of one output file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
