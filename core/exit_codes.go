package core

// Process exit codes.
const (
	// ExitCodeSuccess means every output file was written.
	ExitCodeSuccess = 0

	// ExitCodeError means configuration, logging setup or a write failed.
	ExitCodeError = 1
)

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	default:
		return "unknown"
	}
}
