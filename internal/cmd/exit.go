// Package cmd provides command implementations for the Quarry CLI.
package cmd

// Exit codes returned by the quarry binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates project configuration validation failed.
	ExitValidationError = 2

	// ExitNotFound indicates a library, recipe directory, or file was not found.
	ExitNotFound = 4

	// ExitUnsafePath indicates an archive entry resolved outside the output directory.
	ExitUnsafePath = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitUnsafePath:
		return "Unsafe Archive Path"
	default:
		return "Unknown"
	}
}
