package cmd

import (
	"errors"

	qerrors "github.com/quarry-cpp/quarry/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, qerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, qerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, qerrors.ErrUnsafePath):
		return ExitUnsafePath
	default:
		return ExitGeneralError
	}
}
