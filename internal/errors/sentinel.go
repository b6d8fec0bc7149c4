package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a project configuration validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a library, recipe, or catalog entry was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnsafePath indicates an archive entry would escape its extraction directory.
	ErrUnsafePath = errors.New("unsafe archive path")
)
