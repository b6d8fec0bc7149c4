package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailError_Format(t *testing.T) {
	err := &DetailError{
		Type:    "validation failed",
		Message: "project name is required",
		Field:   "name",
		Hint:    "Set the name field in quarry.yaml.",
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: validation failed")
	assert.Contains(t, msg, "Field: name")
	assert.Contains(t, msg, "project name is required")
	assert.Contains(t, msg, "Hint: Set the name field in quarry.yaml.")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewValidationError("bad name", "name", "")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("library \"nope\" not found", "libraries", "Run 'quarry list'.")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "not found")
}

func TestNewUnsafePathError(t *testing.T) {
	err := NewUnsafePathError("../evil.txt", "/tmp/evil.txt")

	require.True(t, errors.Is(err, ErrUnsafePath))
	assert.Contains(t, err.Error(), "../evil.txt")
	assert.Contains(t, err.Error(), "/tmp/evil.txt")
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrValidation, "loading project")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "loading project")
}
