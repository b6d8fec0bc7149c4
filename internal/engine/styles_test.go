package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateClangFormat(t *testing.T) {
	t.Run("known preset", func(t *testing.T) {
		out := GenerateClangFormat("LLVM")
		assert.Contains(t, out, "BasedOnStyle: LLVM")
	})

	t.Run("unknown preset falls back to Google", func(t *testing.T) {
		out := GenerateClangFormat("NotAStyle")
		assert.Contains(t, out, "BasedOnStyle: Google")
	})
}

func TestClangFormatStyleNames(t *testing.T) {
	names := ClangFormatStyleNames()

	assert.Len(t, names, 7)
	assert.Contains(t, names, "Google")
	assert.Contains(t, names, "GNU")
	assert.IsIncreasing(t, names)
}
