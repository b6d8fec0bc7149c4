package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "Google", cfg.ClangFormatStyle)
	assert.Empty(t, cfg.RecipesDir)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()

		assert.Equal(t, ".", cfg.OutputDir)
		assert.Equal(t, "Google", cfg.ClangFormatStyle)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := (&Config{
			OutputDir:        "/projects",
			ClangFormatStyle: "LLVM",
		}).WithDefaults()

		assert.Equal(t, "/projects", cfg.OutputDir)
		assert.Equal(t, "LLVM", cfg.ClangFormatStyle)
	})
}
