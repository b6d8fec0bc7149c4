// Package config provides configuration loading and management.
package config

// Config represents the Quarry CLI configuration.
// Loaded from ~/.quarry/config.yaml, overridable by environment variables.
type Config struct {
	// RecipesDir is a directory of recipe YAML files used instead of the
	// embedded catalog.
	// Env: QUARRY_RECIPES_DIR
	RecipesDir string `mapstructure:"recipesDir"`

	// OutputDir is the default directory generated projects are written to.
	// Env: QUARRY_OUTPUT_DIR, Default: "."
	OutputDir string `mapstructure:"outputDir"`

	// ClangFormatStyle is the default .clang-format preset for generated
	// projects.
	// Env: QUARRY_CLANG_FORMAT_STYLE, Default: "Google"
	ClangFormatStyle string `mapstructure:"clangFormatStyle"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        ".",
		ClangFormatStyle: "Google",
	}
}

// WithDefaults fills empty fields with default values.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()

	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.ClangFormatStyle == "" {
		c.ClangFormatStyle = defaults.ClangFormatStyle
	}

	return c
}
