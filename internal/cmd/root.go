// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/catalog"
	"github.com/quarry-cpp/quarry/internal/config"
	"github.com/quarry-cpp/quarry/internal/engine"
	"github.com/quarry-cpp/quarry/internal/output"
)

var (
	// Global flags
	recipesFlag string
	configFlag  string
	verboseFlag bool

	// Resolved state (loaded during PersistentPreRunE)
	quarryConfig  *config.Config
	quarryCatalog *catalog.Catalog
)

// NewRootCmd creates the root command for the Quarry CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quarry",
		Short:         "C++ project scaffolding with recipe-driven CMake generation",
		Long:          `Quarry generates C++ project skeletons: CMake build files wired to a curated catalog of libraries via FetchContent, plus source, test, and docs stubs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&recipesFlag, "recipes", "", "Directory of recipe YAML files (env: QUARRY_RECIPES_DIR; default: embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: QUARRY_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewPreviewCmd())
	rootCmd.AddCommand(NewDepsCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewSearchCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration, and opens the
// recipe catalog.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return err
	}
	quarryConfig = cfg

	recipesDir := recipesFlag
	if recipesDir == "" {
		recipesDir = cfg.RecipesDir
	}

	if recipesDir != "" {
		output.Debug("opening recipe catalog", "dir", recipesDir)
		quarryCatalog, err = catalog.Open(recipesDir)
	} else {
		output.Debug("opening embedded recipe catalog")
		quarryCatalog, err = catalog.OpenEmbedded()
	}
	if err != nil {
		return err
	}

	output.Debug("catalog loaded", "libraries", quarryCatalog.Len())
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return quarryConfig
}

// GetCatalog returns the opened recipe catalog.
func GetCatalog() *catalog.Catalog {
	return quarryCatalog
}

// applyConfigDefaults fills project-config fields from the loaded CLI
// configuration when the project file leaves them unset. The project file
// always wins over the config file.
func applyConfigDefaults(cfg *engine.ProjectConfig) {
	if cfg.ClangFormatStyle == "" {
		cfg.ClangFormatStyle = GetConfig().ClangFormatStyle
	}
}
