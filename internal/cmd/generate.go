package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/archive"
	"github.com/quarry-cpp/quarry/internal/engine"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/output"
)

var (
	generateFile string
	generateOut  string
	generateZip  string
	generateFlat bool
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a C++ project from a configuration file",
		Long: `Generate a complete C++ project: CMake build files, dependency wiring,
source and test stubs, and supporting files.

Examples:
  # Generate into ./<project-name>
  quarry generate -f quarry.yaml

  # Generate into a specific directory
  quarry generate -f quarry.yaml --out ./projects

  # Package the project as a ZIP archive
  quarry generate -f quarry.yaml --zip myproject.zip

  # ZIP without the top-level project directory
  quarry generate -f quarry.yaml --zip myproject.zip --flat`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&generateFile, "file", "f", "quarry.yaml", "Project configuration file")
	cmd.Flags().StringVar(&generateOut, "out", "", "Directory to generate the project in (default: config outputDir)")
	cmd.Flags().StringVar(&generateZip, "zip", "", "Write the project as a ZIP archive instead of a directory tree")
	cmd.Flags().BoolVar(&generateFlat, "flat", false, "Omit the top-level project directory in the ZIP")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateOut != "" && generateZip != "" {
		return qerrors.NewValidationError(
			"--out and --zip are mutually exclusive",
			"",
			"Pick a directory tree or an archive, not both.")
	}

	cfg, err := engine.LoadProjectFile(generateFile)
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)
	warnUnknownOptions(cfg)

	eng := engine.New(GetCatalog())

	var artifacts engine.ArtifactSet
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		artifacts, genErr = eng.Generate(cfg)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating %s...", cfg.Name)))
	if err != nil {
		return err
	}

	if generateZip != "" {
		return writeArchive(cfg, artifacts)
	}
	return writeTree(cfg, artifacts)
}

// warnUnknownOptions flags option keys no recipe declares. The engine
// ignores them silently for forward compatibility; here at the boundary a
// warning catches the typo'd key the user meant to take effect.
func warnUnknownOptions(cfg *engine.ProjectConfig) {
	for _, sel := range cfg.Libraries {
		lib, ok := GetCatalog().Get(sel.LibraryID)
		if !ok {
			continue
		}
		for id := range sel.Options {
			if _, declared := lib.Option(id); !declared {
				output.Warn("ignoring unknown option", "library", sel.LibraryID, "option", id)
			}
		}
	}
}

func writeArchive(cfg *engine.ProjectConfig, artifacts engine.ArtifactSet) error {
	prefix := cfg.Name
	if generateFlat {
		prefix = ""
	}

	data, err := archive.Build(artifacts, prefix)
	if err != nil {
		return err
	}

	if err := os.WriteFile(generateZip, data, 0o644); err != nil {
		return fmt.Errorf("writing archive %s: %w", generateZip, err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Packaged %s (%d files) into %s",
		output.StyleNoun.Render(cfg.Name), len(artifacts), output.StyleNoun.Render(generateZip))))
	return nil
}

func writeTree(cfg *engine.ProjectConfig, artifacts engine.ArtifactSet) error {
	outDir := generateOut
	if outDir == "" {
		outDir = GetConfig().OutputDir
	}
	root := filepath.Join(outDir, cfg.Name)

	for _, artifact := range artifacts {
		target := filepath.Join(root, filepath.FromSlash(artifact.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", artifact.Path, err)
		}
		if err := os.WriteFile(target, []byte(artifact.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", artifact.Path, err)
		}
		output.Println(output.FormatArtifactLine(artifact.Path))
	}

	output.Println("")
	output.Println(output.FormatCheckmark(output.StyleSummary.Render(
		fmt.Sprintf("Created %s in %s", cfg.Name, root))))
	return nil
}
