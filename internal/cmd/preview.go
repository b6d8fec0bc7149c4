package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/engine"
	"github.com/quarry-cpp/quarry/internal/output"
)

var previewFile string

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the top-level CMakeLists.txt without writing anything",
		RunE:  runPreview,
	}

	cmd.Flags().StringVarP(&previewFile, "file", "f", "quarry.yaml", "Project configuration file")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := engine.LoadProjectFile(previewFile)
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)

	content, err := engine.New(GetCatalog()).Preview(cfg)
	if err != nil {
		return err
	}

	output.Print(content)
	return nil
}
