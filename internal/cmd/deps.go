package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/engine"
	"github.com/quarry-cpp/quarry/internal/output"
)

var depsFile string

// NewDepsCmd creates the deps command.
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Print the dependencies.cmake artifact",
		Long: `Print the dependency wiring for a project configuration.

Redirect the output to regenerate the managed dependencies file inside an
existing project:

  quarry deps -f quarry.yaml > .cmake/quarry/dependencies.cmake`,
		RunE: runDeps,
	}

	cmd.Flags().StringVarP(&depsFile, "file", "f", "quarry.yaml", "Project configuration file")

	return cmd
}

func runDeps(cmd *cobra.Command, args []string) error {
	cfg, err := engine.LoadProjectFile(depsFile)
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)
	warnUnknownOptions(cfg)

	content, err := engine.New(GetCatalog()).DependenciesOnly(cfg)
	if err != nil {
		return err
	}

	output.Print(content)
	return nil
}
