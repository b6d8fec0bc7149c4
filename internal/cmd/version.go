package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/output"
	"github.com/quarry-cpp/quarry/internal/version"
)

var versionShort bool

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if versionShort {
				output.Println(info.Short())
				return nil
			}
			output.Println(info.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")

	return cmd
}
