package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/output"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search libraries by name, description, or tag",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	libraries := GetCatalog().Search(query)

	if len(libraries) == 0 {
		output.Println(fmt.Sprintf("No libraries matched %q.", query))
		return nil
	}

	tbl := output.NewTable("ID", "NAME", "CATEGORY", "TAGS")
	for _, lib := range libraries {
		tbl.Row(lib.ID, lib.Name, lib.Category, strings.Join(lib.Tags, ", "))
	}

	output.Println(tbl.Render())
	return nil
}
