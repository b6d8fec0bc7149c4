package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quarry-cpp/quarry/internal/catalog"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/output"
)

var listCategory string

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available libraries",
		Long: `List the libraries in the recipe catalog.

Examples:
  # List every library
  quarry list

  # List only testing frameworks
  quarry list --category testing`,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cat := GetCatalog()

	var libraries []catalog.Library
	if listCategory != "" {
		if !validCategory(listCategory) {
			return qerrors.NewValidationError(
				fmt.Sprintf("unknown category %q", listCategory),
				"category",
				fmt.Sprintf("Valid categories: %s", strings.Join(categoryIDs(), ", ")))
		}
		libraries = cat.ByCategory(listCategory)
	} else {
		libraries = cat.All()
	}

	if len(libraries) == 0 {
		output.Println("No libraries found.")
		return nil
	}

	tbl := output.NewTable("ID", "NAME", "CATEGORY", "C++", "DESCRIPTION")
	for _, lib := range libraries {
		tbl.Row(lib.ID, lib.Name, lib.Category, strconv.Itoa(lib.CppStandard), lib.Description)
	}

	output.Println(tbl.Render())
	output.Println(output.StyleDim.Render(fmt.Sprintf("%d libraries", len(libraries))))
	return nil
}

func validCategory(id string) bool {
	for _, c := range catalog.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func categoryIDs() []string {
	ids := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		ids[i] = c.ID
	}
	return ids
}
