package catalog

import "embed"

// Default recipe set shipped with the binary. A recipes directory given via
// configuration takes precedence; this keeps the tool usable out of the box.
//
//go:embed recipes/*.yaml
var embeddedRecipes embed.FS

// OpenEmbedded loads the catalog from the embedded default recipe set.
func OpenEmbedded() (*Catalog, error) {
	return OpenFS(embeddedRecipes, "recipes")
}
