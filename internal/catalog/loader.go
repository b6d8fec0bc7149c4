package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/output"
)

// loadDir parses every recipe file in dir and returns a fresh library map.
// Files starting with "_" and non-YAML files are skipped. A recipe that
// fails to parse is logged and skipped; the rest of the directory still
// loads.
func loadDir(fsys fs.FS, dir string) (map[string]Library, error) {
	var entries []fs.DirEntry
	var err error

	if fsys != nil {
		entries, err = fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("reading embedded recipes directory: %w", err)
		}
	} else {
		if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
			return nil, qerrors.NewNotFoundError(
				fmt.Sprintf("recipes directory not found: %s", dir),
				"recipes",
				"Pass --recipes or set QUARRY_RECIPES_DIR to a directory of recipe YAML files.",
			)
		}
		entries, err = os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading recipes directory: %w", err)
		}
	}

	libraries := make(map[string]Library)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") {
			continue
		}
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		lib, err := loadRecipeFile(fsys, path)
		if err != nil {
			output.Warn("skipping recipe", "file", path, "error", err)
			continue
		}
		libraries[lib.ID] = lib
	}

	return libraries, nil
}

// loadRecipeFile parses a single recipe and applies schema defaults.
func loadRecipeFile(fsys fs.FS, path string) (Library, error) {
	var data []byte
	var err error

	if fsys != nil {
		data, err = fs.ReadFile(fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Library{}, err
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("parsing recipe: %w", err)
	}

	if lib.ID == "" {
		return Library{}, fmt.Errorf("missing id field")
	}

	if lib.Name == "" {
		lib.Name = lib.ID
	}
	if lib.Category == "" {
		lib.Category = "utility"
	}
	if lib.CppStandard == 0 {
		lib.CppStandard = 11
	}
	if lib.LinkLibraries == nil {
		lib.LinkLibraries = []string{}
	}
	if lib.Options == nil {
		lib.Options = []Option{}
	}
	if lib.Tags == nil {
		lib.Tags = []string{}
	}
	if lib.Alternatives == nil {
		lib.Alternatives = []string{}
	}

	for _, opt := range lib.Options {
		if opt.AffectsLink && len(opt.LinkLibrariesWhenEnabled) == 0 {
			return Library{}, fmt.Errorf("option %s: affects_link requires link_libraries_when_enabled", opt.ID)
		}
	}

	return lib, nil
}
