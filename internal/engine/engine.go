package engine

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/quarry-cpp/quarry/internal/catalog"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/output"
)

// Engine turns project configurations into artifact sets using a recipe
// catalog. It holds no per-request state; one Engine serves any number of
// requests.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an Engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// plan is the resolved form of one request: the normalized configuration,
// the ordered deduplicated resolutions, and the effective C++ standard.
type plan struct {
	cfg         ProjectConfig
	resolutions []Resolution
	standard    int
}

// Generate produces the complete artifact set for a configuration. Either
// every artifact is produced or none is; validation failures never yield a
// partial set.
func (e *Engine) Generate(cfg *ProjectConfig) (ArtifactSet, error) {
	p, err := e.resolveAll(cfg)
	if err != nil {
		return nil, err
	}

	name := p.cfg.Name
	libraryIDs := make([]string, len(p.resolutions))
	libraries := make([]catalog.Library, len(p.resolutions))
	for i, res := range p.resolutions {
		libraryIDs[i] = res.Library.ID
		libraries[i] = res.Library
	}

	artifacts := ArtifactSet{
		{Path: DependenciesPath, Content: GenerateDependencies(p.resolutions)},
		{Path: "CMakeLists.txt", Content: GenerateCMakeLists(name, p.standard, p.cfg.BuildShared, p.cfg.Type, p.cfg.IncludeTests)},
		{Path: "README.md", Content: GenerateReadme(name, libraries, p.standard, p.cfg.Type)},
		{Path: ".gitignore", Content: GenerateGitignore()},
		{Path: ".clang-format", Content: GenerateClangFormat(p.cfg.ClangFormatStyle)},
		{Path: filepath.ToSlash(filepath.Join("include", name, name+".hpp")), Content: GenerateLibHeader(name)},
	}

	if p.cfg.Type == ProjectExe {
		artifacts = append(artifacts, Artifact{
			Path:    "src/main.cpp",
			Content: GenerateMainSource(name, libraryIDs),
		})
	}
	artifacts = append(artifacts, Artifact{
		Path:    "src/" + name + ".cpp",
		Content: GenerateLibSource(name, libraryIDs),
	})

	if p.cfg.IncludeTests {
		artifacts = append(artifacts,
			Artifact{Path: "tests/CMakeLists.txt", Content: GenerateTestCMake(name, p.cfg.TestingFramework)},
			Artifact{Path: "tests/test_main.cpp", Content: GenerateTestMain(name, p.cfg.TestingFramework)},
		)
	}

	return artifacts, nil
}

// Preview renders only the top-level CMakeLists.txt, without touching the
// filesystem.
func (e *Engine) Preview(cfg *ProjectConfig) (string, error) {
	p, err := e.resolveAll(cfg)
	if err != nil {
		return "", err
	}
	return GenerateCMakeLists(p.cfg.Name, p.standard, p.cfg.BuildShared, p.cfg.Type, p.cfg.IncludeTests), nil
}

// DependenciesOnly renders only the dependencies artifact, for regenerating
// it inside an existing project.
func (e *Engine) DependenciesOnly(cfg *ProjectConfig) (string, error) {
	p, err := e.resolveAll(cfg)
	if err != nil {
		return "", err
	}
	return GenerateDependencies(p.resolutions), nil
}

// resolveAll runs the full resolution pipeline: framework detection,
// normalization, validation, selection dedup, framework auto-injection,
// option resolution, deterministic ordering, and standard raising.
func (e *Engine) resolveAll(cfg *ProjectConfig) (*plan, error) {
	c := *cfg
	c.Libraries = append([]LibrarySelection(nil), cfg.Libraries...)

	detectFramework(&c)
	normalize(&c)
	if err := validate(&c, e.catalog); err != nil {
		return nil, err
	}

	selections := dedupeSelections(c.Libraries)

	// The chosen framework's library is a dependency like any other; add it
	// when the caller asked for tests but left it out of the list.
	if c.IncludeTests && c.TestingFramework != FrameworkNone {
		id := string(c.TestingFramework)
		found := false
		for _, sel := range selections {
			if sel.LibraryID == id {
				found = true
				break
			}
		}
		if !found {
			selections = append(selections, LibrarySelection{LibraryID: id})
		}
	}

	resolutions := make([]Resolution, 0, len(selections))
	for _, sel := range selections {
		lib, ok := e.catalog.Get(sel.LibraryID)
		if !ok {
			return nil, qerrors.NewNotFoundError(
				fmt.Sprintf("library %q not found in catalog", sel.LibraryID),
				"libraries",
				"Run 'quarry list' to see available libraries.")
		}
		resolutions = append(resolutions, ResolveOptions(lib, sel.Options))
	}

	sortResolutions(resolutions)

	standard := c.CppStandard
	for _, res := range resolutions {
		if res.Library.CppStandard > standard {
			output.Debug("raising C++ standard", "from", standard, "to", res.Library.CppStandard, "library", res.Library.ID)
			standard = res.Library.CppStandard
		}
	}

	return &plan{cfg: c, resolutions: resolutions, standard: standard}, nil
}

// sortResolutions fixes the emission order by (category, name) so the
// generated files do not depend on the order selections arrived in.
func sortResolutions(resolutions []Resolution) {
	sort.Slice(resolutions, func(i, j int) bool {
		a, b := resolutions[i].Library, resolutions[j].Library
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
}

// detectFramework infers the testing framework from the selected libraries
// when the configuration leaves it unset. googletest wins over catch2 wins
// over doctest when several are present.
func detectFramework(cfg *ProjectConfig) {
	if cfg.TestingFramework != "" {
		return
	}
	selected := make(map[string]bool, len(cfg.Libraries))
	for _, sel := range cfg.Libraries {
		selected[sel.LibraryID] = true
	}
	for _, fw := range []TestingFramework{FrameworkGoogleTest, FrameworkCatch2, FrameworkDoctest} {
		if selected[string(fw)] {
			cfg.TestingFramework = fw
			return
		}
	}
}

// dedupeSelections drops repeated library IDs, keeping the first
// occurrence and its options.
func dedupeSelections(selections []LibrarySelection) []LibrarySelection {
	seen := make(map[string]bool, len(selections))
	result := make([]LibrarySelection, 0, len(selections))
	for _, sel := range selections {
		if seen[sel.LibraryID] {
			output.Debug("dropping duplicate library selection", "library", sel.LibraryID)
			continue
		}
		seen[sel.LibraryID] = true
		result = append(result, sel)
	}
	return result
}
