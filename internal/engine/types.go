// Package engine implements the recipe-driven build-file generation
// pipeline: it turns a validated project configuration plus the recipe
// catalog into a consistent set of CMake and source artifacts.
package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectType selects between an executable and an installable library.
type ProjectType string

// Project types.
const (
	ProjectExe ProjectType = "exe"
	ProjectLib ProjectType = "lib"
)

// TestingFramework identifies the test framework wired into the generated
// tests directory.
type TestingFramework string

// Testing frameworks.
const (
	FrameworkNone       TestingFramework = "none"
	FrameworkGoogleTest TestingFramework = "googletest"
	FrameworkCatch2     TestingFramework = "catch2"
	FrameworkDoctest    TestingFramework = "doctest"
)

// ValidStandards are the accepted C++ standard versions.
var ValidStandards = []int{11, 14, 17, 20, 23}

// DefaultStandard is used when the configuration does not pin a standard.
const DefaultStandard = 17

// LibrarySelection pairs a library ID with caller-chosen option values.
// Unset options fall back to the recipe's declared defaults.
type LibrarySelection struct {
	LibraryID string         `yaml:"library"`
	Options   map[string]any `yaml:"options"`
}

// ProjectConfig is one generation request. It arrives as already-typed
// data; the engine validates and normalizes it before any artifact is
// produced.
type ProjectConfig struct {
	Name             string             `yaml:"name"`
	CppStandard      int                `yaml:"cpp_standard"`
	Libraries        []LibrarySelection `yaml:"libraries"`
	IncludeTests     bool               `yaml:"include_tests"`
	TestingFramework TestingFramework   `yaml:"testing_framework"`
	BuildShared      bool               `yaml:"build_shared"`
	ClangFormatStyle string             `yaml:"clang_format_style"`
	Type             ProjectType        `yaml:"type"`
}

// LoadProjectFile reads a project configuration from a YAML file.
func LoadProjectFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	return &cfg, nil
}

// Artifact is one generated text file, addressed by its project-relative
// path.
type Artifact struct {
	Path    string
	Content string
}

// ArtifactSet is the ordered collection of artifacts for one request. Each
// artifact is independently regenerable from the same ProjectConfig.
type ArtifactSet []Artifact

// Get returns the artifact at the given path.
func (s ArtifactSet) Get(path string) (Artifact, bool) {
	for _, a := range s {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

// Paths returns the artifact paths in emission order.
func (s ArtifactSet) Paths() []string {
	paths := make([]string, len(s))
	for i, a := range s {
		paths[i] = a.Path
	}
	return paths
}

// DependenciesPath is the project-relative path of the dependencies
// artifact. The top-level CMakeLists includes it by this path, so it can be
// regenerated without touching a hand-edited build file.
const DependenciesPath = ".cmake/quarry/dependencies.cmake"
