// Package catalog provides the library recipe catalog: the schema for
// library recipes, a YAML loader, and a swappable in-memory store.
package catalog

import "slices"

// Option value types.
const (
	OptionBoolean = "boolean"
	OptionString  = "string"
	OptionChoice  = "choice"
	OptionInteger = "integer"
)

// Option is a named, typed, per-library configurable toggle. Depending on
// its fields it may set a CMake variable, a preprocessor define, or add
// link targets when enabled.
type Option struct {
	ID                       string   `yaml:"id"`
	Name                     string   `yaml:"name"`
	Description              string   `yaml:"description"`
	Type                     string   `yaml:"type"`
	Default                  any      `yaml:"default"`
	Choices                  []string `yaml:"choices"`
	CMakeVar                 string   `yaml:"cmake_var"`
	CMakeDefine              string   `yaml:"cmake_define"`
	AffectsLink              bool     `yaml:"affects_link"`
	LinkLibrariesWhenEnabled []string `yaml:"link_libraries_when_enabled"`
}

// FetchDescriptor holds the coordinates used to pull a dependency's source
// at build configuration time.
type FetchDescriptor struct {
	Repository   string `yaml:"repository"`
	Tag          string `yaml:"tag"`
	SourceSubdir string `yaml:"source_subdir"`
}

// Library is one catalog entry describing a third-party C++ dependency and
// how to fetch, link, and configure it. Records are immutable per load;
// the store hands out copies.
type Library struct {
	ID              string           `yaml:"id"`
	Name            string           `yaml:"name"`
	Description     string           `yaml:"description"`
	Category        string           `yaml:"category"`
	GitHubURL       string           `yaml:"github_url"`
	CppStandard     int              `yaml:"cpp_standard"`
	HeaderOnly      bool             `yaml:"header_only"`
	Tags            []string         `yaml:"tags"`
	Alternatives    []string         `yaml:"alternatives"`
	Fetch           *FetchDescriptor `yaml:"fetch_content"`
	LinkLibraries   []string         `yaml:"link_libraries"`
	Options         []Option         `yaml:"options"`
	CMakePre        string           `yaml:"cmake_pre"`
	CMakePost       string           `yaml:"cmake_post"`
	SystemPackage   bool             `yaml:"system_package"`
	FindPackageName string           `yaml:"find_package_name"`
}

// CategoryTesting is the category that routes a library's link targets into
// the test-only aggregate instead of the main one.
const CategoryTesting = "testing"

// Option returns the declared option with the given ID, if any.
func (l Library) Option(id string) (Option, bool) {
	for _, opt := range l.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// clone returns a deep copy so callers never hold references into a
// catalog snapshot across a reload.
func (l Library) clone() Library {
	c := l
	c.Tags = slices.Clone(l.Tags)
	c.Alternatives = slices.Clone(l.Alternatives)
	c.LinkLibraries = slices.Clone(l.LinkLibraries)
	c.Options = make([]Option, len(l.Options))
	for i, opt := range l.Options {
		opt.Choices = slices.Clone(opt.Choices)
		opt.LinkLibrariesWhenEnabled = slices.Clone(opt.LinkLibrariesWhenEnabled)
		c.Options[i] = opt
	}
	if l.Fetch != nil {
		f := *l.Fetch
		c.Fetch = &f
	}
	return c
}

// Category describes one library category.
type Category struct {
	ID          string
	Name        string
	Description string
}

// Categories is the fixed category table. Exactly one category per library.
var Categories = []Category{
	{ID: "serialization", Name: "Serialization", Description: "JSON, XML, binary serialization"},
	{ID: "logging", Name: "Logging", Description: "Logging and diagnostics"},
	{ID: "testing", Name: "Testing", Description: "Unit testing and mocking frameworks"},
	{ID: "networking", Name: "Networking", Description: "HTTP, TCP/UDP, async I/O"},
	{ID: "cli", Name: "CLI", Description: "Command line argument parsing"},
	{ID: "configuration", Name: "Configuration", Description: "Config file parsing (YAML, TOML)"},
	{ID: "gui", Name: "GUI", Description: "Graphical user interfaces"},
	{ID: "formatting", Name: "Formatting", Description: "String formatting and text processing"},
	{ID: "concurrency", Name: "Concurrency", Description: "Threading, async, lock-free structures"},
	{ID: "utility", Name: "Utility", Description: "General utilities and helpers"},
	{ID: "database", Name: "Database", Description: "Database clients and ORMs"},
	{ID: "compression", Name: "Compression", Description: "Data compression libraries"},
	{ID: "math", Name: "Math", Description: "Mathematics and linear algebra"},
	{ID: "cryptography", Name: "Cryptography", Description: "Encryption and cryptographic functions"},
}
