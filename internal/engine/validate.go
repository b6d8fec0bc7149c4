package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quarry-cpp/quarry/internal/catalog"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
)

// projectNameRegex: a C identifier-ish name, usable as a CMake target and a
// C++ namespace.
var projectNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("project validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap ties ValidationErrors to the ErrValidation sentinel.
func (e ValidationErrors) Unwrap() error {
	return qerrors.ErrValidation
}

// normalize applies defaults and enforces the tests/framework invariant in
// one place, before validation. It never trusts the caller to have kept
// include_tests and testing_framework consistent.
func normalize(cfg *ProjectConfig) {
	if cfg.CppStandard == 0 {
		cfg.CppStandard = DefaultStandard
	}
	if cfg.Type == "" {
		cfg.Type = ProjectExe
	}
	if cfg.TestingFramework == "" {
		cfg.TestingFramework = FrameworkNone
	}
	if cfg.ClangFormatStyle == "" {
		cfg.ClangFormatStyle = DefaultClangFormatStyle
	}
	if cfg.TestingFramework == FrameworkNone {
		cfg.IncludeTests = false
	}
}

// validate checks the normalized configuration against the catalog. Any
// failure aborts the whole request; partial generation is never attempted.
func validate(cfg *ProjectConfig, cat *catalog.Catalog) error {
	var errs ValidationErrors

	if cfg.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "project name is required",
		})
	} else if !projectNameRegex.MatchString(cfg.Name) {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "must start with a letter and contain only letters, numbers, and underscores",
		})
	}

	validStandard := false
	for _, std := range ValidStandards {
		if cfg.CppStandard == std {
			validStandard = true
			break
		}
	}
	if !validStandard {
		errs = append(errs, ValidationError{
			Field:   "cpp_standard",
			Message: fmt.Sprintf("unsupported C++ standard %d (valid: 11, 14, 17, 20, 23)", cfg.CppStandard),
		})
	}

	switch cfg.Type {
	case ProjectExe, ProjectLib:
	default:
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown project type %q (valid: exe, lib)", cfg.Type),
		})
	}

	switch cfg.TestingFramework {
	case FrameworkNone, FrameworkGoogleTest, FrameworkCatch2, FrameworkDoctest:
	default:
		errs = append(errs, ValidationError{
			Field:   "testing_framework",
			Message: fmt.Sprintf("unknown testing framework %q (valid: none, googletest, catch2, doctest)", cfg.TestingFramework),
		})
	}

	for _, sel := range cfg.Libraries {
		if _, ok := cat.Get(sel.LibraryID); !ok {
			errs = append(errs, ValidationError{
				Field:   "libraries",
				Message: fmt.Sprintf("unknown library ID %q", sel.LibraryID),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
