package engine

import (
	"fmt"

	"github.com/quarry-cpp/quarry/internal/catalog"
)

// Resolution is the effect of one library selection: the library record
// plus the CMake variable lines, preprocessor define lines, and extra link
// targets implied by its resolved options.
type Resolution struct {
	Library catalog.Library

	// VarLines are set() lines emitted before the fetch/find block.
	VarLines []string

	// DefineLines are add_compile_definitions() lines emitted after it.
	DefineLines []string

	// ExtraLinks are option-triggered link targets, unioned into the
	// library's aggregate link set.
	ExtraLinks []string
}

// LinkTargets returns the library's declared link targets plus any
// option-triggered extras, in declaration order.
func (r Resolution) LinkTargets() []string {
	targets := make([]string, 0, len(r.Library.LinkLibraries)+len(r.ExtraLinks))
	targets = append(targets, r.Library.LinkLibraries...)
	targets = append(targets, r.ExtraLinks...)
	return targets
}

// ResolveOptions resolves the caller's option value map against a library's
// declared options. Missing keys use the declared default; unknown keys are
// ignored so configurations stay valid across catalog additions; values of
// the wrong type degrade to the option type's falsy default. Pure function,
// no side effects.
func ResolveOptions(lib catalog.Library, opts map[string]any) Resolution {
	res := Resolution{Library: lib}

	for _, opt := range lib.Options {
		value, provided := opts[opt.ID]
		if !provided {
			value = opt.Default
		}
		if value == nil {
			continue
		}

		value = coerce(opt, value)

		if opt.CMakeVar != "" {
			if line, ok := varLine(opt, value); ok {
				res.VarLines = append(res.VarLines, line)
			}
		}
		if opt.CMakeDefine != "" && truthy(value) {
			res.DefineLines = append(res.DefineLines, defineLine(opt, value))
		}
		if opt.AffectsLink && truthy(value) {
			res.ExtraLinks = append(res.ExtraLinks, opt.LinkLibrariesWhenEnabled...)
		}
	}

	return res
}

// coerce forces a value to the option's declared type; a mismatch yields
// the type's falsy default rather than an error.
func coerce(opt catalog.Option, value any) any {
	switch opt.Type {
	case catalog.OptionBoolean:
		if b, ok := value.(bool); ok {
			return b
		}
		return false
	case catalog.OptionString, catalog.OptionChoice:
		if s, ok := value.(string); ok {
			return s
		}
		return ""
	case catalog.OptionInteger:
		switch n := value.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
		return 0
	}
	return value
}

// truthy reports whether a coerced value enables link/define behavior.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	}
	return value != nil
}

// varLine renders the set() line for an option. Booleans always emit
// (ON/OFF); integers and choices emit whenever a value is set, even a zero;
// strings only when non-empty.
func varLine(opt catalog.Option, value any) (string, bool) {
	switch opt.Type {
	case catalog.OptionBoolean:
		state := "OFF"
		if value.(bool) {
			state = "ON"
		}
		return fmt.Sprintf("set(%s %s)", opt.CMakeVar, state), true
	case catalog.OptionString:
		s := value.(string)
		if s == "" {
			return "", false
		}
		return fmt.Sprintf("set(%s %q)", opt.CMakeVar, s), true
	case catalog.OptionChoice:
		return fmt.Sprintf("set(%s %q)", opt.CMakeVar, value.(string)), true
	case catalog.OptionInteger:
		return fmt.Sprintf("set(%s %d)", opt.CMakeVar, value.(int)), true
	}
	return "", false
}

// defineLine renders the add_compile_definitions() line for an option.
// Booleans define the bare macro; other types define macro=value.
func defineLine(opt catalog.Option, value any) string {
	if opt.Type == catalog.OptionBoolean {
		return fmt.Sprintf("add_compile_definitions(%s)", opt.CMakeDefine)
	}
	return fmt.Sprintf("add_compile_definitions(%s=%v)", opt.CMakeDefine, value)
}
