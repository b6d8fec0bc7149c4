package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarry-cpp/quarry/internal/catalog"
)

func optionLib(opts ...catalog.Option) catalog.Library {
	return catalog.Library{
		ID:            "testlib",
		Name:          "TestLib",
		Category:      "utility",
		LinkLibraries: []string{"testlib::testlib"},
		Options:       opts,
	}
}

func TestResolveOptions_Boolean(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:          "fast_mode",
		Type:        catalog.OptionBoolean,
		Default:     false,
		CMakeVar:    "TESTLIB_FAST",
		CMakeDefine: "TESTLIB_FAST_MODE",
	})

	t.Run("default emits OFF and no define", func(t *testing.T) {
		res := ResolveOptions(lib, nil)

		assert.Equal(t, []string{"set(TESTLIB_FAST OFF)"}, res.VarLines)
		assert.Empty(t, res.DefineLines)
	})

	t.Run("enabled emits ON and bare macro", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"fast_mode": true})

		assert.Equal(t, []string{"set(TESTLIB_FAST ON)"}, res.VarLines)
		assert.Equal(t, []string{"add_compile_definitions(TESTLIB_FAST_MODE)"}, res.DefineLines)
	})

	t.Run("wrong type degrades to false", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"fast_mode": "yes"})

		assert.Equal(t, []string{"set(TESTLIB_FAST OFF)"}, res.VarLines)
		assert.Empty(t, res.DefineLines)
	})
}

func TestResolveOptions_String(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:       "namespace",
		Type:     catalog.OptionString,
		Default:  "",
		CMakeVar: "TESTLIB_NAMESPACE",
	})

	t.Run("empty string emits nothing", func(t *testing.T) {
		res := ResolveOptions(lib, nil)
		assert.Empty(t, res.VarLines)
	})

	t.Run("non-empty string is quoted", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"namespace": "demo"})
		assert.Equal(t, []string{`set(TESTLIB_NAMESPACE "demo")`}, res.VarLines)
	})
}

func TestResolveOptions_Integer(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:          "width",
		Type:        catalog.OptionInteger,
		Default:     80,
		CMakeVar:    "TESTLIB_WIDTH",
		CMakeDefine: "TESTLIB_WIDTH_MACRO",
	})

	t.Run("default emits var and value define", func(t *testing.T) {
		res := ResolveOptions(lib, nil)

		assert.Equal(t, []string{"set(TESTLIB_WIDTH 80)"}, res.VarLines)
		assert.Equal(t, []string{"add_compile_definitions(TESTLIB_WIDTH_MACRO=80)"}, res.DefineLines)
	})

	t.Run("zero still sets the var but defines nothing", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"width": 0})

		assert.Equal(t, []string{"set(TESTLIB_WIDTH 0)"}, res.VarLines)
		assert.Empty(t, res.DefineLines)
	})

	t.Run("yaml float is accepted", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"width": float64(120)})
		assert.Equal(t, []string{"set(TESTLIB_WIDTH 120)"}, res.VarLines)
	})
}

func TestResolveOptions_Choice(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:       "backend",
		Type:     catalog.OptionChoice,
		Default:  "native",
		Choices:  []string{"native", "portable"},
		CMakeVar: "TESTLIB_BACKEND",
	})

	res := ResolveOptions(lib, nil)
	assert.Equal(t, []string{`set(TESTLIB_BACKEND "native")`}, res.VarLines)
}

func TestResolveOptions_AffectsLink(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:                       "header_only",
		Type:                     catalog.OptionBoolean,
		Default:                  false,
		AffectsLink:              true,
		LinkLibrariesWhenEnabled: []string{"testlib::header-only"},
	})

	t.Run("disabled keeps declared targets only", func(t *testing.T) {
		res := ResolveOptions(lib, nil)
		assert.Equal(t, []string{"testlib::testlib"}, res.LinkTargets())
	})

	t.Run("enabled appends extra targets", func(t *testing.T) {
		res := ResolveOptions(lib, map[string]any{"header_only": true})
		assert.Equal(t, []string{"testlib::testlib", "testlib::header-only"}, res.LinkTargets())
	})
}

func TestResolveOptions_UnknownKeysIgnored(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:       "fast_mode",
		Type:     catalog.OptionBoolean,
		Default:  false,
		CMakeVar: "TESTLIB_FAST",
	})

	res := ResolveOptions(lib, map[string]any{"no_such_option": true})

	require.Len(t, res.VarLines, 1)
	assert.Equal(t, "set(TESTLIB_FAST OFF)", res.VarLines[0])
}

func TestResolveOptions_NilDefaultSkipped(t *testing.T) {
	lib := optionLib(catalog.Option{
		ID:       "style",
		Type:     catalog.OptionString,
		CMakeVar: "TESTLIB_STYLE",
	})

	res := ResolveOptions(lib, nil)
	assert.Empty(t, res.VarLines)
	assert.Empty(t, res.DefineLines)
}
