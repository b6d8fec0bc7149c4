package engine

import "sort"

// DefaultClangFormatStyle is applied when the configuration names no style.
const DefaultClangFormatStyle = "Google"

// clangFormatStyles holds the bundled .clang-format presets.
var clangFormatStyles = map[string]string{
	"Google": `BasedOnStyle: Google
IndentWidth: 4
ColumnLimit: 100
AllowShortFunctionsOnASingleLine: Empty
AllowShortIfStatementsOnASingleLine: Never
AllowShortLoopsOnASingleLine: false
BreakBeforeBraces: Attach
PointerAlignment: Left
SpaceAfterCStyleCast: false
SpaceBeforeParens: ControlStatements
`,
	"LLVM": `BasedOnStyle: LLVM
IndentWidth: 2
ColumnLimit: 80
AllowShortFunctionsOnASingleLine: All
AllowShortIfStatementsOnASingleLine: Never
BreakBeforeBraces: Attach
PointerAlignment: Right
SpaceBeforeParens: ControlStatements
`,
	"Chromium": `BasedOnStyle: Chromium
IndentWidth: 2
ColumnLimit: 80
AllowShortFunctionsOnASingleLine: Inline
AllowShortIfStatementsOnASingleLine: Never
BreakBeforeBraces: Attach
PointerAlignment: Left
DerivePointerAlignment: false
`,
	"Mozilla": `BasedOnStyle: Mozilla
IndentWidth: 2
ColumnLimit: 80
AllowShortFunctionsOnASingleLine: Inline
BreakBeforeBraces: Mozilla
PointerAlignment: Left
AlwaysBreakAfterDefinitionReturnType: TopLevel
`,
	"WebKit": `BasedOnStyle: WebKit
IndentWidth: 4
ColumnLimit: 0
AllowShortFunctionsOnASingleLine: All
BreakBeforeBraces: WebKit
PointerAlignment: Left
NamespaceIndentation: Inner
`,
	"Microsoft": `BasedOnStyle: Microsoft
IndentWidth: 4
ColumnLimit: 120
AllowShortFunctionsOnASingleLine: None
BreakBeforeBraces: Allman
PointerAlignment: Left
AccessModifierOffset: -4
AlignAfterOpenBracket: Align
`,
	"GNU": `BasedOnStyle: GNU
IndentWidth: 2
ColumnLimit: 79
AllowShortFunctionsOnASingleLine: None
BreakBeforeBraces: GNU
PointerAlignment: Right
SpaceBeforeParens: Always
`,
}

// ClangFormatStyleNames returns the available preset names, sorted.
func ClangFormatStyleNames() []string {
	names := make([]string, 0, len(clangFormatStyles))
	for name := range clangFormatStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateClangFormat renders the .clang-format file for a preset name.
// Unknown names fall back to the default preset rather than failing the
// whole generation.
func GenerateClangFormat(style string) string {
	if s, ok := clangFormatStyles[style]; ok {
		return s
	}
	return clangFormatStyles[DefaultClangFormatStyle]
}
