package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: library IDs, project names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for written/created artifacts (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for skipped or substituted values.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorHeader is used for table header cells.
	ColorHeader = lipgloss.Color("12")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (library IDs, project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (category prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWritten styles per-file "wrote" lines in generate output.
	StyleWritten = lipgloss.NewStyle().Foreground(ColorGreen)
)

// FormatArtifactLine renders one generated artifact path with a dim prefix.
func FormatArtifactLine(path string) string {
	return StyleDim.Render("a:") + StyleNoun.Render(path)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
