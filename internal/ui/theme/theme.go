// Package theme holds the colour palette and lipgloss styles shared by the
// chrome and the tour screens.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the suggested action, borders
	ColorDanger    = "196" // Red - for the devel marker
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorOnAccent  = "235" // Near black - text on filled buttons
)

// Styles contains shared style definitions used across the chrome and pages.
var Styles = struct {
	// Header bar
	Header      lipgloss.Style // Full-width title bar
	HeaderTitle lipgloss.Style // Bold accent title inside the bar
	Devel       lipgloss.Style // "devel" profile marker

	// Buttons
	Suggested lipgloss.Style // Filled button for the suggested action (Next, Take the Tour)
	Button    lipgloss.Style // Plain bordered button (Previous, No Thanks)

	// Page content
	Illustration lipgloss.Style // Framed resource identifier placeholder
	Heading      lipgloss.Style // Page heading ("page-head")
	Body         lipgloss.Style // Page body text
	LastPage     lipgloss.Style // Extra emphasis for the final page
	LargeTitle   lipgloss.Style // Welcome screen title ("large-title")
	Logo         lipgloss.Style // Welcome screen logo name

	// Text styles
	Muted lipgloss.Style // Dimmed text (muted color)
	Hint  lipgloss.Style // Help/hint text (muted color)
}{
	Header: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorDim)),
	HeaderTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Devel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Suggested: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOnAccent)).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorDim)).
		Padding(0, 2),
	Illustration: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(1, 4),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		MarginTop(1),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	LastPage: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	LargeTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginTop(2),
	Logo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
