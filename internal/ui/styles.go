package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorKey    = "12"  // Blue - for key tokens in the instruction bar
	ColorValue  = "11"  // Yellow - for the counter value
	ColorAccent = "86"  // Cyan/green - for the help box border
	ColorDanger = "196" // Red - for overflow/underflow status
	ColorMuted  = "241" // Gray - for dimmed text, hints
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title  lipgloss.Style // Bold - for the panel title
	Key    lipgloss.Style // Bold blue - for <j>/<k>/<q> tokens
	Value  lipgloss.Style // Yellow - for the counter value
	Status lipgloss.Style // Danger color - for recoverable error reports
	Hint   lipgloss.Style // Muted - for help text
}{
	Title: lipgloss.NewStyle().
		Bold(true),
	Key: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorKey)),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorValue)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
