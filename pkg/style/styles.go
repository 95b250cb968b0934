// Package style renders renamr's plans and results for the terminal.
// Rich output goes through pterm; the plain renderer emits the same
// information without any styling for pipes and NO_COLOR environments.
package style

import "github.com/charmbracelet/lipgloss"

// Colors shared by the lipgloss styles.
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
