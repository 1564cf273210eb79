package visuals

import "github.com/charmbracelet/lipgloss"

// Palette shared by the table and warning output.
var (
	colorYellow = lipgloss.Color("#f59e0b")
	colorGray   = lipgloss.Color("#6b7280")
)

// headerStyle returns the table header style bound to r.
func headerStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Bold(true).Foreground(colorGray)
}

// warnStyle returns the warning banner style bound to r.
func warnStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(colorYellow)
}
