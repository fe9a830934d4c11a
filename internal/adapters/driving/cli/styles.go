package cli

import "github.com/charmbracelet/lipgloss"

// Output styles shared across commands. Kept deliberately plain so the
// output stays readable on light and dark terminals.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // grey

	dimStyle = lipgloss.NewStyle().Faint(true)
)

// statusMarker renders the active flag of a catalog entry.
func statusMarker(active bool) string {
	if active {
		return activeStyle.Render("on ")
	}
	return inactiveStyle.Render("off")
}
