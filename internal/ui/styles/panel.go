package styles

import "github.com/charmbracelet/lipgloss"

// BarStyle returns the control bar frame. The border lights up while playing.
func BarStyle(active bool) lipgloss.Style {
	border := T().Border
	if active {
		border = T().BorderActive
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
