// Package modebar renders the layout mode ladder as a row of tabs, with
// the active mode highlighted.
package modebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// Height is the fixed height of the mode bar (single line).
const Height = 1

// minWidth is the narrowest width the bar is drawn at.
const minWidth = 20

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the ladder for width, or "" when too narrow. Modes run
// from the most compact on the left, with current marked by brackets.
func Render(current layout.Mode, width int) string {
	if width < minWidth {
		return ""
	}

	modes := layout.Modes()
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		if m == current {
			parts = append(parts, activeStyle.Render("["+m.String()+"]"))
			continue
		}
		parts = append(parts, inactiveStyle.Render(m.String()))
	}
	content := strings.Join(parts, separatorStyle.Render(" │ "))

	contentWidth := lipgloss.Width(content)
	if contentWidth > width {
		return ""
	}
	return strings.Repeat(" ", (width-contentWidth)/2) + content
}
