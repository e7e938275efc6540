package controlbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fitbar/internal/ui/layout"
	"github.com/llehouerou/fitbar/internal/ui/render"
	"github.com/llehouerou/fitbar/internal/ui/styles"
)

const (
	progressFilled = "━"
	progressEmpty  = "─"
)

// View renders the bar at its full width. Controls that do not fit are
// clipped until the layouter picks a smaller mode.
func (m *Model) View() string {
	inner := m.Width()
	line := render.Clip(m.line(), inner)
	return styles.BarStyle(m.state.Playing).Width(max(m.width-layout.BarBorderWidth, 0)).Render(line)
}

// line renders the visible controls without clipping.
func (m *Model) line() string {
	a := m.arrange()
	var b strings.Builder
	for _, c := range a.controls {
		if !c.Visible() {
			continue
		}
		b.WriteString(m.renderOuter(a, c))
	}
	return b.String()
}

// renderOuter renders a control inside its margins.
func (m *Model) renderOuter(a arrangement, c *Control) string {
	return lipgloss.NewStyle().
		MarginLeft(c.marginLeft).
		MarginRight(c.marginRight).
		Render(m.renderControl(a, c))
}

func (m *Model) renderControl(a arrangement, c *Control) string {
	t := styles.T().S()
	switch c.ID {
	case Title:
		return t.Title.Render(render.Pad(render.Truncate(a.title, c.width), c.width))
	case Play:
		style := t.Control
		if m.state.Playing {
			style = t.ControlActive
		}
		return style.Render(lipgloss.PlaceHorizontal(c.width, lipgloss.Center, glyph(c.ID, m.state)))
	case Prev, Next:
		return t.Control.Render(lipgloss.PlaceHorizontal(c.width, lipgloss.Center, glyph(c.ID, m.state)))
	case Volume:
		return t.Muted.Render(lipgloss.PlaceHorizontal(c.width, lipgloss.Left, glyph(c.ID, m.state)))
	case Progress:
		return progressBar(m.state, c.width)
	case Time:
		return t.Time.Render(a.time)
	default:
		return strings.Repeat(" ", c.width)
	}
}

// progressBar renders a gradient fill followed by the unplayed track.
func progressBar(s State, width int) string {
	var ratio float64
	if s.Duration > 0 {
		ratio = min(float64(s.Position)/float64(s.Duration), 1)
	}
	filled := max(min(int(float64(width)*ratio), width), 0)
	theme := styles.T()
	return styles.GradientBar(progressFilled, filled, width, theme.Primary, theme.Secondary) +
		theme.S().ProgressEmpty.Render(strings.Repeat(progressEmpty, width-filled))
}
