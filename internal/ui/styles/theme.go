package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - active controls, progress start
	Secondary lipgloss.Color // Gold/orange - progress end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Borders
	Border       lipgloss.Color // Idle control bar
	BorderActive lipgloss.Color // Control bar while playing

	// Status colors
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow/orange - overflow in debug line

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base          lipgloss.Style // Default text
	Muted         lipgloss.Style // Dimmed text
	Subtle        lipgloss.Style // Very dim text
	Title         lipgloss.Style // Bold, bright
	Control       lipgloss.Style // Inactive control glyph
	ControlActive lipgloss.Style // Play/pause while playing
	ProgressEmpty lipgloss.Style // Unplayed part of the progress bar
	Time          lipgloss.Style // Position / duration
	Error         lipgloss.Style
	Warning       lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:       lipgloss.Color("#585858"),
	BorderActive: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Control: lipgloss.NewStyle().
			Foreground(t.FgBase),
		ControlActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		ProgressEmpty: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Time:          lipgloss.NewStyle().Foreground(t.FgMuted),
		Error:         lipgloss.NewStyle().Foreground(t.Error),
		Warning:       lipgloss.NewStyle().Foreground(t.Warning),
	}
}
