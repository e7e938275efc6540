package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the control bar in the current style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Prev       string
	Next       string
	VolumeHigh string
	VolumeLow  string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b", // nf-fa-play
		Pause:      "\uf04c", // nf-fa-pause
		Stop:       "\uf04d", // nf-fa-stop
		Prev:       "\uf048", // nf-fa-step_backward
		Next:       "\uf051", // nf-fa-step_forward
		VolumeHigh: "\uf028", // nf-fa-volume_up
		VolumeLow:  "\uf027", // nf-fa-volume_down
		VolumeMute: "\uf026", // nf-fa-volume_off
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "■",
		Prev:       "⏮",
		Next:       "⏭",
		VolumeHigh: "🔊",
		VolumeLow:  "🔉",
		VolumeMute: "🔇",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "=",
		Stop:       "#",
		Prev:       "|<",
		Next:       ">|",
		VolumeHigh: "v+",
		VolumeLow:  "v-",
		VolumeMute: "vx",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set from the config value.
// Unknown values fall back to unicode.
func Init(style string) {
	current = Set(Style(style))
}

// Set returns the icon set for style.
func Set(style Style) Icons {
	switch style {
	case StyleNerd:
		return nerdIcons
	case StyleNone:
		return noneIcons
	default:
		return unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Valid reports whether s names a known style.
func Valid(s string) bool {
	switch Style(s) {
	case StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}

// PlayPause returns the play/pause toggle glyph. The glyph shows the
// action, so a playing track shows pause.
func (i Icons) PlayPause(playing bool) string {
	if playing {
		return i.Pause
	}
	return i.Play
}

// Volume returns the volume glyph for a 0..1 level.
func (i Icons) Volume(level float64, muted bool) string {
	switch {
	case muted || level <= 0:
		return i.VolumeMute
	case level < 0.5:
		return i.VolumeLow
	default:
		return i.VolumeHigh
	}
}
