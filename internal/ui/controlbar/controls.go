package controlbar

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/fitbar/internal/icons"
	"github.com/llehouerou/fitbar/internal/ui/layout"
	"github.com/llehouerou/fitbar/internal/ui/render"
)

// ID identifies a control.
type ID int

// Controls in display order.
const (
	Title ID = iota
	Prev
	Play
	Next
	Progress
	Time
	Volume
	numControls
)

var idNames = [numControls]string{"title", "prev", "play", "next", "progress", "time", "volume"}

// String returns the control name.
func (id ID) String() string {
	if id < 0 || id >= numControls {
		return "unknown"
	}
	return idNames[id]
}

// Content widths in cells. Fixed slots keep measurements independent of
// the icon set.
const (
	PlayWidth        = 5
	ButtonWidth      = 3
	VolumeWidth      = 2
	ProgressMinWidth = 4
	titleMinWidth    = 3
)

// Control is one measured control of the bar.
type Control struct {
	ID          ID
	width       int
	marginLeft  int
	marginRight int
	visible     bool
}

// OuterWidth returns the width including margins, or 0 when hidden.
func (c *Control) OuterWidth() int {
	if !c.visible {
		return 0
	}
	return c.marginLeft + c.width + c.marginRight
}

// Visible reports whether the control is shown in the current mode.
func (c *Control) Visible() bool {
	return c.visible
}

// Width returns the content width without margins.
func (c *Control) Width() int {
	return c.width
}

// arrangement is the measured layout for one mode and width.
type arrangement struct {
	mode     layout.Mode
	controls [numControls]*Control
	title    string
	time     string
}

// visibleIn reports which controls a mode shows.
func visibleIn(id ID, mode layout.Mode) bool {
	switch id {
	case Title:
		return mode == layout.Default
	case Prev, Next, Volume:
		return mode == layout.Default || mode == layout.Small
	case Progress:
		return mode != layout.Tiny
	default:
		return true
	}
}

func (m *Model) arrange() arrangement {
	mode := m.Mode()
	a := arrangement{mode: mode, title: titleText(m.state), time: timeText(m.state, mode)}

	newControl := func(id ID, width, ml, mr int) *Control {
		return &Control{ID: id, width: width, marginLeft: ml, marginRight: mr, visible: visibleIn(id, mode)}
	}
	a.controls[Title] = newControl(Title, 0, 0, 1)
	a.controls[Prev] = newControl(Prev, ButtonWidth, 1, 0)
	a.controls[Play] = newControl(Play, PlayWidth, 1, 1)
	a.controls[Next] = newControl(Next, ButtonWidth, 0, 1)
	a.controls[Progress] = newControl(Progress, ProgressMinWidth, 0, 1)
	a.controls[Time] = newControl(Time, runewidth.StringWidth(a.time), 0, 1)
	a.controls[Volume] = newControl(Volume, VolumeWidth, 0, 0)

	// Title and progress share whatever the fixed controls leave over.
	a.controls[Title].visible = false
	used := 0
	for _, c := range a.controls {
		used += c.OuterWidth()
	}
	spare := m.Width() - used
	if spare <= 0 || !a.controls[Progress].visible {
		return a
	}

	if visibleIn(Title, mode) && a.title != "" {
		titleWidth := min(runewidth.StringWidth(a.title), spare/2-1)
		if titleWidth >= titleMinWidth {
			a.controls[Title].width = titleWidth
			a.controls[Title].visible = true
			spare -= a.controls[Title].OuterWidth()
		}
	}
	a.controls[Progress].width += spare
	return a
}

func titleText(s State) string {
	title := render.Sanitize(s.Title)
	if artist := render.Sanitize(s.Artist); artist != "" && title != "" {
		return title + " · " + artist
	}
	return title
}

// timeText shows the position, followed by the duration in default mode.
func timeText(s State, mode layout.Mode) string {
	pos := formatDuration(s.Position)
	if mode != layout.Default {
		return pos
	}
	return pos + "/" + formatDuration(s.Duration)
}

func formatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func glyph(id ID, s State) string {
	set := icons.Current()
	switch id {
	case Prev:
		return set.Prev
	case Next:
		return set.Next
	case Play:
		return set.PlayPause(s.Playing)
	case Volume:
		return set.Volume(s.Volume, s.Muted)
	default:
		return ""
	}
}
