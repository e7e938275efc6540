// Package controlbar renders the player's control bar. It is the element the
// responsive layouter observes: it reports control widths and carries the
// layout mode marker that decides which controls are shown.
package controlbar

import (
	"slices"
	"time"

	"github.com/llehouerou/fitbar/internal/player"
	"github.com/llehouerou/fitbar/internal/responsive"
	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// State holds everything needed to render the control bar.
type State struct {
	Playing  bool
	Paused   bool
	Title    string
	Artist   string
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Muted    bool
}

// Active reports whether a track is loaded.
func (s State) Active() bool {
	return s.Playing || s.Paused
}

// NewState constructs a State from the player.
func NewState(p player.Interface) State {
	s := State{
		Playing: p.State() == player.Playing,
		Paused:  p.State() == player.Paused,
		Volume:  p.Volume(),
		Muted:   p.Muted(),
	}
	if !s.Active() {
		return s
	}
	if info := p.TrackInfo(); info != nil {
		s.Title = info.Title
		s.Artist = info.Artist
	}
	s.Position = p.Position()
	s.Duration = p.Duration()
	return s
}

// Model is the control bar. It implements responsive.Target.
type Model struct {
	width   int
	state   State
	markers map[string]struct{}
}

// Verify Model implements responsive.Target at compile time.
var _ responsive.Target = (*Model)(nil)

// New creates an empty control bar.
func New() *Model {
	return &Model{markers: make(map[string]struct{})}
}

// SetWidth sets the total width of the bar including its border.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 0)
}

// SetState replaces the rendered player state.
func (m *Model) SetState(s State) {
	m.state = s
}

// State returns the rendered player state.
func (m *Model) State() State {
	return m.state
}

// Mode returns the layout mode read from the markers.
func (m *Model) Mode() layout.Mode {
	return responsive.ModeOf(m)
}

// Height returns the rendered height of the bar.
func (m *Model) Height() int {
	return layout.BarHeight
}

// Width returns the inner width available to the controls.
func (m *Model) Width() int {
	return layout.BarInnerWidth(m.width)
}

// PlayControl returns the play/pause control, the reference control.
func (m *Model) PlayControl() responsive.Element {
	return m.arrange().controls[Play]
}

// ProgressControl returns the progress control.
func (m *Model) ProgressControl() responsive.Element {
	return m.arrange().controls[Progress]
}

// ControlBarChildren returns every control in display order.
func (m *Model) ControlBarChildren() []responsive.Element {
	a := m.arrange()
	children := make([]responsive.Element, 0, len(a.controls))
	for _, c := range a.controls {
		children = append(children, c)
	}
	return children
}

// AddMarker adds a named marker.
func (m *Model) AddMarker(name string) {
	m.markers[name] = struct{}{}
}

// RemoveMarker removes a named marker. Removing an absent marker is a no-op.
func (m *Model) RemoveMarker(name string) {
	delete(m.markers, name)
}

// HasMarker reports whether the marker is present.
func (m *Model) HasMarker(name string) bool {
	_, ok := m.markers[name]
	return ok
}

// Markers returns the present markers in sorted order.
func (m *Model) Markers() []string {
	names := make([]string, 0, len(m.markers))
	for name := range m.markers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
