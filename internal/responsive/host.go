// Package responsive keeps a player's control bar in the layout mode that
// fits its width. It measures the bar, asks the layout evaluator for the next
// mode and marks the bar with it, one ladder step per debounced cycle.
package responsive

import "github.com/llehouerou/fitbar/internal/ui/layout"

// Element is a measurable piece of the player.
type Element interface {
	// OuterWidth is the rendered width including horizontal margins.
	OuterWidth() int
	// Visible reports whether the element takes up any space.
	Visible() bool
}

// Host is the observed player as the layouter sees it.
// Any element may be nil when it is absent; it then measures zero.
type Host interface {
	Width() int
	PlayControl() Element
	ProgressControl() Element
	ControlBarChildren() []Element
}

// MarkerStore holds named markers on the observed player. The layouter
// writes mode markers through Apply only.
type MarkerStore interface {
	AddMarker(name string)
	RemoveMarker(name string)
	HasMarker(name string) bool
}

// Target is everything the layouter needs from the player.
type Target interface {
	Host
	MarkerStore
}

// Measure takes a fresh geometry snapshot of h.
func Measure(h Host) layout.Geometry {
	return layout.Geometry{
		PlayerWidth:     h.Width(),
		ControlBarWidth: ControlBarWidth(h.ControlBarChildren()),
		ControlWidth:    outerWidth(h.PlayControl()),
		ProgressWidth:   outerWidth(h.ProgressControl()),
	}
}

// ControlBarWidth sums the outer widths of the visible children.
func ControlBarWidth(children []Element) int {
	total := 0
	for _, el := range children {
		if el != nil && el.Visible() {
			total += el.OuterWidth()
		}
	}
	return total
}

func outerWidth(el Element) int {
	if el == nil {
		return 0
	}
	return max(el.OuterWidth(), 0)
}

// Apply marks store with mode, removing the other mode markers so exactly
// one is present. Applying the current mode again changes nothing.
func Apply(store MarkerStore, mode layout.Mode) {
	for _, m := range layout.Modes() {
		if m != mode {
			store.RemoveMarker(m.Marker())
		}
	}
	if !store.HasMarker(mode.Marker()) {
		store.AddMarker(mode.Marker())
	}
}

// ModeOf reads the mode marker back from store. Default is returned when no
// mode marker is present.
func ModeOf(store MarkerStore) layout.Mode {
	for _, m := range layout.Modes() {
		if store.HasMarker(m.Marker()) {
			return m
		}
	}
	return layout.Default
}
