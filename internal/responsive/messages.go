package responsive

import "github.com/llehouerou/fitbar/internal/ui/layout"

// Trigger messages. Each one schedules a debounced cycle; tea.WindowSizeMsg
// does too.

// PlayStartedMsg reports that content started playing.
type PlayStartedMsg struct{}

// RelayoutRequestMsg asks for the layout to be re-evaluated.
type RelayoutRequestMsg struct{}

// RelayoutEvent describes an applied mode change.
type RelayoutEvent struct {
	From     layout.Mode
	To       layout.Mode
	Rule     layout.Rule
	Geometry layout.Geometry
}
