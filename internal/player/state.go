package player

// State represents the playback state machine.
//
//	Stopped --Play--> Playing --Pause--> Paused --Resume--> Playing
//	Playing/Paused --Stop--> Stopped
//
// Toggle cycles Playing and Paused and is a no-op while Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// EventKind identifies a player event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventStopped
	EventFinished
)

// String returns the event name for logs.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is sent on the player's event channel when playback changes.
type Event struct {
	Kind EventKind
	Path string
}
