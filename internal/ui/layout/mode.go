// Package layout provides pure functions for UI dimension calculations.
package layout

import "fmt"

// Mode is a control bar layout mode. Modes form a ladder ordered from the
// most compact to the roomiest: Tiny < ExtraSmall < Small < Default.
type Mode int

const (
	Tiny Mode = iota
	ExtraSmall
	Small
	Default
)

// Marker prefix shared by all mode markers.
const markerPrefix = "layout-"

// Modes returns every mode in ladder order.
func Modes() []Mode {
	return []Mode{Tiny, ExtraSmall, Small, Default}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Tiny:
		return "tiny"
	case ExtraSmall:
		return "x-small"
	case Small:
		return "small"
	case Default:
		return "default"
	default:
		return "unknown"
	}
}

// Marker returns the marker name attached to the control bar for this mode.
func (m Mode) Marker() string {
	return markerPrefix + m.String()
}

// Valid reports whether m is one of the four ladder modes.
func (m Mode) Valid() bool {
	return m >= Tiny && m <= Default
}

// IsCramped reports whether m is one of the two intermediate modes.
func (m Mode) IsCramped() bool {
	return m == ExtraSmall || m == Small
}

// StepUp returns the next roomier mode. Default saturates.
func StepUp(m Mode) Mode {
	if m >= Default {
		return Default
	}
	if m < Tiny {
		return Tiny
	}
	return m + 1
}

// StepDown returns the next more compact mode. Tiny saturates.
func StepDown(m Mode) Mode {
	if m <= Tiny {
		return Tiny
	}
	if m > Default {
		return Default
	}
	return m - 1
}

// ParseMode parses a mode name or marker ("small", "layout-small").
func ParseMode(s string) (Mode, error) {
	name := s
	if len(name) > len(markerPrefix) && name[:len(markerPrefix)] == markerPrefix {
		name = name[len(markerPrefix):]
	}
	for _, m := range Modes() {
		if m.String() == name {
			return m, nil
		}
	}
	return Default, fmt.Errorf("unknown layout mode %q", s)
}
