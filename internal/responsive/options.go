package responsive

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/fitbar/internal/debounce"
	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// UpdateFunc replaces the default evaluate-and-apply step of a cycle. It
// receives the freshly measured geometry and may call Layouter.SetMode.
type UpdateFunc func(l *Layouter, g layout.Geometry)

// Options configures a Layouter.
type Options struct {
	// DebounceDelay is the quiet period before a cycle runs (default 400ms).
	DebounceDelay time.Duration
	// UpdateLayout, when set, is called instead of the built-in evaluator.
	UpdateLayout UpdateFunc
	// Logger receives cycle decisions. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{DebounceDelay: debounce.DefaultDelay}
}

// MergeOptions returns base with every non-zero field of override applied.
func MergeOptions(base, override Options) Options {
	merged := base
	if override.DebounceDelay > 0 {
		merged.DebounceDelay = override.DebounceDelay
	}
	if override.UpdateLayout != nil {
		merged.UpdateLayout = override.UpdateLayout
	}
	if override.Logger != nil {
		merged.Logger = override.Logger
	}
	return merged
}
