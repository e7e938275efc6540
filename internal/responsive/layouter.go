package responsive

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/fitbar/internal/debounce"
	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// Layouter drives the layout mode of one player for its whole lifetime.
//
// Cycles run inside the bubbletea Update loop: Init runs the first one right
// away, later triggers are debounced so a burst collapses into one cycle.
// A cycle that changes the mode schedules a follow-up, letting the ladder
// settle one step at a time.
type Layouter struct {
	target    Target
	opts      Options
	debouncer *debounce.Debouncer
	logger    *log.Logger
	listeners []func(RelayoutEvent)

	mode     layout.Mode
	last     layout.Decision
	geometry layout.Geometry
	cycles   int
	started  bool
	closed   bool
}

// New creates a Layouter for target. Zero option fields take their defaults.
func New(target Target, opts Options) *Layouter {
	opts = MergeOptions(DefaultOptions(), opts)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Layouter{
		target:    target,
		opts:      opts,
		debouncer: debounce.New(opts.DebounceDelay),
		logger:    logger,
		mode:      layout.Default,
		last:      layout.Decision{From: layout.Default, Mode: layout.Default},
	}
}

// OnRelayout registers fn to be called synchronously after every applied
// mode change.
func (l *Layouter) OnRelayout(fn func(RelayoutEvent)) {
	l.listeners = append(l.listeners, fn)
}

// Init marks the player with the default mode and runs the first cycle
// without waiting for a quiet period. Later calls do nothing.
func (l *Layouter) Init() tea.Cmd {
	if l.closed || l.started {
		return nil
	}
	l.started = true
	Apply(l.target, l.mode)
	return l.Check()
}

// Update feeds a message to the layouter. Resize, play-started and relayout
// requests schedule a cycle; the debounced FireMsg runs it. Messages before
// Init are ignored since the player cannot be measured yet.
func (l *Layouter) Update(msg tea.Msg) tea.Cmd {
	if l.closed || !l.started {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg, PlayStartedMsg, RelayoutRequestMsg:
		return l.Trigger()
	case debounce.FireMsg:
		if l.debouncer.Fire(msg) {
			return l.Check()
		}
	}
	return nil
}

// Trigger schedules a debounced cycle, replacing any pending one.
// It does nothing before Init.
func (l *Layouter) Trigger() tea.Cmd {
	if l.closed || !l.started {
		return nil
	}
	return l.debouncer.Trigger()
}

// Check runs one cycle immediately: measure, evaluate, apply.
// It returns the follow-up trigger when the mode changed.
func (l *Layouter) Check() tea.Cmd {
	if l.closed {
		return nil
	}

	l.cycles++
	from := l.mode
	l.geometry = Measure(l.target)

	if l.opts.UpdateLayout != nil {
		l.opts.UpdateLayout(l, l.geometry)
	} else {
		d := layout.Decide(l.geometry, from)
		l.last = d
		l.logger.Debug("layout evaluated",
			"mode", from, "rule", d.Rule, "next", d.Mode, "geometry", l.geometry)
		if d.Changed() {
			l.apply(d.Mode, d.Rule)
		}
	}

	if l.mode != from {
		return l.debouncer.Trigger()
	}
	return nil
}

// SetMode applies mode and notifies listeners. It reports whether the mode
// changed. Meant for UpdateLayout overrides.
func (l *Layouter) SetMode(mode layout.Mode) bool {
	if !mode.Valid() {
		return false
	}
	l.last = layout.Decision{From: l.mode, Mode: mode, Rule: layout.RuleNone}
	return l.apply(mode, layout.RuleNone)
}

func (l *Layouter) apply(mode layout.Mode, rule layout.Rule) bool {
	if l.closed || mode == l.mode {
		return false
	}

	ev := RelayoutEvent{From: l.mode, To: mode, Rule: rule, Geometry: l.geometry}
	Apply(l.target, mode)
	l.mode = mode

	l.logger.Info("layout changed", "from", ev.From, "to", ev.To, "rule", rule)
	for _, fn := range l.listeners {
		fn(ev)
	}
	return true
}

// Close cancels any pending cycle and stops reacting to triggers.
// Closing an already closed layouter is a no-op.
func (l *Layouter) Close() {
	if l.closed {
		return
	}
	l.debouncer.Cancel()
	l.closed = true
	l.listeners = nil
	l.logger.Debug("layouter closed", "cycles", l.cycles)
}

// SetDebounceDelay changes the quiet period for later triggers.
func (l *Layouter) SetDebounceDelay(d time.Duration) {
	l.debouncer.SetDelay(d)
	l.opts.DebounceDelay = l.debouncer.Delay()
}

// Mode returns the active layout mode.
func (l *Layouter) Mode() layout.Mode { return l.mode }

// Last returns the most recent decision and the geometry it was made from.
func (l *Layouter) Last() (layout.Decision, layout.Geometry) { return l.last, l.geometry }

// Cycles returns how many cycles have run.
func (l *Layouter) Cycles() int { return l.cycles }

// Pending reports whether a debounced cycle is scheduled.
func (l *Layouter) Pending() bool { return l.debouncer.Pending() }

// Started reports whether Init has run.
func (l *Layouter) Started() bool { return l.started }

// Closed reports whether Close has been called.
func (l *Layouter) Closed() bool { return l.closed }

// DebounceDelay returns the quiet period in use.
func (l *Layouter) DebounceDelay() time.Duration { return l.debouncer.Delay() }
