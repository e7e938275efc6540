// Package debounce coalesces bursts of triggers into a single run once a
// quiet period has passed without new triggers.
//
// Debouncer works inside a bubbletea Update loop: triggers return a tea.Cmd
// and the owner runs its work when the matching FireMsg comes back. Timer
// does the same for code running outside the event loop.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used when none is given.
const DefaultDelay = 400 * time.Millisecond

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FireMsg is sent when a quiet period ends. Only the Debouncer that produced
// it, at the version it carries, accepts it.
type FireMsg struct {
	ID      int
	Version int
}

// Debouncer schedules at most one pending run. Each Trigger supersedes the
// previous one, so a burst of triggers yields a single accepted FireMsg sent
// one delay after the last trigger.
//
// A Debouncer is not safe for concurrent use; call it from Update only.
type Debouncer struct {
	id      int
	delay   time.Duration
	version int
	pending bool
}

// New creates a Debouncer. A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{id: nextID(), delay: delay}
}

// Trigger restarts the quiet period and returns the command that reports its end.
func (d *Debouncer) Trigger() tea.Cmd {
	d.version++
	d.pending = true
	id, version := d.id, d.version
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return FireMsg{ID: id, Version: version}
	})
}

// Fire reports whether msg ends the current quiet period. Stale messages,
// messages from other debouncers and messages arriving after Cancel are
// rejected.
func (d *Debouncer) Fire(msg FireMsg) bool {
	if msg.ID != d.id || msg.Version != d.version || !d.pending {
		return false
	}
	d.pending = false
	return true
}

// Cancel drops the pending run, if any.
func (d *Debouncer) Cancel() {
	d.version++
	d.pending = false
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// SetDelay changes the quiet period for subsequent triggers.
// A non-positive delay falls back to DefaultDelay.
func (d *Debouncer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d.delay = delay
}
