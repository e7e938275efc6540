package debounce

import (
	"sync"
	"time"
)

// Timer coalesces rapid events from any goroutine into a single callback.
// When Trigger is called again before the delay elapses, the previously
// scheduled callback is dropped and a new one is scheduled.
type Timer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewTimer creates a Timer. A non-positive delay falls back to DefaultDelay.
func NewTimer(delay time.Duration) *Timer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Timer{delay: delay}
}

// Trigger schedules fn to run once the delay elapses with no further triggers.
// fn runs on its own goroutine.
func (t *Timer) Trigger(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	seq := t.seq

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		// A timer that already fired cannot be stopped; the sequence check
		// keeps a superseded callback from running.
		if seq != t.seq {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()

		fn()
	})
}

// Cancel drops any pending callback.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
