package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state     State
	position  time.Duration
	duration  time.Duration
	trackInfo *TrackInfo
	volume    float64
	muted     bool
	playErr   error
	playCalls []string
	seekCalls []time.Duration
	events    chan Event
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1,
		events: make(chan Event, eventBuffer),
	}
}

func (m *Mock) send(kind EventKind, path string) {
	select {
	case m.events <- Event{Kind: kind, Path: path}:
	default:
	}
}

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	if m.trackInfo == nil || m.trackInfo.Path != path {
		m.trackInfo = &TrackInfo{Path: path, Title: path, Duration: m.duration}
	}
	m.send(EventStarted, path)
	return nil
}

func (m *Mock) Stop() {
	if m.state == Stopped {
		return
	}
	m.state = Stopped
	m.trackInfo = nil
	m.send(EventStopped, "")
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *TrackInfo { return m.trackInfo }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Seek(d time.Duration) {
	m.seekCalls = append(m.seekCalls, d)
}

func (m *Mock) SetVolume(level float64) { m.volume = max(0, min(1, level)) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) Events() <-chan Event { return m.events }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) SetTrackInfo(info *TrackInfo) { m.trackInfo = info }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates the current track reaching its end.
func (m *Mock) SimulateFinished() {
	path := ""
	if m.trackInfo != nil {
		path = m.trackInfo.Path
	}
	m.send(EventFinished, path)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
