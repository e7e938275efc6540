package player

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlay_UnsupportedFormat(t *testing.T) {
	p := New(1)
	err := p.Play("song.ogg")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("Play() error = %v, want unsupported format", err)
	}
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
}

func TestPlay_MissingFile(t *testing.T) {
	p := New(1)
	if err := p.Play(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("Play() of a missing file should fail")
	}
	if p.TrackInfo() != nil {
		t.Error("TrackInfo() should be nil after a failed Play")
	}
	select {
	case ev := <-p.Events():
		t.Errorf("unexpected event %v", ev.Kind)
	default:
	}
}

func TestStoppedPlayerIsInert(t *testing.T) {
	p := New(1)
	p.Pause()
	p.Resume()
	p.Toggle()
	p.Seek(5)
	p.Stop()

	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Position() != 0 || p.Duration() != 0 {
		t.Errorf("Position/Duration = %v/%v, want 0/0", p.Position(), p.Duration())
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
	}

	p := New(0.8)
	for _, tt := range tests {
		p.SetVolume(tt.in)
		if got := p.Volume(); got != tt.want {
			t.Errorf("SetVolume(%v) -> Volume() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetMuted_KeepsLevel(t *testing.T) {
	p := New(0.6)
	p.SetMuted(true)
	p.SetVolume(0.3)
	p.SetMuted(false)

	if p.Muted() {
		t.Error("Muted() = true, want false")
	}
	if p.Volume() != 0.3 {
		t.Errorf("Volume() = %v, want 0.3", p.Volume())
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-0.5, -10},
	}

	for _, tt := range tests {
		if got := levelToVolume(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMock_EmitsEvents(t *testing.T) {
	m := NewMock()
	if err := m.Play("a.mp3"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	m.SimulateFinished()
	m.Stop()

	want := []EventKind{EventStarted, EventFinished, EventStopped}
	for _, kind := range want {
		ev := <-m.Events()
		if ev.Kind != kind {
			t.Fatalf("event = %v, want %v", ev.Kind, kind)
		}
	}
}
