package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
		{ActionPlayPause, []string{" "}, "play/pause", "playback"},
		{ActionSeekForward, []string{"right", "l"}, "seek +", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"right", ActionSeekForward},
		{"l", ActionSeekForward},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if result := r.ResolveKey(tt.key); result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionMute, []string{"m"}, "mute", "volume"},
		{ActionMute, []string{"m", "M"}, "mute", "playback"},
	})

	keys := r.KeysFor(ActionMute)
	if !slices.Equal(keys, []string{"m", "M"}) {
		t.Errorf("KeysFor(ActionMute) = %v, want [m M]", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_WithAllBindings(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{" ", ActionPlayPause},
		{"r", ActionRelayout},
		{"d", ActionDebug},
		{"n", ActionNextTrack},
		{"p", ActionPrevTrack},
		{"+", ActionVolumeUp},
		{"m", ActionMute},
	}

	for _, tt := range tests {
		if got := r.ResolveKey(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestAllBindings_NoKeyConflicts(t *testing.T) {
	if c := NewResolver(All).Conflicts(); len(c) > 0 {
		t.Errorf("keys bound to several actions: %v", c)
	}
}

func TestResolver_Conflicts(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []string{"s"}, "stop", "playback"},
		{ActionSeekBack, []string{"s", "h"}, "seek -", "playback"},
	})

	if got := r.ResolveKey("s"); got != ActionStop {
		t.Errorf("ResolveKey(s) = %q, want first binding %q", got, ActionStop)
	}
	if got := r.ResolveKey("h"); got != ActionSeekBack {
		t.Errorf("ResolveKey(h) = %q, want %q", got, ActionSeekBack)
	}
	if c := r.Conflicts(); !slices.Equal(c, []string{"s"}) {
		t.Errorf("Conflicts() = %v, want [s]", c)
	}
}

func TestResolver_SetEnabled(t *testing.T) {
	r := NewResolver(All)

	r.SetEnabled(ActionNextTrack, false)
	if got := r.ResolveKey("n"); got != "" {
		t.Errorf("ResolveKey(n) while disabled = %q, want empty", got)
	}
	if keys := r.KeysFor(ActionNextTrack); !slices.Contains(keys, "n") {
		t.Errorf("KeysFor() while disabled = %v, want n kept", keys)
	}

	r.SetEnabled(ActionNextTrack, true)
	if got := r.ResolveKey("n"); got != ActionNextTrack {
		t.Errorf("ResolveKey(n) = %q, want %q", got, ActionNextTrack)
	}
}

func TestResolver_ResolveKeyMsg(t *testing.T) {
	r := NewResolver(All)
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if got := r.Resolve(msg); got != ActionQuit {
		t.Errorf("Resolve(q) = %q, want %q", got, ActionQuit)
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver(nil)

	if action := r.ResolveKey("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
