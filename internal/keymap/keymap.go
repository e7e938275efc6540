package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "volume"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},
	{ActionRelayout, []string{"r"}, "relayout", "global"},
	{ActionDebug, []string{"d"}, "layout debug", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "play/pause", "playback"},
	{ActionStop, []string{"s"}, "stop", "playback"},
	{ActionNextTrack, []string{"n"}, "next", "playback"},
	{ActionPrevTrack, []string{"p"}, "previous", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "seek +", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "seek -", "playback"},

	// Volume
	{ActionVolumeUp, []string{"+", "="}, "volume +", "volume"},
	{ActionVolumeDown, []string{"-"}, "volume -", "volume"},
	{ActionMute, []string{"m"}, "mute", "volume"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b to a bubbles key binding for help rendering.
func (b Binding) KeyBinding() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = displayKey(b.Keys[0])
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Description))
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	default:
		return k
	}
}

// Help implements help.KeyMap over a set of bindings.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds help from bindings, one column per context.
func NewHelp(bindings []Binding) Help {
	var h Help
	columns := map[string]int{}
	for _, b := range bindings {
		kb := b.KeyBinding()
		if b.Context != "volume" {
			h.short = append(h.short, kb)
		}
		i, ok := columns[b.Context]
		if !ok {
			i = len(h.full)
			columns[b.Context] = i
			h.full = append(h.full, nil)
		}
		h.full[i] = append(h.full[i], kb)
	}
	return h
}

// ShortHelp returns the bindings shown in the one-line help.
func (h Help) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp returns the bindings grouped by context.
func (h Help) FullHelp() [][]key.Binding {
	return h.full
}
