package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key presses to actions.
type Resolver struct {
	byKey     map[string]Action
	byAction  map[Action]key.Binding
	conflicts []string
}

// NewResolver creates a resolver from bindings. When a key is bound to two
// different actions the first binding wins and the key is reported by
// Conflicts.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Action),
		byAction: make(map[Action]key.Binding),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			prev, bound := r.byKey[k]
			switch {
			case !bound:
				r.byKey[k] = b.Action
			case prev != b.Action && !slices.Contains(r.conflicts, k):
				r.conflicts = append(r.conflicts, k)
			}
		}
		r.merge(b)
	}
	return r
}

// merge adds b's keys to the action's binding, keeping the first help text.
func (r *Resolver) merge(b Binding) {
	existing, ok := r.byAction[b.Action]
	if !ok {
		r.byAction[b.Action] = b.KeyBinding()
		return
	}
	keys := slices.Clone(existing.Keys())
	for _, k := range b.Keys {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	existing.SetKeys(keys...)
	r.byAction[b.Action] = existing
}

// Resolve returns the action for a key press, or "" when the key is unbound
// or its action is disabled.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	return r.ResolveKey(msg.String())
}

// ResolveKey is Resolve for a key string as produced by tea.KeyMsg.String.
func (r *Resolver) ResolveKey(k string) Action {
	action, ok := r.byKey[k]
	if !ok || !r.byAction[action].Enabled() {
		return ""
	}
	return action
}

// SetEnabled turns an action on or off without rebinding it.
func (r *Resolver) SetEnabled(action Action, enabled bool) {
	if b, ok := r.byAction[action]; ok {
		b.SetEnabled(enabled)
		r.byAction[action] = b
	}
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	b, ok := r.byAction[action]
	if !ok {
		return nil
	}
	return b.Keys()
}

// Conflicts returns keys bound to more than one action.
func (r *Resolver) Conflicts() []string {
	return r.conflicts
}
