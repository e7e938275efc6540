package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/keymap"
	"github.com/llehouerou/fitbar/internal/responsive"
)

const volumeStep = 0.05

// handleKey dispatches a key press through the resolver.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.Keys.Resolve(msg) { //nolint:exhaustive // unbound actions are ignored
	case keymap.ActionQuit:
		m.Shutdown()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
	case keymap.ActionDebug:
		m.ShowDebug = !m.ShowDebug
	case keymap.ActionRelayout:
		return m, func() tea.Msg { return responsive.RelayoutRequestMsg{} }
	case keymap.ActionPlayPause:
		cmd := m.playPause()
		return m, cmd
	case keymap.ActionStop:
		m.Player.Stop()
	case keymap.ActionNextTrack:
		cmd := m.skip(m.Queue.Next)
		return m, cmd
	case keymap.ActionPrevTrack:
		cmd := m.skip(m.Queue.Prev)
		return m, cmd
	case keymap.ActionSeekForward:
		m.Player.Seek(m.seekStep())
	case keymap.ActionSeekBack:
		m.Player.Seek(-m.seekStep())
	case keymap.ActionVolumeUp:
		m.Player.SetVolume(m.Player.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		m.Player.SetVolume(m.Player.Volume() - volumeStep)
	case keymap.ActionMute:
		m.Player.SetMuted(!m.Player.Muted())
	}
	return m, nil
}
