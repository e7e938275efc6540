package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/errmsg"
	"github.com/llehouerou/fitbar/internal/player"
)

// playCurrent starts the queue's current path. Failures are shown in the
// status line; the player reports success through its event channel.
func (m *Model) playCurrent() tea.Cmd {
	path, ok := m.Queue.Current()
	if !ok {
		return nil
	}
	if err := m.Player.Play(path); err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, filepath.Base(path), err)
		m.Logger.Error("playback failed", "path", path, "err", err)
		return nil
	}
	m.ErrorMsg = ""
	m.Logger.Info("playing", "path", path)
	return nil
}

// playPause toggles playback, starting the queue when stopped.
func (m *Model) playPause() tea.Cmd {
	if m.Player.State() == player.Stopped {
		return m.playCurrent()
	}
	m.Player.Toggle()
	return nil
}

// skip moves through the queue with move and plays the new current path.
func (m *Model) skip(move func() (string, bool)) tea.Cmd {
	if _, ok := move(); !ok {
		return nil
	}
	return m.playCurrent()
}

// advance plays the next path after a track finished, or stops at the end.
func (m *Model) advance() tea.Cmd {
	if _, ok := m.Queue.Next(); !ok {
		m.Player.Stop()
		return nil
	}
	return m.playCurrent()
}
