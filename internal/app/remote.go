package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/mpris"
	"github.com/llehouerou/fitbar/internal/player"
)

// Remote is an out-of-process controller, such as the MPRIS adapter.
type Remote interface {
	Commands() <-chan mpris.Command
	Publish(mpris.Snapshot)
}

// RemoteCommandMsg carries a request received from the Remote.
type RemoteCommandMsg struct {
	Command mpris.Command
}

// WatchRemote returns a command that waits for the next remote request.
func WatchRemote(commands <-chan mpris.Command) tea.Cmd {
	if commands == nil {
		return nil
	}
	return func() tea.Msg {
		cmd, ok := <-commands
		if !ok {
			return nil
		}
		return RemoteCommandMsg{Command: cmd}
	}
}

// handleRemote runs a remote request and keeps watching for the next one.
func (m Model) handleRemote(c mpris.Command) (Model, tea.Cmd) {
	m.Logger.Debug("remote command", "kind", c.Kind, "offset", c.Offset)
	watch := WatchRemote(m.remote.Commands())

	var cmd tea.Cmd
	switch c.Kind {
	case mpris.CmdPlay:
		if m.Player.State() != player.Playing {
			cmd = m.playPause()
		}
	case mpris.CmdPause:
		m.Player.Pause()
	case mpris.CmdPlayPause:
		cmd = m.playPause()
	case mpris.CmdStop:
		m.Player.Stop()
	case mpris.CmdNext:
		cmd = m.skip(m.Queue.Next)
	case mpris.CmdPrevious:
		cmd = m.skip(m.Queue.Prev)
	case mpris.CmdSeek:
		m.Player.Seek(c.Offset)
	case mpris.CmdSetPosition:
		m.Player.Seek(c.Offset - m.Player.Position())
	case mpris.CmdSetVolume:
		m.Player.SetVolume(c.Volume)
	}
	return m, tea.Batch(watch, cmd)
}

// publish hands the current player state to the Remote.
func (m Model) publish() {
	if m.remote == nil {
		return
	}
	var info *player.TrackInfo
	if m.Player.State().IsActive() {
		info = m.Player.TrackInfo()
	}
	m.remote.Publish(mpris.Snapshot{
		State:    m.Player.State(),
		Track:    info,
		Position: m.Player.Position(),
		Volume:   m.Player.Volume(),
		HasNext:  m.Queue.CurrentIndex()+1 < m.Queue.Len(),
		HasPrev:  m.Queue.CurrentIndex() > 0,
		HasQueue: m.Queue.Len() > 0,
	})
}
