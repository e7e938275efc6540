package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/notify"
)

// nowPlayingCmd sends the desktop notification for the current track,
// replacing the previous one. It returns nil when notifications are off.
func (m Model) nowPlayingCmd() tea.Cmd {
	cfg := m.Config.GetNotificationsConfig()
	info := m.Player.TrackInfo()
	if !*cfg.Enabled || info == nil {
		return nil
	}

	n := notify.NowPlaying(info, cfg.Timeout, *cfg.ShowAlbumArt)
	n.ReplacesID = m.notifyID
	notifier := m.notifier
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return NotifiedMsg{ID: id, Err: err}
	}
}
