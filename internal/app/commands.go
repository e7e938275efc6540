package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/config"
	"github.com/llehouerou/fitbar/internal/player"
)

const tickInterval = time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchPlayer returns a command that waits for the next player event.
// The handler re-issues it after every event.
func WatchPlayer(events <-chan player.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return PlayerClosedMsg{}
		}
		return PlayerEventMsg{Event: ev}
	}
}

// LoadConfigCmd reloads the configuration off the update loop.
func LoadConfigCmd(explicit string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(explicit)
		if err == nil {
			err = cfg.Validate()
		}
		return ConfigLoadedMsg{Config: cfg, Err: err}
	}
}

func startPlaybackCmd() tea.Msg {
	return StartPlaybackMsg{}
}
