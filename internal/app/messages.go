// Package app contains the root bubbletea model of fitbar.
package app

import (
	"time"

	"github.com/llehouerou/fitbar/internal/config"
	"github.com/llehouerou/fitbar/internal/player"
)

// TickMsg refreshes the position shown in the control bar.
type TickMsg time.Time

// PlayerEventMsg wraps an event from the player's event channel.
type PlayerEventMsg struct {
	Event player.Event
}

// PlayerClosedMsg is sent when the player's event channel is closed.
type PlayerClosedMsg struct{}

// StartPlaybackMsg starts the first track of the queue.
type StartPlaybackMsg struct{}

// ConfigChangedMsg is sent by the config watcher when a config file changes.
type ConfigChangedMsg struct{}

// ConfigLoadedMsg carries the result of reloading the config.
type ConfigLoadedMsg struct {
	Config *config.Config
	Err    error
}

// StderrMsg carries a line captured from fd 2.
type StderrMsg struct {
	Line string
}

// NotifiedMsg reports the result of a now-playing notification.
type NotifiedMsg struct {
	ID  uint32
	Err error
}
