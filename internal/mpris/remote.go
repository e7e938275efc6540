// Package mpris exposes fitbar on the session bus as an MPRIS media player,
// so desktop media keys and applets can control playback.
package mpris

import (
	"sync"
	"time"

	"github.com/llehouerou/fitbar/internal/player"
)

// CommandKind identifies a request received over D-Bus.
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdPause
	CmdPlayPause
	CmdStop
	CmdNext
	CmdPrevious
	CmdSeek        // relative, Offset
	CmdSetPosition // absolute, Offset
	CmdSetVolume   // Volume
)

var commandNames = [...]string{
	CmdPlay:        "play",
	CmdPause:       "pause",
	CmdPlayPause:   "play-pause",
	CmdStop:        "stop",
	CmdNext:        "next",
	CmdPrevious:    "previous",
	CmdSeek:        "seek",
	CmdSetPosition: "set-position",
	CmdSetVolume:   "set-volume",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[k]
}

// Command is a playback request to be executed by the app.
type Command struct {
	Kind   CommandKind
	Offset time.Duration
	Volume float64
}

// Snapshot is the player state answered to D-Bus property reads.
type Snapshot struct {
	State    player.State
	Track    *player.TrackInfo
	Position time.Duration
	Volume   float64
	HasNext  bool
	HasPrev  bool
	HasQueue bool
}

// commandBuffer is the depth of the command channel; extra requests are dropped.
const commandBuffer = 16

// state holds what both the D-Bus side and the app touch.
type state struct {
	mu       sync.RWMutex
	snapshot Snapshot
	commands chan Command
}

func newState() *state {
	return &state{commands: make(chan Command, commandBuffer)}
}

// Publish replaces the snapshot served to D-Bus clients.
func (s *state) Publish(snap Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *state) current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Commands returns the channel of requests received over D-Bus.
func (s *state) Commands() <-chan Command {
	return s.commands
}

func (s *state) send(cmd Command) error {
	select {
	case s.commands <- cmd:
	default:
	}
	return nil
}
