//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/fitbar/internal/player"
)

const busName = "fitbar"

// Adapter serves the MPRIS interfaces on the session bus. Method calls are
// forwarded on Commands; property reads answer from the last Publish.
type Adapter struct {
	*state
	server *server.Server
}

// New registers fitbar on the session bus and starts serving.
func New() (*Adapter, error) {
	st := newState()
	a := &Adapter{
		state:  st,
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{state: st}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error           { return nil }
func (r *rootAdapter) Quit() error            { return nil }
func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return busName, nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	state *state
}

func (p *playerAdapter) Next() error      { return p.state.send(Command{Kind: CmdNext}) }
func (p *playerAdapter) Previous() error  { return p.state.send(Command{Kind: CmdPrevious}) }
func (p *playerAdapter) Pause() error     { return p.state.send(Command{Kind: CmdPause}) }
func (p *playerAdapter) PlayPause() error { return p.state.send(Command{Kind: CmdPlayPause}) }
func (p *playerAdapter) Stop() error      { return p.state.send(Command{Kind: CmdStop}) }
func (p *playerAdapter) Play() error      { return p.state.send(Command{Kind: CmdPlay}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.state.send(Command{Kind: CmdSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.state.send(Command{Kind: CmdSetPosition, Offset: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.state.current().State), nil
}

func (p *playerAdapter) Rate() (float64, error)   { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.state.current().Track), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.state.current().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.state.send(Command{Kind: CmdSetVolume, Volume: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.state.current().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.state.current().HasNext, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.state.current().HasPrev, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.state.current().HasQueue, nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return true, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

func playbackStatus(s player.State) types.PlaybackStatus {
	switch s {
	case player.Playing:
		return types.PlaybackStatusPlaying
	case player.Paused:
		return types.PlaybackStatusPaused
	case player.Stopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func metadata(track *player.TrackInfo) types.Metadata {
	if track == nil {
		return types.Metadata{}
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(track.Path)),
		Length:      types.Microseconds(track.Duration.Microseconds()),
		Title:       track.Title,
		Album:       track.Album,
		TrackNumber: track.Track,
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}
	if art := player.FindCover(track.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
