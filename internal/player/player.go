// Package player plays audio files through the system speaker.
package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

const eventBuffer = 16

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays one file at a time.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	trackInfo   *TrackInfo
	volumeLevel float64
	muted       bool
	events      chan Event
}

// New creates a stopped player with the given initial volume (0.0 to 1.0).
func New(volume float64) *Player {
	p := &Player{
		state:  Stopped,
		events: make(chan Event, eventBuffer),
	}
	p.SetVolume(volume)
	return p
}

// Events returns the channel on which playback events are delivered.
// Events are dropped when the channel is full.
func (p *Player) Events() <-chan Event {
	return p.events
}

func (p *Player) emit(kind EventKind) {
	path := ""
	if p.trackInfo != nil {
		path = p.trackInfo.Path
	}
	p.emitPath(kind, path)
}

// emitPath is safe to call from the speaker goroutine.
func (p *Player) emitPath(kind EventKind, path string) {
	select {
	case p.events <- Event{Kind: kind, Path: path}:
	default:
	}
}

// Play starts playback of the given audio file, stopping any current track.
func (p *Player) Play(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	p.Stop()

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, ext)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		speakerInitialized = true
	}

	p.file = f
	p.streamer = streamer
	p.format = format

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}

	info := ReadTrackInfo(path)
	info.Duration = format.SampleRate.D(streamer.Len())
	info.SampleRate = int(format.SampleRate)
	p.trackInfo = info

	p.state = Playing
	p.emit(EventStarted)

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		p.emitPath(EventFinished, path)
	})))

	return nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		// Some taggers prepend ID3v2 to FLAC files
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case extWAV:
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
	}
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// TrackInfo returns metadata for the current track, or nil when stopped.
func (p *Player) TrackInfo() *TrackInfo { return p.trackInfo }

// Duration returns the length of the current track.
func (p *Player) Duration() time.Duration {
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}
