package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the track being played.
type TrackInfo struct {
	Path       string
	Title      string
	Artist     string
	Album      string
	Year       int
	Track      int
	Size       int64
	Format     string
	SampleRate int
	Duration   time.Duration
}

// ReadTrackInfo reads tag metadata for path. Missing or unreadable tags
// fall back to the file name, so the result is never nil.
func ReadTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:   path,
		Title:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Format: strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		info.Size = st.Size()
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	if info.Artist == "" {
		info.Artist = m.AlbumArtist()
	}
	info.Album = m.Album()
	info.Year = m.Year()
	info.Track, _ = m.Track()
	return info
}

// IsMusicFile reports whether path has an extension the player can decode.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	default:
		return false
	}
}
