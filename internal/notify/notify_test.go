package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/fitbar/internal/player"
)

func TestUrgencyValues(t *testing.T) {
	// freedesktop urgency bytes
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency = %d/%d/%d, want 0/1/2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestNowPlaying(t *testing.T) {
	tests := []struct {
		name     string
		info     player.TrackInfo
		wantBody string
	}{
		{"artist and album", player.TrackInfo{Title: "Song", Artist: "Band", Album: "Record"}, "Band · Record"},
		{"artist only", player.TrackInfo{Title: "Song", Artist: "Band"}, "Band"},
		{"album only", player.TrackInfo{Title: "Song", Album: "Record"}, "Record"},
		{"title only", player.TrackInfo{Title: "Song"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NowPlaying(&tt.info, 5000, false)
			if n.Title != "Song" {
				t.Errorf("Title = %q, want %q", n.Title, "Song")
			}
			if n.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", n.Body, tt.wantBody)
			}
			if n.Urgency != UrgencyLow {
				t.Errorf("Urgency = %d, want UrgencyLow", n.Urgency)
			}
			if n.Timeout != 5000 {
				t.Errorf("Timeout = %d, want 5000", n.Timeout)
			}
		})
	}
}

func TestNowPlayingAlbumArt(t *testing.T) {
	dir := t.TempDir()
	track := writeFile(t, dir, "01-song.mp3")
	cover := writeFile(t, dir, "cover.jpg")
	info := &player.TrackInfo{Path: track, Title: "Song"}

	if got := NowPlaying(info, -1, true).Icon; got != cover {
		t.Errorf("Icon = %q, want %q", got, cover)
	}
	if got := NowPlaying(info, -1, false).Icon; got != "" {
		t.Errorf("Icon without art = %q, want empty", got)
	}
}

func TestDisabled(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(Notification{Title: "x"})
	if id != 0 || err != nil {
		t.Errorf("Notify() = %d, %v, want 0, nil", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
