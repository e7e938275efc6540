package player

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// createMinimalMP3 writes an MPEG1 Layer3 frame header plus padding.
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90

	if err := os.WriteFile(path, frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.wav", true},
		{"song.ogg", false},
		{"song.txt", false},
		{"song", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadTrackInfo_FallsBackToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "01 - Intro.mp3")
	createMinimalMP3(t, path)

	info := ReadTrackInfo(path)
	if info.Title != "01 - Intro" {
		t.Errorf("Title = %q, want %q", info.Title, "01 - Intro")
	}
	if info.Format != "MP3" {
		t.Errorf("Format = %q, want MP3", info.Format)
	}
	if info.Size != 417 {
		t.Errorf("Size = %d, want 417", info.Size)
	}
}

func TestReadTrackInfo_MissingFile(t *testing.T) {
	info := ReadTrackInfo("/nonexistent/track.flac")
	if info == nil {
		t.Fatal("ReadTrackInfo returned nil")
	}
	if info.Title != "track" || info.Size != 0 {
		t.Errorf("got %+v, want title fallback and zero size", info)
	}
}

func TestSkipID3v2(t *testing.T) {
	payload := []byte("fLaC-data")

	t.Run("with tag", func(t *testing.T) {
		// 10-byte header declaring a 5-byte body
		data := append([]byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5}, make([]byte, 5)...)
		data = append(data, payload...)
		r := bytes.NewReader(data)

		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		rest, _ := io.ReadAll(r)
		if !bytes.Equal(rest, payload) {
			t.Errorf("remaining = %q, want %q", rest, payload)
		}
	})

	t.Run("without tag", func(t *testing.T) {
		r := bytes.NewReader(payload)
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		rest, _ := io.ReadAll(r)
		if !bytes.Equal(rest, payload) {
			t.Errorf("remaining = %q, want %q", rest, payload)
		}
	})

	t.Run("short input", func(t *testing.T) {
		r := bytes.NewReader([]byte("ID"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		if pos, _ := r.Seek(0, io.SeekCurrent); pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})
}

func TestFindCover(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "track.flac")
	touch := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte{}, 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}
	touch("track.flac")

	if got := FindCover(track); got != "" {
		t.Errorf("FindCover() = %q, want empty", got)
	}

	touch("folder.png")
	cover := touch("cover.jpg")
	if got := FindCover(track); got != cover {
		t.Errorf("FindCover() = %q, want %q (higher priority)", got, cover)
	}

	if got := FindCover(""); got != "" {
		t.Errorf("FindCover(\"\") = %q, want empty", got)
	}
}
