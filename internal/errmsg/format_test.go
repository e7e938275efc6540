package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 2: expected value"),
			expected: "Failed to load config: toml: line 2: expected value",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpConfigWatch,
			err:      errors.Join(errors.New("inotify"), errors.New("too many watches")),
			expected: "Failed to watch config: inotify\ntoo many watches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileLoad,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpFileLoad,
			context:  "song.mp3",
			err:      errors.New("unsupported format: .ogg"),
			expected: "Failed to load file 'song.mp3': unsupported format: .ogg",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLogOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open log file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
