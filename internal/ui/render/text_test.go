package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Hello World", "Hello World"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline removed", "line1\nline2", "line1line2"},
		{"escape removed", "a\x1bb", "ab"},
		{"non-breaking space replaced", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "ab\xffcd", "abcd"},
		{"cjk kept", "日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := lipgloss.Width(got); w > tt.maxWidth {
				t.Errorf("Truncate(%q, %d) width = %d", tt.input, tt.maxWidth, w)
			}
		})
	}
}

func TestClip(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abcdef") + "ghij"

	tests := []struct {
		name     string
		maxWidth int
		want     int
	}{
		{"fits", 20, 10},
		{"cut inside styled part", 3, 3},
		{"cut after styled part", 8, 8},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(Clip(styled, tt.maxWidth)); got != tt.want {
				t.Errorf("Clip width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"spread", "ab", "cd", 8, "ab    cd"},
		{"tight", "ab", "cd", 5, "ab cd"},
		{"clipped", "abc", "def", 5, "abc d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Row(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("Row(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Errorf("Pad() = %q, want %q", got, "ab  ")
	}
	if got := Pad("abcd", 2); got != "abcd" {
		t.Errorf("Pad() = %q, want %q", got, "abcd")
	}
}
