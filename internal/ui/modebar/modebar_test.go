package modebar

import (
	"strings"
	"testing"

	"github.com/llehouerou/fitbar/internal/ui/layout"
	"github.com/llehouerou/fitbar/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		mode    layout.Mode
		wantTag string
	}{
		{"tiny", layout.Tiny, "[tiny]"},
		{"x-small", layout.ExtraSmall, "[x-small]"},
		{"small", layout.Small, "[small]"},
		{"default", layout.Default, "[default]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.mode, 80))
			if !strings.Contains(got, tt.wantTag) {
				t.Errorf("Render(%v) = %q, want it to contain %q", tt.mode, got, tt.wantTag)
			}
			if strings.Count(got, "[") != 1 {
				t.Errorf("Render(%v) = %q, want exactly one active mode", tt.mode, got)
			}
		})
	}
}

func TestRenderOrder(t *testing.T) {
	got := testutil.StripANSI(Render(layout.Small, 80))
	if strings.Index(got, "tiny") > strings.Index(got, "default") {
		t.Errorf("Render() = %q, want compact modes first", got)
	}
}

func TestRenderCentered(t *testing.T) {
	got := testutil.StripANSI(Render(layout.Default, 80))
	content := strings.TrimLeft(got, " ")
	pad := len(got) - len(content)
	want := (80 - testutil.MeasureWidth(content)) / 2
	if pad != want {
		t.Errorf("left padding = %d, want %d", pad, want)
	}
}

func TestRenderNarrow(t *testing.T) {
	for _, w := range []int{0, 10, minWidth - 1, 30} {
		got := Render(layout.Default, w)
		if w < minWidth && got != "" {
			t.Errorf("Render(width=%d) = %q, want empty", w, got)
		}
		if testutil.MeasureWidth(got) > w {
			t.Errorf("Render(width=%d) is %d wide", w, testutil.MeasureWidth(got))
		}
	}
}
