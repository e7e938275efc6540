package layout

import "testing"

func TestStepUpDown(t *testing.T) {
	tests := []struct {
		mode     Mode
		wantUp   Mode
		wantDown Mode
	}{
		{Tiny, ExtraSmall, Tiny},
		{ExtraSmall, Small, Tiny},
		{Small, Default, ExtraSmall},
		{Default, Default, Small},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := StepUp(tt.mode); got != tt.wantUp {
				t.Errorf("StepUp(%s) = %s, want %s", tt.mode, got, tt.wantUp)
			}
			if got := StepDown(tt.mode); got != tt.wantDown {
				t.Errorf("StepDown(%s) = %s, want %s", tt.mode, got, tt.wantDown)
			}
		})
	}
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name    string
		geom    Geometry
		current Mode
		want    Mode
		rule    Rule
	}{
		{
			name:    "overflow shrinks default",
			geom:    Geometry{PlayerWidth: 300, ControlBarWidth: 320, ControlWidth: 40, ProgressWidth: 50},
			current: Default,
			want:    Small,
			rule:    RuleOverflow,
		},
		{
			name:    "stretched progress grows small",
			geom:    Geometry{PlayerWidth: 300, ControlBarWidth: 200, ControlWidth: 30, ProgressWidth: 70},
			current: Small,
			want:    Default,
			rule:    RuleProgressStretch,
		},
		{
			name:    "slack at default saturates",
			geom:    Geometry{PlayerWidth: 500, ControlBarWidth: 200, ControlWidth: 40},
			current: Default,
			want:    Default,
			rule:    RuleSlack,
		},
		{
			name:    "slack grows tiny",
			geom:    Geometry{PlayerWidth: 500, ControlBarWidth: 100, ControlWidth: 40},
			current: Tiny,
			want:    ExtraSmall,
			rule:    RuleSlack,
		},
		{
			name:    "overflow at tiny stays tiny",
			geom:    Geometry{PlayerWidth: 10, ControlBarWidth: 40, ControlWidth: 5},
			current: Tiny,
			want:    Tiny,
			rule:    RuleOverflow,
		},
		{
			name:    "overflow wins over stretched progress",
			geom:    Geometry{PlayerWidth: 100, ControlBarWidth: 101, ControlWidth: 3, ProgressWidth: 60},
			current: Small,
			want:    ExtraSmall,
			rule:    RuleOverflow,
		},
		{
			name:    "progress exactly twice control does not grow",
			geom:    Geometry{PlayerWidth: 100, ControlBarWidth: 100, ControlWidth: 5, ProgressWidth: 10},
			current: ExtraSmall,
			want:    ExtraSmall,
			rule:    RuleNone,
		},
		{
			name:    "slack ignored in cramped modes",
			geom:    Geometry{PlayerWidth: 100, ControlBarWidth: 20, ControlWidth: 5, ProgressWidth: 4},
			current: Small,
			want:    Small,
			rule:    RuleNone,
		},
		{
			name:    "progress rule never applies to tiny",
			geom:    Geometry{PlayerWidth: 50, ControlBarWidth: 48, ControlWidth: 3, ProgressWidth: 40},
			current: Tiny,
			want:    Tiny,
			rule:    RuleNone,
		},
		{
			name:    "exact fit without slack is stable",
			geom:    Geometry{PlayerWidth: 80, ControlBarWidth: 80, ControlWidth: 3, ProgressWidth: 4},
			current: Default,
			want:    Default,
			rule:    RuleNone,
		},
		{
			name:    "missing measurements count as zero",
			geom:    Geometry{PlayerWidth: 40},
			current: Tiny,
			want:    ExtraSmall,
			rule:    RuleSlack,
		},
		{
			name:    "negative widths are clamped",
			geom:    Geometry{PlayerWidth: -5, ControlBarWidth: -10, ControlWidth: -1, ProgressWidth: -3},
			current: Small,
			want:    Small,
			rule:    RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.geom, tt.current)
			if d.Mode != tt.want {
				t.Errorf("Decide().Mode = %s, want %s", d.Mode, tt.want)
			}
			if d.Rule != tt.rule {
				t.Errorf("Decide().Rule = %s, want %s", d.Rule, tt.rule)
			}
			if got := Evaluate(tt.geom, tt.current); got != d.Mode {
				t.Errorf("Evaluate() = %s, Decide().Mode = %s", got, d.Mode)
			}
		})
	}
}

// geometries enumerates a grid of small widths covering every rule boundary.
func geometries() []Geometry {
	values := []int{0, 1, 2, 3, 5, 8, 10, 20}
	var out []Geometry
	for _, p := range values {
		for _, b := range values {
			for _, c := range values {
				for _, pr := range values {
					out = append(out, Geometry{
						PlayerWidth:     p,
						ControlBarWidth: b,
						ControlWidth:    c,
						ProgressWidth:   pr,
					})
				}
			}
		}
	}
	return out
}

func TestEvaluateProperties(t *testing.T) {
	for _, g := range geometries() {
		for _, m := range Modes() {
			got := Evaluate(g, m)

			if diff := int(got) - int(m); diff < -1 || diff > 1 {
				t.Fatalf("Evaluate(%v, %s) = %s: moved more than one step", g, m, got)
			}

			switch {
			case g.ControlBarWidth > g.PlayerWidth:
				if got != StepDown(m) {
					t.Fatalf("overflow: Evaluate(%v, %s) = %s, want %s", g, m, got, StepDown(m))
				}
			case m.IsCramped() && g.ProgressWidth > 2*g.ControlWidth:
				if got != StepUp(m) {
					t.Fatalf("progress: Evaluate(%v, %s) = %s, want %s", g, m, got, StepUp(m))
				}
			case !m.IsCramped() && g.PlayerWidth > g.ControlBarWidth+g.ControlWidth:
				if got != StepUp(m) {
					t.Fatalf("slack: Evaluate(%v, %s) = %s, want %s", g, m, got, StepUp(m))
				}
			default:
				if got != m {
					t.Fatalf("Evaluate(%v, %s) = %s, want no change", g, m, got)
				}
			}

			if Evaluate(g, m) != got {
				t.Fatalf("Evaluate(%v, %s) is not deterministic", g, m)
			}
		}
	}
}

func TestDecisionChanged(t *testing.T) {
	if (Decision{From: Small, Mode: Small}).Changed() {
		t.Error("same mode reported as changed")
	}
	if !(Decision{From: Small, Mode: Default}).Changed() {
		t.Error("different mode not reported as changed")
	}
}
