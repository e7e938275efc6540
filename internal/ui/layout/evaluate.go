package layout

import "fmt"

// Geometry is a snapshot of the widths the evaluator works with, in cells.
// Outer widths include horizontal margins.
type Geometry struct {
	PlayerWidth     int // width of the whole player
	ControlBarWidth int // sum of visible control bar children
	ControlWidth    int // reference control (play/pause)
	ProgressWidth   int // progress control
}

// String formats the geometry for logs and the debug line.
func (g Geometry) String() string {
	return fmt.Sprintf("player=%d bar=%d control=%d progress=%d",
		g.PlayerWidth, g.ControlBarWidth, g.ControlWidth, g.ProgressWidth)
}

// normalized clamps negative widths to zero.
func (g Geometry) normalized() Geometry {
	return Geometry{
		PlayerWidth:     max(g.PlayerWidth, 0),
		ControlBarWidth: max(g.ControlBarWidth, 0),
		ControlWidth:    max(g.ControlWidth, 0),
		ProgressWidth:   max(g.ProgressWidth, 0),
	}
}

// Rule identifies which evaluation rule produced a decision.
type Rule int

const (
	RuleNone            Rule = iota // no rule matched
	RuleOverflow                    // controls wider than the player
	RuleProgressStretch             // progress bar has room to spare
	RuleSlack                       // free space of at least one control
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleOverflow:
		return "overflow"
	case RuleProgressStretch:
		return "progress-stretch"
	case RuleSlack:
		return "slack"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one evaluation.
type Decision struct {
	From Mode
	Mode Mode
	Rule Rule
}

// Changed reports whether the decision moves to a different mode.
func (d Decision) Changed() bool {
	return d.From != d.Mode
}

// Decide picks the next mode for the given geometry. Rules are checked in
// priority order and the first match wins:
//
//  1. overflow: the control bar is wider than the player, step down.
//  2. progress-stretch: in x-small or small, the progress bar is more than
//     twice the reference control, step up.
//  3. slack: in tiny or default, the player has room for one more control
//     beyond the bar, step up.
//
// The result is never more than one step away from current.
func Decide(g Geometry, current Mode) Decision {
	g = g.normalized()
	d := Decision{From: current, Mode: current, Rule: RuleNone}

	switch {
	case g.ControlBarWidth > g.PlayerWidth:
		d.Mode, d.Rule = StepDown(current), RuleOverflow
	case current.IsCramped() && g.ProgressWidth > 2*g.ControlWidth:
		d.Mode, d.Rule = StepUp(current), RuleProgressStretch
	case g.PlayerWidth > g.ControlBarWidth+g.ControlWidth && !current.IsCramped():
		d.Mode, d.Rule = StepUp(current), RuleSlack
	}
	return d
}

// Evaluate returns the next mode for the given geometry and current mode.
func Evaluate(g Geometry, current Mode) Mode {
	return Decide(g, current).Mode
}
