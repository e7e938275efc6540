package layout

// Control bar chrome: rounded border on both sides plus one cell of padding.
const (
	BarBorderWidth  = 2
	BarPaddingWidth = 2
	BarHeight       = 3 // top border + controls + bottom border
)

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight     int
	ControlBarHeight int // always BarHeight; the bar is shown even when idle
	StatusHeight     int // 0 if there is no status message
	DebugHeight      int // 0 if the debug section is hidden
}

// ContentHeight calculates the available height for the main content area.
// This is the terminal height minus header, status, debug line and control bar.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.ControlBarHeight
	height -= opts.StatusHeight
	height -= opts.DebugHeight
	return max(height, 0)
}

// BarInnerWidth returns the width left for controls inside the bar chrome.
// This is the player width the evaluator compares the controls against.
func BarInnerWidth(windowWidth int) int {
	return max(windowWidth-BarBorderWidth-BarPaddingWidth, 0)
}
