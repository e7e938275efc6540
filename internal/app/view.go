package app

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/fitbar/internal/ui/layout"
	"github.com/llehouerou/fitbar/internal/ui/modebar"
	"github.com/llehouerou/fitbar/internal/ui/render"
	"github.com/llehouerou/fitbar/internal/ui/styles"
)

const appTitle = "fitbar"

// debugLines is the height of the debug section: mode ladder and stats.
const debugLines = modebar.Height + 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	sections := []string{m.renderHeader()}

	debugHeight := 0
	if m.ShowDebug {
		debugHeight = debugLines
	}
	statusHeight := 0
	if m.ErrorMsg != "" {
		statusHeight = 1
	}
	contentHeight := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:     1,
		ControlBarHeight: m.Bar.Height(),
		StatusHeight:     statusHeight,
		DebugHeight:      debugHeight,
	})
	sections = append(sections, m.renderContent(contentHeight))

	if statusHeight > 0 {
		sections = append(sections, styles.T().S().Error.Render(render.Truncate(m.ErrorMsg, m.Width)))
	}
	if m.ShowDebug {
		sections = append(sections, m.renderDebug())
	}
	sections = append(sections, m.Bar.View())
	return strings.Join(sections, "\n")
}

// renderHeader shows the app name and the current file with its size.
func (m Model) renderHeader() string {
	t := styles.T().S()
	left := t.Title.Render(appTitle)

	var right string
	if info := m.Player.TrackInfo(); info != nil {
		parts := []string{filepath.Base(info.Path)}
		if info.Size > 0 {
			parts = append(parts, humanize.IBytes(uint64(info.Size)))
		}
		if info.Format != "" {
			parts = append(parts, info.Format)
		}
		if m.Queue.Len() > 1 {
			parts = append(parts, strconv.Itoa(m.Queue.CurrentIndex()+1)+"/"+strconv.Itoa(m.Queue.Len()))
		}
		right = t.Muted.Render(render.Sanitize(strings.Join(parts, " · ")))
	}
	return render.Row(left, right, m.Width)
}

// renderContent fills the area between header and control bar.
func (m Model) renderContent(height int) string {
	var lines []string
	if m.ShowHelp {
		lines = strings.Split(m.Help.View(m.HelpKeys), "\n")
	} else {
		lines = m.trackLines()
	}

	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = render.Clip(lines[i], m.Width)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) trackLines() []string {
	t := styles.T().S()
	info := m.Player.TrackInfo()
	if info == nil {
		if m.Queue.Len() == 0 {
			return []string{"", t.Muted.Render("  Nothing to play. Pass audio files on the command line."), "", m.Help.View(m.HelpKeys)}
		}
		return []string{"", t.Muted.Render("  Stopped. Press space to play."), "", m.Help.View(m.HelpKeys)}
	}

	lines := []string{"", "  " + t.Title.Render(render.Sanitize(info.Title))}
	if info.Artist != "" {
		lines = append(lines, "  "+t.Base.Render(render.Sanitize(info.Artist)))
	}
	var album []string
	if info.Album != "" {
		album = append(album, render.Sanitize(info.Album))
	}
	if info.Year > 0 {
		album = append(album, strconv.Itoa(info.Year))
	}
	if len(album) > 0 {
		lines = append(lines, "  "+t.Muted.Render(strings.Join(album, " · ")))
	}
	if info.SampleRate > 0 {
		lines = append(lines, "  "+t.Subtle.Render(fmt.Sprintf("%s %.1f kHz", info.Format, float64(info.SampleRate)/1000)))
	}
	return append(lines, "", m.Help.View(m.HelpKeys))
}

// renderDebug shows the mode ladder and the layouter's view of the bar.
func (m Model) renderDebug() string {
	d, g := m.Layouter.Last()
	pending := ""
	if m.Layouter.Pending() {
		pending = " pending"
	}
	mode := m.Layouter.Mode().String()
	if m.pinned {
		mode += " pinned"
	}
	line := fmt.Sprintf("mode=%s rule=%s %s cycles=%d changes=%d%s",
		mode, d.Rule, g, m.Layouter.Cycles(), m.Relayouts.Count, pending)

	style := styles.T().S().Subtle
	if g.ControlBarWidth > g.PlayerWidth {
		style = styles.T().S().Warning
	}
	return modebar.Render(m.Layouter.Mode(), m.Width) + "\n" + style.Render(render.Truncate(line, m.Width))
}
