package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fitbar/internal/debounce"
	"github.com/llehouerou/fitbar/internal/errmsg"
	"github.com/llehouerou/fitbar/internal/icons"
	"github.com/llehouerou/fitbar/internal/player"
	"github.com/llehouerou/fitbar/internal/responsive"
	"github.com/llehouerou/fitbar/internal/ui/controlbar"
)

// Update handles messages and returns updated model and commands.
// The control bar state is refreshed after every message so the layouter
// always measures what the next frame will show.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.Bar.SetState(controlbar.NewState(next.Player))
	next.publish()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Bar.SetWidth(msg.Width)
		m.Help.Width = msg.Width
		if !m.Layouter.Started() {
			return m, m.Layouter.Init()
		}
		return m, m.Layouter.Update(msg)

	case responsive.PlayStartedMsg, responsive.RelayoutRequestMsg, debounce.FireMsg:
		return m, m.Layouter.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m, TickCmd()

	case StartPlaybackMsg:
		cmd := m.playCurrent()
		return m, cmd

	case PlayerEventMsg:
		return m.handlePlayerEvent(msg.Event)

	case PlayerClosedMsg:
		return m, nil

	case ConfigChangedMsg:
		return m, LoadConfigCmd(m.configPath)

	case ConfigLoadedMsg:
		return m.handleConfigLoaded(msg)

	case RemoteCommandMsg:
		return m.handleRemote(msg.Command)

	case NotifiedMsg:
		if msg.Err != nil {
			m.Logger.Warn("notification failed", "err", msg.Err)
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil

	case StderrMsg:
		m.Logger.Warn("captured stderr", "line", msg.Line)
		return m, nil
	}
	return m, nil
}

// handlePlayerEvent reacts to playback events and keeps watching the player.
func (m Model) handlePlayerEvent(ev player.Event) (Model, tea.Cmd) {
	m.Logger.Debug("player event", "kind", ev.Kind, "path", ev.Path)
	watch := WatchPlayer(m.Player.Events())

	switch ev.Kind {
	case player.EventStarted:
		return m, tea.Batch(
			watch,
			func() tea.Msg { return responsive.PlayStartedMsg{} },
			m.nowPlayingCmd(),
		)
	case player.EventFinished:
		cmd := m.advance()
		return m, tea.Batch(watch, cmd)
	default:
		return m, watch
	}
}

// handleConfigLoaded applies a reloaded config and asks for a relayout,
// since the icon set and debounce delay may have changed.
func (m Model) handleConfigLoaded(msg ConfigLoadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpConfigLoad, msg.Err)
		m.Logger.Error("config reload failed", "err", msg.Err)
		return m, nil
	}

	m.Config = msg.Config
	m.ErrorMsg = ""
	m.Layouter.SetDebounceDelay(m.debounceDelay())
	icons.Init(m.iconStyle())
	m.Logger.Info("config reloaded", "debounce", m.Layouter.DebounceDelay(), "icons", m.iconStyle())
	return m, func() tea.Msg { return responsive.RelayoutRequestMsg{} }
}
