package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/fitbar/internal/config"
	"github.com/llehouerou/fitbar/internal/icons"
	"github.com/llehouerou/fitbar/internal/keymap"
	"github.com/llehouerou/fitbar/internal/logging"
	"github.com/llehouerou/fitbar/internal/notify"
	"github.com/llehouerou/fitbar/internal/player"
	"github.com/llehouerou/fitbar/internal/responsive"
	"github.com/llehouerou/fitbar/internal/ui/controlbar"
	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// Options configures a new Model.
type Options struct {
	Config     *config.Config
	ConfigPath string // explicit --config path, reused on reload
	Player     player.Interface
	Files      []string
	Logger     *log.Logger
	Notifier   notify.Notifier // nil disables now-playing notifications
	Remote     Remote          // nil disables remote control

	// Command-line overrides; zero values defer to the config.
	DebounceDelay time.Duration
	Icons         string
	// PinMode, when set, holds the control bar in one mode instead of
	// following the terminal width.
	PinMode *layout.Mode
}

// Model is the root application model containing all state.
type Model struct {
	Player    player.Interface
	Bar       *controlbar.Model
	Layouter  *responsive.Layouter
	Relayouts *RelayoutLog
	Keys      *keymap.Resolver
	Help      help.Model
	HelpKeys  keymap.Help
	Queue     *Queue
	Config    *config.Config
	Logger    *log.Logger
	ShowDebug bool
	ShowHelp  bool
	ErrorMsg  string
	Width     int
	Height    int

	configPath string
	overrides  Options
	pinned     bool
	notifier   notify.Notifier
	notifyID   uint32
	remote     Remote
}

// RelayoutLog records mode changes reported by the layouter.
type RelayoutLog struct {
	Count int
	Last  responsive.RelayoutEvent
}

func (r *RelayoutLog) record(ev responsive.RelayoutEvent) {
	r.Count++
	r.Last = ev
}

// New creates the application model. The player must not be nil.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}

	bar := controlbar.New()
	m := Model{
		Player:     opts.Player,
		Bar:        bar,
		Relayouts:  &RelayoutLog{},
		Keys:       keymap.NewResolver(keymap.All),
		Help:       help.New(),
		HelpKeys:   keymap.NewHelp(keymap.All),
		Queue:      NewQueue(opts.Files),
		Config:     cfg,
		Logger:     logger,
		configPath: opts.ConfigPath,
		overrides:  opts,
		notifier:   notifier,
		remote:     opts.Remote,
		pinned:     opts.PinMode != nil,
	}

	layoutOpts := responsive.Options{
		DebounceDelay: m.debounceDelay(),
		Logger:        logger.WithPrefix("layout"),
	}
	if opts.PinMode != nil {
		layoutOpts.UpdateLayout = pinLayout(*opts.PinMode)
	}
	m.Layouter = responsive.New(bar, layoutOpts)
	m.Layouter.OnRelayout(m.Relayouts.record)

	// Skipping only makes sense with more than one file queued.
	m.Keys.SetEnabled(keymap.ActionNextTrack, m.Queue.Len() > 1)
	m.Keys.SetEnabled(keymap.ActionPrevTrack, m.Queue.Len() > 1)

	icons.Init(m.iconStyle())
	m.Player.SetVolume(*cfg.GetPlayerConfig().Volume)
	m.Bar.SetState(controlbar.NewState(m.Player))
	return m
}

// Init implements tea.Model. The layouter starts on the first window size,
// when the bar can be measured.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		WatchPlayer(m.Player.Events()),
		TickCmd(),
	}
	if m.remote != nil {
		cmds = append(cmds, WatchRemote(m.remote.Commands()))
	}
	if m.Queue.Len() > 0 {
		cmds = append(cmds, startPlaybackCmd)
	}
	return tea.Batch(cmds...)
}

// Shutdown stops layout cycles and playback. Calling it again does nothing.
func (m Model) Shutdown() {
	if m.Layouter.Closed() {
		return
	}
	m.Layouter.Close()
	m.Player.Stop()
}

// pinLayout replaces the evaluator with one that always picks mode.
func pinLayout(mode layout.Mode) responsive.UpdateFunc {
	return func(l *responsive.Layouter, _ layout.Geometry) {
		l.SetMode(mode)
	}
}

func (m Model) debounceDelay() time.Duration {
	if m.overrides.DebounceDelay > 0 {
		return m.overrides.DebounceDelay
	}
	return m.Config.GetLayoutConfig().DebounceDelay
}

func (m Model) iconStyle() string {
	if m.overrides.Icons != "" {
		return m.overrides.Icons
	}
	return m.Config.Icons
}

func (m Model) seekStep() time.Duration {
	return m.Config.GetPlayerConfig().SeekStep
}
