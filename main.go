package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/fitbar/internal/app"
	"github.com/llehouerou/fitbar/internal/config"
	"github.com/llehouerou/fitbar/internal/errmsg"
	"github.com/llehouerou/fitbar/internal/icons"
	"github.com/llehouerou/fitbar/internal/logging"
	"github.com/llehouerou/fitbar/internal/mpris"
	"github.com/llehouerou/fitbar/internal/notify"
	"github.com/llehouerou/fitbar/internal/player"
	"github.com/llehouerou/fitbar/internal/stderr"
	"github.com/llehouerou/fitbar/internal/ui/layout"
)

// version is injected via ldflags at build time.
var version = "dev"

const configWatchDelay = 200 * time.Millisecond

type rootFlags struct {
	configPath string
	debounce   time.Duration
	icons      string
	mode       string
	verbose    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:          "fitbar [files...]",
		Short:        "Terminal audio player with a control bar that fits its width",
		Version:      version,
		SilenceUsage: true,
		Args:         validateFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file loaded after the default locations")
	cmd.Flags().DurationVar(&f.debounce, "debounce", 0, "quiet period before the control bar is re-laid out (default from config, 400ms)")
	cmd.Flags().StringVar(&f.icons, "icons", "", "icon style: nerd, unicode or none")
	cmd.Flags().StringVar(&f.mode, "mode", "", "pin the control bar to one mode: tiny, x-small, small or default")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func validateFiles(_ *cobra.Command, args []string) error {
	for _, path := range args {
		if !player.IsMusicFile(path) {
			return fmt.Errorf("%s: unsupported format (mp3, flac, wav)", path)
		}
		if _, err := os.Stat(path); err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, f rootFlags, files []string) error {
	if f.icons != "" && !icons.Valid(f.icons) {
		return fmt.Errorf("%w: %q", config.ErrInvalidIcons, f.icons)
	}
	var pin *layout.Mode
	if f.mode != "" {
		mode, err := layout.ParseMode(f.mode)
		if err != nil {
			return err
		}
		pin = &mode
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if err := cfg.Validate(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logCfg := cfg.GetLogConfig()
	level, err := logging.ParseLevel(logCfg.Level)
	if err != nil {
		return err
	}
	if f.verbose {
		level = log.DebugLevel
	}
	logger, logFile, err := logging.Open(logCfg.File, level)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()
	ctx = logging.WithLogger(ctx, logger)
	logger.Info("starting", "version", version, "files", len(files), "config", cfg.Paths())

	p := player.New(*cfg.GetPlayerConfig().Volume)
	defer p.Stop()

	notifier, err := notify.New()
	if err != nil {
		logger.Warn("notifications unavailable", "err", err)
		notifier = notify.Disabled()
	}

	var remote app.Remote
	if cfg.MPRISEnabled() {
		adapter, err := mpris.New()
		if err != nil {
			logger.Warn("mpris unavailable", "err", err)
		} else {
			defer adapter.Close()
			remote = adapter
		}
	}

	model := app.New(app.Options{
		Config:        cfg,
		ConfigPath:    f.configPath,
		Player:        p,
		Files:         files,
		Logger:        logger,
		Notifier:      notifier,
		Remote:        remote,
		DebounceDelay: f.debounce,
		Icons:         f.icons,
		PinMode:       pin,
	})
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Audio back-ends write to fd 2 once the speaker opens; keep that off the TUI.
	if err := stderr.Start(func(line string) { prog.Send(app.StderrMsg{Line: line}) }); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go watchConfig(watchCtx, cfg.Paths(), prog)

	final, err := prog.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func watchConfig(ctx context.Context, paths []string, prog *tea.Program) {
	logger := logging.FromContext(ctx)
	err := config.Watch(ctx, paths, configWatchDelay, func() {
		prog.Send(app.ConfigChangedMsg{})
	})
	if err != nil {
		logger.Error(errmsg.Format(errmsg.OpConfigWatch, err))
	}
}
