// Package config loads fitbar's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/fitbar/internal/icons"
)

const appName = "fitbar"

// Layout debounce bounds.
const (
	DefaultDebounceDelay = 400 * time.Millisecond
	MinDebounceDelay     = 50 * time.Millisecond
	MaxDebounceDelay     = 5 * time.Second
)

// Player defaults.
const (
	DefaultVolume   = 0.8
	DefaultSeekStep = 5 * time.Second
)

// DefaultNotificationTimeout is how long a now-playing notification stays, in ms.
const DefaultNotificationTimeout = 5000

type Config struct {
	Icons  string       `koanf:"icons"` // "nerd", "unicode", or "none"
	MPRIS  *bool        `koanf:"mpris"` // media-key control over D-Bus (default: true)
	Layout LayoutConfig `koanf:"layout"`
	Player PlayerConfig `koanf:"player"`
	Log    LogConfig    `koanf:"log"`

	Notifications NotificationsConfig `koanf:"notifications"`

	paths []string
}

// LayoutConfig tunes the responsive control bar.
type LayoutConfig struct {
	DebounceDelay time.Duration `koanf:"debounce_delay"` // quiet period before a relayout
}

// PlayerConfig holds playback settings.
type PlayerConfig struct {
	Volume   *float64      `koanf:"volume"`    // 0.0-1.0 (default: 0.8)
	SeekStep time.Duration `koanf:"seek_step"` // default: 5s
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `koanf:"file"`  // empty means $XDG_STATE_HOME/fitbar/fitbar.log
	Level string `koanf:"level"` // debug, info, warn, error
}

// NotificationsConfig controls desktop notifications on track start.
type NotificationsConfig struct {
	Enabled      *bool `koanf:"enabled"`        // default: false
	ShowAlbumArt *bool `koanf:"show_album_art"` // default: true
	Timeout      int32 `koanf:"timeout"`        // ms, default: 5000
}

// Load reads the config files in priority order, last wins. A non-empty
// explicit path must exist; the default locations are optional.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")
	cfg := &Config{}

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.paths = append(cfg.paths, path)
	}

	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.paths = append(cfg.paths, path)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	return cfg, nil
}

// Default returns a config with no files loaded.
func Default() *Config {
	return &Config{}
}

// Paths returns the files that were loaded, in load order.
func (c *Config) Paths() []string {
	return c.paths
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/fitbar/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLayoutConfig returns the layout configuration with defaults applied.
// A zero delay means the default; others are clamped to the allowed range.
func (c *Config) GetLayoutConfig() LayoutConfig {
	cfg := c.Layout
	switch {
	case cfg.DebounceDelay <= 0:
		cfg.DebounceDelay = DefaultDebounceDelay
	case cfg.DebounceDelay < MinDebounceDelay:
		cfg.DebounceDelay = MinDebounceDelay
	case cfg.DebounceDelay > MaxDebounceDelay:
		cfg.DebounceDelay = MaxDebounceDelay
	}
	return cfg
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	volume := DefaultVolume
	if cfg.Volume != nil {
		volume = max(0, min(1, *cfg.Volume))
	}
	cfg.Volume = &volume
	if cfg.SeekStep <= 0 {
		cfg.SeekStep = DefaultSeekStep
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// MPRISEnabled reports whether fitbar registers as an MPRIS player.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetNotificationsConfig returns the notification settings with defaults applied.
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	cfg := c.Notifications
	if cfg.Enabled == nil {
		enabled := false
		cfg.Enabled = &enabled
	}
	if cfg.ShowAlbumArt == nil {
		art := true
		cfg.ShowAlbumArt = &art
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultNotificationTimeout
	}
	return cfg
}

// ErrInvalidIcons is returned by Validate for an unknown icon style.
var ErrInvalidIcons = errors.New("icons must be nerd, unicode or none")

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Icons != "" && !icons.Valid(c.Icons) {
		return fmt.Errorf("%w: %q", ErrInvalidIcons, c.Icons)
	}
	return nil
}
