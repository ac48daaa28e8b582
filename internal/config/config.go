package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: SHOWCASE_SCROLL__DEBOUNCE_MS sets scroll.debounce_ms.
const EnvPrefix = "SHOWCASE_"

type Config struct {
	Page    string `koanf:"page"`     // page file, empty for the built-in page
	Icons   string `koanf:"icons"`    // "nerd", "unicode", or "none"
	LogFile string `koanf:"log_file"` // diagnostics and tracked events

	Notifications NotificationsConfig `koanf:"notifications"`
	Scroll        ScrollConfig        `koanf:"scroll"`
	Media         MediaConfig         `koanf:"media"`
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Desktop *bool `koanf:"desktop"` // mirror error notices to D-Bus (default: true)
}

// ScrollConfig tunes scroll effects.
type ScrollConfig struct {
	DebounceMS      int  `koanf:"debounce_ms"`      // header handler debounce (default: 10)
	HeaderThreshold int  `koanf:"header_threshold"` // rows before the header counts as scrolled (default: 3)
	RevealMargin    *int `koanf:"reveal_margin"`    // bottom viewport margin for reveals (default: 2)
}

// MediaConfig tunes the transport controls.
type MediaConfig struct {
	SeekStepSeconds int `koanf:"seek_step_seconds"` // arrow key seek step (default: 10)
}

// Load reads the config file at path, or the default locations when path
// is empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("reading config %s: %w", p, err)
				}
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Page = expandPath(cfg.Page)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/showcase/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "showcase", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DesktopNotifications reports whether error notices go to D-Bus.
func (c *Config) DesktopNotifications() bool {
	return c.Notifications.Desktop == nil || *c.Notifications.Desktop
}

// ScrollDebounce returns the header handler debounce delay.
func (c *Config) ScrollDebounce() time.Duration {
	if c.Scroll.DebounceMS <= 0 {
		return 10 * time.Millisecond
	}
	return time.Duration(c.Scroll.DebounceMS) * time.Millisecond
}

// HeaderThreshold returns the scrolled-header threshold in rows.
func (c *Config) HeaderThreshold() int {
	if c.Scroll.HeaderThreshold <= 0 {
		return 3
	}
	return c.Scroll.HeaderThreshold
}

// RevealMargin returns the bottom margin used by reveal checks.
func (c *Config) RevealMargin() int {
	if c.Scroll.RevealMargin == nil || *c.Scroll.RevealMargin < 0 {
		return 2
	}
	return *c.Scroll.RevealMargin
}

// SeekStep returns the arrow key seek step.
func (c *Config) SeekStep() time.Duration {
	if c.Media.SeekStepSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Media.SeekStepSeconds) * time.Second
}
