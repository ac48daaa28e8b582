// Package theme tracks the light/dark display mode and persists it.
package theme

import (
	"log/slog"
)

// PreferenceKey is the preference the mode is stored under.
const PreferenceKey = "theme"

// Mode is the page color mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode maps a stored value to a Mode. Anything but "dark" is light.
func ParseMode(s string) Mode {
	if Mode(s) == Dark {
		return Dark
	}
	return Light
}

// Icon is the toggle indicator glyph.
type Icon int

const (
	// IconMoon is shown in light mode (switch to dark).
	IconMoon Icon = iota
	// IconSun is shown in dark mode (switch to light).
	IconSun
)

// Store persists preferences. state.Manager satisfies it.
type Store interface {
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
}

// Controller owns the current mode.
type Controller struct {
	store  Store
	logger *slog.Logger
	mode   Mode
	icon   Icon
}

// New creates a controller in light mode. Call Initialize to load the
// stored preference.
func New(store Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{store: store, logger: logger}
	c.apply(Light)
	return c
}

// Initialize applies the stored mode, defaulting to light when nothing is
// stored or the store fails.
func (c *Controller) Initialize() Mode {
	mode := Light
	if c.store != nil {
		value, ok, err := c.store.GetPreference(PreferenceKey)
		switch {
		case err != nil:
			c.logger.Warn("read theme preference", "error", err)
		case ok:
			mode = ParseMode(value)
		}
	}
	c.apply(mode)
	return mode
}

// Toggle flips the mode and persists it. A failed write is logged and the
// new mode still applies.
func (c *Controller) Toggle() Mode {
	next := c.mode.Other()
	c.apply(next)
	if c.store != nil {
		if err := c.store.SetPreference(PreferenceKey, string(next)); err != nil {
			c.logger.Warn("save theme preference", "error", err, "mode", next)
		}
	}
	return next
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Icon returns the indicator for the current mode.
func (c *Controller) Icon() Icon { return c.icon }

// Attribute is the document mode attribute, "light" or "dark".
func (c *Controller) Attribute() string { return string(c.mode) }

func (c *Controller) apply(mode Mode) {
	c.mode = mode
	if mode == Dark {
		c.icon = IconSun
	} else {
		c.icon = IconMoon
	}
}
