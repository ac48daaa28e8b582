// Package scrollfx derives scroll-driven presentation state: sections
// revealed as they come into view, parallax offsets, the header background
// switch and card hover lift.
package scrollfx

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/page"
)

const (
	DefaultHeaderThreshold = 3
	DefaultRevealMargin    = 2
	DefaultRevealRatio     = 0.1
	ParallaxSpeed          = 0.5

	// FadeFrames is the number of frames a reveal fades in over.
	FadeFrames    = 6
	FadeFrameTime = 50 * time.Millisecond
)

// Card lift levels.
const (
	LiftNone    = 0
	LiftSettled = 1
	LiftHover   = 2
)

// Config tunes the effects.
type Config struct {
	// HeaderThreshold is the scroll offset in rows past which the header
	// counts as scrolled.
	HeaderThreshold int
	// RevealMargin shrinks the bottom of the viewport for reveal checks.
	RevealMargin int
	// RevealRatio is the visible fraction that reveals a section.
	RevealRatio float64
}

// FadeMsg advances running fade-ins by one frame.
type FadeMsg struct{}

// FadeCmd schedules the next fade frame.
func FadeCmd() tea.Cmd {
	return tea.Tick(FadeFrameTime, func(time.Time) tea.Msg {
		return FadeMsg{}
	})
}

// Controller holds effect state keyed by section or card id.
type Controller struct {
	cfg      Config
	fade     map[string]int // frames elapsed since reveal
	lift     map[string]int
	scrolled bool
}

// New creates a controller. Zero config fields take their defaults.
func New(cfg Config) *Controller {
	if cfg.HeaderThreshold <= 0 {
		cfg.HeaderThreshold = DefaultHeaderThreshold
	}
	if cfg.RevealMargin < 0 {
		cfg.RevealMargin = 0
	}
	if cfg.RevealRatio <= 0 {
		cfg.RevealRatio = DefaultRevealRatio
	}
	return &Controller{
		cfg:  cfg,
		fade: make(map[string]int),
		lift: make(map[string]int),
	}
}

// Observe reveals blocks that intersect the viewport enough and returns
// the ids revealed by this call. Revealed blocks stay revealed.
func (c *Controller) Observe(blocks []page.Block, offset, height int) []string {
	var revealed []string
	for _, b := range blocks {
		if b.ID == "" {
			continue
		}
		if _, ok := c.fade[b.ID]; ok {
			continue
		}
		if VisibleRatio(b, offset, height-c.cfg.RevealMargin) >= c.cfg.RevealRatio {
			c.fade[b.ID] = 0
			revealed = append(revealed, b.ID)
		}
	}
	return revealed
}

// Revealed reports whether id has come into view.
func (c *Controller) Revealed(id string) bool {
	_, ok := c.fade[id]
	return ok
}

// FadeProgress returns the fade-in progress of id from 0 to 1. Unrevealed
// ids are at 0.
func (c *Controller) FadeProgress(id string) float64 {
	frames, ok := c.fade[id]
	if !ok {
		return 0
	}
	return float64(min(frames, FadeFrames)) / FadeFrames
}

// Fading reports whether any reveal is still animating.
func (c *Controller) Fading() bool {
	for _, f := range c.fade {
		if f < FadeFrames {
			return true
		}
	}
	return false
}

// AdvanceFade moves every running fade one frame and reports whether any
// is still running.
func (c *Controller) AdvanceFade() bool {
	for id, f := range c.fade {
		if f < FadeFrames {
			c.fade[id] = f + 1
		}
	}
	return c.Fading()
}

// UpdateHeader recomputes the header state for scrollY and returns it.
func (c *Controller) UpdateHeader(scrollY int) bool {
	c.scrolled = scrollY > c.cfg.HeaderThreshold
	return c.scrolled
}

// HeaderScrolled reports the last computed header state.
func (c *Controller) HeaderScrolled() bool { return c.scrolled }

// Enter lifts a card under the pointer.
func (c *Controller) Enter(id string) { c.lift[id] = LiftHover }

// Leave settles a card the pointer left. Cards never entered stay flat.
func (c *Controller) Leave(id string) {
	if _, ok := c.lift[id]; ok {
		c.lift[id] = LiftSettled
	}
}

// Lift returns the lift level of a card.
func (c *Controller) Lift(id string) int { return c.lift[id] }

// Hovered reports whether the card is under the pointer.
func (c *Controller) Hovered(id string) bool { return c.lift[id] == LiftHover }

// Parallax returns the decorative offset for scrollY.
func Parallax(scrollY int) int {
	return int(math.Floor(float64(scrollY) * ParallaxSpeed))
}

// VisibleRatio returns the fraction of b's lines inside the viewport
// [offset, offset+height).
func VisibleRatio(b page.Block, offset, height int) float64 {
	if b.Height <= 0 || height <= 0 {
		return 0
	}
	top := max(b.Start, offset)
	bottom := min(b.End(), offset+height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(b.Height)
}
