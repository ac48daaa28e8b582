package nav

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// ScrollDuration is the length of a smooth scroll.
	ScrollDuration = 300 * time.Millisecond
	// FrameInterval is the animation frame period.
	FrameInterval = 16 * time.Millisecond
)

// FrameMsg advances a running scroll animation.
type FrameMsg struct{}

// FrameCmd schedules the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// Scroller interpolates a scroll offset with ease-in-out timing.
type Scroller struct {
	from, to int
	frame    int
	frames   int
	active   bool
}

// Start begins an animation from one offset to another.
func (s *Scroller) Start(from, to int) {
	s.from = from
	s.to = to
	s.frame = 0
	s.frames = int(math.Ceil(float64(ScrollDuration) / float64(FrameInterval)))
	s.active = from != to
}

// Active reports whether the animation has frames left.
func (s *Scroller) Active() bool { return s.active }

// Target returns the final offset.
func (s *Scroller) Target() int { return s.to }

// Stop ends the animation.
func (s *Scroller) Stop() { s.active = false }

// Step returns the offset for the next frame. The last frame lands exactly
// on the target.
func (s *Scroller) Step() (offset int, done bool) {
	if !s.active {
		return s.to, true
	}
	s.frame++
	if s.frame >= s.frames {
		s.active = false
		return s.to, true
	}
	p := easeInOut(float64(s.frame) / float64(s.frames))
	return s.from + int(math.Round(p*float64(s.to-s.from))), false
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}
