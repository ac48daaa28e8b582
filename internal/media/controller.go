// Package media binds media elements to transport widgets.
package media

import (
	"math"
	"time"

	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/timefmt"
)

// LoadingLabel is shown in place of the duration until metadata arrives.
const LoadingLabel = "Loading..."

// Names the page's elements go by in tracked events.
const (
	NamePodcast   = "podcast"
	NameMainVideo = "main_video"
)

// PlaybackState is a snapshot of an element's position.
type PlaybackState struct {
	Position      time.Duration
	Duration      time.Duration
	DurationKnown bool
	Playing       bool
}

// View is everything the transport widgets render. It is derived from the
// element on every update and never edited by widgets.
type View struct {
	Icon           Icon
	Progress       float64 // 0..1
	TimeLabel      string  // "1:23 / 3:58"
	DurationLabel  string  // "3:58", or LoadingLabel
	OverlayVisible bool    // video poster overlay
}

// Notice asks the caller to show a user-visible notification.
type Notice struct {
	Message string
	Kind    string // "error"
}

// Tracked asks the caller to record an interaction event.
type Tracked struct {
	Name string
	Data map[string]any
}

// Effects are the side effects a controller operation asks the caller to run.
type Effects struct {
	Notice  *Notice
	Tracked *Tracked
}

// Empty reports whether there is nothing to run.
func (e Effects) Empty() bool {
	return e.Notice == nil && e.Tracked == nil
}

// Controller drives one media element and derives its View.
type Controller struct {
	kind    Kind
	name    string
	element Element
	state   State
	view    View
	lastErr error
}

// NewController creates a controller for element. name identifies the media
// in tracked events, e.g. "podcast".
func NewController(kind Kind, name string, element Element) *Controller {
	c := &Controller{
		kind:    kind,
		name:    name,
		element: element,
		state:   StateIdle,
	}
	c.view = View{
		Icon:           IconPlay,
		TimeLabel:      timefmt.Pair(0, 0),
		DurationLabel:  LoadingLabel,
		OverlayVisible: true,
	}
	return c
}

// Kind returns the media kind.
func (c *Controller) Kind() Kind { return c.kind }

// Name returns the media name used for tracking.
func (c *Controller) Name() string { return c.name }

// State returns the transport state.
func (c *Controller) State() State { return c.state }

// View returns the current derived view.
func (c *Controller) View() View { return c.view }

// Err returns the failure that moved the controller to Errored.
func (c *Controller) Err() error { return c.lastErr }

// Element returns the driven element.
func (c *Controller) Element() Element { return c.element }

// Snapshot returns the element's playback state.
func (c *Controller) Snapshot() PlaybackState {
	dur, known := c.element.Duration()
	return PlaybackState{
		Position:      c.element.Position(),
		Duration:      dur,
		DurationKnown: known,
		Playing:       c.state == StatePlaying,
	}
}

// Load asks the element for its metadata.
func (c *Controller) Load() Effects {
	if err := c.element.Load(); err != nil {
		return c.OnError(err)
	}
	return Effects{}
}

// TogglePlayback pauses a playing element and plays any other.
// The icon is left alone: it follows the element's own play and pause
// events, which also cover changes made outside this controller.
func (c *Controller) TogglePlayback() Effects {
	if !c.element.Paused() {
		c.element.Pause()
		return Effects{}
	}
	if err := c.element.Play(); err != nil {
		return c.OnError(err)
	}
	return Effects{}
}

// Seek moves to fraction of the duration. The fraction is clamped to [0,1]
// and NaN seeks to the start. Nothing happens while the duration is unknown.
func (c *Controller) Seek(fraction float64) {
	dur, known := c.element.Duration()
	if !known {
		return
	}
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = min(max(fraction, 0), 1)
	c.element.SetPosition(time.Duration(fraction * float64(dur)))
	c.OnProgressTick()
}

// SeekBy moves the position by delta, clamped to [0, duration].
func (c *Controller) SeekBy(delta time.Duration) {
	dur, known := c.element.Duration()
	if !known {
		return
	}
	pos := min(max(c.element.Position()+delta, 0), dur)
	c.element.SetPosition(pos)
	c.OnProgressTick()
}

// OnProgressTick recomputes the progress bar and time label.
// It is a no-op while the duration is unknown.
func (c *Controller) OnProgressTick() {
	dur, known := c.element.Duration()
	if !known || dur <= 0 {
		return
	}
	pos := min(max(c.element.Position(), 0), dur)
	c.view.Progress = float64(pos) / float64(dur)
	c.view.TimeLabel = timefmt.Pair(pos, dur)
}

// OnError moves to Errored and asks for a notification naming the media kind.
func (c *Controller) OnError(err error) Effects {
	c.state = StateErrored
	c.lastErr = err
	c.view.Icon = IconPlay
	c.view.OverlayVisible = true
	return Effects{Notice: &Notice{
		Message: errmsg.MediaError(string(c.kind)),
		Kind:    "error",
	}}
}

// Handle applies an element notification.
func (c *Controller) Handle(ev Event) Effects {
	switch ev.Type {
	case EventLoadedMetadata:
		if dur, known := c.element.Duration(); known {
			c.view.DurationLabel = timefmt.FormatDuration(dur)
		}
		if c.state == StateIdle {
			if c.element.Paused() {
				c.state = StatePaused
			} else {
				c.state = StatePlaying
			}
		}
		c.OnProgressTick()
	case EventTimeUpdate:
		c.OnProgressTick()
	case EventPlay:
		c.state = StatePlaying
		c.lastErr = nil
		c.updateIndicators(true)
		return Effects{Tracked: &Tracked{
			Name: string(c.kind) + "_play",
			Data: map[string]any{"media": c.name},
		}}
	case EventPause:
		if c.state != StateEnded && c.state != StateErrored {
			c.state = StatePaused
		}
		c.updateIndicators(false)
	case EventEnded:
		c.state = StateEnded
		c.updateIndicators(false)
		c.OnProgressTick()
	case EventError:
		return c.OnError(ev.Err)
	}
	return Effects{}
}

func (c *Controller) updateIndicators(playing bool) {
	if playing {
		c.view.Icon = IconPause
	} else {
		c.view.Icon = IconPlay
	}
	c.view.OverlayVisible = !playing
}
