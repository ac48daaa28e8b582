package media

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeElement records calls; tests deliver its events by hand.
type fakeElement struct {
	paused   bool
	position time.Duration
	duration time.Duration
	known    bool
	loadErr  error
	playErr  error
	plays    int
	pauses   int
	events   chan Event
}

func newFakeElement() *fakeElement {
	return &fakeElement{paused: true, events: make(chan Event, 8)}
}

func (f *fakeElement) Load() error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.known = true
	return nil
}

func (f *fakeElement) Play() error {
	f.plays++
	if f.playErr != nil {
		return f.playErr
	}
	f.paused = false
	return nil
}

func (f *fakeElement) Pause() {
	f.pauses++
	f.paused = true
}

func (f *fakeElement) Paused() bool                    { return f.paused }
func (f *fakeElement) Position() time.Duration         { return f.position }
func (f *fakeElement) Duration() (time.Duration, bool) { return f.duration, f.known }
func (f *fakeElement) SetPosition(pos time.Duration)   { f.position = pos }
func (f *fakeElement) Events() <-chan Event            { return f.events }
func (f *fakeElement) Close() error                    { return nil }

func loaded(duration time.Duration) (*Controller, *fakeElement) {
	el := newFakeElement()
	el.duration = duration
	c := NewController(Audio, "podcast", el)
	c.Load()
	c.Handle(Event{Type: EventLoadedMetadata})
	return c, el
}

func TestNewController_InitialView(t *testing.T) {
	c := NewController(Video, NameMainVideo, newFakeElement())

	assert.Equal(t, StateIdle, c.State())
	v := c.View()
	assert.Equal(t, IconPlay, v.Icon)
	assert.Equal(t, LoadingLabel, v.DurationLabel)
	assert.True(t, v.OverlayVisible)
}

func TestController_LoadedMetadata(t *testing.T) {
	c, _ := loaded(238 * time.Second)

	assert.Equal(t, StatePaused, c.State())
	assert.Equal(t, "3:58", c.View().DurationLabel)
	assert.Equal(t, "0:00 / 3:58", c.View().TimeLabel)
}

func TestController_LoadedMetadataWhilePlaying(t *testing.T) {
	el := newFakeElement()
	el.duration = time.Minute
	el.paused = false
	c := NewController(Audio, "podcast", el)
	c.Load()
	c.Handle(Event{Type: EventLoadedMetadata})

	assert.Equal(t, StatePlaying, c.State())
}

func TestController_TogglePlayback_IconFollowsEvents(t *testing.T) {
	c, el := loaded(time.Minute)

	fx := c.TogglePlayback()
	assert.True(t, fx.Empty())
	assert.Equal(t, 1, el.plays)
	assert.Equal(t, IconPlay, c.View().Icon, "icon must wait for the play event")

	fx = c.Handle(Event{Type: EventPlay})
	assert.Equal(t, StatePlaying, c.State())
	assert.Equal(t, IconPause, c.View().Icon)
	assert.False(t, c.View().OverlayVisible)
	require.NotNil(t, fx.Tracked)
	assert.Equal(t, "audio_play", fx.Tracked.Name)
	assert.Equal(t, map[string]any{"media": "podcast"}, fx.Tracked.Data)

	c.TogglePlayback()
	assert.Equal(t, 1, el.pauses)
	c.Handle(Event{Type: EventPause})
	assert.Equal(t, StatePaused, c.State())
	assert.Equal(t, IconPlay, c.View().Icon)
	assert.True(t, c.View().OverlayVisible)
}

func TestController_ExternalPauseUpdatesIcon(t *testing.T) {
	c, el := loaded(time.Minute)
	c.TogglePlayback()
	c.Handle(Event{Type: EventPlay})

	// Paused by something other than the controller, e.g. a media key.
	el.Pause()
	c.Handle(Event{Type: EventPause})

	assert.Equal(t, IconPlay, c.View().Icon)
	assert.Equal(t, StatePaused, c.State())
}

func TestController_Ended(t *testing.T) {
	c, el := loaded(time.Minute)
	c.Handle(Event{Type: EventPlay})
	el.position = time.Minute
	el.paused = true
	c.Handle(Event{Type: EventPause})
	c.Handle(Event{Type: EventEnded})

	assert.Equal(t, StateEnded, c.State())
	assert.Equal(t, IconPlay, c.View().Icon)
	assert.InDelta(t, 1.0, c.View().Progress, 1e-9)
}

func TestController_VideoPlayTracked(t *testing.T) {
	el := newFakeElement()
	c := NewController(Video, NameMainVideo, el)

	fx := c.Handle(Event{Type: EventPlay})

	require.NotNil(t, fx.Tracked)
	assert.Equal(t, "video_play", fx.Tracked.Name)
	assert.Equal(t, "main_video", fx.Tracked.Data["media"])
}

func TestController_Seek_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     time.Duration
	}{
		{"start", 0, 0},
		{"middle", 0.5, 10 * time.Second},
		{"end", 1, 20 * time.Second},
		{"below zero", -1, 0},
		{"above one", 2, 20 * time.Second},
		{"not a number", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 20 * time.Second},
		{"negative infinity", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, el := loaded(20 * time.Second)
			el.position = 5 * time.Second

			c.Seek(tt.fraction)

			assert.Equal(t, tt.want, el.position)
		})
	}
}

func TestController_Seek_UnknownDurationIsNoop(t *testing.T) {
	el := newFakeElement()
	el.position = 3 * time.Second
	c := NewController(Audio, "podcast", el)

	c.Seek(0.5)

	assert.Equal(t, 3*time.Second, el.position)
}

func TestController_SeekBy_Clamps(t *testing.T) {
	c, el := loaded(20 * time.Second)

	el.position = 5 * time.Second
	c.SeekBy(-10 * time.Second)
	assert.Equal(t, time.Duration(0), el.position)

	el.position = 5 * time.Second
	c.SeekBy(10 * time.Second)
	assert.Equal(t, 15*time.Second, el.position)

	el.position = 15 * time.Second
	c.SeekBy(10 * time.Second)
	assert.Equal(t, 20*time.Second, el.position)
}

func TestController_OnProgressTick(t *testing.T) {
	c, el := loaded(200 * time.Second)
	el.position = 50 * time.Second

	c.Handle(Event{Type: EventTimeUpdate})

	assert.InDelta(t, 0.25, c.View().Progress, 1e-9)
	assert.Equal(t, "0:50 / 3:20", c.View().TimeLabel)
}

func TestController_OnProgressTick_UnknownDuration(t *testing.T) {
	el := newFakeElement()
	el.position = 50 * time.Second
	c := NewController(Audio, "podcast", el)
	before := c.View()

	c.OnProgressTick()

	assert.Equal(t, before, c.View())
}

func TestController_LoadError(t *testing.T) {
	el := newFakeElement()
	el.loadErr = errors.New("no such file")
	c := NewController(Video, NameMainVideo, el)

	fx := c.Load()

	assert.Equal(t, StateErrored, c.State())
	require.NotNil(t, fx.Notice)
	assert.Equal(t, "Error loading video. Please try again later.", fx.Notice.Message)
	assert.Equal(t, "error", fx.Notice.Kind)
	assert.EqualError(t, c.Err(), "no such file")
}

func TestController_PlayError(t *testing.T) {
	c, el := loaded(time.Minute)
	el.playErr = errors.New("device busy")

	fx := c.TogglePlayback()

	assert.Equal(t, StateErrored, c.State())
	require.NotNil(t, fx.Notice)
	assert.Contains(t, fx.Notice.Message, "audio")
}

func TestController_ErrorEvent(t *testing.T) {
	c, _ := loaded(time.Minute)
	c.Handle(Event{Type: EventPlay})

	fx := c.Handle(Event{Type: EventError, Err: errors.New("decode failed")})

	assert.Equal(t, StateErrored, c.State())
	assert.Equal(t, IconPlay, c.View().Icon)
	require.NotNil(t, fx.Notice)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StatePaused, "Paused"},
		{StatePlaying, "Playing"},
		{StateEnded, "Ended"},
		{StateErrored, "Errored"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
