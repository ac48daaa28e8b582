// internal/player/mock.go
package player

import (
	"time"

	"github.com/llehouerou/showcase/internal/media"
)

// Mock is a test double for Player. Like a real element it raises play,
// pause and time update events when its state changes.
type Mock struct {
	paused    bool
	position  time.Duration
	duration  time.Duration
	loaded    bool
	loadErr   error
	playErr   error
	playCalls int
	seekCalls []time.Duration
	closed    bool
	info      *TrackInfo
	events    chan media.Event
}

// NewMock creates a paused mock element that loads with the given duration.
func NewMock(duration time.Duration) *Mock {
	return &Mock{
		paused:   true,
		duration: duration,
		events:   make(chan media.Event, eventBufferSize),
	}
}

func (m *Mock) Load() error {
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = true
	m.send(media.Event{Type: media.EventLoadedMetadata})
	return nil
}

func (m *Mock) Play() error {
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.paused {
		m.paused = false
		m.send(media.Event{Type: media.EventPlay})
	}
	return nil
}

func (m *Mock) Pause() {
	if !m.paused {
		m.paused = true
		m.send(media.Event{Type: media.EventPause})
	}
}

func (m *Mock) Paused() bool { return m.paused }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() (time.Duration, bool) { return m.duration, m.loaded }

func (m *Mock) SetPosition(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
	m.send(media.Event{Type: media.EventTimeUpdate})
}

func (m *Mock) Events() <-chan media.Event { return m.events }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

// SetInfo sets the tags Info reports once the mock is loaded.
func (m *Mock) SetInfo(info *TrackInfo) { m.info = info }

// Info returns the tags set by SetInfo, or nil until Load, like Player.
func (m *Mock) Info() *TrackInfo {
	if !m.loaded {
		return nil
	}
	return m.info
}

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPositionQuiet(pos time.Duration) { m.position = pos }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) IsClosed() bool { return m.closed }

// SimulateEnded plays the stream out to its end.
func (m *Mock) SimulateEnded() {
	m.position = m.duration
	m.paused = true
	m.send(media.Event{Type: media.EventPause})
	m.send(media.Event{Type: media.EventEnded})
}

// SimulateError raises a playback failure.
func (m *Mock) SimulateError(err error) {
	m.send(media.Event{Type: media.EventError, Err: err})
}

// Drain returns the events raised so far.
func (m *Mock) Drain() []media.Event {
	var out []media.Event
	for {
		select {
		case ev := <-m.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (m *Mock) send(ev media.Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// Verify Mock implements media.Element at compile time.
var _ media.Element = (*Mock)(nil)
