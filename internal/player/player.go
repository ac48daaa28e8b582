// Package player plays local media files through the beep speaker and
// reports their state as media element events.
package player

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/showcase/internal/media"
)

const (
	eventBufferSize = 64
	timeUpdateEvery = 250 * time.Millisecond
)

// ErrNoSource is returned when a player has no file to load.
var ErrNoSource = errors.New("no media source")

// Player is a media.Element backed by a decoded file.
type Player struct {
	path string

	mu       sync.Mutex
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	info     *TrackInfo
	duration time.Duration
	loaded   bool
	queued   bool // handed to the speaker and not yet drained
	ended    bool
	closed   bool

	events chan media.Event
	done   chan struct{}
}

// New creates a player for the file at path. Nothing is read until Load.
func New(path string) *Player {
	return &Player{
		path:   path,
		events: make(chan media.Event, eventBufferSize),
		done:   make(chan struct{}),
	}
}

// Path returns the media file path.
func (p *Player) Path() string { return p.path }

// Info returns tag metadata read during Load, or nil.
func (p *Player) Info() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

// Events implements media.Element.
func (p *Player) Events() <-chan media.Event { return p.events }

// Load implements media.Element.
func (p *Player) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return nil
	}
	if p.path == "" {
		return ErrNoSource
	}

	f, streamer, format, err := openStream(p.path)
	if err != nil {
		return err
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	p.duration = format.SampleRate.D(streamer.Len())
	p.info = readTrackInfo(p.path)
	p.loaded = true

	go p.timeUpdates()

	p.emit(media.Event{Type: media.EventLoadedMetadata})
	return nil
}

// Play implements media.Element.
func (p *Player) Play() error {
	if err := p.Load(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return os.ErrClosed
	}
	if p.ended {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return fmt.Errorf("rewind: %w", err)
		}
		p.ended = false
	}

	speaker.Lock()
	wasPaused := p.ctrl.Paused || !p.queued
	p.ctrl.Paused = false
	speaker.Unlock()

	if !p.queued {
		p.queued = true
		speaker.Play(beep.Seq(resampled(p.format.SampleRate, p.ctrl), beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker lock held.
			go p.finished()
		})))
	}

	if wasPaused {
		p.emit(media.Event{Type: media.EventPlay})
	}
	return nil
}

// Pause implements media.Element.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded || p.ctrl.Paused {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.emit(media.Event{Type: media.EventPause})
}

// Paused implements media.Element.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pausedLocked()
}

func (p *Player) pausedLocked() bool {
	if !p.loaded || !p.queued || p.ended {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Position implements media.Element.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration implements media.Element.
func (p *Player) Duration() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration, p.loaded
}

// SetPosition implements media.Element.
func (p *Player) SetPosition(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		return
	}
	n := p.format.SampleRate.N(pos)
	n = min(max(n, 0), max(p.streamer.Len()-1, 0))

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		p.emit(media.Event{Type: media.EventError, Err: fmt.Errorf("seek: %w", err)})
		return
	}
	if p.ended && pos < p.duration {
		p.ended = false
	}
	p.emit(media.Event{Type: media.EventTimeUpdate})
}

// Close releases the file and stops event delivery.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	close(p.done)

	if !p.loaded {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	speaker.Unlock()

	err := p.streamer.Close()
	if ferr := p.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// finished handles the speaker draining the stream.
func (p *Player) finished() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.queued = false
	if err := p.streamer.Err(); err != nil {
		p.emit(media.Event{Type: media.EventError, Err: err})
		return
	}
	p.ended = true
	p.emit(media.Event{Type: media.EventPause})
	p.emit(media.Event{Type: media.EventEnded})
}

// timeUpdates raises EventTimeUpdate while the stream plays.
func (p *Player) timeUpdates() {
	ticker := time.NewTicker(timeUpdateEvery)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if !p.Paused() {
				p.emit(media.Event{Type: media.EventTimeUpdate})
			}
		}
	}
}

// emit sends without blocking; a stalled consumer loses events rather than
// stalling the speaker.
func (p *Player) emit(ev media.Event) {
	select {
	case p.events <- ev:
	default:
	}
}

// Verify Player implements media.Element at compile time.
var _ media.Element = (*Player)(nil)
