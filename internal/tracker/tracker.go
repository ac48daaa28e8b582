// Package tracker records user interaction events. Delivery is fire and
// forget: events go through a bounded queue to a structured log, and are
// dropped when the queue is full.
package tracker

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event names.
const (
	AudioPlay      = "audio_play"
	VideoPlay      = "video_play"
	PDFInteraction = "pdf_interaction"
)

// DefaultBuffer is the queue size used when none is given.
const DefaultBuffer = 128

// Event is one tracked interaction.
type Event struct {
	ID   uuid.UUID
	Name string
	Data map[string]any
	At   time.Time
}

// Tracker forwards events to a logger from a single goroutine.
type Tracker struct {
	logger *slog.Logger
	queue  chan Event
	done   chan struct{}

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

// New starts a tracker writing to logger. buffer <= 0 uses DefaultBuffer.
func New(logger *slog.Logger, buffer int) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	t := &Tracker{
		logger: logger,
		queue:  make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go t.run()
	return t
}

// Track enqueues an event without blocking. It reports whether the event
// was accepted.
func (t *Tracker) Track(name string, data map[string]any) bool {
	ev := Event{
		ID:   uuid.New(),
		Name: name,
		Data: maps.Clone(data),
		At:   time.Now(),
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		t.dropped.Add(1)
		return false
	}
	select {
	case t.queue <- ev:
		return true
	default:
		t.dropped.Add(1)
		return false
	}
}

// Dropped returns how many events were discarded.
func (t *Tracker) Dropped() int64 { return t.dropped.Load() }

// Close stops accepting events and waits for queued ones to be written.
func (t *Tracker) Close() {
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.queue)
	}
	t.mu.Unlock()
	<-t.done
}

func (t *Tracker) run() {
	defer close(t.done)
	for ev := range t.queue {
		t.write(ev)
	}
}

func (t *Tracker) write(ev Event) {
	attrs := []slog.Attr{
		slog.String("event", ev.Name),
		slog.String("event_id", ev.ID.String()),
	}
	if len(ev.Data) > 0 {
		fields := make([]any, 0, len(ev.Data))
		for _, k := range slices.Sorted(maps.Keys(ev.Data)) {
			fields = append(fields, slog.Any(k, ev.Data[k]))
		}
		attrs = append(attrs, slog.Group("data", fields...))
	}
	t.logger.LogAttrs(context.Background(), slog.LevelInfo, "event tracked", attrs...)
}
