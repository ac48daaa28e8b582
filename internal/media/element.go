package media

import "time"

// EventType identifies a notification raised by a media element.
type EventType int

const (
	EventLoadedMetadata EventType = iota
	EventTimeUpdate
	EventPlay
	EventPause
	EventEnded
	EventError
)

// String returns the event name as used in logs.
func (t EventType) String() string {
	switch t {
	case EventLoadedMetadata:
		return "loadedmetadata"
	case EventTimeUpdate:
		return "timeupdate"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a notification from a media element.
// Events of one element are delivered in the order the element raised them.
type Event struct {
	Type EventType
	Err  error // set for EventError
}

// Element is the playback capability a Controller drives.
//
// Elements raise EventPlay, EventPause and EventEnded whenever their own
// state changes, whoever asked for the change.
type Element interface {
	// Load reads stream metadata and raises EventLoadedMetadata on success.
	Load() error
	// Play starts or resumes playback. After EventEnded it restarts from zero.
	Play() error
	Pause()
	Paused() bool
	Position() time.Duration
	// Duration reports the stream length, and false while it is unknown.
	Duration() (time.Duration, bool)
	SetPosition(pos time.Duration)
	Events() <-chan Event
	Close() error
}
