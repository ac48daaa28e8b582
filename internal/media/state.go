package media

// Kind names the media a controller drives. It appears in user-facing errors.
type Kind string

const (
	Audio Kind = "audio"
	Video Kind = "video"
)

// State is the transport state of a controller.
//
//	Idle ──metadata──▶ Paused ◀──pause/play──▶ Playing
//	  any ──ended──▶ Ended      any ──error──▶ Errored
//
// Idle goes straight to Playing when the element already plays when its
// metadata arrives.
type State int

const (
	StateIdle State = iota
	StatePaused
	StatePlaying
	StateEnded
	StateErrored
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	case StateErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Icon is the play/pause indicator shown on the transport.
type Icon int

const (
	IconPlay Icon = iota
	IconPause
)
