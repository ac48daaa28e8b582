package media

import "time"

// DefaultSeekStep is how far the arrow shortcuts move the position.
const DefaultSeekStep = 10 * time.Second

// Shortcuts applies the global keyboard shortcuts to one controller.
// InputFocused reports whether a text input owns the keyboard; the
// play/pause shortcut yields to it.
type Shortcuts struct {
	Target       *Controller
	InputFocused func() bool
	Step         time.Duration
}

// TogglePlayback handles the play/pause key. It reports false when the key
// was left to a focused input.
func (s Shortcuts) TogglePlayback() (Effects, bool) {
	if s.Target == nil {
		return Effects{}, false
	}
	if s.InputFocused != nil && s.InputFocused() {
		return Effects{}, false
	}
	return s.Target.TogglePlayback(), true
}

// SeekBackward moves back one step, not before zero.
func (s Shortcuts) SeekBackward() bool {
	if s.Target == nil {
		return false
	}
	s.Target.SeekBy(-s.step())
	return true
}

// SeekForward moves forward one step, not past the duration.
func (s Shortcuts) SeekForward() bool {
	if s.Target == nil {
		return false
	}
	s.Target.SeekBy(s.step())
	return true
}

func (s Shortcuts) step() time.Duration {
	if s.Step <= 0 {
		return DefaultSeekStep
	}
	return s.Step
}
