// Package toast manages transient notifications that slide in, stay for a
// few seconds and slide out.
package toast

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/notify"
)

// Kind selects the notification color.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Phase is the animation phase of a toast.
type Phase int

const (
	// Entering toasts are rendered offscreen to the right.
	Entering Phase = iota
	Visible
	// Leaving toasts slide back out and are removed after LeaveDuration.
	Leaving
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Leaving:
		return "leaving"
	default:
		return "unknown"
	}
}

const (
	EnterDelay      = 100 * time.Millisecond
	DisplayDuration = 3 * time.Second
	LeaveDuration   = 300 * time.Millisecond
)

// Toast is one notification on the stack.
type Toast struct {
	ID      int64
	Message string
	Kind    Kind
	Phase   Phase
}

// PhaseMsg moves a toast to a new phase.
type PhaseMsg struct {
	ID    int64
	Phase Phase
}

// RemoveMsg drops a toast from the stack.
type RemoveMsg struct {
	ID int64
}

// Stack holds the live toasts in insertion order. Toasts are independent:
// identical messages stack, nothing is queued.
type Stack struct {
	toasts  []Toast
	nextID  int64
	desktop notify.Notifier
	logger  *slog.Logger
}

// NewStack creates an empty stack. Error toasts are mirrored to desktop
// when it is non-nil.
func NewStack(desktop notify.Notifier, logger *slog.Logger) *Stack {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stack{desktop: desktop, logger: logger}
}

// Show inserts a toast and returns its id with the command driving its
// lifecycle.
func (s *Stack) Show(message string, kind Kind) (int64, tea.Cmd) {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Message: message, Kind: kind, Phase: Entering})

	if kind == Error && s.desktop != nil {
		_, err := s.desktop.Notify(notify.Notification{
			Title:     "Showcase",
			Body:      message,
			Timeout:   int32(DisplayDuration.Milliseconds()),
			Urgency:   notify.UrgencyCritical,
			Transient: true,
		})
		if err != nil {
			s.logger.Warn("desktop notification", "error", err)
		}
	}

	return id, tea.Batch(
		phaseAfter(EnterDelay, id, Visible),
		phaseAfter(DisplayDuration, id, Leaving),
	)
}

// Update applies lifecycle messages. It returns the follow-up command and
// whether msg was a toast message.
func (s *Stack) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case PhaseMsg:
		i := s.index(msg.ID)
		if i < 0 {
			return nil, true
		}
		// A late Visible never pulls a leaving toast back.
		if s.toasts[i].Phase == Leaving {
			return nil, true
		}
		s.toasts[i].Phase = msg.Phase
		if msg.Phase == Leaving {
			return removeAfter(LeaveDuration, msg.ID), true
		}
		return nil, true
	case RemoveMsg:
		if i := s.index(msg.ID); i >= 0 {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
		}
		return nil, true
	}
	return nil, false
}

// Toasts returns the live toasts, oldest first.
func (s *Stack) Toasts() []Toast {
	return append([]Toast(nil), s.toasts...)
}

// Get returns the toast with id.
func (s *Stack) Get(id int64) (Toast, bool) {
	if i := s.index(id); i >= 0 {
		return s.toasts[i], true
	}
	return Toast{}, false
}

// Len returns the number of live toasts.
func (s *Stack) Len() int { return len(s.toasts) }

// Offset is the horizontal slide of a toast in columns: fully offscreen
// while entering or leaving, zero once visible.
func Offset(t Toast, width int) int {
	if t.Phase == Visible {
		return 0
	}
	return width
}

func (s *Stack) index(id int64) int {
	for i, t := range s.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func phaseAfter(d time.Duration, id int64, phase Phase) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PhaseMsg{ID: id, Phase: phase}
	})
}

func removeAfter(d time.Duration, id int64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RemoveMsg{ID: id}
	})
}
