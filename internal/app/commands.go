package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/mpris"
)

// waitForChannel creates a command that waits for a value from a channel.
// The onResult function receives the value and ok status, and returns the message.
// Returns nil if the channel is nil.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// postLatest delivers offset to ch, replacing an undelivered value.
func postLatest(ch chan int, offset int) {
	for {
		select {
		case ch <- offset:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// watchMedia waits for the next event of the controller's element.
func (m Model) watchMedia(c *media.Controller) tea.Cmd {
	if c.Element() == nil {
		return nil
	}
	name := c.Name()
	return waitForChannel(c.Element().Events(), func(ev media.Event, ok bool) tea.Msg {
		return MediaEventMsg{Name: name, Event: ev, OK: ok}
	})
}

// watchScroll waits for the debounced scroll offset.
func (m Model) watchScroll() tea.Cmd {
	return waitForChannel(m.settled, func(offset int, _ bool) tea.Msg {
		return ScrollSettledMsg{Offset: offset}
	})
}

// watchMediaKeys waits for the next desktop media key request.
func (m Model) watchMediaKeys() tea.Cmd {
	if m.mediaKeys == nil {
		return nil
	}
	return waitForChannel(m.mediaKeys.Commands(), func(c mpris.Command, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return MediaKeyMsg{Command: c}
	})
}

// watchStderr waits for output from C libraries.
func (m Model) watchStderr() tea.Cmd {
	return waitForChannel(m.stderr, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}
