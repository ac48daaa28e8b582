// Package handler chains the key handling layers of the page: playback
// shortcuts, the open popup, the navigation menu, then page keys.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a layer did with a key press.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next layer.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd to the event loop.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler is one layer. Layers close over the model they act on.
type Handler func() Result

// Chain offers the key to each layer in order and stops at the first that
// consumes it. Later layers never run.
func Chain(handlers ...Handler) (handled bool, cmd tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
