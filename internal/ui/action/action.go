// Package action carries results out of popups to the page model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a popup asks the page to do, such as closing the help
// list or jumping to the section typed in the prompt.
type Action interface {
	ActionType() string
}

// Msg is an Action tagged with the popup that raised it.
type Msg struct {
	Source string // "helpbindings" or "textinput"
	Action Action
}

var _ tea.Msg = Msg{}
