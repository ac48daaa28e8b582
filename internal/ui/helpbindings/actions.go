package helpbindings

import (
	"github.com/llehouerou/showcase/internal/ui/action"
)

// Source names the help popup in action messages.
const Source = "helpbindings"

// Close asks the page to hide the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return Source + ".close" }

// ActionMsg wraps a help popup action for the page.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
