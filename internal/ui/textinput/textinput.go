// Package textinput provides a one-line prompt popup with completion, used to
// jump to a page section by name.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/theme"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/popup"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a text input popup.
type Model struct {
	ui.Base
	title string
	mode  theme.Mode
	input textinput.Model
}

// New creates an idle input.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.ShowSuggestions = true
	in.CharLimit = 64
	return Model{input: in}
}

// Start focuses the input with a title, initial text and completion
// candidates.
func (m *Model) Start(title, initialText string, suggestions []string, width, height int) tea.Cmd {
	m.title = title
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.SetSuggestions(suggestions)
	m.SetSize(width, height)
	return m.input.Focus()
}

// SetMode switches the palette.
func (m *Model) SetMode(mode theme.Mode) {
	m.mode = mode
	t := styles.ForMode(mode)
	m.input.PromptStyle = t.S().Link
	m.input.TextStyle = t.S().Base
	m.input.CompletionStyle = t.S().Subtle
}

// Reset clears and blurs the input.
func (m *Model) Reset() {
	m.title = ""
	m.input.Reset()
	m.input.SetSuggestions(nil)
	m.input.Blur()
}

// Focused reports whether the input currently owns the keyboard.
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-popup.ChromeWidth-len(m.input.Prompt)-1, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // other keys go to the input
		case tea.KeyEsc:
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true})
			}
		case tea.KeyEnter:
			text := m.input.Value()
			if text == "" {
				text = m.input.CurrentSuggestion()
			}
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	return m.input.View()
}

// Frame returns the title and footer the popup is framed with.
func (m *Model) Frame() popup.Frame {
	return popup.Frame{Title: m.title, Footer: "tab complete · enter jump · esc cancel"}
}
