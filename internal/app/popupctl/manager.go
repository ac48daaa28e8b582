// Package popupctl tracks the modal popups drawn over the page and routes
// input to the active one.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/theme"
	"github.com/llehouerou/showcase/internal/ui/helpbindings"
	"github.com/llehouerou/showcase/internal/ui/overlay"
	"github.com/llehouerou/showcase/internal/ui/popup"
	"github.com/llehouerou/showcase/internal/ui/styles"
	"github.com/llehouerou/showcase/internal/ui/textinput"
)

// framed is a popup that supplies its own title and footer.
type framed interface {
	popup.Popup
	Frame() popup.Frame
}

// Manager manages the modal popups.
type Manager struct {
	popups map[Type]framed
	mode   theme.Mode
	width  int
	height int
}

// New creates a manager with nothing open.
func New() *Manager {
	return &Manager{popups: make(map[Type]framed)}
}

// SetSize updates the screen dimensions popups are laid out in.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// SetMode switches the palette of open and future popups.
func (p *Manager) SetMode(mode theme.Mode) {
	p.mode = mode
	if h, ok := p.popups[Help].(*helpbindings.Model); ok {
		h.SetMode(mode)
	}
	if in, ok := p.popups[Jump].(*textinput.Model); ok {
		in.SetMode(mode)
	}
}

// IsVisible reports whether popup t is open.
func (p *Manager) IsVisible(t Type) bool {
	return p.popups[t] != nil
}

// ActivePopup returns which popup owns the keyboard.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop as t.
func (p *Manager) Show(t Type, pop framed) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes popup t.
func (p *Manager) Hide(t Type) {
	if in, ok := p.popups[t].(*textinput.Model); ok {
		in.Reset()
	}
	delete(p.popups, t)
}

// ShowHelp opens the key binding reference.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New(p.mode)
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowJump opens the section prompt with section ids as completions.
func (p *Manager) ShowJump(sections []string) tea.Cmd {
	in := textinput.New()
	in.SetMode(p.mode)
	focus := in.Start("Jump to section", "", sections, p.width, p.height)
	return tea.Batch(p.Show(Jump, &in), focus)
}

// InputFocused reports whether a text input owns the keyboard.
func (p *Manager) InputFocused() bool {
	in, ok := p.popups[Jump].(*textinput.Model)
	return ok && in.Focused()
}

// Update sends msg to the active popup. It reports false when no popup is
// open.
func (p *Manager) Update(msg tea.Msg) (tea.Cmd, bool) {
	t := p.ActivePopup()
	if t == None {
		return nil, false
	}
	updated, cmd := p.popups[t].Update(msg)
	if f, ok := updated.(framed); ok {
		p.popups[t] = f
	}
	return cmd, true
}

// Render draws the open popups centered over base.
func (p *Manager) Render(base string) string {
	t := styles.ForMode(p.mode)
	for _, typ := range RenderOrder {
		pop := p.popups[typ]
		if pop == nil {
			continue
		}
		box := pop.Frame().Render(pop.View(), t, p.width, p.height)
		base = overlay.Center(base, box, p.width, p.height)
	}
	return base
}
