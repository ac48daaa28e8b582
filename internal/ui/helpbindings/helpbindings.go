// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/theme"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/popup"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryLabels maps binding contexts to display labels.
var categoryLabels = map[string]string{
	"global": "Global",
	"media":  "Media",
	"page":   "Page",
	"menu":   "Navigation menu",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	mode         theme.Mode
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup listing every binding context.
func New(mode theme.Mode) Model {
	m := Model{mode: mode}
	m.SetContexts(keymap.Contexts)
	return m
}

// SetContexts sets which binding contexts to display, in keymap order.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range keymap.Contexts {
		for _, c := range contexts {
			if c == ctx {
				m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
				break
			}
		}
	}
	m.scrollOffset = 0
}

// SetMode switches the palette.
func (m *Model) SetMode(mode theme.Mode) {
	m.mode = mode
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "?", "esc", "q":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		}
	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // only the wheel scrolls
		case tea.MouseButtonWheelDown:
			m.scroll(1)
		case tea.MouseButtonWheelUp:
			m.scroll(-1)
		}
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	m.scrollOffset = min(max(m.scrollOffset+delta, 0), m.maxScroll())
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, render.Pad(line, maxWidth))
	}
	return strings.Join(visible, "\n")
}

// Frame returns the title and footer the popup is framed with.
func (m Model) Frame() popup.Frame {
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · ?/esc close"
	}
	return popup.Frame{Title: "Keyboard shortcuts", Footer: footer}
}

func (m Model) contentLines() []string {
	t := styles.ForMode(m.mode)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := t.S().Title
	descStyle := t.S().Base

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				t.S().Subtle.Render(render.Separator(maxKeyWidth+15)))
			current = b.Context
		}
		lines = append(lines,
			keyStyle.Render(render.Pad(keyLabel(b), maxKeyWidth))+"  "+descStyle.Render(b.Description))
	}
	return lines
}

// keyLabel names the keys of a binding the way users type them.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) visibleHeight() int {
	return max(m.Height()-popup.ChromeHeight-4, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}
