package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn in a frame over the page. While one is
// open it receives every key.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the content without the frame.
	View() string

	// SetSize sets the space available to the content.
	SetSize(width, height int)
}
