package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/toast"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
	"github.com/llehouerou/showcase/internal/ui/overlay"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.quitting || m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	screen := headerbar.Render(m.headerProps()) + "\n" + m.viewport.View()

	if m.nav.MenuOpen() {
		screen = m.renderMenu(screen)
	}
	screen = m.renderToasts(screen)
	return m.popups.Render(screen)
}

// renderMenu draws the navigation dropdown under the right end of the header.
func (m Model) renderMenu(screen string) string {
	menu := headerbar.RenderMenu(m.nav.Links(), m.nav.Cursor(), m.theme.Mode(), m.Width)
	if menu == "" {
		return screen
	}
	lines := strings.Split(menu, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(l, " ")
	}
	box := strings.Join(lines, "\n")
	return overlay.Place(screen, box, m.Width-lipgloss.Width(box), headerbar.Height, m.Width)
}

// renderToasts stacks notifications in the top right corner. Entering and
// leaving toasts are drawn off screen to the right.
func (m Model) renderToasts(screen string) string {
	t := styles.ForMode(m.theme.Mode())
	maxWidth := max(m.Width/2, 10)
	row := headerbar.Height + 1
	for _, n := range m.toasts.Toasts() {
		text := strings.TrimSpace(icons.Notice(string(n.Kind)) + " " + n.Message)
		box := t.ToastStyle(string(n.Kind)).Render(render.Truncate(text, maxWidth))
		w, h := overlay.Size(box)
		x := m.Width - w - 1 + toast.Offset(n, w+1)
		screen = overlay.Place(screen, box, x, row, m.Width)
		row += h + 1
	}
	return screen
}
