package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered style of a media card. Hovered cards use
// the focus border.
func (t *Theme) CardStyle(hovered bool) lipgloss.Style {
	border := t.Border
	if hovered {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// ToastStyle returns the style of a notification of the given kind.
func (t *Theme) ToastStyle(kind string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.StatusColor(kind)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 2)
}
