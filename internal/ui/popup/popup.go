// Package popup defines modal components and the frame they are drawn in.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Chrome is the space the frame takes around the content: border plus
// padding on each axis.
const (
	ChromeWidth  = 6
	ChromeHeight = 4
)

// Frame decorates popup content.
type Frame struct {
	Title  string
	Footer string
}

// Render draws content in a rounded frame no larger than maxWidth×maxHeight.
// Content lines wider than the frame are truncated and extra lines dropped.
func (f Frame) Render(content string, t *styles.Theme, maxWidth, maxHeight int) string {
	inner := maxLineWidth(content)
	inner = max(inner, lipgloss.Width(f.Title), lipgloss.Width(f.Footer))
	inner = min(inner, max(maxWidth-ChromeWidth, 1))

	lines := make([]string, 0, strings.Count(content, "\n")+5)
	if f.Title != "" {
		lines = append(lines, render.Center(t.S().Title.Render(f.Title), inner), "")
	}
	for line := range strings.SplitSeq(content, "\n") {
		if lipgloss.Width(line) > inner {
			line = render.TruncateStyled(line, inner)
		}
		lines = append(lines, render.Pad(line, inner))
	}
	if f.Footer != "" {
		lines = append(lines, "", render.Center(t.S().Subtle.Render(f.Footer), inner))
	}

	if limit := maxHeight - ChromeHeight; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Background(t.BgCard).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
