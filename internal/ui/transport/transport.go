// Package transport renders the custom media controls of a card: a
// play/pause button, a block progress bar and the time label.
package transport

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// MinBarWidth is the narrowest usable bar. Below it only the times show.
const MinBarWidth = 3

const gap = "  "

// Layout locates the bar within a rendered transport line.
type Layout struct {
	ButtonWidth int
	BarStart    int
	BarWidth    int // 0 when the line is too narrow for a bar
}

// Measure computes the layout of a width-wide transport line for v.
// Format: ▶  ▓▓▓▓▓░░░░░  1:23 / 4:56
func Measure(v media.View, width int) Layout {
	button := lipgloss.Width(icons.Transport(v.Icon))
	l := Layout{ButtonWidth: button}
	bar := width - button - 2*len(gap) - lipgloss.Width(v.TimeLabel)
	if bar < MinBarWidth {
		return l
	}
	l.BarStart = button + len(gap)
	l.BarWidth = bar
	return l
}

// Render draws the transport line for v.
func Render(v media.View, width int, t *styles.Theme) string {
	s := t.S()
	button := s.Playing.Render(icons.Transport(v.Icon))
	label := s.Muted.Render(v.TimeLabel)

	l := Measure(v, width)
	if l.BarWidth == 0 {
		return render.TruncateStyled(button+gap+label, width)
	}

	filled := min(int(float64(l.BarWidth)*clamp(v.Progress)), l.BarWidth)
	bar := lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat(filledBlock, filled)) +
		s.Subtle.Render(strings.Repeat(emptyBlock, l.BarWidth-filled))

	return button + gap + bar + gap + label
}

// Hit maps a click at column x (relative to the start of the line) to a seek
// fraction. Clicks on the button report button true.
func Hit(v media.View, width, x int) (fraction float64, button, ok bool) {
	l := Measure(v, width)
	if x >= 0 && x < l.ButtonWidth {
		return 0, true, true
	}
	if l.BarWidth == 0 || x < l.BarStart || x >= l.BarStart+l.BarWidth {
		return 0, false, false
	}
	if l.BarWidth == 1 {
		return 0, false, true
	}
	return float64(x-l.BarStart) / float64(l.BarWidth-1), false, true
}

// Poster renders the video overlay shown over the video card while it is not
// playing: a centered play button over the title.
func Poster(title string, width, height int, t *styles.Theme) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := t.S()
	lines := make([]string, height)
	for i := range lines {
		lines[i] = render.Blank(width)
	}
	mid := height / 2
	lines[mid] = render.Center(s.Playing.Render(icons.Transport(media.IconPlay)), width)
	if mid+1 < height {
		lines[mid+1] = render.Center(s.Muted.Render(render.Truncate(title, width)), width)
	}
	return lipgloss.NewStyle().Background(t.BgCard).Render(strings.Join(lines, "\n"))
}

func clamp(f float64) float64 {
	return min(max(f, 0), 1)
}
