// Package headerbar renders the page header: the site title, navigation
// links, the theme toggle and, on narrow terminals, the menu button.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/nav"
	"github.com/llehouerou/showcase/internal/theme"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Target identifies a clickable part of the header.
type Target int

const (
	TargetNone Target = iota
	TargetTitle
	TargetLink
	TargetTheme
	TargetMenu
)

// Props is everything the header depends on.
type Props struct {
	Title    string
	Links    []nav.Link
	Mode     theme.Mode
	Icon     theme.Icon
	Scrolled bool
	MenuOpen bool
	Width    int
}

// Hit is the result of a click on the header.
type Hit struct {
	Target Target
	Link   int // index into Props.Links for TargetLink
}

type segment struct {
	text   string
	target Target
	link   int
}

// layout returns the left and right segment groups and the column where the
// right group starts.
func layout(p Props) (left, right []segment, rightStart int) {
	title := render.Sanitize(p.Title)
	left = append(left, segment{text: " " + title + " ", target: TargetTitle})
	if !nav.Compact(p.Width) {
		for i, l := range p.Links {
			left = append(left, segment{text: " " + l.Label + " ", target: TargetLink, link: i})
		}
	}

	right = append(right, segment{text: " " + icons.Theme(p.Icon) + " ", target: TargetTheme})
	if nav.Compact(p.Width) {
		right = append(right, segment{text: " " + icons.Menu(p.MenuOpen) + " ", target: TargetMenu})
	}

	rightWidth := 0
	for _, s := range right {
		rightWidth += lipgloss.Width(s.text)
	}
	return left, right, p.Width - rightWidth
}

// Render returns the header line for p.
func Render(p Props) string {
	if p.Width <= 0 {
		return ""
	}
	t := styles.ForMode(p.Mode)
	bg := styles.HeaderBackground(p.Mode, p.Scrolled)
	base := lipgloss.NewStyle().Background(bg)
	link := base.Foreground(t.FgMuted)
	button := base.Foreground(t.Primary).Bold(true)

	left, right, rightStart := layout(p)

	var b strings.Builder
	col := 0
	for _, s := range left {
		w := lipgloss.Width(s.text)
		if col+w > rightStart {
			break
		}
		if s.target == TargetTitle {
			b.WriteString(base.Render(" "))
			b.WriteString(styles.Gradient(strings.TrimSpace(s.text), t.Primary, t.Secondary, base.Bold(true)))
			b.WriteString(base.Render(" "))
		} else {
			b.WriteString(link.Render(s.text))
		}
		col += w
	}
	if rightStart > col {
		b.WriteString(base.Render(render.Blank(rightStart - col)))
	}
	for _, s := range right {
		b.WriteString(button.Render(s.text))
	}
	return render.TruncateStyled(b.String(), p.Width)
}

// HitTest maps a click at column x to the header element under it.
func HitTest(p Props, x int) Hit {
	if x < 0 || x >= p.Width {
		return Hit{}
	}
	left, right, rightStart := layout(p)

	col := 0
	for _, s := range left {
		w := lipgloss.Width(s.text)
		if col+w > rightStart {
			break
		}
		if x >= col && x < col+w {
			return Hit{Target: s.target, Link: s.link}
		}
		col += w
	}

	col = rightStart
	for _, s := range right {
		w := lipgloss.Width(s.text)
		if x >= col && x < col+w {
			return Hit{Target: s.target}
		}
		col += w
	}
	return Hit{}
}

// RenderMenu renders the dropdown shown under the header while the menu is
// open. cursor marks the keyboard selection.
func RenderMenu(links []nav.Link, cursor int, mode theme.Mode, width int) string {
	if len(links) == 0 || width <= 0 {
		return ""
	}
	t := styles.ForMode(mode)
	inner := 0
	for _, l := range links {
		inner = max(inner, lipgloss.Width(l.Label)+4)
	}
	inner = min(inner, max(width-2, 1))

	rows := make([]string, len(links))
	for i, l := range links {
		label := render.TruncateAndPad(l.Label, inner-4)
		if i == cursor {
			rows[i] = t.S().Playing.Render(" › " + label)
			continue
		}
		rows[i] = t.S().Base.Render("   " + label)
	}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Render(strings.Join(rows, "\n"))
	return render.Indent(box, max(width-lipgloss.Width(box), 0))
}

// MenuHit maps a click inside the rendered dropdown to a link index. row and
// x are relative to the top-left of the dropdown block.
func MenuHit(links []nav.Link, width, row, x int) (int, bool) {
	menu := RenderMenu(links, -1, theme.Light, width)
	if menu == "" {
		return 0, false
	}
	lines := strings.Split(menu, "\n")
	boxWidth := lipgloss.Width(strings.TrimLeft(lines[0], " "))
	left := width - boxWidth
	if row < 1 || row > len(links) || x <= left || x >= width-1 {
		return 0, false
	}
	return row - 1, true
}
