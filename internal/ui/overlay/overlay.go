// Package overlay composes floating blocks (toasts, menus, dialogs) over the
// rendered page.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws box over base with its top-left corner at column x, row y.
// Every cell of the box replaces the base cell below it, and parts of the box
// falling outside width or the base height are clipped. ANSI styling on both
// sides is kept.
func Place(base, box string, x, y, width int) string {
	if box == "" || width <= 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = placeLine(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

func placeLine(baseLine, line string, x, width int) string {
	lineWidth := ansi.StringWidth(line)
	start, end := x, x+lineWidth
	if start < 0 {
		line = ansi.Cut(line, -start, lineWidth)
		start = 0
	}
	if end > width {
		line = ansi.Cut(line, 0, width-start)
		end = width
	}
	if start >= end {
		return baseLine
	}

	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	// Cutting through a wide rune can return one column less; pad so the
	// overlay lands on the requested column.
	prefix := ansi.Cut(baseLine, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	result := prefix + line
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if w := ansi.StringWidth(suffix); w < width-end {
			suffix = strings.Repeat(" ", width-end-w) + suffix
		}
		result += suffix
	}
	return result
}

// Center draws box in the middle of a width×height base.
func Center(base, box string, width, height int) string {
	w, h := Size(box)
	return Place(base, box, max((width-w)/2, 0), max((height-h)/2, 0), width)
}

// Size returns the width and height of a rendered block.
func Size(box string) (width, height int) {
	if box == "" {
		return 0, 0
	}
	return lipgloss.Width(box), lipgloss.Height(box)
}
