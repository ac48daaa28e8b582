package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/theme"
)

// Theme defines the color palette and pre-built styles for one mode.
type Theme struct {
	Mode theme.Mode

	// Brand/accent colors
	Primary   lipgloss.Color // links, progress fill, active states
	Secondary lipgloss.Color // gradient end of the hero title

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase           lipgloss.Color // page background
	BgCard           lipgloss.Color // media cards
	BgHeader         lipgloss.Color // header at the top of the page
	BgHeaderScrolled lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Link    lipgloss.Style
	Playing lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

var lightTheme = Theme{
	Mode:      theme.Light,
	Primary:   lipgloss.Color("#6366f1"),
	Secondary: lipgloss.Color("#8b5cf6"),

	FgBase:   lipgloss.Color("#1e293b"),
	FgMuted:  lipgloss.Color("#64748b"),
	FgSubtle: lipgloss.Color("#94a3b8"),

	BgBase:           lipgloss.Color("#ffffff"),
	BgCard:           lipgloss.Color("#f8fafc"),
	BgHeader:         lipgloss.Color("#f1f5f9"),
	BgHeaderScrolled: lipgloss.Color("#ffffff"),

	Border:      lipgloss.Color("#cbd5e1"),
	BorderFocus: lipgloss.Color("#6366f1"),

	Success: lipgloss.Color("#10b981"),
	Error:   lipgloss.Color("#ef4444"),
	Info:    lipgloss.Color("#3b82f6"),
}

var darkTheme = Theme{
	Mode:      theme.Dark,
	Primary:   lipgloss.Color("#818cf8"),
	Secondary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#f1f5f9"),
	FgMuted:  lipgloss.Color("#94a3b8"),
	FgSubtle: lipgloss.Color("#64748b"),

	BgBase:           lipgloss.Color("#0f172a"),
	BgCard:           lipgloss.Color("#1e293b"),
	BgHeader:         lipgloss.Color("#1e293b"),
	BgHeaderScrolled: lipgloss.Color("#0f172a"),

	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#818cf8"),

	Success: lipgloss.Color("#10b981"),
	Error:   lipgloss.Color("#ef4444"),
	Info:    lipgloss.Color("#3b82f6"),
}

// ForMode returns the theme for mode.
func ForMode(mode theme.Mode) *Theme {
	if mode == theme.Dark {
		return &darkTheme
	}
	return &lightTheme
}

// HeaderBackground returns the header color for mode, depending on whether
// the page has scrolled past the header threshold.
func HeaderBackground(mode theme.Mode, scrolled bool) lipgloss.Color {
	t := ForMode(mode)
	if scrolled {
		return t.BgHeaderScrolled
	}
	return t.BgHeader
}

// StatusColor returns the background color of a notification kind.
// Unknown kinds use the error color, like any non-success notice.
func (t *Theme) StatusColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return t.Success
	case "info":
		return t.Info
	default:
		return t.Error
	}
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Link:   lipgloss.NewStyle().Foreground(t.Primary),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
	}
}
