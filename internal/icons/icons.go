package icons

import (
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/theme"
)

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Moon       string
	Sun        string
	Play       string
	Pause      string
	Menu       string
	MenuClose  string
	Podcast    string
	Video      string
	PDF        string
	Download   string
	View       string
	ScrollHint string
	Success    string
	Error      string
	Info       string
}

var (
	nerdIcons = Icons{
		Moon:       "\uf186",  // nf-fa-moon_o
		Sun:        "\uf185",  // nf-fa-sun_o
		Play:       "\uf04b",  // nf-fa-play
		Pause:      "\uf04c",  // nf-fa-pause
		Menu:       "\uf0c9",  // nf-fa-bars
		MenuClose:  "\uf00d",  // nf-fa-times
		Podcast:    "\uf130 ", // nf-fa-microphone
		Video:      "\uf03d ", // nf-fa-video_camera
		PDF:        "\uf1c1 ", // nf-fa-file_pdf_o
		Download:   "\uf019",  // nf-fa-download
		View:       "\uf06e",  // nf-fa-eye
		ScrollHint: "\uf078",  // nf-fa-chevron_down
		Success:    "\uf00c",  // nf-fa-check
		Error:      "\uf071",  // nf-fa-warning
		Info:       "\uf129",  // nf-fa-info
	}

	unicodeIcons = Icons{
		Moon:       "☾",
		Sun:        "☀",
		Play:       "▶",
		Pause:      "⏸",
		Menu:       "☰",
		MenuClose:  "✕",
		Podcast:    "🎙 ",
		Video:      "🎬 ",
		PDF:        "📄 ",
		Download:   "⬇",
		View:       "👁",
		ScrollHint: "⌄",
		Success:    "✓",
		Error:      "⚠",
		Info:       "ℹ",
	}

	noneIcons = Icons{
		Moon:       "[dark]",
		Sun:        "[light]",
		Play:       "[>]",
		Pause:      "[||]",
		Menu:       "[=]",
		MenuClose:  "[x]",
		Podcast:    "",
		Video:      "",
		PDF:        "",
		Download:   "[save]",
		View:       "[open]",
		ScrollHint: "v",
		Success:    "+",
		Error:      "!",
		Info:       "i",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Theme returns the theme toggle indicator.
func Theme(icon theme.Icon) string {
	if icon == theme.IconSun {
		return current.Sun
	}
	return current.Moon
}

// Transport returns the play/pause button glyph.
func Transport(icon media.Icon) string {
	if icon == media.IconPause {
		return current.Pause
	}
	return current.Play
}

// Menu returns the hamburger glyph for the menu state.
func Menu(open bool) string {
	if open {
		return current.MenuClose
	}
	return current.Menu
}

// Resource returns the action glyph of a PDF resource.
func Resource(download bool) string {
	if download {
		return current.Download
	}
	return current.View
}

// Notice returns the glyph for a notification kind.
func Notice(kind string) string {
	switch kind {
	case "success":
		return current.Success
	case "info":
		return current.Info
	default:
		return current.Error
	}
}

// ScrollHint returns the scroll indicator glyph.
func ScrollHint() string { return current.ScrollHint }

// FormatPodcast formats a podcast title with the appropriate icon.
func FormatPodcast(name string) string { return current.Podcast + name }

// FormatVideo formats a video title with the appropriate icon.
func FormatVideo(name string) string { return current.Video + name }

// FormatPDF formats a resource title with the appropriate icon.
func FormatPDF(name string) string { return current.PDF + name }
