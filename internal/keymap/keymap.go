// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "media", "page", "menu"
}

// Bindings contains all key bindings, used for dispatch and help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle light/dark theme", "global"},
	{ActionToggleMenu, []string{"m"}, "Toggle navigation menu", "global"},
	{ActionJumpPrompt, []string{"/"}, "Jump to section", "global"},
	{ActionScrollHint, []string{"i"}, "Scroll to the podcast", "global"},

	// Media
	{ActionPlayPause, []string{" "}, "Play/pause podcast", "media"},
	{ActionSeekBack, []string{"left"}, "Seek -10s", "media"},
	{ActionSeekForward, []string{"right"}, "Seek +10s", "media"},
	{ActionToggleVideo, []string{"v"}, "Play/pause video", "media"},

	// Page
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "page"},
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "page"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "page"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "page"},
	{ActionJumpStart, []string{"g", "home"}, "Top of page", "page"},
	{ActionJumpEnd, []string{"G", "end"}, "Bottom of page", "page"},
	{ActionFocusNext, []string{"tab"}, "Focus next card", "page"},
	{ActionFocusPrev, []string{"shift+tab"}, "Focus previous card", "page"},
	{ActionSelect, []string{"enter"}, "Activate focused card", "page"},

	// Menu
	{ActionScrollUp, []string{"k", "up"}, "Previous link", "menu"},
	{ActionScrollDown, []string{"j", "down"}, "Next link", "menu"},
	{ActionSelect, []string{"enter"}, "Follow link", "menu"},
	{ActionCancel, []string{"esc"}, "Close menu", "menu"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"global", "media", "page", "menu"}
