// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleTheme Action = "toggle_theme"
	ActionToggleMenu  Action = "toggle_menu"
	ActionJumpPrompt  Action = "jump_prompt"
	ActionScrollHint  Action = "scroll_indicator"

	// Media actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionToggleVideo Action = "toggle_video"

	// Page scrolling
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionJumpStart  Action = "jump_start"
	ActionJumpEnd    Action = "jump_end"

	// Card focus and activation
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionSelect    Action = "select" // enter - activate focused card or menu link
	ActionCancel    Action = "cancel" // esc - close menu, prompt or help
)
