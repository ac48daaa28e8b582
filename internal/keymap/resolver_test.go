package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"left", ActionSeekBack},
		{"right", ActionSeekForward},
		{"v", ActionToggleVideo},
		{"t", ActionToggleTheme},
		{"/", ActionJumpPrompt},
		{"up", ActionScrollUp},
		{"enter", ActionSelect},
		{"unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.key), "Resolve(%q)", tt.key)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause podcast", "media"},
		{ActionScrollUp, []string{"k", "up"}, "Scroll up", "page"},
	})

	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
	assert.Equal(t, []string{" "}, r.KeysFor(ActionPlayPause))
	assert.Nil(t, r.KeysFor(Action("unknown")))
}

func TestResolver_SharedKeysAcrossContexts(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionSelect, []string{"enter", "o"}, "Activate focused card", "page"},
		{ActionSelect, []string{"enter"}, "Follow link", "menu"},
		{ActionSelect, []string{"enter"}, "Jump", "prompt"},
	})

	assert.Equal(t, []string{"enter", "o"}, r.KeysFor(ActionSelect))
	assert.Equal(t, ActionSelect, r.Resolve("o"))
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver(Bindings)

	assert.Equal(t, "? help", r.Hint(ActionHelp, "help"))
	assert.Equal(t, "/ jump", r.Hint(ActionJumpPrompt, "jump"))
	assert.Equal(t, "q quit", r.Hint(ActionQuit, "quit"))
	assert.Empty(t, r.Hint(Action("unknown"), "nothing"))
}
