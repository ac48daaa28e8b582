package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/ui/action"
	"github.com/llehouerou/showcase/internal/ui/testutil"
)

var sections = []string{"home", "podcast", "video", "resources", "features"}

func newTestInput(t *testing.T, initialText string) (*Model, *testutil.PopupHarness) {
	t.Helper()
	m := New()
	m.Start("Jump to section", initialText, sections, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msg)
	result, ok := actionMsg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", actionMsg.Action)
	return result
}

func TestTextInput_TypeCharacters(t *testing.T) {
	_, h := newTestInput(t, "")

	for _, k := range []string{"v", "i", "d"} {
		h.SendKey(k)
	}
	h.SendEnter()

	result := getResult(t, h)
	assert.Equal(t, "vid", result.Text)
	assert.False(t, result.Canceled)
}

func TestTextInput_InitialText(t *testing.T) {
	_, h := newTestInput(t, "features")
	h.SendEnter()
	assert.Equal(t, "features", getResult(t, h).Text)
}

func TestTextInput_Backspace(t *testing.T) {
	_, h := newTestInput(t, "video")

	h.SendSpecialKey(tea.KeyBackspace)
	h.SendSpecialKey(tea.KeyBackspace)
	h.SendEnter()

	assert.Equal(t, "vid", getResult(t, h).Text)
}

func TestTextInput_TabAcceptsSuggestion(t *testing.T) {
	_, h := newTestInput(t, "")

	h.SendKey("p")
	h.SendKey("o")
	h.SendSpecialKey(tea.KeyTab)
	h.SendEnter()

	assert.Equal(t, "podcast", getResult(t, h).Text)
}

func TestTextInput_Cancel(t *testing.T) {
	_, h := newTestInput(t, "pod")
	h.SendEscape()
	assert.True(t, getResult(t, h).Canceled)
}

func TestTextInput_FocusLifecycle(t *testing.T) {
	m, _ := newTestInput(t, "pod")
	assert.True(t, m.Focused())
	assert.Equal(t, "pod", m.Value())

	m.Reset()
	assert.False(t, m.Focused())
	assert.Empty(t, m.Value())
}

func TestTextInput_View(t *testing.T) {
	m, h := newTestInput(t, "video")
	assert.Contains(t, h.View(), "> video")
	assert.Equal(t, "Jump to section", m.Frame().Title)

	idle := New()
	assert.Empty(t, idle.View(), "no size yet")
}
