package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/ui/popup"
)

type echoMsg string

type mockPopup struct {
	typed string
}

func (m *mockPopup) Init() tea.Cmd { return nil }

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyEnter {
		typed := m.typed
		return m, tea.Batch(nil, func() tea.Msg { return echoMsg(typed) })
	}
	m.typed += key.String()
	return m, nil
}

func (m *mockPopup) View() string { return "\x1b[1m" + m.typed + "\x1b[0m" }

func (m *mockPopup) SetSize(int, int) {}

func TestPopupHarness(t *testing.T) {
	h := NewPopupHarness(&mockPopup{})
	assert.Nil(t, h.LastCommand())

	h.SendKey("ab")
	assert.Equal(t, "ab", h.View())

	h.SendEnter()
	assert.Equal(t, echoMsg("ab"), ExecuteCmd(h.LastCommand()))

	h.ClearCommands()
	assert.Nil(t, h.LastCommand())
}

func TestExecuteCmd_Nil(t *testing.T) {
	assert.Nil(t, ExecuteCmd(nil))
}
