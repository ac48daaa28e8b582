package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/app/popupctl"
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/nav"
	"github.com/llehouerou/showcase/internal/scrollfx"
	"github.com/llehouerou/showcase/internal/stderr"
	"github.com/llehouerou/showcase/internal/toast"
	"github.com/llehouerou/showcase/internal/ui/action"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
	"github.com/llehouerou/showcase/internal/ui/helpbindings"
	"github.com/llehouerou/showcase/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.quitting {
		return m, cmd
	}
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case MediaEventMsg:
		return m.handleMediaEvent(msg)

	case ScrollSettledMsg:
		return tea.Batch(m.observe(msg.Offset), m.watchScroll())

	case nav.FrameMsg:
		return m.handleFrame()

	case scrollfx.FadeMsg:
		if m.effects.AdvanceFade() {
			return scrollfx.FadeCmd()
		}
		return nil

	case MediaKeyMsg:
		return tea.Batch(m.handleMediaKey(msg.Command), m.watchMediaKeys())

	case StderrMsg:
		var cmd tea.Cmd
		if !stderr.IsNoise(msg.Line) {
			m.logger.Warn("stderr", "line", msg.Line)
			cmd = m.notify(msg.Line, toast.Error)
		}
		return tea.Batch(cmd, m.watchStderr())

	case action.Msg:
		return m.handleAction(msg)
	}

	if cmd, ok := m.toasts.Update(msg); ok {
		return cmd
	}
	cmd, _ := m.popups.Update(msg)
	return cmd
}

// refresh re-renders the page into the viewport.
func (m *Model) refresh() {
	m.popups.SetMode(m.theme.Mode())
	m.content = m.renderContent()
	m.viewport.SetContent(m.content)
	m.publishStatus()
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.Width = msg.Width
	m.Height = msg.Height
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-headerbar.Height, 1)
	m.popups.SetSize(msg.Width, msg.Height)
	if !nav.Compact(msg.Width) {
		m.nav.CloseMenu()
	}
	// Offsets depend on the width, so lay out before observing.
	m.refresh()
	return m.observe(m.viewport.YOffset)
}

// observe runs the scroll handlers for a settled offset: header background
// and reveal of newly visible sections.
func (m *Model) observe(offset int) tea.Cmd {
	m.effects.UpdateHeader(offset)
	wasFading := m.effects.Fading()
	revealed := m.effects.Observe(m.layout.Blocks(), offset, m.viewport.Height)
	if len(revealed) > 0 {
		m.logger.Debug("revealed sections", "ids", revealed)
	}
	if len(revealed) > 0 && !wasFading {
		return scrollfx.FadeCmd()
	}
	return nil
}

func (m *Model) handleMediaEvent(msg MediaEventMsg) tea.Cmd {
	c := m.controller(msg.Name)
	if c == nil || !msg.OK {
		return nil
	}
	if c == m.podcast && msg.Event.Type == media.EventLoadedMetadata {
		m.loadTrackInfo(c.Element())
	}
	return tea.Batch(m.apply(c.Handle(msg.Event)), m.watchMedia(c))
}

func (m *Model) controller(name string) *media.Controller {
	switch name {
	case m.podcast.Name():
		return m.podcast
	case m.video.Name():
		return m.video
	}
	return nil
}

// startScroll begins a smooth scroll. A frame loop is only started when none
// is running.
func (m *Model) startScroll(start func(from int) bool) tea.Cmd {
	running := m.nav.Scrolling()
	if !start(m.viewport.YOffset) || running {
		return nil
	}
	return nav.FrameCmd()
}

func (m *Model) handleFrame() tea.Cmd {
	if !m.nav.Scrolling() {
		return nil
	}
	offset, done := m.nav.Step()
	m.setOffset(offset)
	if done {
		return nil
	}
	return nav.FrameCmd()
}

// scrollBy moves the page by delta rows, cancelling any smooth scroll.
func (m *Model) scrollBy(delta int) {
	m.nav.Cancel()
	m.setOffset(m.viewport.YOffset + delta)
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
	case textinput.Result:
		m.popups.Hide(popupctl.Jump)
		if a.Canceled {
			return nil
		}
		return m.jumpTo(a.Text)
	}
	return nil
}

func (m *Model) toggleTheme() {
	m.popups.SetMode(m.theme.Toggle())
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.closeMedia()
	return tea.Quit
}
