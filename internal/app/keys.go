package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/app/handler"
	"github.com/llehouerou/showcase/internal/app/popupctl"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/nav"
	"github.com/llehouerou/showcase/internal/page"
	"github.com/llehouerou/showcase/internal/resources"
	"github.com/llehouerou/showcase/internal/toast"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
)

// handleKey dispatches a key press. Space and the left/right arrows drive
// the podcast from anywhere unless a text input has the keyboard.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	_, cmd := handler.Chain(
		func() handler.Result { return m.handlePlaybackKey(key) },
		func() handler.Result { return m.handlePopupKey(msg) },
		func() handler.Result { return m.handleMenuKey(key) },
		func() handler.Result { return m.handlePageKey(key) },
	)
	return cmd
}

func (m *Model) shortcuts() media.Shortcuts {
	return media.Shortcuts{
		Target:       m.podcast,
		InputFocused: m.popups.InputFocused,
		Step:         m.seekStep,
	}
}

func (m *Model) handlePlaybackKey(key string) handler.Result {
	sc := m.shortcuts()
	switch m.keys.Resolve(key) {
	case keymap.ActionPlayPause:
		effects, ok := sc.TogglePlayback()
		if !ok {
			return handler.NotHandled
		}
		return handler.Handled(m.apply(effects))
	case keymap.ActionSeekBack:
		if m.popups.InputFocused() {
			return handler.NotHandled
		}
		sc.SeekBackward()
	case keymap.ActionSeekForward:
		if m.popups.InputFocused() {
			return handler.NotHandled
		}
		sc.SeekForward()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	if m.popups.ActivePopup() == popupctl.None {
		return handler.NotHandled
	}
	cmd, _ := m.popups.Update(msg)
	return handler.Handled(cmd)
}

func (m *Model) handleMenuKey(key string) handler.Result {
	if !m.nav.MenuOpen() {
		return handler.NotHandled
	}
	switch m.keys.Resolve(key) {
	case keymap.ActionScrollUp:
		m.nav.MoveCursor(-1)
	case keymap.ActionScrollDown:
		m.nav.MoveCursor(1)
	case keymap.ActionSelect:
		link, ok := m.nav.Selected()
		if !ok {
			m.nav.CloseMenu()
			return handler.HandledNoCmd
		}
		return handler.Handled(m.follow(link))
	case keymap.ActionCancel, keymap.ActionToggleMenu:
		m.nav.CloseMenu()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handlePageKey(key string) handler.Result {
	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionHelp:
		return handler.Handled(m.popups.ShowHelp(keymap.Contexts))
	case keymap.ActionToggleTheme:
		m.toggleTheme()
	case keymap.ActionToggleMenu:
		m.nav.ToggleMenu()
	case keymap.ActionJumpPrompt:
		m.nav.CloseMenu()
		return handler.Handled(m.popups.ShowJump(m.sectionIDs()))
	case keymap.ActionScrollHint:
		return handler.Handled(m.startScroll(m.nav.ScrollIndicator))
	case keymap.ActionToggleVideo:
		return handler.Handled(m.apply(m.video.TogglePlayback()))
	case keymap.ActionScrollUp:
		m.scrollBy(-1)
	case keymap.ActionScrollDown:
		m.scrollBy(1)
	case keymap.ActionPageUp:
		m.scrollBy(-m.viewport.Height / 2)
	case keymap.ActionPageDown:
		m.scrollBy(m.viewport.Height / 2)
	case keymap.ActionJumpStart:
		m.scrollBy(-m.viewport.YOffset)
	case keymap.ActionJumpEnd:
		m.scrollBy(m.layout.Height())
	case keymap.ActionFocusNext:
		m.moveFocus(1)
	case keymap.ActionFocusPrev:
		m.moveFocus(-1)
	case keymap.ActionSelect:
		return handler.Handled(m.activate(m.active))
	case keymap.ActionCancel:
		m.setActive("")
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// follow scrolls to a link's section.
func (m *Model) follow(link nav.Link) tea.Cmd {
	return m.startScroll(func(from int) bool {
		return m.nav.Follow(link, from)
	})
}

func (m *Model) sectionIDs() []string {
	ids := make([]string, len(m.page.Sections))
	for i, s := range m.page.Sections {
		ids[i] = s.ID
	}
	return ids
}

// jumpTo scrolls to the section named by the prompt: an exact id, else the
// first id or title starting with the text.
func (m *Model) jumpTo(text string) tea.Cmd {
	text = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(text, "#")))
	if text == "" {
		return nil
	}
	id := ""
	for _, s := range m.page.Sections {
		if strings.ToLower(s.ID) == text {
			id = s.ID
			break
		}
	}
	if id == "" {
		for _, s := range m.page.Sections {
			if strings.HasPrefix(strings.ToLower(s.ID), text) || strings.HasPrefix(strings.ToLower(s.Title), text) {
				id = s.ID
				break
			}
		}
	}
	if id == "" {
		return m.notify("No section named "+text, toast.Info)
	}
	return m.follow(nav.Link{Target: "#" + id})
}

// setActive moves the hover/focus highlight to id.
func (m *Model) setActive(id string) {
	if id == m.active {
		return
	}
	if m.active != "" {
		m.effects.Leave(m.active)
	}
	if id != "" {
		m.effects.Enter(id)
	}
	m.active = id
}

// moveFocus cycles the focus through the media cards and resources and
// brings the focused card into view.
func (m *Model) moveFocus(delta int) {
	ids := m.regions.focusables()
	if len(ids) == 0 {
		return
	}
	next := 0
	if delta < 0 {
		next = len(ids) - 1
	}
	for i, id := range ids {
		if id == m.active {
			next = (i + delta + len(ids)) % len(ids)
			break
		}
	}
	m.setActive(ids[next])
	m.ensureVisible(ids[next])
}

func (m *Model) ensureVisible(id string) {
	reg, ok := m.regions.get(id)
	if !ok {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case reg.top < top:
		m.scrollBy(reg.top - top)
	case reg.top+reg.height > bottom:
		m.scrollBy(min(reg.top+reg.height-bottom, reg.top-top))
	}
}

// activate runs the action of a focusable card.
func (m *Model) activate(id string) tea.Cmd {
	switch id {
	case page.KindPodcast:
		return m.apply(m.podcast.TogglePlayback())
	case page.KindVideo:
		return m.apply(m.video.TogglePlayback())
	}
	i, ok := resourceIndex(id)
	if !ok || i >= len(m.page.Resources) {
		return nil
	}
	res, err := m.res.Activate(m.page.Resources[i])
	if err != nil {
		m.logger.Warn("resource", "title", m.page.Resources[i].Title, "error", err)
		return m.notify(resourceError(m.page.Resources[i], err), toast.Error)
	}
	return m.notify(res.Message(), toast.Success)
}

func resourceError(r page.Resource, err error) string {
	op := errmsg.OpResourceView
	if resources.ActionFor(r) == resources.ActionDownload {
		op = errmsg.OpResourceDownload
	}
	return errmsg.FormatWith(op, r.Title, err)
}

// headerProps describes the header for the current state.
func (m *Model) headerProps() headerbar.Props {
	return headerbar.Props{
		Title:    m.page.Title,
		Links:    m.nav.Links(),
		Mode:     m.theme.Mode(),
		Icon:     m.theme.Icon(),
		Scrolled: m.effects.HeaderScrolled(),
		MenuOpen: m.nav.MenuOpen(),
		Width:    m.Width,
	}
}
