package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/app/popupctl"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
	"github.com/llehouerou/showcase/internal/ui/transport"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.popups.ActivePopup() != popupctl.None {
		cmd, _ := m.popups.Update(msg)
		return cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-ui.WheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(ui.WheelStep)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.click(msg.X, msg.Y)
		}
	}
	return nil
}

// contentLine converts a screen row below the header to a content line.
func (m *Model) contentLine(y int) int {
	return m.viewport.YOffset + y - headerbar.Height
}

// hover lifts the card under the pointer and settles the previous one.
func (m *Model) hover(x, y int) {
	if y < headerbar.Height {
		return
	}
	reg, ok := m.regions.at(m.contentLine(y), x)
	if !ok || reg.kind == regionHint {
		m.setActive("")
		return
	}
	m.setActive(reg.id)
}

func (m *Model) click(x, y int) tea.Cmd {
	if y < headerbar.Height {
		return m.clickHeader(x)
	}
	if m.nav.MenuOpen() {
		if i, ok := headerbar.MenuHit(m.nav.Links(), m.Width, y-headerbar.Height, x); ok {
			return m.follow(m.nav.Links()[i])
		}
	}

	line := m.contentLine(y)
	reg, ok := m.regions.at(line, x)
	if !ok {
		return nil
	}
	switch reg.kind {
	case regionHint:
		return m.startScroll(m.nav.ScrollIndicator)
	case regionResource:
		m.setActive(reg.id)
		return m.activate(reg.id)
	case regionFeature:
		return nil
	}

	c := m.controller(reg.id)
	if c == nil {
		return nil
	}
	m.setActive(reg.id)
	if line == reg.transportRow {
		fraction, button, ok := transport.Hit(c.View(), reg.transportWidth, x-reg.transportLeft)
		switch {
		case !ok:
			return nil
		case button:
			return m.apply(c.TogglePlayback())
		}
		c.Seek(fraction)
		return nil
	}
	if reg.posterHeight > 0 && line >= reg.posterTop && line < reg.posterTop+reg.posterHeight {
		return m.apply(c.TogglePlayback())
	}
	return nil
}

func (m *Model) clickHeader(x int) tea.Cmd {
	hit := headerbar.HitTest(m.headerProps(), x)
	switch hit.Target {
	case headerbar.TargetTheme:
		m.toggleTheme()
	case headerbar.TargetMenu:
		m.nav.ToggleMenu()
	case headerbar.TargetLink:
		links := m.nav.Links()
		if hit.Link >= 0 && hit.Link < len(links) {
			return m.follow(links[hit.Link])
		}
	case headerbar.TargetTitle:
		m.scrollBy(-m.viewport.YOffset)
	}
	return nil
}
