package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/mpris"
	"github.com/llehouerou/showcase/internal/toast"
)

// apply runs the side effects a media controller asked for.
func (m *Model) apply(e media.Effects) tea.Cmd {
	if e.Tracked != nil {
		m.tracker.Track(e.Tracked.Name, e.Tracked.Data)
	}
	if e.Notice == nil {
		return nil
	}
	return m.notify(e.Notice.Message, toast.Kind(e.Notice.Kind))
}

// notify shows a toast.
func (m *Model) notify(message string, kind toast.Kind) tea.Cmd {
	_, cmd := m.toasts.Show(message, kind)
	return cmd
}

// setOffset moves the viewport and schedules the debounced scroll handlers.
func (m *Model) setOffset(offset int) {
	m.viewport.SetYOffset(offset)
	if m.viewport.YOffset == m.lastSeen {
		return
	}
	m.lastSeen = m.viewport.YOffset
	m.scroll.Call(m.viewport.YOffset)
}

// publishStatus reports the podcast state to the desktop.
func (m *Model) publishStatus() {
	if m.mediaKeys == nil || m.podcast.Element() == nil {
		return
	}
	snap := m.podcast.Snapshot()
	st := mpris.Status{
		Loaded:   snap.DurationKnown,
		Playing:  snap.Playing,
		Position: snap.Position,
		Duration: snap.Duration,
		Source:   m.page.Resolve(m.page.Podcast.Source),
		Title:    m.page.Podcast.Title,
		ArtPath:  m.artPath,
	}
	if m.info != nil {
		if m.info.Title != "" {
			st.Title = m.info.Title
		}
		st.Artist = m.info.Artist
		st.Album = m.info.Album
	}
	m.mediaKeys.Publish(st)
}

// handleMediaKey applies a desktop media key request to the podcast.
func (m *Model) handleMediaKey(c mpris.Command) tea.Cmd {
	snap := m.podcast.Snapshot()
	switch c.Kind {
	case mpris.CmdPlay:
		if snap.Playing {
			return nil
		}
		return m.apply(m.podcast.TogglePlayback())
	case mpris.CmdPause:
		if !snap.Playing {
			return nil
		}
		return m.apply(m.podcast.TogglePlayback())
	case mpris.CmdPlayPause:
		return m.apply(m.podcast.TogglePlayback())
	case mpris.CmdSeek:
		m.podcast.SeekBy(c.Offset)
	case mpris.CmdSetPosition:
		if snap.DurationKnown && snap.Duration > 0 {
			m.podcast.Seek(float64(c.Offset) / float64(snap.Duration))
		}
	}
	return nil
}
