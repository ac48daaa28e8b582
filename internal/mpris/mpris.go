//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

const commandBuffer = 16

// Adapter serves the MPRIS interface from published status snapshots and
// forwards control requests on a channel.
type Adapter struct {
	server   *server.Server
	player   *playerAdapter
	commands chan Command
}

// New creates and starts a new MPRIS adapter.
func New() (*Adapter, error) {
	a := &Adapter{commands: make(chan Command, commandBuffer)}
	a.player = &playerAdapter{commands: a.commands}

	a.server = server.NewServer("showcase", &rootAdapter{}, a.player)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Commands delivers control requests from the desktop.
func (a *Adapter) Commands() <-chan Command { return a.commands }

// Publish replaces the status reported to the desktop.
func (a *Adapter) Publish(s Status) { a.player.publish(s) }

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Showcase", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	commands chan<- Command

	mu     sync.RWMutex
	status Status
}

func (p *playerAdapter) publish(s Status) {
	p.mu.Lock()
	p.status = s
	p.mu.Unlock()
}

func (p *playerAdapter) snapshot() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// send never blocks the D-Bus goroutine; requests beyond the buffer are
// dropped.
func (p *playerAdapter) send(c Command) error {
	select {
	case p.commands <- c:
		return nil
	default:
		return fmt.Errorf("player busy")
	}
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	return p.send(Command{Kind: CmdPause})
}

func (p *playerAdapter) PlayPause() error {
	return p.send(Command{Kind: CmdPlayPause})
}

func (p *playerAdapter) Stop() error {
	return p.send(Command{Kind: CmdPause})
}

func (p *playerAdapter) Play() error {
	return p.send(Command{Kind: CmdPlay})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Kind: CmdSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(Command{Kind: CmdSetPosition, Offset: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.snapshot()
	switch {
	case !s.Loaded:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.snapshot()
	if s.Source == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Source)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title,
		Album:   s.Album,
	}
	if s.Artist != "" {
		meta.Artist = []string{s.Artist}
	}
	if s.ArtPath != "" {
		meta.ArtUrl = "file://" + s.ArtPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.snapshot().Source != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.snapshot().Loaded, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
