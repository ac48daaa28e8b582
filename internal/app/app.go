// Package app is the root bubbletea model of the showcase page.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/app/popupctl"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/debounce"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/mpris"
	"github.com/llehouerou/showcase/internal/nav"
	"github.com/llehouerou/showcase/internal/notify"
	"github.com/llehouerou/showcase/internal/page"
	"github.com/llehouerou/showcase/internal/player"
	"github.com/llehouerou/showcase/internal/resources"
	"github.com/llehouerou/showcase/internal/scrollfx"
	"github.com/llehouerou/showcase/internal/theme"
	"github.com/llehouerou/showcase/internal/toast"
	"github.com/llehouerou/showcase/internal/ui/cover"
)

// Tracker records interaction events.
type Tracker interface {
	Track(name string, data map[string]any) bool
}

// MediaKeys is the desktop media key integration.
type MediaKeys interface {
	Commands() <-chan mpris.Command
	Publish(mpris.Status)
}

// Deps is everything the page needs from the outside world. main wires the
// real implementations; tests pass mocks.
type Deps struct {
	Config   *config.Config
	Page     *page.Page
	Store    theme.Store
	Podcast  media.Element
	Video    media.Element
	Tracker  Tracker
	Notifier notify.Notifier
	Keys     MediaKeys
	Logger   *slog.Logger
	Stderr   <-chan string

	// Resource options, for tests.
	ResourceOptions []resources.Option
}

// Model is the root application model.
type Model struct {
	logger *slog.Logger
	page   *page.Page

	theme   *theme.Controller
	podcast *media.Controller
	video   *media.Controller
	toasts  *toast.Stack
	nav     *nav.Controller
	effects *scrollfx.Controller
	res     *resources.Service
	popups  *popupctl.Manager
	keys    *keymap.Resolver

	tracker   Tracker
	mediaKeys MediaKeys
	stderr    <-chan string
	seekStep  time.Duration

	// layout and regions are rebuilt in place on every render so the
	// navigation resolver keeps seeing current offsets.
	layout   *page.Layout
	regions  *regions
	viewport viewport.Model
	content  string

	scroll   *debounce.Debouncer[int]
	settled  chan int
	lastSeen int

	art      *cover.Art
	artPath  string
	info     *player.TrackInfo
	active   string
	Width    int
	Height   int
	quitting bool
}

// New builds the page model. The theme preference is read here, media
// elements are loaded by Init.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	tracker := d.Tracker
	if tracker == nil {
		tracker = discardTracker{}
	}

	th := theme.New(d.Store, logger)
	th.Initialize()

	layout := page.NewLayout()
	settled := make(chan int, 1)
	m := Model{
		logger:    logger,
		page:      d.Page,
		theme:     th,
		podcast:   media.NewController(media.Audio, media.NamePodcast, d.Podcast),
		video:     media.NewController(media.Video, media.NameMainVideo, d.Video),
		toasts:    toast.NewStack(notifier, logger),
		nav:       nav.New(d.Page.NavLinks(), layout),
		effects:   scrollfx.New(scrollfx.Config{HeaderThreshold: cfg.HeaderThreshold(), RevealMargin: cfg.RevealMargin()}),
		res:       resources.New(tracker, d.Page.Resolve, d.ResourceOptions...),
		popups:    popupctl.New(),
		keys:      keymap.NewResolver(keymap.Bindings),
		tracker:   tracker,
		mediaKeys: d.Keys,
		stderr:    d.Stderr,
		seekStep:  cfg.SeekStep(),
		layout:    layout,
		regions:   &regions{},
		viewport:  viewport.New(0, 0),
		settled:   settled,
		scroll: debounce.New(cfg.ScrollDebounce(), func(offset int) {
			postLatest(settled, offset)
		}),
		lastSeen: -1,
	}
	m.viewport.MouseWheelEnabled = false
	m.viewport.KeyMap = viewport.KeyMap{}
	m.popups.SetMode(th.Mode())
	return m
}

// Init loads the media elements and starts the background watchers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadMedia(m.podcast, m.page.Podcast),
		m.loadMedia(m.video, m.page.Video),
		m.watchMedia(m.podcast),
		m.watchMedia(m.video),
		m.watchScroll(),
		m.watchMediaKeys(),
		m.watchStderr(),
	}
	m.publishStatus()
	return tea.Batch(cmds...)
}

// Mode returns the current theme mode.
func (m Model) Mode() theme.Mode { return m.theme.Mode() }

// YOffset returns the first visible content line.
func (m Model) YOffset() int { return m.viewport.YOffset }

// Active returns the id of the hovered or focused card.
func (m Model) Active() string { return m.active }

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool { return m.quitting }

func (m *Model) loadMedia(c *media.Controller, src page.Media) tea.Cmd {
	if src.Source == "" {
		return nil
	}
	return m.apply(c.Load())
}

// loadTrackInfo reads the podcast tags and cover for the card and MPRIS.
// Elements only know their tags once loaded.
func (m *Model) loadTrackInfo(el media.Element) {
	p, ok := el.(interface{ Info() *player.TrackInfo })
	if !ok {
		return
	}
	m.info = p.Info()
	if path, ok := el.(interface{ Path() string }); ok && path.Path() != "" {
		m.artPath = mpris.FindCoverArt(path.Path())
	}
	if m.info == nil || len(m.info.Cover) == 0 {
		return
	}
	art, err := cover.Decode(m.info.Cover)
	if err != nil {
		m.logger.Debug("podcast cover", "error", err)
		return
	}
	m.art = art
}

// closeMedia releases the audio output of both elements.
func (m *Model) closeMedia() {
	for _, c := range []*media.Controller{m.podcast, m.video} {
		if c.Element() == nil {
			continue
		}
		if err := c.Element().Close(); err != nil {
			m.logger.Warn("closing media", "media", c.Name(), "error", err)
		}
	}
}

type discardTracker struct{}

func (discardTracker) Track(string, map[string]any) bool { return false }
