package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/showcase/internal/app"
	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/mpris"
	"github.com/llehouerou/showcase/internal/notify"
	"github.com/llehouerou/showcase/internal/page"
	"github.com/llehouerou/showcase/internal/player"
	"github.com/llehouerou/showcase/internal/state"
	"github.com/llehouerou/showcase/internal/stderr"
	"github.com/llehouerou/showcase/internal/tracker"
)

var (
	cfgFile   string
	pageFile  string
	iconStyle string
)

var rootCmd = &cobra.Command{
	Use:          "showcase",
	Short:        "Terminal showcase page with podcast and video players",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.Flags().StringVar(&pageFile, "page", "", "page file (TOML or YAML)")
	rootCmd.Flags().StringVar(&iconStyle, "icons", "", `icon style: "nerd", "unicode" or "none"`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("Error: %v\n", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if pageFile != "" {
		cfg.Page = pageFile
	}
	if iconStyle != "" {
		cfg.Icons = iconStyle
	}

	// Capture before the audio backend initializes.
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	events := tracker.New(logger.With("source", "tracker"), tracker.DefaultBuffer)
	defer events.Close()

	pg, err := loadPage(cfg.Page)
	if err != nil {
		return err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer stateMgr.Close()

	notifier := notify.Disabled()
	if cfg.DesktopNotifications() {
		if n, err := notify.New(); err != nil {
			logger.Warn("desktop notifications unavailable", "error", err)
		} else {
			notifier = n
		}
	}

	d := app.Deps{
		Config:   cfg,
		Page:     pg,
		Store:    stateMgr,
		Podcast:  player.New(pg.Resolve(pg.Podcast.Source)),
		Video:    player.New(pg.Resolve(pg.Video.Source)),
		Tracker:  events,
		Notifier: notifier,
		Logger:   logger,
		Stderr:   stderr.Messages,
	}
	if keys, err := mpris.New(); err != nil {
		logger.Warn("media keys unavailable", "error", err)
	} else {
		defer keys.Close()
		d.Keys = keys
	}

	icons.Init(cfg.Icons)
	logger.Info("starting", "page", pg.Title, "sections", len(pg.Sections))

	p := tea.NewProgram(app.New(d), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func loadPage(path string) (*page.Page, error) {
	if path == "" {
		return page.Default()
	}
	return page.Load(path)
}

// openLog opens the JSON log, by default under the XDG state directory.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		p, err := xdg.StateFile(filepath.Join("showcase", "events.log"))
		if err != nil {
			return nil, fmt.Errorf("resolving log path: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	return f, nil
}
