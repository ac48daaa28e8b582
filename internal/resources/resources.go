// Package resources opens and downloads the PDFs listed on the page.
package resources

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/showcase/internal/page"
	"github.com/llehouerou/showcase/internal/tracker"
)

// Action is what activating a resource does.
type Action string

const (
	ActionDownload Action = "download"
	ActionView     Action = "view"
)

// ActionFor returns download for resources flagged as downloads, view
// otherwise.
func ActionFor(r page.Resource) Action {
	if r.Download {
		return ActionDownload
	}
	return ActionView
}

// Tracker receives interaction events.
type Tracker interface {
	Track(name string, data map[string]any) bool
}

// Opener shows a file with the platform viewer.
type Opener func(path string) error

// Result describes a completed activation.
type Result struct {
	Action Action
	Path   string // saved copy for downloads, source for views
	Size   int64
}

// Message is the user-facing confirmation.
func (r Result) Message() string {
	name := filepath.Base(r.Path)
	if r.Action == ActionDownload {
		return fmt.Sprintf("Saved %s (%s)", name, humanize.Bytes(uint64(max(r.Size, 0))))
	}
	return "Opened " + name
}

// Service performs resource actions.
type Service struct {
	tracker     Tracker
	resolve     func(string) string
	open        Opener
	downloadDir string
}

// Option configures a Service.
type Option func(*Service)

// WithOpener replaces the platform opener.
func WithOpener(o Opener) Option {
	return func(s *Service) { s.open = o }
}

// WithDownloadDir sets where downloads are saved.
func WithDownloadDir(dir string) Option {
	return func(s *Service) { s.downloadDir = dir }
}

// New creates a service. resolve maps page paths to file paths and may be
// nil.
func New(t Tracker, resolve func(string) string, opts ...Option) *Service {
	s := &Service{
		tracker:     t,
		resolve:     resolve,
		open:        OpenFile,
		downloadDir: xdg.UserDirs.Download,
	}
	for _, o := range opts {
		o(s)
	}
	if s.resolve == nil {
		s.resolve = func(p string) string { return p }
	}
	return s
}

// Activate tracks the interaction and then downloads or opens r.
func (s *Service) Activate(r page.Resource) (Result, error) {
	action := ActionFor(r)
	if s.tracker != nil {
		s.tracker.Track(tracker.PDFInteraction, map[string]any{
			"pdf":    r.Path,
			"action": string(action),
		})
	}

	src := s.resolve(r.Path)
	info, err := os.Stat(src)
	if err != nil {
		return Result{}, err
	}

	if action == ActionView {
		if err := s.open(src); err != nil {
			return Result{}, fmt.Errorf("open %s: %w", filepath.Base(src), err)
		}
		return Result{Action: ActionView, Path: src, Size: info.Size()}, nil
	}

	dest, err := s.copyToDownloads(src)
	if err != nil {
		return Result{}, err
	}
	return Result{Action: ActionDownload, Path: dest, Size: info.Size()}, nil
}

// Describe returns the title with the file size, or the title alone when
// the file cannot be read.
func (s *Service) Describe(r page.Resource) string {
	info, err := os.Stat(s.resolve(r.Path))
	if err != nil {
		return r.Title
	}
	return fmt.Sprintf("%s · %s", r.Title, humanize.Bytes(uint64(info.Size())))
}

func (s *Service) copyToDownloads(src string) (string, error) {
	if s.downloadDir == "" {
		return "", errors.New("no download directory")
	}
	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", err
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	dest, out, err := createUnique(s.downloadDir, filepath.Base(src))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dest, nil
}

// createUnique creates name in dir, adding " (n)" before the extension
// when the name is taken.
func createUnique(dir, name string) (string, *os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 0; n < 1000; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return path, f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", nil, err
		}
	}
	return "", nil, fmt.Errorf("no free name for %s in %s", name, dir)
}

// OpenFile opens path with the desktop's default viewer.
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
