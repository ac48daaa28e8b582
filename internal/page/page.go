// Package page loads the showcase content and tracks where each section
// lands in the rendered view.
package page

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/showcase/internal/nav"
)

// Section kinds.
const (
	KindText      = "text"
	KindPodcast   = "podcast"
	KindVideo     = "video"
	KindResources = "resources"
	KindFeatures  = "features"
)

// Page is the showcase content.
type Page struct {
	Title     string     `koanf:"title"`
	Tagline   string     `koanf:"tagline"`
	Links     []Link     `koanf:"links"`
	Sections  []Section  `koanf:"sections"`
	Podcast   Media      `koanf:"podcast"`
	Video     Media      `koanf:"video"`
	Resources []Resource `koanf:"resources"`
	Features  []Feature  `koanf:"features"`

	dir string
}

// Link is a header navigation entry.
type Link struct {
	Label  string `koanf:"label"`
	Target string `koanf:"target"`
}

// Section is a block of the page, in display order.
type Section struct {
	ID    string `koanf:"id"`
	Title string `koanf:"title"`
	Kind  string `koanf:"kind"`
	Body  string `koanf:"body"`
}

// Media describes the podcast or video card.
type Media struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	Source      string `koanf:"source"`
}

// Resource is a downloadable or viewable PDF.
type Resource struct {
	Title    string `koanf:"title"`
	Path     string `koanf:"path"`
	Download bool   `koanf:"download"`
}

// Feature is an entry of the features grid.
type Feature struct {
	Title string `koanf:"title"`
	Body  string `koanf:"body"`
}

//go:embed default.toml
var defaultPage []byte

// rawBytes is a koanf provider over an in-memory document.
type rawBytes []byte

func (r rawBytes) ReadBytes() ([]byte, error) { return r, nil }

func (r rawBytes) Read() (map[string]any, error) {
	return nil, errors.New("raw bytes provider does not support Read")
}

// Default returns the built-in page.
func Default() (*Page, error) {
	k := koanf.New(".")
	if err := k.Load(rawBytes(defaultPage), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse built-in page: %w", err)
	}
	return unmarshal(k, "")
}

// Load reads a page from a TOML or YAML file. Relative media and resource
// paths are resolved against the file's directory.
func Load(path string) (*Page, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = toml.Parser()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("accessing page %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("reading page %s: %w", path, err)
	}
	return unmarshal(k, filepath.Dir(path))
}

func unmarshal(k *koanf.Koanf, dir string) (*Page, error) {
	p := &Page{dir: dir}
	if err := k.Unmarshal("", p); err != nil {
		return nil, fmt.Errorf("unmarshalling page: %w", err)
	}
	for i := range p.Sections {
		if p.Sections[i].Kind == "" {
			p.Sections[i].Kind = KindText
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks section ids are present and unique.
func (p *Page) Validate() error {
	seen := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// NavLinks returns the header links.
func (p *Page) NavLinks() []nav.Link {
	links := make([]nav.Link, len(p.Links))
	for i, l := range p.Links {
		links[i] = nav.Link{Label: l.Label, Target: l.Target}
	}
	return links
}

// Resolve makes a media or resource path absolute relative to the page
// file. Empty paths stay empty.
func (p *Page) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.dir == "" {
		return path
	}
	return filepath.Join(p.dir, path)
}
