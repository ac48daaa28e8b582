package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Showcase", p.Title)
	require.NotEmpty(t, p.Sections)
	assert.Equal(t, "home", p.Sections[0].ID)

	kinds := map[string]bool{}
	for _, s := range p.Sections {
		kinds[s.Kind] = true
	}
	assert.True(t, kinds[KindPodcast])
	assert.True(t, kinds[KindVideo])

	links := p.NavLinks()
	require.NotEmpty(t, links)
	assert.Equal(t, "home", links[0].ID())
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Studio"

[[sections]]
id = "intro"
title = "Intro"

[[sections]]
id = "podcast"
kind = "podcast"

[podcast]
title = "Ep 2"
source = "media/ep2.mp3"

[[resources]]
title = "Guide"
path = "/srv/guide.pdf"
download = true
`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Studio", p.Title)
	assert.Equal(t, KindText, p.Sections[0].Kind)
	assert.Equal(t, filepath.Join(dir, "media/ep2.mp3"), p.Resolve(p.Podcast.Source))
	assert.Equal(t, "/srv/guide.pdf", p.Resolve(p.Resources[0].Path))
	assert.True(t, p.Resources[0].Download)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Studio
sections:
  - id: intro
    title: Intro
video:
  title: Tour
  source: tour.ogg
`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Studio", p.Title)
	assert.Equal(t, "Tour", p.Video.Title)
	require.Len(t, p.Sections, 1)
}

func TestLoad_DuplicateSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[sections]]
id = "a"

[[sections]]
id = "a"
`), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, `duplicate section id "a"`)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestResolve_Empty(t *testing.T) {
	p := &Page{dir: "/pages"}
	assert.Empty(t, p.Resolve(""))
	assert.Equal(t, "/pages/a.mp3", p.Resolve("a.mp3"))
}

func TestLayout(t *testing.T) {
	l := NewLayout()
	l.Add("home", 5)
	l.Add("", 1)
	l.Add("podcast", 8)
	l.Add("video", 10)

	off, ok := l.SectionOffset("podcast")
	require.True(t, ok)
	assert.Equal(t, 6, off)

	b, ok := l.Block("video")
	require.True(t, ok)
	assert.Equal(t, 14, b.Start)
	assert.Equal(t, 24, b.End())
	assert.Equal(t, 24, l.Height())

	_, ok = l.SectionOffset("missing")
	assert.False(t, ok)
	assert.Len(t, l.Blocks(), 4)
}

func TestLayout_Reset(t *testing.T) {
	l := NewLayout()
	l.Add("home", 5)
	l.Add("podcast", 8)

	l.Reset()
	assert.Zero(t, l.Height())
	_, ok := l.SectionOffset("podcast")
	assert.False(t, ok)

	l.Add("podcast", 3)
	off, ok := l.SectionOffset("podcast")
	require.True(t, ok)
	assert.Equal(t, 0, off)
}
