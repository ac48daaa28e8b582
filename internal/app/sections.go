package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/icons"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/media"
	"github.com/llehouerou/showcase/internal/page"
	"github.com/llehouerou/showcase/internal/resources"
	"github.com/llehouerou/showcase/internal/scrollfx"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
	"github.com/llehouerou/showcase/internal/ui/transport"
)

// Hero rows holding text. Decoration never covers them.
const (
	heroTitleRow   = 3
	heroTaglineRow = 4
	heroHintRow    = 6
)

// block is a rendered part of the page before it is placed.
type block struct {
	lines   []string
	regions []region // rows relative to the block, columns relative to the column
}

// renderContent lays the page out for the current width and records the
// section offsets and clickable regions.
func (m *Model) renderContent() string {
	m.layout.Reset()
	m.regions.reset()

	t := styles.ForMode(m.theme.Mode())
	cw := ui.ContentWidth(m.Width)
	left := max((m.Width-cw)/2, 0)
	indent := strings.Repeat(" ", left)

	var lines []string
	place := func(id string, b block) {
		start := m.layout.Add(id, len(b.lines)).Start
		for _, l := range b.lines {
			lines = append(lines, indent+l)
		}
		for _, reg := range b.regions {
			reg.top += start
			reg.left += left
			if reg.transportRow >= 0 {
				reg.transportRow += start
				reg.transportLeft += left
			}
			reg.posterTop += start
			m.regions.add(reg)
		}
	}

	place("", m.renderHero(t, cw))
	for _, s := range m.page.Sections {
		place(s.ID, m.renderSection(s, t, cw))
	}
	place("", m.renderFooter(t, cw))

	return strings.Join(lines, "\n")
}

func (m *Model) renderHero(t *styles.Theme, cw int) block {
	rows := make([][]rune, ui.HeroHeight)
	for i := range rows {
		rows[i] = []rune(render.Blank(cw))
	}
	// Decoration drifts down at half the scroll speed so it appears to
	// scroll slower than the text.
	shift := scrollfx.Parallax(m.viewport.YOffset)
	for i := range cw / 6 {
		row := (i*5)%ui.HeroHeight + shift
		col := (i*37 + 11) % cw
		if row >= ui.HeroHeight || row == heroTitleRow || row == heroTaglineRow || row == heroHintRow {
			continue
		}
		rows[row][col] = '·'
	}

	lines := make([]string, ui.HeroHeight)
	for i, r := range rows {
		lines[i] = t.S().Subtle.Render(string(r))
	}
	title := render.Truncate(m.page.Title, cw)
	lines[heroTitleRow] = render.Center(styles.Gradient(title, t.Primary, t.Secondary, lipgloss.NewStyle().Bold(true)), cw)
	lines[heroTaglineRow] = render.Center(t.S().Muted.Render(render.Truncate(m.page.Tagline, cw)), cw)

	hint := icons.ScrollHint() + " " + m.page.Podcast.Title
	hint = render.Truncate(strings.TrimSpace(hint), cw)
	lines[heroHintRow] = render.Center(t.S().Link.Render(hint), cw)

	hw := lipgloss.Width(hint)
	return block{
		lines: lines,
		regions: []region{{
			id:           "hint",
			kind:         regionHint,
			top:          heroHintRow,
			height:       1,
			left:         (cw - hw) / 2,
			width:        hw,
			transportRow: -1,
		}},
	}
}

func (m *Model) renderSection(s page.Section, t *styles.Theme, cw int) block {
	progress := m.effects.FadeProgress(s.ID)
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Blend(t.BgBase, t.FgBase, progress)).
		Render(render.Truncate(s.Title, cw))
	muted := lipgloss.NewStyle().Foreground(styles.Blend(t.BgBase, t.FgMuted, progress))

	head := []string{"", heading, t.S().Subtle.Render(render.Separator(cw)), ""}
	if s.Body != "" {
		for _, l := range render.Wrap(s.Body, cw) {
			head = append(head, muted.Render(l))
		}
		head = append(head, "")
	}

	var body block
	switch s.Kind {
	case page.KindPodcast:
		body = m.renderPodcast(t, cw)
	case page.KindVideo:
		body = m.renderVideo(t, cw)
	case page.KindResources:
		body = m.renderResources(t, cw)
	case page.KindFeatures:
		body = m.renderFeatures(t, cw, progress)
	}

	out := block{lines: head}
	for _, reg := range body.regions {
		reg.top += len(head)
		if reg.transportRow >= 0 {
			reg.transportRow += len(head)
		}
		reg.posterTop += len(head)
		out.regions = append(out.regions, reg)
	}
	out.lines = append(out.lines, body.lines...)
	out.lines = append(out.lines, "")
	return out
}

// card wraps content lines in a card border. Lines are padded to the inner
// width so every card row is exactly cw wide.
func card(t *styles.Theme, content []string, cw int, active bool) []string {
	inner := max(cw-ui.CardChromeWidth, 1)
	padded := make([]string, len(content))
	for i, l := range content {
		padded[i] = render.Pad(render.TruncateStyled(l, inner), inner)
	}
	return strings.Split(t.CardStyle(active).Render(strings.Join(padded, "\n")), "\n")
}

// Position of the first content cell inside a card.
const (
	cardTop  = 1
	cardLeft = 2
)

// description renders up to two wrapped lines of a media description.
func description(t *styles.Theme, text string, width int) []string {
	if text == "" {
		return nil
	}
	lines := render.Wrap(text, width)
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] = render.Truncate(lines[1]+" "+render.Ellipsis, width)
	}
	for i, l := range lines {
		lines[i] = t.S().Muted.Render(l)
	}
	return lines
}

func (m *Model) renderPodcast(t *styles.Theme, cw int) block {
	inner := max(cw-ui.CardChromeWidth, 1)
	src := m.page.Podcast
	view := m.podcast.View()

	title, artist := src.Title, ""
	if m.info != nil {
		if m.info.Title != "" && title == "" {
			title = m.info.Title
		}
		artist = m.info.Artist
	}

	textWidth := inner
	var art []string
	if m.art != nil && inner >= 40 {
		aw, ah := m.art.Size(inner/4, 6)
		if aw > 0 && ah > 0 {
			art = strings.Split(m.art.Render(aw, ah), "\n")
			textWidth = inner - aw - 2
		}
	}

	text := []string{t.S().Title.Render(render.Truncate(title, textWidth))}
	if artist != "" {
		text = append(text, t.S().Muted.Render(render.Truncate(artist, textWidth)))
	}
	text = append(text, description(t, src.Description, textWidth)...)
	meta := icons.FormatPodcast("Podcast") + " · " + view.DurationLabel
	if m.podcast.State() == media.StateErrored {
		meta = icons.FormatPodcast("Unavailable")
	}
	text = append(text, t.S().Subtle.Render(render.Truncate(meta, textWidth)))

	content := text
	if len(art) > 0 {
		aw := lipgloss.Width(art[0])
		content = make([]string, max(len(art), len(text)))
		for i := range content {
			a, tx := render.Blank(aw), ""
			if i < len(art) {
				a = art[i]
			}
			if i < len(text) {
				tx = text[i]
			}
			content[i] = a + "  " + tx
		}
	}
	content = append(content, "", transport.Render(view, inner, t))
	transportRow := cardTop + len(content) - 1

	return block{
		lines: card(t, content, cw, m.active == page.KindPodcast),
		regions: []region{{
			id:             page.KindPodcast,
			kind:           regionCard,
			height:         len(content) + 2,
			width:          cw,
			transportRow:   transportRow,
			transportLeft:  cardLeft,
			transportWidth: inner,
		}},
	}
}

func (m *Model) renderVideo(t *styles.Theme, cw int) block {
	inner := max(cw-ui.CardChromeWidth, 1)
	src := m.page.Video
	view := m.video.View()

	content := []string{t.S().Title.Render(render.Truncate(src.Title, inner))}
	content = append(content, description(t, src.Description, inner)...)
	content = append(content, "")
	posterTop := cardTop + len(content)

	var screen string
	if view.OverlayVisible {
		screen = transport.Poster(src.Title, inner, ui.PosterHeight, t)
	} else {
		rows := make([]string, ui.PosterHeight)
		for i := range rows {
			rows[i] = render.Blank(inner)
		}
		playing := icons.FormatVideo(src.Title) + "  " + view.TimeLabel
		rows[ui.PosterHeight/2] = render.Center(t.S().Playing.Render(render.Truncate(playing, inner)), inner)
		screen = strings.Join(rows, "\n")
	}
	content = append(content, strings.Split(screen, "\n")...)
	content = append(content, "", transport.Render(view, inner, t))

	return block{
		lines: card(t, content, cw, m.active == page.KindVideo),
		regions: []region{{
			id:             page.KindVideo,
			kind:           regionCard,
			height:         len(content) + 2,
			width:          cw,
			transportRow:   cardTop + len(content) - 1,
			transportLeft:  cardLeft,
			transportWidth: inner,
			posterTop:      posterTop,
			posterHeight:   ui.PosterHeight,
		}},
	}
}

func (m *Model) renderResources(t *styles.Theme, cw int) block {
	var b block
	for i, r := range m.page.Resources {
		id := resourceID(i)
		marker, style := "   ", t.S().Base
		if m.active == id {
			marker, style = " › ", t.S().Playing
		}
		label := icons.Resource(r.Download) + " " + m.res.Describe(r)
		line := marker + style.Render(label) + "  " + t.S().Subtle.Render(string(resources.ActionFor(r)))
		b.lines = append(b.lines, render.Pad(render.TruncateStyled(line, cw), cw))
		b.regions = append(b.regions, region{
			id:           id,
			kind:         regionResource,
			top:          i,
			height:       1,
			width:        cw,
			transportRow: -1,
		})
	}
	return b
}

func (m *Model) renderFeatures(t *styles.Theme, cw int, progress float64) block {
	cols := ui.FeatureColumns(cw)
	colWidth := max((cw-2*(cols-1))/cols, ui.CardChromeWidth+1)
	inner := colWidth - ui.CardChromeWidth
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Blend(t.BgBase, t.Primary, progress))

	var b block
	for rowStart := 0; rowStart < len(m.page.Features); rowStart += cols {
		rowEnd := min(rowStart+cols, len(m.page.Features))
		contents := make([][]string, 0, cols)
		height := 0
		for _, f := range m.page.Features[rowStart:rowEnd] {
			c := []string{titleStyle.Render(render.Truncate(f.Title, inner))}
			for _, l := range render.Wrap(f.Body, inner) {
				c = append(c, t.S().Muted.Render(l))
			}
			contents = append(contents, c)
			height = max(height, len(c))
		}

		cards := make([][]string, len(contents))
		for i, c := range contents {
			for len(c) < height {
				c = append(c, "")
			}
			id := featureID(rowStart + i)
			cards[i] = card(t, c, colWidth, m.effects.Hovered(id))
			b.regions = append(b.regions, region{
				id:           id,
				kind:         regionFeature,
				top:          len(b.lines),
				height:       height + 2,
				left:         i * (colWidth + 2),
				width:        colWidth,
				transportRow: -1,
			})
		}
		for r := range height + 2 {
			parts := make([]string, len(cards))
			for i := range cards {
				parts[i] = cards[i][r]
			}
			b.lines = append(b.lines, strings.Join(parts, "  "))
		}
		b.lines = append(b.lines, "")
	}
	return b
}

func (m *Model) renderFooter(t *styles.Theme, cw int) block {
	hint := strings.Join([]string{
		m.keys.Hint(keymap.ActionHelp, "help"),
		m.keys.Hint(keymap.ActionJumpPrompt, "jump"),
		m.keys.Hint(keymap.ActionQuit, "quit"),
	}, " · ")
	return block{lines: []string{
		t.S().Subtle.Render(render.Separator(cw)),
		render.Center(t.S().Subtle.Render(render.Truncate(hint, cw)), cw),
		"",
	}}
}
