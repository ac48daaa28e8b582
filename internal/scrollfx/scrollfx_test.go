package scrollfx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/page"
)

func testBlocks() []page.Block {
	l := page.NewLayout()
	l.Add("home", 10)    // 0..10
	l.Add("podcast", 20) // 10..30
	l.Add("", 2)         // spacer
	l.Add("video", 20)   // 32..52
	return l.Blocks()
}

func TestVisibleRatio(t *testing.T) {
	b := page.Block{ID: "x", Start: 10, Height: 20}

	tests := []struct {
		name           string
		offset, height int
		want           float64
	}{
		{"fully inside", 0, 40, 1},
		{"above viewport", 30, 10, 0},
		{"below viewport", 0, 10, 0},
		{"top two lines", 0, 12, 0.1},
		{"half", 20, 20, 0.5},
		{"empty viewport", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleRatio(b, tt.offset, tt.height), 1e-9)
		})
	}
}

func TestObserve_RevealsOnceWithMargin(t *testing.T) {
	c := New(Config{RevealMargin: 2})
	blocks := testBlocks()

	// Viewport 0..12, shrunk to 0..10: podcast not visible yet.
	assert.Equal(t, []string{"home"}, c.Observe(blocks, 0, 12))
	assert.False(t, c.Revealed("podcast"))

	// Viewport 0..14 shrunk to 0..12: podcast shows 2 of 20 lines (10%).
	assert.Equal(t, []string{"podcast"}, c.Observe(blocks, 0, 14))

	assert.Equal(t, []string{"video"}, c.Observe(blocks, 40, 14))

	// Scrolling back never un-reveals and never re-reports.
	assert.Empty(t, c.Observe(blocks, 0, 14))
	assert.True(t, c.Revealed("home"))
	assert.True(t, c.Revealed("video"))
}

func TestObserve_BelowThreshold(t *testing.T) {
	c := New(Config{RevealMargin: 0})
	blocks := []page.Block{{ID: "tall", Start: 9, Height: 100}}

	// 1 of 100 lines visible.
	assert.Empty(t, c.Observe(blocks, 0, 10))
}

func TestFade(t *testing.T) {
	c := New(Config{})
	c.Observe([]page.Block{{ID: "home", Start: 0, Height: 5}}, 0, 20)

	assert.Zero(t, c.FadeProgress("home"))
	assert.True(t, c.Fading())

	for i := 1; i < FadeFrames; i++ {
		assert.True(t, c.AdvanceFade())
	}
	assert.False(t, c.AdvanceFade())
	assert.InDelta(t, 1, c.FadeProgress("home"), 1e-9)
	assert.Zero(t, c.FadeProgress("unknown"))
}

func TestParallax(t *testing.T) {
	tests := map[int]int{0: 0, 1: 0, 2: 1, 7: 3, 100: 50}
	for in, want := range tests {
		assert.Equal(t, want, Parallax(in), "scrollY=%d", in)
	}
}

func TestUpdateHeader(t *testing.T) {
	c := New(Config{HeaderThreshold: 3})

	assert.False(t, c.UpdateHeader(0))
	assert.False(t, c.UpdateHeader(3))
	assert.True(t, c.UpdateHeader(4))
	assert.True(t, c.HeaderScrolled())
	assert.False(t, c.UpdateHeader(1))
}

func TestCardLift(t *testing.T) {
	c := New(Config{})

	assert.Equal(t, LiftNone, c.Lift("podcast"))
	c.Leave("podcast")
	assert.Equal(t, LiftNone, c.Lift("podcast"))

	c.Enter("podcast")
	assert.Equal(t, LiftHover, c.Lift("podcast"))
	assert.True(t, c.Hovered("podcast"))

	c.Leave("podcast")
	assert.Equal(t, LiftSettled, c.Lift("podcast"))
	assert.False(t, c.Hovered("podcast"))
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultHeaderThreshold, c.cfg.HeaderThreshold)
	assert.InDelta(t, DefaultRevealRatio, c.cfg.RevealRatio, 1e-9)
}
