package cover

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrNoImage)

	_, err = Decode([]byte("not an image"))
	require.Error(t, err)
}

func TestRender_Dimensions(t *testing.T) {
	art, err := Decode(pngBytes(t, 64, 64))
	require.NoError(t, err)

	got := art.Render(12, 6)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 12, lipgloss.Width(l))
		assert.Equal(t, strings.Repeat(upperHalf, 12), ansi.Strip(l))
	}
}

func TestRender_Cached(t *testing.T) {
	art, err := Decode(pngBytes(t, 16, 16))
	require.NoError(t, err)

	first := art.Render(8, 4)
	assert.Equal(t, first, art.Render(8, 4))
	assert.Len(t, strings.Split(art.Render(4, 2), "\n"), 2)
}

func TestRender_Empty(t *testing.T) {
	var art *Art
	assert.Empty(t, art.Render(10, 10))

	art, err := Decode(pngBytes(t, 4, 4))
	require.NoError(t, err)
	assert.Empty(t, art.Render(0, 3))
}

func TestSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"square limited by width", 100, 100, 20, 20, 20, 10},
		{"square limited by height", 100, 100, 40, 8, 16, 8},
		{"wide image", 200, 100, 20, 20, 20, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := Decode(pngBytes(t, tt.w, tt.h))
			require.NoError(t, err)
			w, h := art.Size(tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
