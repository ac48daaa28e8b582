// Package cover renders embedded cover art as colored half-block cells so the
// podcast card can show its artwork in any true-color terminal.
package cover

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder for embedded art
	_ "image/png"  // PNG decoder for embedded art
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// upperHalf paints the top pixel with the foreground and the bottom pixel
// with the background, giving two pixel rows per terminal row.
const upperHalf = "▀"

// ErrNoImage is returned when there is no artwork to decode.
var ErrNoImage = errors.New("no cover image")

// Art is a decoded cover with a cache of its last rendering.
type Art struct {
	img image.Image

	width, height int
	rendered      string
}

// Decode parses JPEG or PNG bytes.
func Decode(data []byte) (*Art, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}
	return &Art{img: img}, nil
}

// Render returns the cover as height lines of width cells. The image is
// scaled to fill width×2·height pixels.
func (a *Art) Render(width, height int) string {
	if a == nil || width <= 0 || height <= 0 {
		return ""
	}
	if a.rendered != "" && a.width == width && a.height == height {
		return a.rendered
	}

	scaled := resize.Resize(uint(width), uint(height*2), a.img, resize.Lanczos3)
	b := scaled.Bounds()

	var sb strings.Builder
	for row := range height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range width {
			top := hex(scaled.At(b.Min.X+col, b.Min.Y+row*2))
			bottom := hex(scaled.At(b.Min.X+col, b.Min.Y+row*2+1))
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render(upperHalf))
		}
	}

	a.width, a.height = width, height
	a.rendered = sb.String()
	return a.rendered
}

// Size returns the cell size that keeps the image aspect ratio within
// maxWidth×maxHeight cells.
func (a *Art) Size(maxWidth, maxHeight int) (width, height int) {
	if a == nil || maxWidth <= 0 || maxHeight <= 0 {
		return 0, 0
	}
	b := a.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, 0
	}
	// one cell is one pixel wide and two pixels tall
	width = maxWidth
	height = max(width*b.Dy()/b.Dx()/2, 1)
	if height > maxHeight {
		height = maxHeight
		width = max(height*2*b.Dx()/b.Dy(), 1)
	}
	return width, height
}

func hex(c color.Color) lipgloss.Color {
	cf, _ := colorful.MakeColor(c)
	return lipgloss.Color(cf.Clamped().Hex())
}
