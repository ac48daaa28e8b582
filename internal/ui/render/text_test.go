package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "Episode 12", "Episode 12"},
		{"control chars dropped", "a\x00b\x1bc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"multibyte kept", "café — ok", "café — ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := TruncateStyled(styled, 6)
	assert.Equal(t, 6, lipgloss.Width(got))
	assert.Empty(t, TruncateStyled(styled, 0))
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 10, "hello     "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		contains string
	}{
		{"truncate and pad", "hello world", 8, Ellipsis},
		{"just pad", "hi", 8, "hi"},
		{"wide runes", "音楽のポッドキャスト", 7, Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateAndPad(tt.input, tt.width)
			assert.Equal(t, tt.width, lipgloss.Width(got))
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		width       int
		wantWidth   int
	}{
		{"fits", "Showcase", "☾", 20, 20},
		{"too narrow keeps one space", "Showcase", "menu", 5, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(tt.left, tt.right, tt.width)
			assert.Equal(t, tt.wantWidth, lipgloss.Width(got))
			assert.True(t, strings.HasPrefix(got, tt.left))
			assert.True(t, strings.HasSuffix(got, tt.right))
		})
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab   ", Center("ab", 7))
	assert.Equal(t, "abc", Center("abc", 2))
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 10)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog",
		strings.Join(trimAll(lines), " "))

	t.Run("keeps paragraph breaks", func(t *testing.T) {
		lines := Wrap("one\n\ntwo", 10)
		assert.Equal(t, []string{"one", "", "two"}, lines)
	})
}

func trimAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
	assert.Equal(t, "a", Indent("a", -3))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "──────────", Separator(10))
	assert.Empty(t, Separator(-1))
}

func TestBlank(t *testing.T) {
	assert.Equal(t, "     ", Blank(5))
}
