package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestFindLine(t *testing.T) {
	out := "Help\n\nPlay / pause\nSeek"
	assert.Equal(t, "Play / pause", FindLine(out, "pause"))
	assert.Empty(t, FindLine(out, "missing"))
	assert.True(t, ContainsLine(out, "Seek"))
	assert.Equal(t, 2, LineIndex(out, "Play"))
	assert.Equal(t, -1, LineIndex(out, "missing"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n\n  \n"))
}
