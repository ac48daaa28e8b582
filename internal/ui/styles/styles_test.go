package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/theme"
)

func TestForMode(t *testing.T) {
	assert.Equal(t, theme.Light, ForMode(theme.Light).Mode)
	assert.Equal(t, theme.Dark, ForMode(theme.Dark).Mode)
}

func TestHeaderBackground(t *testing.T) {
	tests := []struct {
		mode     theme.Mode
		scrolled bool
		want     lipgloss.Color
	}{
		{theme.Light, false, lightTheme.BgHeader},
		{theme.Light, true, lightTheme.BgHeaderScrolled},
		{theme.Dark, false, darkTheme.BgHeader},
		{theme.Dark, true, darkTheme.BgHeaderScrolled},
	}
	for _, tt := range tests {
		got := HeaderBackground(tt.mode, tt.scrolled)
		assert.Equal(t, tt.want, got, "mode=%s scrolled=%v", tt.mode, tt.scrolled)
	}
	assert.NotEqual(t, HeaderBackground(theme.Dark, true), HeaderBackground(theme.Light, true))
}

func TestStatusColor(t *testing.T) {
	th := ForMode(theme.Light)

	assert.Equal(t, th.Success, th.StatusColor("success"))
	assert.Equal(t, th.Info, th.StatusColor("info"))
	assert.Equal(t, th.Error, th.StatusColor("error"))
	assert.Equal(t, th.Error, th.StatusColor("warning"))
}

func TestBlend_Endpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, to, Blend(from, to, 1))
	assert.Equal(t, to, Blend(from, to, 7))
	assert.Equal(t, from, Blend(from, to, -1))
}

func TestBlendColors_Size(t *testing.T) {
	assert.Len(t, blendColors(5, "#6366f1", "#8b5cf6"), 5)
	assert.Len(t, blendColors(1, "#6366f1", "#8b5cf6"), 1)
}

func TestApplyGradient_Empty(t *testing.T) {
	assert.Empty(t, ApplyGradient("", "#6366f1", "#8b5cf6"))
}

func TestGradient_KeepsText(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#0f172a"))
	got := Gradient("Showcase", "#6366f1", "#8b5cf6", base)
	assert.Equal(t, "Showcase", ansi.Strip(got))
	assert.Equal(t, 8, lipgloss.Width(got))
}
