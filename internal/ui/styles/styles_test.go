package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/paneflare/internal/color"
)

func TestFromAdapter_TrueColor(t *testing.T) {
	theme := FromAdapter(color.NewAdapter(color.DefaultTheme, color.TrueColor, false))

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, lipgloss.Color(color.DefaultTheme.Success), theme.Success)
	assert.Equal(t, lipgloss.Color(color.DefaultTheme.Highlight), theme.BorderFocus)
	assert.Equal(t, lipgloss.Color(color.DefaultTheme.Dimmed), theme.FgMuted)
}

func TestFromAdapter_Quantized(t *testing.T) {
	dracula, _ := color.Preset("dracula")
	theme := FromAdapter(color.NewAdapter(dracula, color.Color16, false))

	assert.Equal(t, lipgloss.Color("9"), theme.Error)
	assert.NotContains(t, string(theme.FgSubtle), "#")
}

func TestSet(t *testing.T) {
	prev := T()
	defer Set(prev)

	nord, _ := color.Preset("nord")
	Set(FromAdapter(color.NewAdapter(nord, color.TrueColor, false)))
	assert.Equal(t, "nord", T().Name)

	Set(nil)
	assert.Equal(t, "nord", T().Name)
}

func TestStylesCached(t *testing.T) {
	theme := FromAdapter(color.NewAdapter(color.DefaultTheme, color.TrueColor, false))
	assert.Same(t, theme.S(), theme.S())
}

func TestApplyGradient_PreservesText(t *testing.T) {
	tests := []string{"", "x", "paneflare", "héllo 👋"}
	for _, text := range tests {
		got := ApplyGradient(text, "#ff0000", "#0000ff")
		assert.Equal(t, text, ansi.Strip(got))
	}
	assert.Equal(t, "bold", ansi.Strip(ApplyBoldGradient("bold", "#ffffff", "#000000")))
}
