package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/paneflare/internal/color"
)

// ApplyGradient renders text with a horizontal gradient between two theme hex colors.
func ApplyGradient(text, from, to string) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal gradient.
func ApplyBoldGradient(text, from, to string) string {
	return applyGradient(text, true, from, to)
}

func applyGradient(text string, bold bool, from, to string) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	a := T().Adapter()
	style := func(hex string) lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(a.Adapt(hex)))
		if bold {
			s = s.Bold(true)
		}
		return s
	}

	if len(clusters) == 1 {
		return style(from).Render(text)
	}

	// Blended in HCL for perceptually even steps.
	colors := color.HCLGradient(color.FromHex(from), color.FromHex(to), len(clusters))

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(style(colors[i].Hex()).Render(cluster))
	}
	return b.String()
}
