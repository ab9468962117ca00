package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the plain panel style based on focus state.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	c := t.Border
	if focused {
		c = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c)
}

// NotifyPanelStyle is a panel drawn with a notification border.
func NotifyPanelStyle(border lipgloss.Border, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(c)
}
