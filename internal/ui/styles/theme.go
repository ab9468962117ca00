package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/paneflare/internal/color"
)

// Theme defines the color palette and pre-built styles for the application.
// Every color is already adapted to the terminal's capability.
type Theme struct {
	Name string

	// Accents
	Primary   lipgloss.Color // highlight role, focused pane
	Secondary lipgloss.Color // info role

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	adapter *color.Adapter
	styles  *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Focused lipgloss.Style // label of the focused pane
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// FromAdapter builds a theme from the adapter's color theme and capability.
func FromAdapter(a *color.Adapter) *Theme {
	ct := a.Theme()
	c := func(hex string) lipgloss.Color { return lipgloss.Color(a.Adapt(hex)) }

	return &Theme{
		Name:        ct.Name,
		Primary:     c(ct.Highlight),
		Secondary:   c(ct.Info),
		FgBase:      c(ct.Foreground),
		FgMuted:     c(ct.Dimmed),
		FgSubtle:    lipgloss.Color(a.Interpolate(ct.Dimmed, ct.Background, 0.4)),
		BgBase:      c(ct.Background),
		BgCursor:    lipgloss.Color(a.Interpolate(ct.Background, ct.Foreground, 0.15)),
		Border:      c(ct.Dimmed),
		BorderFocus: c(ct.Highlight),
		Success:     c(ct.Success),
		Error:       c(ct.Error),
		Warning:     c(ct.Warning),
		Info:        c(ct.Info),
		adapter:     a,
	}
}

var current = FromAdapter(color.NewAdapter(color.DefaultTheme, color.TrueColor, false))

// T returns the active theme.
func T() *Theme {
	return current
}

// Set replaces the active theme. Call from the UI goroutine only.
func Set(t *Theme) {
	if t != nil {
		current = t
	}
}

// Adapter returns the color adapter the theme was built from.
func (t *Theme) Adapter() *color.Adapter {
	return t.adapter
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Focused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
	}
}
