package color

import (
	"strconv"

	"github.com/llehouerou/paneflare/internal/notification"
)

// Adapter resolves theme roles to colors the terminal can show.
type Adapter struct {
	theme        Theme
	capability   Capability
	highContrast bool
}

// NewAdapter creates an adapter for the given theme and terminal capability.
func NewAdapter(theme Theme, capability Capability, highContrast bool) *Adapter {
	return &Adapter{theme: theme, capability: capability, highContrast: highContrast}
}

// Theme returns the adapter's theme.
func (a *Adapter) Theme() Theme { return a.theme }

// Capability returns the terminal capability colors are quantized for.
func (a *Adapter) Capability() Capability { return a.capability }

// SetHighContrast toggles contrast boosting.
func (a *Adapter) SetHighContrast(enabled bool) {
	a.highContrast = enabled
}

// Adapt turns a logical hex color into a renderable color value:
// "#rrggbb" for true color, or a palette index ("0"-"255", "0"-"15") otherwise.
// The index form is what lipgloss.Color accepts. True color without contrast
// boosting returns hex unchanged.
func (a *Adapter) Adapt(hex string) string {
	if a.capability == TrueColor && !a.highContrast {
		return hex
	}
	c := FromHex(hex)
	if a.highContrast {
		c = c.IncreaseContrast()
	}
	switch a.capability {
	case Color256:
		return strconv.Itoa(int(c.ANSI256()))
	case Color16:
		return strconv.Itoa(int(c.ANSI16Index()))
	default:
		return c.Hex()
	}
}

// KindHex returns the theme color for a notification kind, before adaptation.
// ok is false for KindNone.
func (a *Adapter) KindHex(kind notification.Kind) (string, bool) {
	switch kind {
	case notification.KindSuccess:
		return a.theme.Success, true
	case notification.KindError:
		return a.theme.Error, true
	case notification.KindWarning, notification.KindAttention:
		return a.theme.Warning, true
	case notification.KindInfo:
		return a.theme.Info, true
	case notification.KindProgress:
		return a.theme.Highlight, true
	default:
		return "", false
	}
}

// KindColor returns the adapted color for a notification kind.
func (a *Adapter) KindColor(kind notification.Kind) (string, bool) {
	hex, ok := a.KindHex(kind)
	if !ok {
		return "", false
	}
	return a.Adapt(hex), true
}

func (a *Adapter) Background() string { return a.Adapt(a.theme.Background) }
func (a *Adapter) Foreground() string { return a.Adapt(a.theme.Foreground) }
func (a *Adapter) Dimmed() string     { return a.Adapt(a.theme.Dimmed) }
func (a *Adapter) Highlight() string  { return a.Adapt(a.theme.Highlight) }

// ApplyBrightness scales hex by b and adapts the result.
func (a *Adapter) ApplyBrightness(hex string, b float64) string {
	return a.Adapt(FromHex(hex).ApplyBrightness(b).Hex())
}

// Interpolate blends two colors linearly and adapts the result.
func (a *Adapter) Interpolate(from, to string, f float64) string {
	return a.Adapt(FromHex(from).Interpolate(FromHex(to), f).Hex())
}
