// Package color models RGB colors and adapts them to the terminal's capabilities.
package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex parses "#RRGGBB" or "RRGGBB", case-insensitively.
// Anything else, including non-hex digits, yields black.
func FromHex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 || !isHex(s) {
		return Black
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Black
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// ValidHex reports whether s parses as a color.
func ValidHex(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	return len(s) == 6 && isHex(s)
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex returns "#rrggbb" in lowercase.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Interpolate blends linearly toward other. f is clamped to [0,1].
func (c Color) Interpolate(other Color, f float64) Color {
	f = clamp(f, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*f)
	}
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

// ApplyBrightness scales every channel by m, saturating at 255. m > 1 brightens.
func (c Color) ApplyBrightness(m float64) Color {
	if m < 0 {
		m = 0
	}
	return c.scale(m)
}

// Luminance returns the perceived brightness in [0,1].
func (c Color) Luminance() float64 {
	return c.luma() / 255
}

// IsLight reports whether the luminance is above one half.
func (c Color) IsLight() bool {
	return c.Luminance() > 0.5
}

// IncreaseContrast pushes light colors lighter and dark colors darker.
func (c Color) IncreaseContrast() Color {
	if c.luma() > 127 {
		return c.scale(1.2)
	}
	return c.scale(0.9)
}

// BlendHCL blends toward other in HCL space, which keeps perceived lightness even.
func (c Color) BlendHCL(other Color, f float64) Color {
	f = clamp(f, 0, 1)
	r, g, b := c.toColorful().BlendHcl(other.toColorful(), f).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c Color) luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func (c Color) scale(m float64) Color {
	ch := func(v uint8) uint8 {
		return uint8(clamp(float64(v)*m, 0, 255))
	}
	return Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
