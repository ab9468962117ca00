package color

import "math"

// ANSI256 maps the color to the xterm 256-color palette.
// Exact grays use the 24-step ramp, everything else the 6x6x6 cube.
func (c Color) ANSI256() uint8 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return 16
		case c.R > 248:
			return 231
		default:
			return uint8((float64(c.R)-8)/247*24) + 232
		}
	}

	cube := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) / 255 * 5))
	}
	return 16 + 36*cube(c.R) + 6*cube(c.G) + cube(c.B)
}

// ANSI16 returns the SGR foreground code (30-37 or 90-97) closest to the color.
func (c Color) ANSI16() uint8 {
	maxC := max(c.R, c.G, c.B)
	if maxC < 64 {
		return 30
	}

	code := uint8(30)
	if c.R > 127 {
		code++
	}
	if c.G > 127 {
		code += 2
	}
	if c.B > 127 {
		code += 4
	}
	if maxC > 192 {
		code += 60
	}
	return code
}

// ANSI16Index returns the palette index (0-15) for ANSI16.
func (c Color) ANSI16Index() uint8 {
	code := c.ANSI16()
	if code >= 90 {
		return code - 90 + 8
	}
	return code - 30
}
