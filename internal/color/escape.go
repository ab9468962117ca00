package color

import "fmt"

// Reset is the SGR sequence that restores default attributes.
const Reset = "\x1b[0m"

// FgEscape returns the SGR sequence selecting hex as foreground at the adapter's capability.
func (a *Adapter) FgEscape(hex string) string {
	c := FromHex(hex)
	switch a.capability {
	case Color256:
		return fmt.Sprintf("\x1b[38;5;%dm", c.ANSI256())
	case Color16:
		return fmt.Sprintf("\x1b[%dm", c.ANSI16())
	default:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
}

// BgEscape returns the SGR sequence selecting hex as background.
func (a *Adapter) BgEscape(hex string) string {
	c := FromHex(hex)
	switch a.capability {
	case Color256:
		return fmt.Sprintf("\x1b[48;5;%dm", c.ANSI256())
	case Color16:
		return fmt.Sprintf("\x1b[%dm", c.ANSI16()+10)
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
	}
}

// Reset returns the reset sequence.
func (a *Adapter) Reset() string {
	return Reset
}

// Swatch renders text with hex as foreground followed by a reset.
func (a *Adapter) Swatch(hex, text string) string {
	return a.FgEscape(hex) + text + Reset
}
