package color

import (
	"strings"

	"github.com/muesli/termenv"
)

// Capability is how many colors the terminal can show.
type Capability uint8

const (
	TrueColor Capability = iota
	Color256
	Color16
)

func (c Capability) String() string {
	switch c {
	case Color256:
		return "256"
	case Color16:
		return "16"
	default:
		return "truecolor"
	}
}

// ParseCapability parses "truecolor", "256" or "16". ok is false otherwise.
func ParseCapability(s string) (Capability, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truecolor", "24bit", "true":
		return TrueColor, true
	case "256", "ansi256":
		return Color256, true
	case "16", "ansi", "ansi16":
		return Color16, true
	default:
		return TrueColor, false
	}
}

// DetectCapability inspects the environment (COLORTERM, TERM, NO_COLOR...).
func DetectCapability() Capability {
	return fromProfile(termenv.EnvColorProfile())
}

func fromProfile(p termenv.Profile) Capability {
	switch p {
	case termenv.TrueColor:
		return TrueColor
	case termenv.ANSI256:
		return Color256
	default:
		return Color16
	}
}
