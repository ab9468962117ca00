// Package animation computes tick-driven brightness curves for notification borders.
package animation

import "strings"

// Style selects a brightness curve.
type Style uint8

const (
	StyleNone Style = iota
	StylePulse
	StyleFlash
	StyleFade
	StyleBreathe
)

// Styles lists every style.
var Styles = []Style{StyleNone, StylePulse, StyleFlash, StyleFade, StyleBreathe}

func (s Style) String() string {
	switch s {
	case StylePulse:
		return "pulse"
	case StyleFlash:
		return "flash"
	case StyleFade:
		return "fade"
	case StyleBreathe:
		return "breathe"
	default:
		return "none"
	}
}

// ParseStyle parses a style name. Unknown names return StylePulse and false.
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pulse":
		return StylePulse, true
	case "flash":
		return StyleFlash, true
	case "fade":
		return StyleFade, true
	case "breathe":
		return StyleBreathe, true
	case "none", "off", "disabled":
		return StyleNone, true
	default:
		return StylePulse, false
	}
}
