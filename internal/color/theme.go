package color

import (
	"sort"
	"strings"
)

// Theme assigns a hex color to each display role.
type Theme struct {
	Name       string
	Success    string
	Error      string
	Warning    string
	Info       string
	Background string
	Foreground string
	Highlight  string
	Dimmed     string
}

// DefaultTheme is used when no preset is named.
var DefaultTheme = Theme{
	Name:       "default",
	Success:    "#22c55e",
	Error:      "#ef4444",
	Warning:    "#eab308",
	Info:       "#3b82f6",
	Background: "#1e1e2e",
	Foreground: "#cdd6f4",
	Highlight:  "#89b4fa",
	Dimmed:     "#6c7086",
}

var presets = map[string]Theme{
	"default": DefaultTheme,
	"dracula": {
		Name: "dracula", Success: "#50fa7b", Error: "#ff5555", Warning: "#f1fa8c", Info: "#8be9fd",
		Background: "#282a36", Foreground: "#f8f8f2", Highlight: "#bd93f9", Dimmed: "#6272a4",
	},
	"nord": {
		Name: "nord", Success: "#a3be8c", Error: "#bf616a", Warning: "#ebcb8b", Info: "#81a1c1",
		Background: "#2e3440", Foreground: "#eceff4", Highlight: "#88c0d0", Dimmed: "#4c566a",
	},
	"solarized-dark": {
		Name: "solarized-dark", Success: "#859900", Error: "#dc322f", Warning: "#b58900", Info: "#268bd2",
		Background: "#002b36", Foreground: "#839496", Highlight: "#2aa198", Dimmed: "#586e75",
	},
	"solarized-light": {
		Name: "solarized-light", Success: "#859900", Error: "#dc322f", Warning: "#b58900", Info: "#268bd2",
		Background: "#fdf6e3", Foreground: "#657b83", Highlight: "#2aa198", Dimmed: "#93a1a1",
	},
	"catppuccin-mocha": {
		Name: "catppuccin-mocha", Success: "#a6e3a1", Error: "#f38ba8", Warning: "#f9e2af", Info: "#89b4fa",
		Background: "#1e1e2e", Foreground: "#cdd6f4", Highlight: "#cba6f7", Dimmed: "#6c7086",
	},
	"catppuccin-latte": {
		Name: "catppuccin-latte", Success: "#40a02b", Error: "#d20f39", Warning: "#df8e1d", Info: "#1e66f5",
		Background: "#eff1f5", Foreground: "#4c4f69", Highlight: "#8839ef", Dimmed: "#9ca0b0",
	},
	"gruvbox-dark": {
		Name: "gruvbox-dark", Success: "#b8bb26", Error: "#fb4934", Warning: "#fabd2f", Info: "#83a598",
		Background: "#282828", Foreground: "#ebdbb2", Highlight: "#d3869b", Dimmed: "#928374",
	},
	"gruvbox-light": {
		Name: "gruvbox-light", Success: "#79740e", Error: "#9d0006", Warning: "#b57614", Info: "#076678",
		Background: "#fbf1c7", Foreground: "#3c3836", Highlight: "#8f3f71", Dimmed: "#928374",
	},
	"tokyo-night": {
		Name: "tokyo-night", Success: "#9ece6a", Error: "#f7768e", Warning: "#e0af68", Info: "#7aa2f7",
		Background: "#1a1b26", Foreground: "#c0caf5", Highlight: "#bb9af7", Dimmed: "#565f89",
	},
	"one-dark": {
		Name: "one-dark", Success: "#98c379", Error: "#e06c75", Warning: "#e5c07b", Info: "#61afef",
		Background: "#282c34", Foreground: "#abb2bf", Highlight: "#c678dd", Dimmed: "#5c6370",
	},
}

var aliases = map[string]string{
	"solarized":  "solarized-dark",
	"catppuccin": "catppuccin-mocha",
	"gruvbox":    "gruvbox-dark",
}

// Preset returns the named theme. Unknown names return DefaultTheme and false.
func Preset(name string) (Theme, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	t, ok := presets[key]
	if !ok {
		return DefaultTheme, false
	}
	return t, true
}

// PresetNames lists the canonical preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overrides replaces individual roles of a theme. Empty fields are ignored.
type Overrides struct {
	Success    string
	Error      string
	Warning    string
	Info       string
	Background string
	Foreground string
	Highlight  string
	Dimmed     string
}

// With returns a copy of t with the non-empty overrides applied.
func (t Theme) With(o Overrides) Theme {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Success, o.Success)
	set(&t.Error, o.Error)
	set(&t.Warning, o.Warning)
	set(&t.Info, o.Info)
	set(&t.Background, o.Background)
	set(&t.Foreground, o.Foreground)
	set(&t.Highlight, o.Highlight)
	set(&t.Dimmed, o.Dimmed)
	return t
}

// Roles returns the role colors in a fixed order, paired with their names.
func (t Theme) Roles() []Role {
	return []Role{
		{"success", t.Success},
		{"error", t.Error},
		{"warning", t.Warning},
		{"info", t.Info},
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"highlight", t.Highlight},
		{"dimmed", t.Dimmed},
	}
}

// Role is a named theme color.
type Role struct {
	Name string
	Hex  string
}
