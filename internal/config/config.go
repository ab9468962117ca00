// Package config loads paneflare settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/coordinator"
	"github.com/llehouerou/paneflare/internal/logx"
	"github.com/llehouerou/paneflare/internal/notification"
	"github.com/llehouerou/paneflare/internal/render"
)

const appName = "paneflare"

const (
	DefaultTimeoutMs      = 300_000
	DefaultQueueMaxSize   = 100
	DefaultTickIntervalMs = 50
	DefaultPanes          = 4
	DefaultPerMinute      = 6

	MinTimeoutMs = 1000
	MaxPanes     = 9
	MaxCycles    = 10
)

type Config struct {
	Enabled               *bool  `koanf:"enabled"`                 // default: true
	NotificationTimeoutMs uint64 `koanf:"notification_timeout_ms"` // default TTL
	QueueMaxSize          int    `koanf:"queue_max_size"`          // per priority level
	TickIntervalMs        int    `koanf:"tick_interval_ms"`
	Panes                 int    `koanf:"panes"` // simulated panes in the terminal front end

	ShowStatusBar    *bool `koanf:"show_status_bar"`
	ShowBorderColors *bool `koanf:"show_border_colors"`
	ShowTabBadges    *bool `koanf:"show_tab_badges"`

	SpoolDir string `koanf:"spool_dir"` // where `paneflare send` drops events

	Theme         ThemeConfig         `koanf:"theme"`
	Animation     AnimationConfig     `koanf:"animation"`
	Accessibility AccessibilityConfig `koanf:"accessibility"`
	Desktop       DesktopConfig       `koanf:"desktop"`
	Log           LogConfig           `koanf:"log"`
}

// ThemeConfig picks a preset and optionally overrides single roles with hex colors.
type ThemeConfig struct {
	Name       string `koanf:"name"`
	Success    string `koanf:"success"`
	Error      string `koanf:"error"`
	Warning    string `koanf:"warning"`
	Info       string `koanf:"info"`
	Background string `koanf:"background"`
	Foreground string `koanf:"foreground"`
	Highlight  string `koanf:"highlight"`
	Dimmed     string `koanf:"dimmed"`
	Colors     string `koanf:"colors"` // "auto" (default), "truecolor", "256" or "16"
}

type AnimationConfig struct {
	Enabled *bool  `koanf:"enabled"` // default: true
	Style   string `koanf:"style"`   // pulse, flash, fade, breathe, none
	Speed   int    `koanf:"speed"`   // 1-100
	Cycles  int    `koanf:"cycles"`  // 1-10
}

type AccessibilityConfig struct {
	HighContrast  bool  `koanf:"high_contrast"`
	ReducedMotion bool  `koanf:"reduced_motion"` // disables animation
	UsePatterns   *bool `koanf:"use_patterns"`   // default: true
	ASCIIIcons    bool  `koanf:"ascii_icons"`
}

// DesktopConfig controls forwarding to the desktop notification daemon.
type DesktopConfig struct {
	Enabled     bool   `koanf:"enabled"`
	MinPriority string `koanf:"min_priority"` // default: high
	PerMinute   int    `koanf:"per_minute"`
}

type LogConfig struct {
	File  string `koanf:"file"`  // empty disables logging
	Level string `koanf:"level"` // debug, info, warn, error
}

// Load reads the default config files. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(Paths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.NotificationTimeoutMs == 0 {
		c.NotificationTimeoutMs = DefaultTimeoutMs
	}
	if c.QueueMaxSize == 0 {
		c.QueueMaxSize = DefaultQueueMaxSize
	}
	if c.TickIntervalMs <= 0 {
		c.TickIntervalMs = DefaultTickIntervalMs
	}
	if c.Panes <= 0 {
		c.Panes = DefaultPanes
	}
	if c.Animation.Style == "" {
		c.Animation.Style = animation.StylePulse.String()
	}
	if c.Animation.Speed == 0 {
		c.Animation.Speed = animation.DefaultSpeed
	}
	if c.Animation.Cycles == 0 {
		c.Animation.Cycles = animation.DefaultCycles
	}
	if c.Theme.Name == "" {
		c.Theme.Name = color.DefaultTheme.Name
	}
	if c.Theme.Colors == "" {
		c.Theme.Colors = "auto"
	}
	if c.Desktop.MinPriority == "" {
		c.Desktop.MinPriority = notification.PriorityHigh.String()
	}
	if c.Desktop.PerMinute <= 0 {
		c.Desktop.PerMinute = DefaultPerMinute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.SpoolDir == "" {
		c.SpoolDir = DefaultSpoolDir()
	} else {
		c.SpoolDir = expandPath(c.SpoolDir)
	}
	c.Log.File = expandPath(c.Log.File)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.NotificationTimeoutMs < MinTimeoutMs {
		errs = append(errs, fmt.Errorf("notification_timeout_ms must be at least %d, got %d",
			MinTimeoutMs, c.NotificationTimeoutMs))
	}
	if c.QueueMaxSize < 1 {
		errs = append(errs, fmt.Errorf("queue_max_size must be at least 1, got %d", c.QueueMaxSize))
	}
	if c.Panes > MaxPanes {
		errs = append(errs, fmt.Errorf("panes must be at most %d, got %d", MaxPanes, c.Panes))
	}
	if c.Animation.Speed < 1 || c.Animation.Speed > 100 {
		errs = append(errs, fmt.Errorf("animation.speed must be between 1 and 100, got %d", c.Animation.Speed))
	}
	if c.Animation.Cycles < 1 || c.Animation.Cycles > MaxCycles {
		errs = append(errs, fmt.Errorf("animation.cycles must be between 1 and %d, got %d",
			MaxCycles, c.Animation.Cycles))
	}
	if _, ok := animation.ParseStyle(c.Animation.Style); !ok {
		errs = append(errs, fmt.Errorf("unknown animation.style %q", c.Animation.Style))
	}
	if _, ok := color.Preset(c.Theme.Name); !ok {
		errs = append(errs, fmt.Errorf("unknown theme %q (available: %s)",
			c.Theme.Name, strings.Join(color.PresetNames(), ", ")))
	}
	for _, role := range roles(c.Theme.overrides()) {
		if role.Hex != "" && !color.ValidHex(role.Hex) {
			errs = append(errs, fmt.Errorf("theme.%s: invalid hex color %q", role.Name, role.Hex))
		}
	}
	if c.Theme.Colors != "auto" {
		if _, ok := color.ParseCapability(c.Theme.Colors); !ok {
			errs = append(errs, fmt.Errorf("theme.colors must be auto, truecolor, 256 or 16, got %q", c.Theme.Colors))
		}
	}
	if _, ok := notification.ParsePriority(c.Desktop.MinPriority); !ok {
		errs = append(errs, fmt.Errorf("unknown desktop.min_priority %q", c.Desktop.MinPriority))
	}
	if !logx.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

func isTrue(b *bool) bool { return b == nil || *b }

// IsEnabled reports whether notifications are processed at all.
func (c *Config) IsEnabled() bool { return isTrue(c.Enabled) }

// TickInterval returns the animation tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// AnimationSettings returns the engine configuration. Reduced motion turns animation off.
func (c *Config) AnimationSettings() animation.Config {
	style, _ := animation.ParseStyle(c.Animation.Style)
	enabled := isTrue(c.Animation.Enabled) && !c.Accessibility.ReducedMotion && style != animation.StyleNone
	return animation.Config{
		Enabled: enabled,
		Style:   style,
		Speed:   c.Animation.Speed,
		Cycles:  c.Animation.Cycles,
	}
}

// ColorTheme returns the preset with overrides applied.
func (c *Config) ColorTheme() color.Theme {
	theme, _ := color.Preset(c.Theme.Name)
	return theme.With(c.Theme.overrides())
}

// Capability returns the configured color capability, detecting it for "auto".
func (c *Config) Capability() color.Capability {
	if capability, ok := color.ParseCapability(c.Theme.Colors); ok {
		return capability
	}
	return color.DetectCapability()
}

// CoordinatorOptions maps the config onto the coordinator.
func (c *Config) CoordinatorOptions() coordinator.Options {
	opts := coordinator.DefaultOptions()
	opts.Animation = c.AnimationSettings()
	opts.Theme = c.ColorTheme()
	opts.Capability = c.Capability()
	opts.HighContrast = c.Accessibility.HighContrast
	opts.QueueMaxPerLevel = c.QueueMaxSize
	opts.DefaultTTL = c.NotificationTimeoutMs
	return opts
}

// RenderOptions maps the display toggles onto the renderer.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		StatusBar: isTrue(c.ShowStatusBar),
		Borders:   isTrue(c.ShowBorderColors),
		Badges:    isTrue(c.ShowTabBadges),
		Unicode:   !c.Accessibility.ASCIIIcons,
		Patterns:  isTrue(c.Accessibility.UsePatterns),
	}
}

// DesktopMinPriority returns the lowest priority forwarded to the desktop.
func (c *Config) DesktopMinPriority() notification.Priority {
	p, ok := notification.ParsePriority(c.Desktop.MinPriority)
	if !ok {
		return notification.PriorityHigh
	}
	return p
}

func (t ThemeConfig) overrides() color.Overrides {
	return color.Overrides{
		Success:    t.Success,
		Error:      t.Error,
		Warning:    t.Warning,
		Info:       t.Info,
		Background: t.Background,
		Foreground: t.Foreground,
		Highlight:  t.Highlight,
		Dimmed:     t.Dimmed,
	}
}

func roles(o color.Overrides) []color.Role {
	return color.Theme{
		Success: o.Success, Error: o.Error, Warning: o.Warning, Info: o.Info,
		Background: o.Background, Foreground: o.Foreground, Highlight: o.Highlight, Dimmed: o.Dimmed,
	}.Roles()
}

// Paths lists the config files read by Load, lowest priority first.
func Paths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/paneflare/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// DefaultSpoolDir is under the XDG runtime dir, which is private to the user.
func DefaultSpoolDir() string {
	return filepath.Join(xdg.RuntimeDir, appName, "spool")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
