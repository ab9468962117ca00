//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/paneflare/internal/animation"
	"github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/logx"
	"github.com/llehouerou/paneflare/internal/notification"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/spool", filepath.Join(home, "spool")},
		{"absolute path unchanged", "/run/paneflare", "/run/paneflare"},
		{"relative path unchanged", "logs/paneflare.log", "logs/paneflare.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	paths := Paths()
	if len(paths) != 2 {
		t.Fatalf("Paths() returned %d paths, want 2", len(paths))
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if !strings.HasSuffix(paths[0], filepath.Join("paneflare", "config.toml")) {
		t.Errorf("first config path = %q, want it under the paneflare config dir", paths[0])
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if !cfg.IsEnabled() {
		t.Error("IsEnabled() = false, want true")
	}
	if cfg.NotificationTimeoutMs != 300_000 {
		t.Errorf("NotificationTimeoutMs = %d, want 300000", cfg.NotificationTimeoutMs)
	}
	if cfg.QueueMaxSize != 100 {
		t.Errorf("QueueMaxSize = %d, want 100", cfg.QueueMaxSize)
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 50ms", cfg.TickInterval())
	}
	if cfg.Panes != 4 {
		t.Errorf("Panes = %d, want 4", cfg.Panes)
	}
	if cfg.SpoolDir == "" {
		t.Error("SpoolDir is empty")
	}

	anim := cfg.AnimationSettings()
	want := animation.DefaultConfig()
	if anim != want {
		t.Errorf("AnimationSettings() = %+v, want %+v", anim, want)
	}

	ro := cfg.RenderOptions()
	if !ro.StatusBar || !ro.Borders || !ro.Badges || !ro.Unicode || !ro.Patterns {
		t.Errorf("RenderOptions() = %+v, want everything on", ro)
	}
	if cfg.DesktopMinPriority() != notification.PriorityHigh {
		t.Errorf("DesktopMinPriority() = %v, want high", cfg.DesktopMinPriority())
	}
	if cfg.ColorTheme() != color.DefaultTheme {
		t.Errorf("ColorTheme() = %+v, want default theme", cfg.ColorTheme())
	}
}

func TestLoadFrom_MissingFiles(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.QueueMaxSize != DefaultQueueMaxSize {
		t.Errorf("QueueMaxSize = %d, want default", cfg.QueueMaxSize)
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
enabled = true
notification_timeout_ms = 60000
queue_max_size = 20
tick_interval_ms = 100
panes = 6
show_tab_badges = false
spool_dir = "~/paneflare-spool"

[theme]
name = "dracula"
success = "#00ff00"
colors = "256"

[animation]
style = "breathe"
speed = 80
cycles = 2

[accessibility]
high_contrast = true
use_patterns = false

[desktop]
enabled = true
min_priority = "critical"
per_minute = 3

[log]
level = "debug"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	if cfg.NotificationTimeoutMs != 60000 {
		t.Errorf("NotificationTimeoutMs = %d, want 60000", cfg.NotificationTimeoutMs)
	}
	if cfg.Panes != 6 {
		t.Errorf("Panes = %d, want 6", cfg.Panes)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "paneflare-spool"); cfg.SpoolDir != want {
		t.Errorf("SpoolDir = %q, want %q", cfg.SpoolDir, want)
	}

	theme := cfg.ColorTheme()
	if theme.Name != "dracula" || theme.Success != "#00ff00" {
		t.Errorf("ColorTheme() = %+v, want dracula with success override", theme)
	}
	if theme.Error != "#ff5555" {
		t.Errorf("ColorTheme().Error = %q, want dracula's", theme.Error)
	}
	if cfg.Capability() != color.Color256 {
		t.Errorf("Capability() = %v, want 256", cfg.Capability())
	}

	anim := cfg.AnimationSettings()
	if !anim.Enabled || anim.Style != animation.StyleBreathe || anim.Speed != 80 || anim.Cycles != 2 {
		t.Errorf("AnimationSettings() = %+v", anim)
	}

	ro := cfg.RenderOptions()
	if ro.Badges || ro.Patterns || !ro.StatusBar {
		t.Errorf("RenderOptions() = %+v", ro)
	}

	opts := cfg.CoordinatorOptions()
	if opts.QueueMaxPerLevel != 20 || opts.DefaultTTL != 60000 || !opts.HighContrast {
		t.Errorf("CoordinatorOptions() = %+v", opts)
	}
	if cfg.DesktopMinPriority() != notification.PriorityCritical {
		t.Errorf("DesktopMinPriority() = %v, want critical", cfg.DesktopMinPriority())
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, "panes = 2\nqueue_max_size = 7\n")
	second := writeConfig(t, "panes = 3\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Panes != 3 {
		t.Errorf("Panes = %d, want 3", cfg.Panes)
	}
	if cfg.QueueMaxSize != 7 {
		t.Errorf("QueueMaxSize = %d, want 7 from the first file", cfg.QueueMaxSize)
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte("tick_interval_ms = 25\n"), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// ./config.toml is read last, so it wins over anything in the user config dir.
	if cfg.TickIntervalMs != 25 {
		t.Errorf("TickIntervalMs = %d, want 25", cfg.TickIntervalMs)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestReducedMotion(t *testing.T) {
	path := writeConfig(t, "[accessibility]\nreduced_motion = true\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.AnimationSettings().Enabled {
		t.Error("reduced_motion should disable animation")
	}
}

func TestAnimationStyleNone(t *testing.T) {
	cfg := Default()
	cfg.Animation.Style = "none"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.AnimationSettings().Enabled {
		t.Error("style none should disable animation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"timeout too short", func(c *Config) { c.NotificationTimeoutMs = 999 }, "notification_timeout_ms"},
		{"timeout at minimum", func(c *Config) { c.NotificationTimeoutMs = 1000 }, ""},
		{"queue size zero", func(c *Config) { c.QueueMaxSize = 0 }, "queue_max_size"},
		{"queue size negative", func(c *Config) { c.QueueMaxSize = -5 }, "queue_max_size"},
		{"too many panes", func(c *Config) { c.Panes = 10 }, "panes"},
		{"speed zero", func(c *Config) { c.Animation.Speed = 0 }, "animation.speed"},
		{"speed too high", func(c *Config) { c.Animation.Speed = 101 }, "animation.speed"},
		{"speed bounds", func(c *Config) { c.Animation.Speed = 100 }, ""},
		{"cycles too high", func(c *Config) { c.Animation.Cycles = 11 }, "animation.cycles"},
		{"cycles bounds", func(c *Config) { c.Animation.Cycles = 10 }, ""},
		{"unknown style", func(c *Config) { c.Animation.Style = "wobble" }, "animation.style"},
		{"unknown theme", func(c *Config) { c.Theme.Name = "neon" }, "unknown theme"},
		{"theme alias", func(c *Config) { c.Theme.Name = "gruvbox" }, ""},
		{"bad hex override", func(c *Config) { c.Theme.Error = "red" }, "theme.error"},
		{"bad colors", func(c *Config) { c.Theme.Colors = "cga" }, "theme.colors"},
		{"bad min priority", func(c *Config) { c.Desktop.MinPriority = "urgent" }, "desktop.min_priority"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := Default()
	cfg.QueueMaxSize = 0
	cfg.Animation.Cycles = 50

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	for _, want := range []string{"queue_max_size", "animation.cycles"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, missing %q", err, want)
		}
	}
}

func TestWatch_NoFiles(t *testing.T) {
	_, err := Watch(context.Background(), logx.Nop(), filepath.Join(t.TempDir(), "missing.toml"))
	if err != ErrNoConfigFile {
		t.Errorf("Watch() error = %v, want ErrNoConfigFile", err)
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeConfig(t, "panes = 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, logx.Nop(), path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
