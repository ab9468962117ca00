package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/paneflare/internal/bridge"
	pcolor "github.com/llehouerou/paneflare/internal/color"
	"github.com/llehouerou/paneflare/internal/notification"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_RejectsUnknownFlags(t *testing.T) {
	_, _, err := execute(t, "--unknown-flag", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestSend_DryRun(t *testing.T) {
	out, _, err := execute(t, "send", "--dry-run", "--type", "success", "--pane", "2", "--exit-code", "0", "Build finished")
	require.NoError(t, err)

	var m bridge.Message
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, bridge.ProtocolVersion, m.Version)
	assert.Equal(t, "success", m.Type)
	require.NotNil(t, m.Message)
	assert.Equal(t, "Build finished", *m.Message)
	require.NotNil(t, m.PaneID)
	assert.Equal(t, uint32(2), *m.PaneID)
	require.NotNil(t, m.ExitCode, "an explicit zero exit code is kept")
	assert.Equal(t, 0, *m.ExitCode)
	assert.Nil(t, m.TabIndex)
	assert.Nil(t, m.TTLMs)
}

func TestSend_OmitsUnsetFields(t *testing.T) {
	out, _, err := execute(t, "send", "--dry-run")
	require.NoError(t, err)

	var m bridge.Message
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Nil(t, m.Message)
	assert.Nil(t, m.PaneID)

	n := m.Notification()
	assert.Equal(t, notification.KindAttention, n.Kind)
	assert.Equal(t, "Waiting for input", n.Message)
}

func TestSend_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"type", []string{"send", "--dry-run", "--type", "shouting"}},
		{"priority", []string{"send", "--dry-run", "--priority", "urgent"}},
		{"tab", []string{"send", "--dry-run", "--tab", "-1"}},
		{"two args", []string{"send", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSend_AcceptsKindAliases(t *testing.T) {
	for _, kind := range []string{"info", "done", "fail", "waiting", "Warning"} {
		_, _, err := execute(t, "send", "--dry-run", "--type", kind)
		assert.NoError(t, err, kind)
	}
}

func TestSend_WritesSpoolFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "send", "--spool-dir", dir, "--type", "error", "--tab", "1", "--priority", "critical", "boom")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	payload, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	n, err := bridge.New().Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, notification.KindError, n.Kind)
	assert.Equal(t, notification.PriorityCritical, n.Priority)
	assert.Equal(t, "boom", n.Message)
	key, ok := n.Target.Key()
	require.True(t, ok)
	assert.Equal(t, notification.TabKey(1), key)
}

func TestSend_UsesConfiguredSpoolDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spool")
	cfg := writeConfig(t, "spool_dir = \""+filepath.ToSlash(dir)+"\"\n")

	_, _, err := execute(t, "--config", cfg, "send", "hello")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCheck_Valid(t *testing.T) {
	cfg := writeConfig(t, `
panes = 3

[theme]
name = "nord"
colors = "256"

[animation]
style = "breathe"
`)
	out, _, err := execute(t, "--config", cfg, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration is valid")
	assert.Contains(t, out, "nord")
	assert.Contains(t, out, "breathe")
}

func TestCheck_Invalid(t *testing.T) {
	cfg := writeConfig(t, "panes = 20\n")
	_, errOut, err := execute(t, "--config", cfg, "check")
	require.Error(t, err)
	assert.Contains(t, errOut, "validate config")
}

func TestCheck_MissingFileUsesDefaults(t *testing.T) {
	out, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "check")
	require.NoError(t, err)
	assert.Contains(t, out, "no config file found")
}

func TestThemes(t *testing.T) {
	out, _, err := execute(t, "themes", "--colors", "16")
	require.NoError(t, err)
	for _, name := range pcolor.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "\x1b[")

	_, _, err = execute(t, "themes", "--colors", "cga")
	assert.Error(t, err)
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"run", "send", "themes", "check"} {
		assert.Contains(t, names, want)
	}
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	assert.Equal(t, "1.2.3 (commit: abc, built: today)", rootCmd.Version)
}
