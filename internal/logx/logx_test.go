package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug").With(String("comp", "queue"))

	log.Info("enqueued", Int("len", 3), Err(errors.New("boom")), Bool("evicted", true))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "enqueued", lines[0]["message"])
	assert.Equal(t, "queue", lines[0]["comp"])
	assert.InDelta(t, 3, lines[0]["len"], 0)
	assert.Equal(t, "boom", lines[0]["err"])
	assert.Contains(t, lines[0]["caller"], "logx_test.go:")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
	assert.False(t, log.Enabled(LevelInfo))
	assert.True(t, log.Enabled(LevelError))
}

func TestLogger_ZeroAndNop(t *testing.T) {
	var zero Logger
	zero.Error("nothing")
	Nop().Error("nothing")
}

func TestWith_DoesNotAlias(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "info").With(String("a", "1"))
	_ = base.With(String("b", "2"))
	base.Info("x")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	_, hasB := lines[0]["b"]
	assert.False(t, hasB)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "paneflare.log")
	log, closer, err := Open(path, "info")
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestOpen_EmptyPath(t *testing.T) {
	log, closer, err := Open("", "info")
	require.NoError(t, err)
	log.Info("discarded")
	assert.NoError(t, closer.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose", zerolog.InfoLevel))
	assert.True(t, ValidLevel("Debug"))
	assert.False(t, ValidLevel("verbose"))
}
