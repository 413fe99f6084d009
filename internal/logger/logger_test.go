package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(Config{}, &buf))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	l := New("tree")
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "module=tree")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(Config{Level: "debug", Format: FormatJSON}, &buf))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	l := New("script")
	l.Debug().Int("line", 3).Msg("exec")
	out := buf.String()
	assert.Contains(t, out, `"module":"script"`)
	assert.Contains(t, out, `"line":3`)
	assert.Contains(t, out, `"message":"exec"`)
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "qtree.log")

	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(Config{Level: "info", File: path}, &buf))
	l := New("server")
	l.Warn().Msg("to file")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Contains(t, buf.String(), "to file")
}

func TestFileDirectoryError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var buf bytes.Buffer
	err := InitWithConfig(Config{File: filepath.Join(blocker, "logs", "qtree.log")}, &buf)
	assert.ErrorContains(t, err, "log directory")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestStyledConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(ConsoleWriter(&buf, DefaultStyles(), false))
	l.Error().Str("err", "boom").Msg("failed")
	assert.Contains(t, buf.String(), "failed")
	assert.Contains(t, buf.String(), "boom")
}
