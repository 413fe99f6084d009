package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QTREE_CONFIG", "")
	configPath, logLevel, keepGoing = "", "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "", "demo", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Internal Node", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "    Leaf Node - ["), line)
	}
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "insert 1 1 2 2\nfind 1 1\nfind 9 9\n", "run", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "Rectangle at (1.00, 1.00): 2.00x2.00\nNothing is at (9, 9).\n", out)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ops.qt")
	require.NoError(t, os.WriteFile(script, []byte("insert 0 0 1 1\ndelete 0 0\n"), 0o600))

	out, err := execute(t, "", "run", script, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1\n", out)

	_, err = execute(t, "", "run", filepath.Join(dir, "missing.qt"), "--log-level", "error")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qtree.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"capacity": 0}`), 0o600))

	_, err := execute(t, "", "demo", "--config", path)
	assert.ErrorContains(t, err, "capacity")
}
