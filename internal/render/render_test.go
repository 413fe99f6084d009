package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natalyag236/quadtree"
)

func sampleDump(t *testing.T) string {
	t.Helper()
	tree := quadtree.New(quadtree.BoundingBox{X: -50, Y: -50, Width: 100, Height: 100})
	for _, p := range []quadtree.Point{{X: -40, Y: -40}, {X: 20, Y: 20}, {X: -10, Y: 30}, {X: 45, Y: 45}, {X: 30, Y: -25}, {X: -30, Y: -10}} {
		require.NoError(t, tree.Insert(quadtree.Rectangle{X: p.X, Y: p.Y, Width: 1, Height: 1}))
	}
	return tree.Dump()
}

func TestWritePlain(t *testing.T) {
	dump := sampleDump(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dump))
	assert.Equal(t, dump, buf.String(), "non-terminal output is not styled")
}

func TestDumpGuides(t *testing.T) {
	plain := Styles{
		Internal: lipgloss.NewStyle(),
		Leaf:     lipgloss.NewStyle(),
		Empty:    lipgloss.NewStyle(),
		Guide:    lipgloss.NewStyle(),
	}
	out := Dump(sampleDump(t), plain)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Internal Node", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "│   Leaf Node - ["), line)
	}
}
