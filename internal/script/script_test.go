package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natalyag236/quadtree"
)

func newRunner() *Runner {
	tree := quadtree.New(quadtree.BoundingBox{X: -50, Y: -50, Width: 100, Height: 100})
	return NewRunner(tree, zerolog.Nop())
}

func TestExec(t *testing.T) {
	r := newRunner()

	out, err := r.Exec("insert -20 -20 15 15")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = r.Exec("FIND -20 -20")
	require.NoError(t, err)
	assert.Equal(t, "Rectangle at (-20.00, -20.00): 15.00x15.00", out)

	out, err = r.Exec("update -20 -20 3 4")
	require.NoError(t, err)
	assert.Empty(t, out)
	out, _ = r.Exec("find -20 -20")
	assert.Equal(t, "Rectangle at (-20.00, -20.00): 3.00x4.00", out)

	out, err = r.Exec("update 30 30 1 1")
	require.NoError(t, err)
	assert.Equal(t, "Nothing is at (30, 30).", out)

	out, err = r.Exec("delete -20 -20")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1", out)

	out, err = r.Exec("find -20 -20")
	require.NoError(t, err)
	assert.Equal(t, "Nothing is at (-20, -20).", out)
}

func TestExecBlankAndComments(t *testing.T) {
	r := newRunner()
	for _, line := range []string{"", "   ", "# just a comment"} {
		out, err := r.Exec(line)
		assert.NoError(t, err)
		assert.Empty(t, out)
	}
	out, err := r.Exec("insert 1 1 1 1 # trailing")
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 1, r.Tree().Len())
}

func TestExecErrors(t *testing.T) {
	r := newRunner()

	_, err := r.Exec("grow 1 2")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = r.Exec("insert 1 2 3")
	assert.ErrorIs(t, err, ErrArguments)

	_, err = r.Exec("find one 2")
	assert.Error(t, err)

	_, err = r.Exec("insert 80 80 1 1")
	assert.ErrorIs(t, err, quadtree.ErrOutOfBounds)

	_, err = r.Exec("insert 1 1 0 1")
	assert.ErrorIs(t, err, quadtree.ErrInvalidRectangle)

	_, err = r.Exec(`insert "1 1 1 1`)
	assert.Error(t, err)
}

const scenario = `
# the end-to-end scenario
insert -40 -40 10 10
insert 20 20 8 8
insert -10 30 12 12
insert 45 45 6 6
insert 30 -25 5 5
insert -30 -10 7 7
stats
dump
`

func TestRun(t *testing.T) {
	r := newRunner()
	var out bytes.Buffer
	require.NoError(t, r.Run(strings.NewReader(scenario), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "rectangles=6 nodes=5 leaves=4 internals=1 depth=1 overfull=0", lines[0])
	assert.Equal(t, "Internal Node", lines[1])
	for _, line := range lines[2:] {
		assert.True(t, strings.HasPrefix(line, "    Leaf Node - ["), line)
	}
}

func TestRunStopsOnError(t *testing.T) {
	r := newRunner()
	var out bytes.Buffer
	err := r.Run(strings.NewReader("insert 1 1 1 1\ninsert 99 99 1 1\ninsert 2 2 1 1\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.ErrorIs(t, err, quadtree.ErrOutOfBounds)
	assert.Equal(t, 1, r.Tree().Len())
}

func TestRunKeepGoing(t *testing.T) {
	r := newRunner()
	r.KeepGoing = true
	var out bytes.Buffer
	err := r.Run(strings.NewReader("insert 1 1 1 1\ninsert 99 99 1 1\ninsert 2 2 1 1\nlist\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Tree().Len())
	assert.Equal(t, "Rectangle at (1.00, 1.00): 1.00x1.00\nRectangle at (2.00, 2.00): 1.00x1.00\n", out.String())
}
