// Package script drives a quadtree from a line-oriented command language:
//
//	insert x y width height
//	find x y
//	update x y width height
//	delete x y
//	dump | stats | list
//
// Lines are split with shell quoting rules; '#' starts a comment.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"github.com/natalyag236/quadtree"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

type command struct {
	args int
	run  func(r *Runner, v []float64) (string, error)
}

var commands = map[string]command{
	"insert": {4, (*Runner).insert},
	"find":   {2, (*Runner).find},
	"update": {4, (*Runner).update},
	"delete": {2, (*Runner).delete},
	"dump":   {0, (*Runner).dump},
	"stats":  {0, (*Runner).stats},
	"list":   {0, (*Runner).list},
}

// Runner executes commands against one tree.
type Runner struct {
	tree *quadtree.Quadtree
	log  zerolog.Logger
	// KeepGoing makes Run log failing lines and continue instead of stopping.
	KeepGoing bool
}

func NewRunner(tree *quadtree.Quadtree, log zerolog.Logger) *Runner {
	return &Runner{tree: tree, log: log}
}

func (r *Runner) Tree() *quadtree.Quadtree { return r.tree }

// Exec runs a single line and returns its output. Blank and comment lines
// produce no output.
func (r *Runner) Exec(line string) (string, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", line, err)
	}
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	if len(fields)-1 != cmd.args {
		return "", fmt.Errorf("%w: %s takes %d, got %d", ErrArguments, name, cmd.args, len(fields)-1)
	}
	values := make([]float64, cmd.args)
	for i, f := range fields[1:] {
		if values[i], err = strconv.ParseFloat(f, 64); err != nil {
			return "", fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
	}
	r.log.Debug().Str("cmd", name).Floats64("args", values).Msg("exec")
	return cmd.run(r, values)
}

// Run executes every line read from in, writing command output to out.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	failed := 0
	for scanner.Scan() {
		lineNo++
		text, err := r.Exec(scanner.Text())
		if err != nil {
			if !r.KeepGoing {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			failed++
			r.log.Warn().Int("line", lineNo).Err(err).Msg("command failed")
			continue
		}
		if text == "" {
			continue
		}
		if _, err := io.WriteString(out, strings.TrimRight(text, "\n")+"\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	r.log.Info().Int("lines", lineNo).Int("failed", failed).Int("rectangles", r.tree.Len()).Msg("script done")
	return nil
}

func nothingAt(x, y float64) string {
	return fmt.Sprintf("Nothing is at (%s, %s).", formatFloat(x), formatFloat(y))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (r *Runner) insert(v []float64) (string, error) {
	rect := quadtree.Rectangle{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if err := r.tree.Insert(rect); err != nil {
		return "", fmt.Errorf("insert %v: %w", rect, err)
	}
	return "", nil
}

func (r *Runner) find(v []float64) (string, error) {
	rect, ok := r.tree.Find(v[0], v[1])
	if !ok {
		return nothingAt(v[0], v[1]), nil
	}
	return rect.String(), nil
}

func (r *Runner) update(v []float64) (string, error) {
	err := r.tree.Update(v[0], v[1], v[2], v[3])
	if errors.Is(err, quadtree.ErrNotFound) {
		return nothingAt(v[0], v[1]), nil
	}
	return "", err
}

func (r *Runner) delete(v []float64) (string, error) {
	return fmt.Sprintf("deleted %d", r.tree.Delete(v[0], v[1])), nil
}

func (r *Runner) dump([]float64) (string, error) {
	return r.tree.Dump(), nil
}

func (r *Runner) stats([]float64) (string, error) {
	s := r.tree.Stats()
	return fmt.Sprintf("rectangles=%d nodes=%d leaves=%d internals=%d depth=%d overfull=%d",
		s.Rectangles, s.Nodes, s.Leaves, s.Internals, s.Depth, s.Overfull), nil
}

func (r *Runner) list([]float64) (string, error) {
	var b strings.Builder
	for _, rect := range r.tree.Rectangles() {
		b.WriteString(rect.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}
