// Package render colours quadtree dumps for terminals.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/natalyag236/quadtree/internal/logger"
)

const indentWidth = 4

type Styles struct {
	Internal lipgloss.Style
	Leaf     lipgloss.Style
	Empty    lipgloss.Style
	Guide    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Internal: lipgloss.NewStyle().Foreground(lipgloss.Color("#4589ff")).Bold(true),
		Leaf:     lipgloss.NewStyle().Foreground(lipgloss.Color("#3ddbd9")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d")).Faint(true),
		Guide:    lipgloss.NewStyle().Foreground(lipgloss.Color("#525252")),
	}
}

// Dump styles each line of a tree dump. Indentation is replaced by guides
// so the depth stays visible.
func Dump(dump string, s Styles) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(dump, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimRight(line, "\n")
		body := strings.TrimLeft(text, " ")
		level := (len(text) - len(body)) / indentWidth
		if level > 0 {
			b.WriteString(s.Guide.Render(strings.Repeat("│   ", level)))
		}
		switch {
		case strings.HasPrefix(body, "Internal Node"):
			b.WriteString(s.Internal.Render(body))
		case strings.HasSuffix(body, "[]"):
			b.WriteString(s.Empty.Render(body))
		default:
			b.WriteString(s.Leaf.Render(body))
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Write writes dump to w, styled only when w is a terminal.
func Write(w io.Writer, dump string) error {
	if logger.IsTerminal(w) {
		dump = Dump(dump, DefaultStyles())
	}
	_, err := io.WriteString(w, dump)
	return err
}
