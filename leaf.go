package quadtree

import (
	"strings"
)

// Leaf holds rectangles in insertion order.
type Leaf struct {
	boundary BoundingBox
	depth    int
	policy   *policy
	rects    []Rectangle
}

func newLeaf(boundary BoundingBox, depth int, p *policy) *Leaf {
	return &Leaf{
		boundary: boundary,
		depth:    depth,
		policy:   p,
	}
}

func (l *Leaf) Boundary() BoundingBox { return l.boundary }
func (l *Leaf) Depth() int            { return l.depth }
func (l *Leaf) IsLeaf() bool          { return true }
func (l *Leaf) Len() int              { return len(l.rects) }

// Rectangles returns a copy of the held rectangles in insertion order.
func (l *Leaf) Rectangles() []Rectangle {
	rects := make([]Rectangle, len(l.rects))
	copy(rects, l.rects)
	return rects
}

func (l *Leaf) insert(r Rectangle) Node {
	if len(l.rects) < l.policy.capacity || !l.splittable(r) {
		l.rects = append(l.rects, r)
		return l
	}
	return l.subdivide(r)
}

// splittable reports whether splitting would separate anything. Rectangles
// sharing one origin always route to the same child, so splitting them only
// recurses; the leaf grows past capacity instead. The same applies once the
// depth limit is reached.
func (l *Leaf) splittable(r Rectangle) bool {
	if l.depth >= l.policy.maxDepth {
		return false
	}
	for _, held := range l.rects {
		if held.X != r.X || held.Y != r.Y {
			return true
		}
	}
	return false
}

// subdivide converts the leaf into an internal node over the same region and
// disperses the held rectangles, in order, followed by r.
func (l *Leaf) subdivide(r Rectangle) Node {
	in := newInternal(l.boundary, l.depth, l.policy)
	for _, held := range l.rects {
		in.insert(held)
	}
	in.insert(r)
	l.rects = nil
	return in
}

func (l *Leaf) find(x, y float64) (Rectangle, bool) {
	for _, r := range l.rects {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Rectangle{}, false
}

func (l *Leaf) delete(x, y float64) int {
	kept := l.rects[:0]
	for _, r := range l.rects {
		if !r.Contains(x, y) {
			kept = append(kept, r)
		}
	}
	removed := len(l.rects) - len(kept)
	// clear the tail so dropped values are not retained by the backing array
	for i := len(kept); i < len(l.rects); i++ {
		l.rects[i] = Rectangle{}
	}
	l.rects = kept
	return removed
}

func (l *Leaf) dump(b *strings.Builder, level int) {
	indent(b, level)
	b.WriteString("Leaf Node - [")
	for i, r := range l.rects {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteString("]\n")
}

func (l *Leaf) walk(fn func(Node) bool) bool {
	return fn(l)
}
