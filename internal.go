package quadtree

import (
	"strings"
)

// Internal covers its region with exactly four children, ordered top-left,
// top-right, bottom-left, bottom-right. Children start as empty leaves.
type Internal struct {
	boundary BoundingBox
	depth    int
	children [4]Node
}

func newInternal(boundary BoundingBox, depth int, p *policy) *Internal {
	in := &Internal{boundary: boundary, depth: depth}
	for q := TopLeft; q <= BottomRight; q++ {
		in.children[q] = newLeaf(boundary.Quadrant(q), depth+1, p)
	}
	return in
}

func (n *Internal) Boundary() BoundingBox { return n.boundary }
func (n *Internal) Depth() int            { return n.depth }
func (n *Internal) IsLeaf() bool          { return false }

func (n *Internal) Len() int {
	size := 0
	for _, child := range n.children {
		size += child.Len()
	}
	return size
}

// Child returns the node covering quadrant q.
func (n *Internal) Child(q Quadrant) Node {
	return n.children[q]
}

func (n *Internal) insert(r Rectangle) Node {
	q := n.boundary.QuadrantOf(r.X, r.Y)
	n.children[q] = n.children[q].insert(r)
	return n
}

func (n *Internal) find(x, y float64) (Rectangle, bool) {
	return n.children[n.boundary.QuadrantOf(x, y)].find(x, y)
}

// delete goes to every child, not only the one the point routes to, so a
// rectangle containing the point is removed wherever its origin was stored.
func (n *Internal) delete(x, y float64) int {
	removed := 0
	for _, child := range n.children {
		removed += child.delete(x, y)
	}
	return removed
}

func (n *Internal) dump(b *strings.Builder, level int) {
	indent(b, level)
	b.WriteString("Internal Node\n")
	for _, child := range n.children {
		child.dump(b, level+1)
	}
}

func (n *Internal) walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}
