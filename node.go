package quadtree

import (
	"strings"
)

// Node is a region of the tree. It is either a *Leaf holding rectangles or
// an *Internal holding four children.
type Node interface {
	Boundary() BoundingBox
	Depth() int
	IsLeaf() bool
	// Len is the number of rectangles stored in the subtree.
	Len() int

	// insert returns the node that must take this node's place. A leaf
	// that splits returns the internal node replacing it.
	insert(r Rectangle) Node
	find(x, y float64) (Rectangle, bool)
	delete(x, y float64) int
	dump(b *strings.Builder, level int)
	walk(fn func(Node) bool) bool
}

// policy is shared by every node of one tree.
type policy struct {
	capacity int
	maxDepth int
}

// update replaces whatever rectangle is found at (x, y) with a rectangle of
// the new size at that same point.
func update(n Node, x, y, width, height float64) (Node, bool) {
	if _, ok := n.find(x, y); !ok {
		return n, false
	}
	n.delete(x, y)
	return n.insert(Rectangle{x, y, width, height}), true
}

func indent(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat(" ", level*4))
}
