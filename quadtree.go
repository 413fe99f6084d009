/*
Package quadtree implements a point-routed quadtree of axis-aligned
rectangles.

Rectangles are keyed by their origin. A leaf holds up to a fixed number of
rectangles (5 by default); the insert that would overflow it turns the leaf
into an internal node whose four children partition the same region, and
the held rectangles are dispersed into them. Nodes never merge back.

quadtree is not safe for concurrent use. Callers must serialise inserts,
updates and deletes, and must not interleave them with reads from other
goroutines without their own locking.
*/
package quadtree

import (
	"strings"
)

const (
	DefaultCapacity = 5
	DefaultMaxDepth = 32
)

// Option configures a Quadtree.
type Option func(*policy)

// WithCapacity sets how many rectangles a leaf holds before it splits.
// Values below 1 are ignored.
func WithCapacity(capacity int) Option {
	return func(p *policy) {
		if capacity >= 1 {
			p.capacity = capacity
		}
	}
}

// WithMaxDepth sets the depth at which leaves stop splitting and grow past
// capacity instead. Values below 0 are ignored.
func WithMaxDepth(depth int) Option {
	return func(p *policy) {
		if depth >= 0 {
			p.maxDepth = depth
		}
	}
}

type Quadtree struct {
	boundary BoundingBox
	policy   *policy
	root     Node
}

// New returns an empty tree covering boundary. The region is fixed: the tree
// never grows or re-roots.
func New(boundary BoundingBox, opts ...Option) *Quadtree {
	p := &policy{capacity: DefaultCapacity, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return &Quadtree{
		boundary: boundary,
		policy:   p,
		root:     newLeaf(boundary, 0, p),
	}
}

func (q *Quadtree) Boundary() BoundingBox { return q.boundary }
func (q *Quadtree) Capacity() int         { return q.policy.capacity }
func (q *Quadtree) MaxDepth() int         { return q.policy.maxDepth }
func (q *Quadtree) Root() Node            { return q.root }
func (q *Quadtree) Len() int              { return q.root.Len() }

// Insert stores r under its origin. It returns ErrOutOfBounds if the origin
// lies outside the tree's closed region.
func (q *Quadtree) Insert(r Rectangle) error {
	if !r.Valid() {
		return ErrInvalidRectangle
	}
	if !q.boundary.ContainsClosed(r.X, r.Y) {
		return ErrOutOfBounds
	}
	q.root = q.root.insert(r)
	return nil
}

// Find returns the first rectangle containing (x, y) in the leaf the point
// routes to.
func (q *Quadtree) Find(x, y float64) (Rectangle, bool) {
	if !q.boundary.ContainsClosed(x, y) {
		return Rectangle{}, false
	}
	return q.root.find(x, y)
}

// Update replaces the rectangles at (x, y) with one of the new size anchored
// at (x, y). The tree is left unchanged and ErrNotFound returned when nothing
// is there.
func (q *Quadtree) Update(x, y, width, height float64) error {
	if !(Rectangle{x, y, width, height}).Valid() {
		return ErrInvalidRectangle
	}
	if !q.boundary.ContainsClosed(x, y) {
		return ErrNotFound
	}
	root, ok := update(q.root, x, y, width, height)
	if !ok {
		return ErrNotFound
	}
	q.root = root
	return nil
}

// Delete removes every rectangle containing (x, y) and returns how many were
// removed. Deleting where nothing is stored is a no-op.
func (q *Quadtree) Delete(x, y float64) int {
	return q.root.delete(x, y)
}

// Dump renders the tree one node per line, indented four spaces per level.
func (q *Quadtree) Dump() string {
	var b strings.Builder
	q.root.dump(&b, 0)
	return b.String()
}

// Walk visits nodes depth first, children in quadrant order, until fn
// returns false.
func (q *Quadtree) Walk(fn func(Node) bool) {
	q.root.walk(fn)
}

// Rectangles returns every stored rectangle in walk order.
func (q *Quadtree) Rectangles() []Rectangle {
	rects := make([]Rectangle, 0, q.Len())
	q.Walk(func(n Node) bool {
		if leaf, ok := n.(*Leaf); ok {
			rects = append(rects, leaf.rects...)
		}
		return true
	})
	return rects
}

// Stats describes the shape of a tree.
type Stats struct {
	Rectangles int `json:"rectangles"`
	Nodes      int `json:"nodes"`
	Leaves     int `json:"leaves"`
	Internals  int `json:"internals"`
	Depth      int `json:"depth"`
	// Overfull counts leaves holding more than the capacity because their
	// rectangles share one origin or they sit at the depth limit.
	Overfull int `json:"overfull"`
}

func (q *Quadtree) Stats() Stats {
	var s Stats
	q.Walk(func(n Node) bool {
		s.Nodes++
		if n.Depth() > s.Depth {
			s.Depth = n.Depth()
		}
		if !n.IsLeaf() {
			s.Internals++
			return true
		}
		s.Leaves++
		s.Rectangles += n.Len()
		if n.Len() > q.policy.capacity {
			s.Overfull++
		}
		return true
	})
	return s
}
