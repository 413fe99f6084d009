package quadtree

import (
	"fmt"
)

// Quadrant indexes the four children of an internal node.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

var quadrantNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (q Quadrant) String() string {
	if q < TopLeft || q > BottomRight {
		return "Quadrant(" + fmt.Sprint(int(q)) + ")"
	}
	return quadrantNames[q]
}

// BoundingBox is the region a node is responsible for. X and Y are the
// lower-left corner; y grows upward.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (px, py) lies in the half-open region
// [X, X+Width) x [Y, Y+Height).
func (b BoundingBox) Contains(px, py float64) bool {
	return px >= b.X &&
		px < b.X+b.Width &&
		py >= b.Y &&
		py < b.Y+b.Height
}

// ContainsClosed is Contains including the far edges.
func (b BoundingBox) ContainsClosed(px, py float64) bool {
	return px >= b.X &&
		px <= b.X+b.Width &&
		py >= b.Y &&
		py <= b.Y+b.Height
}

func (b BoundingBox) center() (float64, float64) {
	return b.X + b.Width/2.0, b.Y + b.Height/2.0
}

// Quadrant returns the child region for q. The four quadrants partition b
// with no gap or overlap.
func (b BoundingBox) Quadrant(q Quadrant) BoundingBox {
	halfWidth, halfHeight := b.Width/2.0, b.Height/2.0
	cx, cy := b.center()
	switch q {
	case TopLeft:
		return BoundingBox{b.X, cy, halfWidth, halfHeight}
	case TopRight:
		return BoundingBox{cx, cy, halfWidth, halfHeight}
	case BottomLeft:
		return BoundingBox{b.X, b.Y, halfWidth, halfHeight}
	case BottomRight:
		return BoundingBox{cx, b.Y, halfWidth, halfHeight}
	}
	panic("quadtree: invalid quadrant " + q.String())
}

// QuadrantOf picks the child a point routes to. Any point of the closed
// region maps to exactly one quadrant; points on the far edges go to the
// right and top children.
func (b BoundingBox) QuadrantOf(px, py float64) Quadrant {
	cx, cy := b.center()
	right := px >= cx
	top := py >= cy
	switch {
	case top && !right:
		return TopLeft
	case top && right:
		return TopRight
	case !right:
		return BottomLeft
	default:
		return BottomRight
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%.2f, %.2f): %.2fx%.2f", b.X, b.Y, b.Width, b.Height)
}
