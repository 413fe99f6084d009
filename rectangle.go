package quadtree

import (
	"fmt"
)

// Rectangle is the payload stored in the tree. It is keyed by its origin
// (X, Y) and is stored by value, so a stored rectangle never changes; an
// update replaces it.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Origin returns the point the rectangle is routed by.
func (r Rectangle) Origin() Point {
	return Point{r.X, r.Y}
}

// Valid reports whether the rectangle has a positive width and height.
func (r Rectangle) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether (px, py) lies on or inside the rectangle's edges.
func (r Rectangle) Contains(px, py float64) bool {
	return px >= r.X &&
		px <= r.X+r.Width &&
		py >= r.Y &&
		py <= r.Y+r.Height
}

// Overlaps reports whether the closed spans of both rectangles intersect on
// both axes. Touching edges count as overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle at (%.2f, %.2f): %.2fx%.2f", r.X, r.Y, r.Width, r.Height)
}
