package quadtree

import "errors"

var (
	// ErrNotFound is returned when no rectangle contains the target point.
	ErrNotFound = errors.New("quadtree: nothing at point")
	// ErrOutOfBounds is returned when a rectangle's origin lies outside the
	// tree's region. The rectangle is not stored.
	ErrOutOfBounds = errors.New("quadtree: point outside tree boundary")
	// ErrInvalidRectangle is returned for rectangles without a positive
	// width and height.
	ErrInvalidRectangle = errors.New("quadtree: rectangle must have positive width and height")
)
