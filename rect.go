package viewport

import "fmt"

// Rect is an axis-aligned rectangle in absolute pixel coordinates.
// X and Y locate the lower-left corner in the GL convention used by
// glViewport and glScissor (origin at the bottom of the window).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and bottom edges are inclusive, the right and top edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.W) &&
		y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// String returns the rectangle in WxH+X+Y geometry notation.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.W, r.H, r.X, r.Y)
}

// Geometry is the derived placement of a viewport: the frame rectangle
// handed to glViewport and the clip rectangle handed to glScissor.
// The clip rectangle is always contained in the parent's clip rectangle.
type Geometry struct {
	Frame Rect
	Clip  Rect
}
