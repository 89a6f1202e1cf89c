package viewport

import "math"

// Geometry resolution for viewport placement.
//
// Requested sizes, positions and anchors are single scalars whose sign and
// magnitude select the interpretation:
//
//	r <= -1     absolute inset from the far edge
//	-1 < r < 0  relative inset (fraction of the parent dimension)
//	0 <= r <= 1 fraction of the parent dimension
//	r > 1       absolute pixel value
//
// All formulas are multiplicative, so a degenerate zero-size parent simply
// propagates zero-size children without any division.

// Request holds the placement inputs for one viewport: requested size,
// position and anchor (each encoded per the scalar rule above) and an
// optional aspect ratio (height/width). Aspect 0 means unconstrained.
type Request struct {
	Size     [2]float64
	Position [2]float64
	Anchor   [2]float64
	Aspect   float64
}

// ResolveSpan resolves a requested width or height against the parent span.
// Inset results are clamped to zero so spans are never negative.
func ResolveSpan(r, parent float64) float64 {
	switch {
	case r <= -1:
		return math.Max(parent+r, 0)
	case r < 0:
		return math.Max(parent+r*parent, 0)
	case r <= 1:
		return r * parent
	default:
		return r
	}
}

// ResolveCoord resolves a requested position coordinate against the parent
// span. Anchors use the same rule against the box's own span, which yields
// the pixel offset from the box origin to its anchor point. Unlike
// ResolveSpan the fractional branch excludes 1, so a coordinate of exactly 1
// is one absolute pixel.
func ResolveCoord(p, parent float64) float64 {
	switch {
	case p <= -1:
		return parent + p
	case p < 0:
		return parent + p*parent
	case p < 1:
		return p * parent
	default:
		return p
	}
}

// SolveRoot computes the geometry of a parentless viewport. The requested
// size is honored directly except that an aspect constraint may shrink one
// axis; the constrained rectangle is centered within the requested box.
// Frame and clip start out identical at the root.
func SolveRoot(req Request) Geometry {
	w, h := req.Size[0], req.Size[1]
	if req.Aspect != 0 {
		h = w * req.Aspect
		if h > req.Size[1] {
			h = req.Size[1]
			w = h / req.Aspect
		}
	}
	x := (req.Size[0] - w) / 2
	y := (req.Size[1] - h) / 2
	r := Rect{round(x), round(y), round(w), round(h)}
	return Geometry{Frame: r, Clip: r}
}

// SolveChild computes the geometry of a viewport from its placement request
// and its parent's already-computed geometry. The dependency is strictly
// one-way: nothing about the child ever feeds back into the parent.
func SolveChild(parent Geometry, req Request) Geometry {
	pw := float64(parent.Frame.W)
	ph := float64(parent.Frame.H)

	w := math.Round(ResolveSpan(req.Size[0], pw))

	var h float64
	if req.Aspect != 0 {
		h = req.Aspect * w
		// Only back-solve the width when it was requested in the
		// normalized range; absolute widths win over the aspect.
		if h > ph && req.Size[0] > -1 && req.Size[0] <= 1 {
			h = ph
			w = math.Round(h / req.Aspect)
		}
		h = math.Round(h)
	} else {
		h = math.Round(ResolveSpan(req.Size[1], ph))
	}

	ax := math.Round(ResolveCoord(req.Anchor[0], w))
	ay := math.Round(ResolveCoord(req.Anchor[1], h))

	x := math.Round(ResolveCoord(req.Position[0], pw)) + float64(parent.Frame.X) - ax
	y := math.Round(ResolveCoord(req.Position[1], ph)) + float64(parent.Frame.Y) - ay

	frame := Rect{int(x), int(y), int(w), int(h)}
	return Geometry{Frame: frame, Clip: clipAgainst(parent.Clip, frame)}
}

// clipAgainst intersects the child frame with the parent clip rectangle.
// The -1 in the span computation is carried over verbatim from the original
// scissor math; callers depend on the exact values it produces.
func clipAgainst(parent Rect, frame Rect) Rect {
	cx := max(parent.X, frame.X)
	cy := max(parent.Y, frame.Y)
	cw := max(min(parent.W-(cx-parent.X)-1, frame.W), 0)
	ch := max(min(parent.H-(cy-parent.Y)-1, frame.H), 0)
	return Rect{cx, cy, cw, ch}
}

// round converts to the nearest integer, halves away from zero.
func round(v float64) int {
	return int(math.Round(v))
}
