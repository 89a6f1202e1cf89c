package viewport

// Option configures a Viewport during creation.
//
// Example:
//
//	// Quarter-size panel pinned to the top-right corner of its parent:
//	v := viewport.New(
//	    viewport.WithSize(0.25, 0.25),
//	    viewport.WithPosition(-10, -10),
//	    viewport.WithAnchor(viewport.AnchorTopRight()),
//	)
type Option func(*Viewport)

// WithSize sets the requested size. Each scalar is independently absolute,
// relative or inset per the encoding in solver.go.
func WithSize(w, h float64) Option {
	return func(v *Viewport) {
		v.req.Size = [2]float64{w, h}
	}
}

// WithPosition sets the requested position relative to the parent.
func WithPosition(x, y float64) Option {
	return func(v *Viewport) {
		v.req.Position = [2]float64{x, y}
	}
}

// WithAnchor sets the anchor point used as the origin for positioning,
// resolved against the viewport's own resolved size.
func WithAnchor(x, y float64) Option {
	return func(v *Viewport) {
		v.req.Anchor = [2]float64{x, y}
	}
}

// WithAspect enforces a fixed aspect ratio (height/width).
func WithAspect(aspect float64) Option {
	return func(v *Viewport) {
		v.req.Aspect = aspect
	}
}

// WithHandlers attaches event handlers at construction time.
func WithHandlers(h Handlers) Option {
	return func(v *Viewport) {
		v.handlers = h
	}
}

// Symbolic corner anchors. Each returns the (x, y) anchor pair in the
// scalar encoding; y follows the GL convention (bottom at 0). Far edges
// use the -1 inset form, the closest encodable point to the edge itself
// (the fractional branch of the rule excludes exactly 1).
func AnchorBottomLeft() (x, y float64)  { return 0, 0 }
func AnchorBottomRight() (x, y float64) { return -1, 0 }
func AnchorTopLeft() (x, y float64)     { return 0, -1 }
func AnchorTopRight() (x, y float64)    { return -1, -1 }
func AnchorCenter() (x, y float64)      { return 0.5, 0.5 }
