package viewport

// Event routing through the viewport tree.
//
// The event set is a fixed enumeration known at compile time; handlers are
// plain callback fields on a per-viewport table rather than a dynamic
// registration mechanism. Dispatch is synchronous and single-threaded:
// every dispatch call runs to completion before the next one starts, and
// ordering (root-to-leaf for press/resize/motion, root-direct for
// release/drag/scroll) is part of the contract.
//
// Pointer coordinates arrive in window coordinates with y growing
// downward. Hit tests flip y against the root height internally; handlers
// receive the original window coordinates unchanged.

// EventKind identifies one kind of event routed through the tree.
type EventKind uint8

const (
	EventEnter EventKind = iota
	EventLeave
	EventResize
	EventMouseMotion
	EventMouseDrag
	EventMousePress
	EventMouseRelease
	EventMouseScroll
	EventChar
	EventKeyPress
	EventKeyRelease
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventResize:
		return "resize"
	case EventMouseMotion:
		return "mouse-motion"
	case EventMouseDrag:
		return "mouse-drag"
	case EventMousePress:
		return "mouse-press"
	case EventMouseRelease:
		return "mouse-release"
	case EventMouseScroll:
		return "mouse-scroll"
	case EventChar:
		return "char"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	default:
		return "unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// Modifiers is a bitmask of keyboard modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Key is a physical key code as reported by the windowing layer.
type Key int

// Handlers is the per-viewport event handler table. Nil fields are simply
// skipped during dispatch.
type Handlers struct {
	// Enter fires when the pointer enters the viewport frame.
	Enter func()

	// Leave fires when the pointer leaves the viewport frame.
	Leave func()

	// Resize fires after the tree geometry has been recomputed for a new
	// window size, so size-dependent external state (shader uniforms,
	// GPU viewport state) can be refreshed. Geometry reads during the
	// callback always observe the new rectangles.
	Resize func(width, height int)

	MousePress   func(x, y float64, button MouseButton)
	MouseRelease func(x, y float64, button MouseButton)
	MouseDrag    func(x, y, dx, dy float64, button MouseButton)
	MouseScroll  func(x, y, dx, dy float64)
	MouseMotion  func(x, y, dx, dy float64)

	KeyPress   func(key Key, mods Modifiers)
	KeyRelease func(key Key, mods Modifiers)
	Char       func(r rune)
}

// SetHandlers replaces the handler table of the viewport.
func (v *Viewport) SetHandlers(h Handlers) {
	v.handlers = h
}

// Captured returns the viewports recorded at the last press, in capture
// order. Meaningful on the root only; the slice is owned by the tree.
func (v *Viewport) Captured() []*Viewport { return v.captured }

// DispatchResize resizes the root, recomputes the whole tree, then
// notifies every viewport in pre-order. Geometry is fully updated before
// the first handler runs, so no handler can observe a stale rectangle.
// Returns ErrNotRoot when called below the root.
func (v *Viewport) DispatchResize(width, height int) error {
	if err := v.Resize(float64(width), float64(height)); err != nil {
		return err
	}
	Logger().Debug("resize dispatched", "viewport", v.Name(), "width", width, "height", height)
	v.notifyResize(width, height)
	return nil
}

func (v *Viewport) notifyResize(width, height int) {
	if v.handlers.Resize != nil {
		v.handlers.Resize(width, height)
	}
	for _, c := range v.children {
		c.notifyResize(width, height)
	}
}

// DispatchMousePress routes a button press. The root clears its capture
// list, then at every level each direct child containing the point is
// appended to the root capture list, notified, and recursed into. The
// fan-out is deliberate: overlapping siblings both receive the press, and
// nested descendants along the same point form a hit-test chain rather
// than a single deepest winner. Release and drag routing depend on the
// capture list this builds.
func (v *Viewport) DispatchMousePress(x, y float64, button MouseButton) {
	root := v.Root()
	if v.parent == nil {
		v.captured = v.captured[:0]
	}
	for _, child := range v.children {
		if child.hit(x, y) {
			root.captured = append(root.captured, child)
			if child.handlers.MousePress != nil {
				child.handlers.MousePress(x, y, button)
			}
			child.DispatchMousePress(x, y, button)
		}
	}
}

// DispatchMouseRelease notifies exactly the set of viewports captured at
// press time, without re-hit-testing, so a release always reaches the
// nodes that saw the press even if the pointer has moved off them.
// A no-op below the root.
func (v *Viewport) DispatchMouseRelease(x, y float64, button MouseButton) {
	if v.parent != nil {
		return
	}
	for _, c := range v.captured {
		if c.handlers.MouseRelease != nil {
			c.handlers.MouseRelease(x, y, button)
		}
	}
}

// DispatchMouseDrag routes a drag to the most recently captured viewport
// only. Single-target, unlike the press fan-out. A no-op below the root
// or when nothing is captured.
func (v *Viewport) DispatchMouseDrag(x, y, dx, dy float64, button MouseButton) {
	if v.parent != nil || len(v.captured) == 0 {
		return
	}
	c := v.captured[len(v.captured)-1]
	if c.handlers.MouseDrag != nil {
		c.handlers.MouseDrag(x, y, dx, dy, button)
	}
}

// DispatchMouseScroll routes a scroll to the most recently captured
// viewport only, mirroring drag routing.
func (v *Viewport) DispatchMouseScroll(x, y, dx, dy float64) {
	if v.parent != nil || len(v.captured) == 0 {
		return
	}
	c := v.captured[len(v.captured)-1]
	if c.handlers.MouseScroll != nil {
		c.handlers.MouseScroll(x, y, dx, dy)
	}
}

// DispatchMouseMotion tracks enter/leave transitions and routes motion to
// the innermost viewports under the pointer. Entering a child hands the
// motion focus down a level: the parent's own active flag is cleared (the
// clear cascades through the subtree) and only the entered child is
// re-marked, so deeper levels activate one at a time as motion events
// reach them.
func (v *Viewport) DispatchMouseMotion(x, y, dx, dy float64) {
	for _, child := range v.children {
		if child.hit(x, y) {
			if !child.active && child.handlers.Enter != nil {
				child.handlers.Enter()
			}
			v.SetActive(false)
			child.active = true
			if child.handlers.MouseMotion != nil {
				child.handlers.MouseMotion(x, y, dx, dy)
			}
			child.DispatchMouseMotion(x, y, dx, dy)
		} else {
			if child.active && child.handlers.Leave != nil {
				child.handlers.Leave()
			}
			child.SetActive(false)
			if v.hit(x, y) {
				v.active = true
			}
		}
	}
}

// DispatchKeyPress delivers a key press to the root handler. Keyboard
// events have no spatial routing; the windowing layer owns focus.
func (v *Viewport) DispatchKeyPress(key Key, mods Modifiers) {
	if v.handlers.KeyPress != nil {
		v.handlers.KeyPress(key, mods)
	}
}

// DispatchKeyRelease delivers a key release to the root handler.
func (v *Viewport) DispatchKeyRelease(key Key, mods Modifiers) {
	if v.handlers.KeyRelease != nil {
		v.handlers.KeyRelease(key, mods)
	}
}

// DispatchChar delivers a typed character to the root handler.
func (v *Viewport) DispatchChar(r rune) {
	if v.handlers.Char != nil {
		v.handlers.Char(r)
	}
}
