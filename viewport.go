package viewport

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// idCounter assigns viewport ids. Monotonic for the process lifetime,
// never reused.
var idCounter atomic.Uint64

// Viewport is a rectangular region of a window, arranged in a tree.
// Children are sized and positioned relative to their parent using the
// scalar encoding documented in solver.go, and are always clipped against
// the parent's clip rectangle.
//
// A tree of 400x400 with a half-size child:
//
//	root := viewport.New(viewport.WithSize(400, 400))
//	child := viewport.New(viewport.WithSize(0.5, 0.5))
//	root.Add(child)
//	root.Recompute()
//	child.Frame() // 200x200 at the root origin
//
// All tree mutation and event dispatch is single-threaded by contract:
// everything runs on the rendering/event thread, and geometry reads that
// happen on other threads must happen after the recompute pass returns.
type Viewport struct {
	id       uint64
	parent   *Viewport
	children []*Viewport

	req  Request
	geom Geometry

	// active tracks whether the pointer is currently inside.
	active bool

	handlers Handlers

	// captured holds the nodes recorded at press time that receive
	// release/drag/scroll regardless of pointer position. Root only.
	captured []*Viewport
}

// New creates a viewport with the given placement options.
// Defaults: size 800x600, position and anchor at the origin, no aspect.
func New(opts ...Option) *Viewport {
	v := &Viewport{
		id: idCounter.Add(1),
		req: Request{
			Size: [2]float64{800, 600},
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.req.Aspect != 0 {
		Logger().Info("enforcing aspect ratio", "viewport", v.Name(), "aspect", v.req.Aspect)
	}
	// Until the first recompute the requested size stands in for the
	// resolved geometry, as a plain absolute rectangle.
	v.geom = SolveRoot(v.req)
	return v
}

// ID returns the process-unique id assigned at construction.
func (v *Viewport) ID() uint64 { return v.id }

// Name returns a short printable name derived from the id.
func (v *Viewport) Name() string { return fmt.Sprintf("VP%d", v.id) }

// Parent returns the parent viewport, or nil at the root.
func (v *Viewport) Parent() *Viewport { return v.parent }

// Root walks up to the root of the tree.
func (v *Viewport) Root() *Viewport {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the direct children in insertion order. Insertion order
// is the z-order: it decides both rendering order and hit-test order.
// The returned slice is owned by the viewport and must not be mutated.
func (v *Viewport) Children() []*Viewport { return v.children }

// Frame returns the resolved viewport rectangle in absolute pixels.
func (v *Viewport) Frame() Rect { return v.geom.Frame }

// Clip returns the resolved scissor rectangle in absolute pixels.
func (v *Viewport) Clip() Rect { return v.geom.Clip }

// Geometry returns the resolved frame and clip rectangles together.
func (v *Viewport) Geometry() Geometry { return v.geom }

// Active reports whether the pointer is currently inside the viewport.
func (v *Viewport) Active() bool { return v.active }

// Request returns the current placement request.
func (v *Viewport) Request() Request { return v.req }

// Add attaches child to v. The child keeps its placement request and is
// resolved against v on the next recompute. Returns ErrAlreadyParented if
// the child is still attached elsewhere; re-parenting requires an explicit
// Remove first, so no partial mutation ever happens.
func (v *Viewport) Add(child *Viewport) error {
	if child.parent != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyParented, child.Name())
	}
	child.parent = v
	v.children = append(v.children, child)
	return nil
}

// Remove detaches child from v and tears down the child's subtree in
// post-order. Returns ErrNotChild if child is not a direct child of v.
func (v *Viewport) Remove(child *Viewport) error {
	idx := -1
	for i, c := range v.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotChild, child.Name())
	}
	v.children = append(v.children[:idx], v.children[idx+1:]...)
	child.parent = nil
	child.destroy()
	return nil
}

// destroy releases the subtree bottom-up. The ownership graph is a strict
// tree, so post-order traversal gives a deterministic teardown order.
func (v *Viewport) destroy() {
	for _, c := range v.children {
		c.parent = nil
		c.destroy()
	}
	v.children = nil
	v.captured = nil
	v.handlers = Handlers{}
	Logger().Debug("viewport destroyed", "viewport", v.Name())
}

// Recompute resolves the geometry of v from its parent's already-valid
// geometry (or as a root when parentless), then recurses into every child
// in insertion order. The whole subtree is recomputed on every trigger;
// there is no incremental invalidation.
func (v *Viewport) Recompute() {
	if v.parent == nil {
		v.geom = SolveRoot(v.req)
	} else {
		v.geom = SolveChild(v.parent.geom, v.req)
	}
	for _, c := range v.children {
		c.Recompute()
	}
}

// Resize sets the requested size of the root and recomputes the entire
// tree. Only valid on the root; returns ErrNotRoot otherwise.
func (v *Viewport) Resize(width, height float64) error {
	if v.parent != nil {
		return ErrNotRoot
	}
	v.req.Size = [2]float64{width, height}
	v.Recompute()
	return nil
}

// SetSize updates the requested size and recomputes the whole tree from
// the root. Mutators recompute deterministically instead of relying on
// side effects of field assignment.
func (v *Viewport) SetSize(w, h float64) {
	v.req.Size = [2]float64{w, h}
	v.Root().Recompute()
}

// SetPosition updates the requested position and recomputes from the root.
func (v *Viewport) SetPosition(x, y float64) {
	v.req.Position = [2]float64{x, y}
	v.Root().Recompute()
}

// SetAnchor updates the anchor and recomputes from the root.
func (v *Viewport) SetAnchor(x, y float64) {
	v.req.Anchor = [2]float64{x, y}
	v.Root().Recompute()
}

// SetAspect updates the aspect constraint (height/width, 0 to clear) and
// recomputes from the root.
func (v *Viewport) SetAspect(aspect float64) {
	v.req.Aspect = aspect
	v.Root().Recompute()
}

// Contains reports whether the point lies inside the resolved frame
// rectangle. The point must already be in the same coordinate system as
// the frame; callers whose input has a top-left origin flip y against the
// root height first (the event dispatchers do this internally).
func (v *Viewport) Contains(x, y float64) bool {
	return v.geom.Frame.Contains(x, y)
}

// hit tests a pointer position given in window coordinates, where y grows
// downward. The pointer y is flipped against the root frame height to
// match the GL convention the geometry lives in.
func (v *Viewport) hit(x, y float64) bool {
	return v.Contains(x, float64(v.Root().geom.Frame.H)-y)
}

// SetActive sets the active flag. Clearing the flag cascades to the whole
// subtree; setting it marks only this viewport. Descendants become active
// one level at a time as motion events reach them.
func (v *Viewport) SetActive(active bool) {
	v.active = active
	if !active {
		for _, c := range v.children {
			c.SetActive(false)
		}
	}
}

// String renders the subtree as an ASCII tree, one line per viewport with
// its resolved frame geometry.
func (v *Viewport) String() string {
	var sb strings.Builder
	for _, line := range v.replines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (v *Viewport) replines() []string {
	lines := []string{fmt.Sprintf("%s (%s)", v.Name(), v.geom.Frame)}
	for i, child := range v.children {
		last := i == len(v.children)-1
		prefix, cont := "├── ", "│   "
		if last {
			prefix, cont = "└── ", "    "
		}
		for j, line := range child.replines() {
			if j == 0 {
				lines = append(lines, prefix+line)
			} else {
				lines = append(lines, cont+line)
			}
		}
	}
	return lines
}
