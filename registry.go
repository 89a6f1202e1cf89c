// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"fmt"
	"sync"
)

// Handle is an opaque reference to a viewport held by a Registry.
// The windowing layer keeps handles instead of node pointers.
type Handle uint64

// Registry exposes the viewport tree to the surrounding rendering and
// windowing layer through opaque handles, per the external interface of
// the toolkit: the host creates viewports, wires them into a tree, mutates
// placement requests, and reads back the resolved frame and clip
// rectangles after every recompute to refresh GPU viewport/scissor state.
//
// The registry itself is guarded by a lock so handle lookup is safe from
// any goroutine; the tree operations behind it remain single-threaded by
// contract (the rendering/event thread).
//
// Example:
//
//	reg := viewport.NewRegistry()
//	root := reg.Create(viewport.WithSize(800, 600))
//	panel := reg.Create(viewport.WithSize(0.5, 0.5))
//	_ = reg.AddChild(root, panel)
//	_ = reg.Resize(root, 800, 600)
//	frame, _ := reg.ViewportRect(panel)
type Registry struct {
	mu         sync.RWMutex
	viewports  map[Handle]*Viewport
	nextHandle Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		viewports: make(map[Handle]*Viewport),
	}
}

// Create builds a viewport with the given options and returns its handle.
func (r *Registry) Create(opts ...Option) Handle {
	v := New(opts...)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextHandle++
	h := r.nextHandle
	r.viewports[h] = v
	return h
}

// Get returns the viewport behind a handle, or ErrUnknownHandle.
func (r *Registry) Get(h Handle) (*Viewport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.viewports[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return v, nil
}

// AddChild attaches the child viewport to the parent viewport.
// Surfaces ErrAlreadyParented unchanged when the child is attached
// elsewhere; no partial mutation is applied.
func (r *Registry) AddChild(parent, child Handle) error {
	p, err := r.Get(parent)
	if err != nil {
		return err
	}
	c, err := r.Get(child)
	if err != nil {
		return err
	}
	return p.Add(c)
}

// RemoveChild detaches child from parent and destroys its subtree. The
// child handle (and the handles of every descendant) become invalid.
func (r *Registry) RemoveChild(parent, child Handle) error {
	p, err := r.Get(parent)
	if err != nil {
		return err
	}
	c, err := r.Get(child)
	if err != nil {
		return err
	}
	// Collect the subtree before removal; Remove detaches the nodes and
	// their handles could no longer be traced back afterwards.
	doomed := make(map[*Viewport]bool)
	collect(c, doomed)
	if err := p.Remove(c); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for h, v := range r.viewports {
		if doomed[v] {
			delete(r.viewports, h)
		}
	}
	return nil
}

// collect marks v and every descendant.
func collect(v *Viewport, set map[*Viewport]bool) {
	set[v] = true
	for _, c := range v.Children() {
		collect(c, set)
	}
}

// SetSize updates the requested size and triggers a full-tree recompute
// from the root.
func (r *Registry) SetSize(h Handle, w, hgt float64) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.SetSize(w, hgt)
	return nil
}

// SetPosition updates the requested position and triggers a full-tree
// recompute from the root.
func (r *Registry) SetPosition(h Handle, x, y float64) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.SetPosition(x, y)
	return nil
}

// ViewportRect returns the resolved frame rectangle for GPU viewport state.
func (r *Registry) ViewportRect(h Handle) (Rect, error) {
	v, err := r.Get(h)
	if err != nil {
		return Rect{}, err
	}
	return v.Frame(), nil
}

// ClipRect returns the resolved scissor rectangle for GPU scissor state.
func (r *Registry) ClipRect(h Handle) (Rect, error) {
	v, err := r.Get(h)
	if err != nil {
		return Rect{}, err
	}
	return v.Clip(), nil
}

// Resize resizes the tree rooted at h. Surfaces ErrNotRoot unchanged when
// h is not a root viewport.
func (r *Registry) Resize(h Handle, width, height float64) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	return v.Resize(width, height)
}

// HitTest reports whether the point lies inside the viewport's frame.
func (r *Registry) HitTest(h Handle, x, y float64) (bool, error) {
	v, err := r.Get(h)
	if err != nil {
		return false, err
	}
	return v.Contains(x, y), nil
}

// DispatchResize forwards a window resize to the tree rooted at h.
func (r *Registry) DispatchResize(h Handle, width, height int) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	return v.DispatchResize(width, height)
}

// DispatchMousePress forwards a pointer press to the tree rooted at h.
func (r *Registry) DispatchMousePress(h Handle, x, y float64, button MouseButton) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.DispatchMousePress(x, y, button)
	return nil
}

// DispatchMouseRelease forwards a pointer release to the tree rooted at h.
func (r *Registry) DispatchMouseRelease(h Handle, x, y float64, button MouseButton) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.DispatchMouseRelease(x, y, button)
	return nil
}

// DispatchMouseDrag forwards a pointer drag to the tree rooted at h.
func (r *Registry) DispatchMouseDrag(h Handle, x, y, dx, dy float64, button MouseButton) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.DispatchMouseDrag(x, y, dx, dy, button)
	return nil
}

// DispatchMouseScroll forwards a scroll to the tree rooted at h.
func (r *Registry) DispatchMouseScroll(h Handle, x, y, dx, dy float64) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.DispatchMouseScroll(x, y, dx, dy)
	return nil
}

// DispatchMouseMotion forwards pointer motion to the tree rooted at h.
func (r *Registry) DispatchMouseMotion(h Handle, x, y, dx, dy float64) error {
	v, err := r.Get(h)
	if err != nil {
		return err
	}
	v.DispatchMouseMotion(x, y, dx, dy)
	return nil
}
