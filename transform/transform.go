// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package transform provides composable shader transform snippets.
//
// A Transform pairs a WGSL snippet from the shaders library with the
// named uniforms the snippet reads. Transforms attach to programs and
// push uniform values into every attached program, so a single
// transform can drive many draw programs at once. Viewport-aware
// transforms refresh their frame, clip and resolution uniforms when
// the owning viewport is recomputed.
package transform

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/shaders"
)

// Program receives uniform updates from an attached transform.
// gpu.StateUploader satisfies this, as does any render program that
// exposes named float uniforms.
type Program interface {
	SetUniform(name string, values []float32)
}

// Transform is a shader snippet with a named uniform table.
type Transform struct {
	mu       sync.Mutex
	name     string
	code     string
	uniforms map[string][]float32
	programs []Program

	// viewportAware transforms receive frame/clip/resolution updates
	// through Refresh.
	viewportAware bool
}

// New builds a transform from a snippet in the shaders library.
func New(snippet string) (*Transform, error) {
	code, err := shaders.Get(snippet)
	if err != nil {
		return nil, fmt.Errorf("transform: loading snippet %q: %w", snippet, err)
	}
	return &Transform{
		name:     snippet,
		code:     code,
		uniforms: make(map[string][]float32),
	}, nil
}

// NewViewportTransform returns the transform mapping geometry into a
// viewport's frame rectangle.
func NewViewportTransform() (*Transform, error) {
	t, err := New("viewport-transform.wgsl")
	if err != nil {
		return nil, err
	}
	t.viewportAware = true
	return t, nil
}

// NewViewportClipping returns the transform discarding fragments
// outside a viewport's clip rectangle.
func NewViewportClipping() (*Transform, error) {
	t, err := New("viewport-clipping.wgsl")
	if err != nil {
		return nil, err
	}
	t.viewportAware = true
	return t, nil
}

// NewPosition2D returns the transform lifting 2D positions into clip space.
func NewPosition2D() (*Transform, error) {
	return New("position-2d.wgsl")
}

// NewNull returns the identity transform.
func NewNull() (*Transform, error) {
	return New("null.wgsl")
}

// Name returns the snippet name this transform was built from.
func (t *Transform) Name() string { return t.name }

// Code returns the WGSL source of the snippet.
func (t *Transform) Code() string { return t.code }

// ViewportAware reports whether Refresh updates this transform.
func (t *Transform) ViewportAware() bool { return t.viewportAware }

// SetUniform stores a uniform value and pushes it to attached programs.
func (t *Transform) SetUniform(name string, values ...float32) {
	t.mu.Lock()
	t.uniforms[name] = slices.Clone(values)
	programs := slices.Clone(t.programs)
	t.mu.Unlock()

	for _, p := range programs {
		p.SetUniform(name, values)
	}
}

// Uniform returns a stored uniform value.
func (t *Transform) Uniform(name string) ([]float32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.uniforms[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Attach registers a program and pushes all current uniforms into it.
func (t *Transform) Attach(p Program) {
	t.mu.Lock()
	t.programs = append(t.programs, p)
	uniforms := make(map[string][]float32, len(t.uniforms))
	for k, v := range t.uniforms {
		uniforms[k] = slices.Clone(v)
	}
	t.mu.Unlock()

	for name, values := range uniforms {
		p.SetUniform(name, values)
	}
}

// Detach removes a previously attached program.
func (t *Transform) Detach(p Program) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, q := range t.programs {
		if q == p {
			t.programs = append(t.programs[:i], t.programs[i+1:]...)
			return
		}
	}
}

// Refresh updates the frame, clip and resolution uniforms from a
// viewport's computed geometry. Call it after every recompute, and
// from the viewport's resize handler. Transforms that are not
// viewport aware ignore the call.
func (t *Transform) Refresh(geom viewport.Geometry, width, height int) {
	if !t.viewportAware {
		return
	}
	f, c := geom.Frame, geom.Clip
	t.SetUniform("frame", float32(f.X), float32(f.Y), float32(f.W), float32(f.H))
	t.SetUniform("clip", float32(c.X), float32(c.Y), float32(c.W), float32(c.H))
	t.SetUniform("resolution", float32(width), float32(height))
}
