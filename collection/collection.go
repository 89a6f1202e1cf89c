// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package collection batches many small drawables into shared buffers.
//
// A Collection keeps one interleaved float32 vertex buffer and one
// uint32 index buffer for any number of items. Appending an item
// renumbers its indices against the current base vertex; removing an
// item compacts both buffers and renumbers everything behind it. A
// dirty flag tells the renderer when the GPU copies are stale.
package collection

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/viewport/shaders"
)

// ErrInvalidItem is returned for item indexes that are out of range.
var ErrInvalidItem = errors.New("collection: invalid item")

type itemSpan struct {
	vertexStart int // in vertices, not floats
	vertexCount int
	indexStart  int
	indexCount  int
}

// Collection is an append-style batch of items sharing two buffers.
type Collection struct {
	mu       sync.Mutex
	stride   int // floats per vertex
	snippet  string
	vertices []float32
	indices  []uint32
	items    []itemSpan
	uniforms []map[string][]float32
	dirty    bool

	// itemIDOffset is the float offset of a per-vertex item id
	// attribute, or -1 when the layout has none.
	itemIDOffset int
}

// New creates a collection with the given vertex stride (floats per
// vertex) bound to a snippet from the shaders library.
func New(stride int, snippet string) (*Collection, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("collection: invalid stride %d", stride)
	}
	if _, err := shaders.Get(snippet); err != nil {
		return nil, fmt.Errorf("collection: binding snippet: %w", err)
	}
	return &Collection{
		stride:       stride,
		snippet:      snippet,
		itemIDOffset: -1,
	}, nil
}

// NewTriangleCollection returns a collection of indexed triangles with
// interleaved position3 + color4 vertices.
func NewTriangleCollection() (*Collection, error) {
	return New(7, "raw-triangle.wgsl")
}

// NewPathCollection returns a collection of line strips with
// interleaved position3 + color4 + item id vertices. The item id
// attribute is written by Append and kept current across removals.
func NewPathCollection() (*Collection, error) {
	c, err := New(8, "raw-path.wgsl")
	if err != nil {
		return nil, err
	}
	c.itemIDOffset = 7
	return c, nil
}

// Snippet returns the bound shader snippet name.
func (c *Collection) Snippet() string { return c.snippet }

// Stride returns the number of floats per vertex.
func (c *Collection) Stride() int { return c.stride }

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// VertexCount returns the total number of vertices across all items.
func (c *Collection) VertexCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vertices) / c.stride
}

// IndexCount returns the total number of indices across all items.
func (c *Collection) IndexCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.indices)
}

// Append adds an item. Vertices are interleaved floats, a multiple of
// the stride; indices are local to the item and renumbered against the
// current base vertex. It returns the item index.
func (c *Collection) Append(vertices []float32, indices []uint32) (int, error) {
	if len(vertices) == 0 || len(vertices)%c.stride != 0 {
		return 0, fmt.Errorf("collection: vertex data is %d floats, not a multiple of stride %d",
			len(vertices), c.stride)
	}
	vcount := len(vertices) / c.stride
	for _, idx := range indices {
		if int(idx) >= vcount {
			return 0, fmt.Errorf("collection: index %d out of range for %d vertices", idx, vcount)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	base := len(c.vertices) / c.stride
	item := len(c.items)

	c.vertices = append(c.vertices, vertices...)
	if c.itemIDOffset >= 0 {
		for v := 0; v < vcount; v++ {
			c.vertices[(base+v)*c.stride+c.itemIDOffset] = float32(item)
		}
	}

	indexStart := len(c.indices)
	for _, idx := range indices {
		c.indices = append(c.indices, idx+uint32(base))
	}

	c.items = append(c.items, itemSpan{
		vertexStart: base,
		vertexCount: vcount,
		indexStart:  indexStart,
		indexCount:  len(indices),
	})
	c.uniforms = append(c.uniforms, make(map[string][]float32))
	c.dirty = true
	return item, nil
}

// Remove deletes an item, compacting both buffers and renumbering the
// indices and item ids of everything behind it.
func (c *Collection) Remove(item int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item < 0 || item >= len(c.items) {
		return fmt.Errorf("%w: %d", ErrInvalidItem, item)
	}
	span := c.items[item]

	c.vertices = append(c.vertices[:span.vertexStart*c.stride],
		c.vertices[(span.vertexStart+span.vertexCount)*c.stride:]...)
	c.indices = append(c.indices[:span.indexStart],
		c.indices[span.indexStart+span.indexCount:]...)

	for i := span.indexStart; i < len(c.indices); i++ {
		c.indices[i] -= uint32(span.vertexCount)
	}

	c.items = append(c.items[:item], c.items[item+1:]...)
	c.uniforms = append(c.uniforms[:item], c.uniforms[item+1:]...)
	for i := item; i < len(c.items); i++ {
		c.items[i].vertexStart -= span.vertexCount
		c.items[i].indexStart -= span.indexCount
		if c.itemIDOffset >= 0 {
			s := c.items[i]
			for v := 0; v < s.vertexCount; v++ {
				c.vertices[(s.vertexStart+v)*c.stride+c.itemIDOffset] = float32(i)
			}
		}
	}

	c.dirty = true
	return nil
}

// SetUniform stores a per-item uniform value.
func (c *Collection) SetUniform(item int, name string, values ...float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item < 0 || item >= len(c.items) {
		return fmt.Errorf("%w: %d", ErrInvalidItem, item)
	}
	c.uniforms[item][name] = slices.Clone(values)
	c.dirty = true
	return nil
}

// Uniform returns a per-item uniform value.
func (c *Collection) Uniform(item int, name string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item < 0 || item >= len(c.items) {
		return nil, false
	}
	v, ok := c.uniforms[item][name]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Vertices returns a copy of the interleaved vertex buffer.
func (c *Collection) Vertices() []float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.vertices)
}

// Indices returns a copy of the index buffer.
func (c *Collection) Indices() []uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.indices)
}

// Dirty reports whether the buffers changed since the last ClearDirty.
func (c *Collection) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// ClearDirty marks the GPU copies as current. The renderer calls this
// after re-uploading.
func (c *Collection) ClearDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = false
}
