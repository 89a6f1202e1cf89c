// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package collection

import (
	"errors"
	"reflect"
	"testing"
)

// tri returns a 3-vertex triangle in position3+color4 layout.
func tri(x float32) []float32 {
	v := make([]float32, 0, 21)
	for i := 0; i < 3; i++ {
		v = append(v, x+float32(i), 0, 0, 1, 1, 1, 1)
	}
	return v
}

func TestAppendRenumbersIndices(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}

	i0, err := c.Append(tri(0), []uint32{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	i1, err := c.Append(tri(10), []uint32{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if i0 != 0 || i1 != 1 {
		t.Errorf("item indexes = %d, %d", i0, i1)
	}

	want := []uint32{0, 1, 2, 3, 4, 5}
	if got := c.Indices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Indices() = %v, want %v", got, want)
	}
	if c.VertexCount() != 6 || c.IndexCount() != 6 {
		t.Errorf("counts = %d vertices, %d indices", c.VertexCount(), c.IndexCount())
	}
}

func TestAppendValidation(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Append([]float32{1, 2, 3}, nil); err == nil {
		t.Error("Append with partial vertex accepted")
	}
	if _, err := c.Append(tri(0), []uint32{0, 1, 3}); err == nil {
		t.Error("Append with out-of-range index accepted")
	}
}

func TestRemoveCompacts(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}
	c.Append(tri(0), []uint32{0, 1, 2})
	c.Append(tri(10), []uint32{0, 1, 2})
	c.Append(tri(20), []uint32{0, 1, 2})

	if err := c.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if c.Len() != 2 || c.VertexCount() != 6 {
		t.Errorf("after remove: %d items, %d vertices", c.Len(), c.VertexCount())
	}
	// The third item's indices now follow the first item directly.
	want := []uint32{0, 1, 2, 3, 4, 5}
	if got := c.Indices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Indices() = %v, want %v", got, want)
	}
	// The third item's vertices moved down.
	v := c.Vertices()
	if v[3*7] != 20 {
		t.Errorf("second item x = %v, want 20", v[3*7])
	}
}

func TestRemoveInvalid(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Remove(0); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("Remove(0) on empty = %v, want ErrInvalidItem", err)
	}
}

func TestPathCollectionItemIDs(t *testing.T) {
	c, err := NewPathCollection()
	if err != nil {
		t.Fatal(err)
	}

	// Two 2-vertex strips in position3+color4+id layout.
	strip := func() []float32 {
		return []float32{
			0, 0, 0, 1, 1, 1, 1, 0,
			1, 0, 0, 1, 1, 1, 1, 0,
		}
	}
	c.Append(strip(), []uint32{0, 1})
	c.Append(strip(), []uint32{0, 1})
	c.Append(strip(), []uint32{0, 1})

	v := c.Vertices()
	// id attribute is the 8th float of each vertex.
	for vertex := 0; vertex < 6; vertex++ {
		want := float32(vertex / 2)
		if got := v[vertex*8+7]; got != want {
			t.Errorf("vertex %d item id = %v, want %v", vertex, got, want)
		}
	}

	// Removing the middle strip renumbers the last one.
	if err := c.Remove(1); err != nil {
		t.Fatal(err)
	}
	v = c.Vertices()
	for vertex := 2; vertex < 4; vertex++ {
		if got := v[vertex*8+7]; got != 1 {
			t.Errorf("vertex %d item id = %v, want 1", vertex, got)
		}
	}
}

func TestPerItemUniforms(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}
	item, _ := c.Append(tri(0), []uint32{0, 1, 2})

	if err := c.SetUniform(item, "color", 1, 0, 0, 1); err != nil {
		t.Fatalf("SetUniform: %v", err)
	}
	got, ok := c.Uniform(item, "color")
	if !ok || !reflect.DeepEqual(got, []float32{1, 0, 0, 1}) {
		t.Errorf("Uniform(color) = %v, %v", got, ok)
	}
	if _, ok := c.Uniform(item, "missing"); ok {
		t.Error("missing uniform reported present")
	}
	if err := c.SetUniform(99, "color", 1); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("SetUniform(99) = %v, want ErrInvalidItem", err)
	}
}

func TestDirtyFlag(t *testing.T) {
	c, err := NewTriangleCollection()
	if err != nil {
		t.Fatal(err)
	}
	if c.Dirty() {
		t.Error("new collection is dirty")
	}
	c.Append(tri(0), []uint32{0, 1, 2})
	if !c.Dirty() {
		t.Error("Append did not mark dirty")
	}
	c.ClearDirty()
	if c.Dirty() {
		t.Error("ClearDirty did not clear")
	}
	c.Remove(0)
	if !c.Dirty() {
		t.Error("Remove did not mark dirty")
	}
}

func TestNewUnknownSnippet(t *testing.T) {
	if _, err := New(4, "missing.wgsl"); err == nil {
		t.Error("New with unknown snippet succeeded")
	}
}
