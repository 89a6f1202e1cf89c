// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/shaders"
)

type recordingProgram struct {
	sets map[string][]float32
}

func newRecordingProgram() *recordingProgram {
	return &recordingProgram{sets: make(map[string][]float32)}
}

func (p *recordingProgram) SetUniform(name string, values []float32) {
	p.sets[name] = values
}

func TestNewUnknownSnippet(t *testing.T) {
	_, err := New("missing.wgsl")
	if !errors.Is(err, shaders.ErrNotFound) {
		t.Errorf("New(missing.wgsl) = %v, want ErrNotFound", err)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Transform, error)
		aware bool
	}{
		{"viewport-transform.wgsl", NewViewportTransform, true},
		{"viewport-clipping.wgsl", NewViewportClipping, true},
		{"position-2d.wgsl", NewPosition2D, false},
		{"null.wgsl", NewNull, false},
	}
	for _, tt := range tests {
		tr, err := tt.build()
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if tr.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", tr.Name(), tt.name)
		}
		if tr.Code() == "" {
			t.Errorf("%s: empty code", tt.name)
		}
		if tr.ViewportAware() != tt.aware {
			t.Errorf("%s: ViewportAware() = %v, want %v", tt.name, tr.ViewportAware(), tt.aware)
		}
	}
}

func TestSetUniformPushesToAttached(t *testing.T) {
	tr, err := NewNull()
	if err != nil {
		t.Fatal(err)
	}
	p := newRecordingProgram()
	tr.Attach(p)

	tr.SetUniform("scale", 2, 3)
	got, ok := p.sets["scale"]
	if !ok {
		t.Fatal("attached program did not receive uniform")
	}
	if !reflect.DeepEqual(got, []float32{2, 3}) {
		t.Errorf("scale = %v, want [2 3]", got)
	}

	v, ok := tr.Uniform("scale")
	if !ok || !reflect.DeepEqual(v, []float32{2, 3}) {
		t.Errorf("Uniform(scale) = %v, %v", v, ok)
	}
}

func TestAttachPushesExistingUniforms(t *testing.T) {
	tr, err := NewNull()
	if err != nil {
		t.Fatal(err)
	}
	tr.SetUniform("alpha", 0.5)

	p := newRecordingProgram()
	tr.Attach(p)
	if !reflect.DeepEqual(p.sets["alpha"], []float32{0.5}) {
		t.Errorf("alpha = %v, want [0.5]", p.sets["alpha"])
	}
}

func TestDetach(t *testing.T) {
	tr, err := NewNull()
	if err != nil {
		t.Fatal(err)
	}
	p := newRecordingProgram()
	tr.Attach(p)
	tr.Detach(p)
	tr.SetUniform("x", 1)
	if _, ok := p.sets["x"]; ok {
		t.Error("detached program still received uniform")
	}
}

func TestRefreshUpdatesViewportUniforms(t *testing.T) {
	tr, err := NewViewportTransform()
	if err != nil {
		t.Fatal(err)
	}
	p := newRecordingProgram()
	tr.Attach(p)

	geom := viewport.Geometry{
		Frame: viewport.Rect{X: 10, Y: 20, W: 300, H: 200},
		Clip:  viewport.Rect{X: 10, Y: 20, W: 299, H: 199},
	}
	tr.Refresh(geom, 800, 600)

	if !reflect.DeepEqual(p.sets["frame"], []float32{10, 20, 300, 200}) {
		t.Errorf("frame = %v", p.sets["frame"])
	}
	if !reflect.DeepEqual(p.sets["clip"], []float32{10, 20, 299, 199}) {
		t.Errorf("clip = %v", p.sets["clip"])
	}
	if !reflect.DeepEqual(p.sets["resolution"], []float32{800, 600}) {
		t.Errorf("resolution = %v", p.sets["resolution"])
	}
}

func TestRefreshIgnoredWhenNotViewportAware(t *testing.T) {
	tr, err := NewNull()
	if err != nil {
		t.Fatal(err)
	}
	tr.Refresh(viewport.Geometry{}, 100, 100)
	if _, ok := tr.Uniform("frame"); ok {
		t.Error("null transform gained viewport uniforms")
	}
}
