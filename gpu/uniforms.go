// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/viewport"
)

// UniformsSize is the byte size of the packed ViewportUniforms block.
// Layout: frame (vec4<f32>) + clip (vec4<f32>) + resolution (vec2<f32>)
// + padding (vec2<f32>).
const UniformsSize = 48

// ViewportUniforms is the CPU-side mirror of the ViewportUniforms
// struct in the built-in WGSL snippets. Field order must match the
// shader layout.
type ViewportUniforms struct {
	X, Y, W, H                 float32
	ClipX, ClipY, ClipW, ClipH float32
	ResW, ResH                 float32
}

// UniformsFromGeometry fills a uniform block from computed geometry
// and the window resolution.
func UniformsFromGeometry(geom viewport.Geometry, width, height int) ViewportUniforms {
	f, c := geom.Frame, geom.Clip
	return ViewportUniforms{
		X: float32(f.X), Y: float32(f.Y), W: float32(f.W), H: float32(f.H),
		ClipX: float32(c.X), ClipY: float32(c.Y), ClipW: float32(c.W), ClipH: float32(c.H),
		ResW: float32(width), ResH: float32(height),
	}
}

// Pack serializes the block in shader memory order, little endian,
// padded to UniformsSize.
func (u ViewportUniforms) Pack() []byte {
	buf := make([]byte, UniformsSize)
	values := []float32{
		u.X, u.Y, u.W, u.H,
		u.ClipX, u.ClipY, u.ClipW, u.ClipH,
		u.ResW, u.ResH,
	}
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
