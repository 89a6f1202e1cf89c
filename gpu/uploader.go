// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/viewport"
)

// StateUploader owns the uniform buffer for one viewport and keeps it
// current. Call Upload after every recompute, typically from the
// viewport's resize handler. StateUploader is also a transform.Program:
// attaching it to a viewport-aware transform routes frame, clip and
// resolution uniforms into the buffer automatically.
type StateUploader struct {
	mu       sync.Mutex
	device   hal.Device
	queue    hal.Queue
	buffer   hal.Buffer
	uniforms ViewportUniforms
}

// NewStateUploader creates the uniform buffer and returns an uploader
// bound to it. The buffer is UniformsSize bytes with uniform and
// copy-dst usage.
func NewStateUploader(device hal.Device, queue hal.Queue) (*StateUploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}

	buffer, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "viewport_uniforms",
		Size:  UniformsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating uniform buffer: %w", err)
	}

	return &StateUploader{
		device: device,
		queue:  queue,
		buffer: buffer,
	}, nil
}

// Buffer returns the uniform buffer for bind group creation.
func (s *StateUploader) Buffer() hal.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// Uniforms returns the last uploaded block.
func (s *StateUploader) Uniforms() ViewportUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uniforms
}

// Upload packs geometry and resolution into the uniform buffer.
func (s *StateUploader) Upload(geom viewport.Geometry, width, height int) {
	s.mu.Lock()
	s.uniforms = UniformsFromGeometry(geom, width, height)
	s.write()
	s.mu.Unlock()
}

// SetUniform implements transform.Program. Recognized names are
// "frame" (4 floats), "clip" (4 floats) and "resolution" (2 floats);
// anything else is ignored.
func (s *StateUploader) SetUniform(name string, values []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case name == "frame" && len(values) == 4:
		s.uniforms.X, s.uniforms.Y = values[0], values[1]
		s.uniforms.W, s.uniforms.H = values[2], values[3]
	case name == "clip" && len(values) == 4:
		s.uniforms.ClipX, s.uniforms.ClipY = values[0], values[1]
		s.uniforms.ClipW, s.uniforms.ClipH = values[2], values[3]
	case name == "resolution" && len(values) == 2:
		s.uniforms.ResW, s.uniforms.ResH = values[0], values[1]
	default:
		return
	}
	s.write()
}

// write pushes the current block to the GPU. Caller holds s.mu.
func (s *StateUploader) write() {
	if s.buffer == nil {
		return
	}
	s.queue.WriteBuffer(s.buffer, 0, s.uniforms.Pack())
}

// Destroy releases the uniform buffer. The uploader must not be used
// afterwards.
func (s *StateUploader) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buffer != nil {
		s.device.DestroyBuffer(s.buffer)
		s.buffer = nil
	}
}
