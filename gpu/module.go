// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/viewport/shaders"
)

// TransformModule is a compiled shader snippet plus the bind group
// layout for its viewport uniform block.
type TransformModule struct {
	device hal.Device
	module hal.ShaderModule
	layout hal.BindGroupLayout
}

// NewTransformModule compiles a snippet from the shaders library and
// creates its shader module and uniform bind group layout. The layout
// has a single uniform buffer at group(0) binding(0), visible to the
// vertex and fragment stages, sized for ViewportUniforms.
func NewTransformModule(device hal.Device, snippet string) (*TransformModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}

	words, err := shaders.Compile(snippet)
	if err != nil {
		return nil, fmt.Errorf("gpu: compiling %q: %w", snippet, err)
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: snippet,
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating shader module for %q: %w", snippet, err)
	}

	layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: snippet + "_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: UniformsSize,
				},
			},
		},
	})
	if err != nil {
		device.DestroyShaderModule(module)
		return nil, fmt.Errorf("gpu: creating bind group layout for %q: %w", snippet, err)
	}

	return &TransformModule{
		device: device,
		module: module,
		layout: layout,
	}, nil
}

// ShaderModule returns the compiled module for pipeline creation.
func (m *TransformModule) ShaderModule() hal.ShaderModule { return m.module }

// BindGroupLayout returns the uniform layout for pipeline creation.
func (m *TransformModule) BindGroupLayout() hal.BindGroupLayout { return m.layout }

// Destroy releases the module's GPU resources.
func (m *TransformModule) Destroy() {
	if m.layout != nil {
		m.device.DestroyBindGroupLayout(m.layout)
		m.layout = nil
	}
	if m.module != nil {
		m.device.DestroyShaderModule(m.module)
		m.module = nil
	}
}
