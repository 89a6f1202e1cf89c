// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu uploads viewport state to GPU uniform buffers.
//
// The viewport core never issues graphics calls. This package is the
// thin consumer that turns computed geometry into a uniform buffer the
// built-in shader snippets read: create a StateUploader per viewport,
// attach it to a transform (or call Upload directly from the resize
// handler), and bind its buffer through a TransformModule layout.
package gpu

import (
	"errors"

	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g. a gogpu.App) implements the provider and hands it to
// this package; viewport code receives the device, it never creates
// one. DeviceHandle is an alias for gpucontext.DeviceProvider so any
// gpucontext host works unchanged.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNilDevice is returned when a device or queue is missing.
var ErrNilDevice = errors.New("gpu: device and queue are required")
