// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlas packs small rectangles into a single-channel texture.
//
// The packer uses the skyline bottom-left heuristic: allocations are
// placed at the lowest position where they fit, tracked by a skyline
// of occupied heights. Glyph caches and icon sheets allocate regions,
// write their pixels, and upload the backing image as one texture.
package atlas

import (
	"errors"
	"fmt"
	"image"
)

// ErrAtlasFull is returned when no region of the requested size fits.
var ErrAtlasFull = errors.New("atlas: full")

// Region is an allocated rectangle inside the atlas, in pixels with a
// top-left origin (image space).
type Region struct {
	X, Y, W, H int
}

type skylineNode struct {
	x, y, width int
}

// Atlas is a skyline packer over an 8-bit alpha image.
type Atlas struct {
	width  int
	height int
	nodes  []skylineNode
	used   int
	img    *image.Alpha
}

// New creates an empty atlas of the given pixel size.
func New(width, height int) *Atlas {
	return &Atlas{
		width:  width,
		height: height,
		nodes:  []skylineNode{{x: 0, y: 0, width: width}},
		img:    image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int { return a.width }

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int { return a.height }

// Used returns the fraction of atlas pixels currently allocated.
func (a *Atlas) Used() float64 {
	if a.width == 0 || a.height == 0 {
		return 0
	}
	return float64(a.used) / float64(a.width*a.height)
}

// Image returns the backing image. The atlas retains ownership; the
// caller uploads it to a texture after writing regions.
func (a *Atlas) Image() *image.Alpha { return a.img }

// fit reports the y position at which a w x h region fits when placed
// at node index, or -1 when it does not fit.
func (a *Atlas) fit(index, w, h int) int {
	x := a.nodes[index].x
	if x+w > a.width {
		return -1
	}

	y := 0
	remaining := w
	for i := index; remaining > 0; i++ {
		if a.nodes[i].y > y {
			y = a.nodes[i].y
		}
		if y+h > a.height {
			return -1
		}
		remaining -= a.nodes[i].width
	}
	return y
}

// Allocate reserves a w x h region. It returns ErrAtlasFull when no
// position can hold the region.
func (a *Atlas) Allocate(w, h int) (Region, error) {
	if w <= 0 || h <= 0 {
		return Region{}, fmt.Errorf("atlas: invalid region size %dx%d", w, h)
	}

	bestIndex := -1
	bestY := 0
	bestWidth := 0
	for i := range a.nodes {
		y := a.fit(i, w, h)
		if y < 0 {
			continue
		}
		if bestIndex == -1 || y < bestY || (y == bestY && a.nodes[i].width < bestWidth) {
			bestIndex = i
			bestY = y
			bestWidth = a.nodes[i].width
		}
	}
	if bestIndex == -1 {
		return Region{}, fmt.Errorf("%w: no room for %dx%d", ErrAtlasFull, w, h)
	}

	region := Region{X: a.nodes[bestIndex].x, Y: bestY, W: w, H: h}

	// Insert the new skyline node and clip the nodes it shadows.
	a.nodes = append(a.nodes, skylineNode{})
	copy(a.nodes[bestIndex+1:], a.nodes[bestIndex:])
	a.nodes[bestIndex] = skylineNode{x: region.X, y: region.Y + h, width: w}

	for i := bestIndex + 1; i < len(a.nodes); i++ {
		prev := &a.nodes[i-1]
		node := &a.nodes[i]
		if node.x >= prev.x+prev.width {
			break
		}
		shrink := prev.x + prev.width - node.x
		node.x += shrink
		node.width -= shrink
		if node.width > 0 {
			break
		}
		a.nodes = append(a.nodes[:i], a.nodes[i+1:]...)
		i--
	}

	// Merge adjacent nodes at the same height.
	for i := 0; i < len(a.nodes)-1; i++ {
		if a.nodes[i].y == a.nodes[i+1].y {
			a.nodes[i].width += a.nodes[i+1].width
			a.nodes = append(a.nodes[:i+1], a.nodes[i+2:]...)
			i--
		}
	}

	a.used += w * h
	return region, nil
}

// Set writes pixels into an allocated region. The pixel slice is
// tightly packed, one byte per pixel, region.W*region.H long.
func (a *Atlas) Set(region Region, pixels []byte) error {
	if region.X < 0 || region.Y < 0 ||
		region.X+region.W > a.width || region.Y+region.H > a.height {
		return fmt.Errorf("atlas: region %dx%d+%d+%d out of bounds",
			region.W, region.H, region.X, region.Y)
	}
	if len(pixels) != region.W*region.H {
		return fmt.Errorf("atlas: pixel data is %d bytes, want %d",
			len(pixels), region.W*region.H)
	}

	for row := 0; row < region.H; row++ {
		dst := a.img.Pix[(region.Y+row)*a.img.Stride+region.X:]
		copy(dst[:region.W], pixels[row*region.W:(row+1)*region.W])
	}
	return nil
}
