// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewport arranges rectangular screen regions in a tree and
// routes input events through them.
//
// A Viewport is a region of a window with its own coordinate frame and
// clip boundary. Children are sized, positioned and anchored relative to
// their parent using a compact scalar encoding (absolute pixels, parent
// fractions, or edge insets selected by sign and magnitude), optionally
// constrained to a fixed aspect ratio, and always clipped against the
// parent's clip rectangle. The package only computes geometry and routes
// events: the resolved frame and clip rectangles are handed to an external
// renderer for glViewport/glScissor state, and the tree never issues
// graphics-API calls itself.
//
// Building a tree:
//
//	root := viewport.New(viewport.WithSize(800, 600))
//	left := viewport.New(viewport.WithSize(0.5, 1.0))
//	right := viewport.New(
//	    viewport.WithSize(0.5, 1.0),
//	    viewport.WithPosition(0.5, 0),
//	)
//	root.Add(left)
//	root.Add(right)
//	root.Recompute()
//
// After any geometry-affecting mutation the whole tree is recomputed from
// the root; geometry flows strictly parent to child.
//
// Input events enter at the root through the Dispatch methods. Presses
// record a capture list so releases and drags reach the same viewports
// even after the pointer moves; motion maintains per-viewport enter/leave
// state. See events.go for the exact routing rules.
//
// Sub-packages supply the rest of the toolkit: shaders (WGSL snippet
// library), transform (shader transform snippets), gpu (uniform upload of
// viewport state), atlas and font (texture atlas packing and font
// management), collection (append-style vertex collections) and config
// (declarative TOML layouts).
package viewport
