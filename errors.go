package viewport

import "errors"

// Errors returned by tree mutation and handle lookup.
var (
	// ErrAlreadyParented is returned by Add when the child is still
	// attached to another viewport. Remove it from its parent first.
	ErrAlreadyParented = errors.New("viewport: child already has a parent")

	// ErrNotChild is returned by Remove when the viewport is not a
	// direct child of the receiver.
	ErrNotChild = errors.New("viewport: not a direct child")

	// ErrNotRoot is returned by operations that are only valid on the
	// root of a tree, such as Resize.
	ErrNotRoot = errors.New("viewport: operation requires the root viewport")

	// ErrUnknownHandle is returned by Registry operations when the
	// handle does not reference a live viewport.
	ErrUnknownHandle = errors.New("viewport: unknown handle")
)
