// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config builds viewport trees from declarative TOML layouts.
//
// A layout file describes the window and a nested list of viewports:
//
//	[window]
//	width = 800
//	height = 600
//	title = "demo"
//
//	[[viewport]]
//	name = "left"
//	size = [0.5, 1.0]
//	anchor = "bottom-left"
//
//	[[viewport.children]]
//	name = "inset"
//	size = [0.5, 0.5]
//	anchor = "center"
//	position = [0.5, 0.5]
//
// Anchors are either symbolic corner names or a pair of scalars using
// the same encoding as positions.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/viewport"
)

// Window describes the root viewport.
type Window struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Title  string  `toml:"title"`
	Aspect float64 `toml:"aspect"`
}

// Viewport describes one node of the layout tree.
type Viewport struct {
	Name     string     `toml:"name"`
	Size     []float64  `toml:"size"`
	Position []float64  `toml:"position"`
	Anchor   any        `toml:"anchor"`
	Aspect   float64    `toml:"aspect"`
	Children []Viewport `toml:"children"`
}

// Config is a parsed layout file.
type Config struct {
	Window    Window     `toml:"window"`
	Viewports []Viewport `toml:"viewport"`
}

// Tree is a built layout: the registry, the root handle, and every
// named viewport by its layout name.
type Tree struct {
	Registry *viewport.Registry
	Root     viewport.Handle
	Named    map[string]viewport.Handle
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return nil, fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for i := range c.Viewports {
		if err := validate(&c.Viewports[i]); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Load reads and parses a layout file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func validate(v *Viewport) error {
	if v.Size != nil && len(v.Size) != 2 {
		return fmt.Errorf("config: viewport %q: size needs 2 values, got %d", v.Name, len(v.Size))
	}
	if v.Position != nil && len(v.Position) != 2 {
		return fmt.Errorf("config: viewport %q: position needs 2 values, got %d", v.Name, len(v.Position))
	}
	if _, _, err := resolveAnchor(v.Anchor); err != nil {
		return fmt.Errorf("config: viewport %q: %w", v.Name, err)
	}
	for i := range v.Children {
		if err := validate(&v.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// resolveAnchor turns a TOML anchor value into scalar coordinates.
// nil means the default bottom-left anchor.
func resolveAnchor(a any) (x, y float64, err error) {
	switch v := a.(type) {
	case nil:
		x, y = viewport.AnchorBottomLeft()
		return x, y, nil
	case string:
		switch v {
		case "bottom-left":
			x, y = viewport.AnchorBottomLeft()
		case "bottom-right":
			x, y = viewport.AnchorBottomRight()
		case "top-left":
			x, y = viewport.AnchorTopLeft()
		case "top-right":
			x, y = viewport.AnchorTopRight()
		case "center":
			x, y = viewport.AnchorCenter()
		default:
			return 0, 0, fmt.Errorf("unknown anchor %q", v)
		}
		return x, y, nil
	case []any:
		if len(v) != 2 {
			return 0, 0, fmt.Errorf("anchor needs 2 values, got %d", len(v))
		}
		for i, e := range v {
			f, ok := toFloat(e)
			if !ok {
				return 0, 0, fmt.Errorf("anchor value %v is not a number", e)
			}
			if i == 0 {
				x = f
			} else {
				y = f
			}
		}
		return x, y, nil
	default:
		return 0, 0, fmt.Errorf("anchor must be a name or 2 numbers, got %T", a)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Build creates the viewport tree the layout describes and computes
// its geometry.
func (c *Config) Build() (*Tree, error) {
	reg := viewport.NewRegistry()

	rootOpts := []viewport.Option{
		viewport.WithSize(float64(c.Window.Width), float64(c.Window.Height)),
	}
	if c.Window.Aspect != 0 {
		rootOpts = append(rootOpts, viewport.WithAspect(c.Window.Aspect))
	}
	root := reg.Create(rootOpts...)

	tree := &Tree{
		Registry: reg,
		Root:     root,
		Named:    make(map[string]viewport.Handle),
	}
	for i := range c.Viewports {
		if err := tree.build(root, &c.Viewports[i]); err != nil {
			return nil, err
		}
	}

	if err := reg.Resize(root, float64(c.Window.Width), float64(c.Window.Height)); err != nil {
		return nil, err
	}
	return tree, nil
}

func (t *Tree) build(parent viewport.Handle, node *Viewport) error {
	opts := []viewport.Option{}
	if node.Size != nil {
		opts = append(opts, viewport.WithSize(node.Size[0], node.Size[1]))
	}
	if node.Position != nil {
		opts = append(opts, viewport.WithPosition(node.Position[0], node.Position[1]))
	}
	ax, ay, err := resolveAnchor(node.Anchor)
	if err != nil {
		return err
	}
	opts = append(opts, viewport.WithAnchor(ax, ay))
	if node.Aspect != 0 {
		opts = append(opts, viewport.WithAspect(node.Aspect))
	}

	h := t.Registry.Create(opts...)
	if err := t.Registry.AddChild(parent, h); err != nil {
		return err
	}
	if node.Name != "" {
		if _, dup := t.Named[node.Name]; dup {
			return fmt.Errorf("config: duplicate viewport name %q", node.Name)
		}
		t.Named[node.Name] = h
	}

	for i := range node.Children {
		if err := t.build(h, &node.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
