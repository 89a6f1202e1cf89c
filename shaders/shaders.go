// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shaders provides the built-in WGSL snippet library.
//
// Snippets are embedded in the binary and looked up by file name.
// Get searches the library root and every subdirectory, so callers
// refer to snippets by bare name:
//
//	code, err := shaders.Get("viewport-transform.wgsl")
//
// Compile runs a snippet through the naga compiler and returns
// SPIR-V words ready for shader module creation.
package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gogpu/naga"
)

//go:embed transforms/*.wgsl collections/*.wgsl
var library embed.FS

// ErrNotFound is returned when a snippet name matches no embedded file.
var ErrNotFound = errors.New("shaders: snippet not found")

// Get retrieves the source of a named snippet. The name is matched
// against the library root first, then against each subdirectory.
func Get(name string) (string, error) {
	if data, err := library.ReadFile(name); err == nil {
		return string(data), nil
	}

	entries, err := library.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("shaders: reading library: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := library.ReadFile(path.Join(e.Name(), name))
		if err == nil {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Names returns the names of all embedded snippets, sorted by path.
func Names() []string {
	var names []string
	fs.WalkDir(library, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".wgsl") {
			names = append(names, p)
		}
		return nil
	})
	return names
}

// Compile compiles a named snippet to SPIR-V words.
func Compile(name string) ([]uint32, error) {
	code, err := Get(name)
	if err != nil {
		return nil, err
	}
	return CompileSource(code)
}

// CompileSource compiles WGSL source to SPIR-V words.
func CompileSource(code string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("shaders: compiling snippet: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shaders: SPIR-V output is %d bytes, not word aligned", len(spirvBytes))
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
