// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package font loads and caches fonts over a shared glyph atlas.
//
// The Manager caches faces by file basename so repeated lookups of
// the same font are free. Files that cannot be read fall back to the
// embedded Go Regular face, with a warning through the viewport
// logger. Glyph rasterization is left to the renderer; the manager
// owns face identity and atlas residency only.
package font

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/atlas"
)

// FallbackName is the cache key of the embedded Go Regular face.
const FallbackName = "Go-Regular.ttf"

// defaultAtlasSize is the edge length of the atlas the manager creates
// when none is supplied.
const defaultAtlasSize = 1024

// Manager caches loaded faces over a shared atlas.
type Manager struct {
	mu    sync.Mutex
	atlas *atlas.Atlas
	cache map[string]*Face
}

// NewManager returns a manager over the given atlas. A nil atlas gets
// a default 1024x1024 one.
func NewManager(a *atlas.Atlas) *Manager {
	if a == nil {
		a = atlas.New(defaultAtlasSize, defaultAtlasSize)
	}
	return &Manager{
		atlas: a,
		cache: make(map[string]*Face),
	}
}

// Atlas returns the shared glyph atlas.
func (m *Manager) Atlas() *atlas.Atlas { return m.atlas }

// GetFile returns the face for a font file, loading and caching it on
// first use. The cache key is the file basename. Unreadable files fall
// back to the embedded Go Regular face.
func (m *Manager) GetFile(filename string) (*Face, error) {
	basename := filepath.Base(filename)

	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.cache[basename]; ok {
		return face, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		viewport.Logger().Warn("font not found, falling back to Go Regular",
			"file", filename, "err", err)
		return m.fallbackLocked()
	}

	face, err := newFace(basename, data)
	if err != nil {
		viewport.Logger().Warn("font failed to parse, falling back to Go Regular",
			"file", filename, "err", err)
		return m.fallbackLocked()
	}

	m.cache[basename] = face
	return face, nil
}

// Fallback returns the embedded Go Regular face.
func (m *Manager) Fallback() (*Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallbackLocked()
}

// fallbackLocked loads and caches the embedded face. Caller holds m.mu.
func (m *Manager) fallbackLocked() (*Face, error) {
	if face, ok := m.cache[FallbackName]; ok {
		return face, nil
	}
	face, err := newFace(FallbackName, goregular.TTF)
	if err != nil {
		return nil, err
	}
	m.cache[FallbackName] = face
	return face, nil
}
