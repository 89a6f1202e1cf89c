// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package font

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics are face-wide vertical metrics in pixels at a given size.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Face is a loaded font. The typesetting handle serves shaping
// consumers; the sfnt handle serves metric queries. Both views are
// parsed once from the same data and are safe for concurrent reads.
type Face struct {
	name   string
	shaped *gtfont.Font
	parsed *opentype.Font
}

func newFace(name string, data []byte) (*Face, error) {
	shaped, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: parsing %q: %w", name, err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parsing %q: %w", name, err)
	}
	return &Face{name: name, shaped: shaped.Font, parsed: parsed}, nil
}

// Name returns the file basename this face was loaded under.
func (f *Face) Name() string { return f.name }

// Family returns the family name from the font's name table.
func (f *Face) Family() string {
	if s, err := f.parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		return s
	}
	return ""
}

// Font returns the typesetting font for shaping. It is read-only and
// safe for concurrent use; wrap it with gtfont.NewFace per goroutine.
func (f *Face) Font() *gtfont.Font { return f.shaped }

// Metrics returns vertical metrics in pixels for the given size.
func (f *Face) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.parsed.Metrics(&buf, fixed.Int26_6(size*64), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat64(m.Height) - ascent - descent,
	}
}

// GlyphAdvance returns the horizontal advance of r in pixels at the
// given size, or 0 when the rune has no glyph.
func (f *Face) GlyphAdvance(r rune, size float64) float64 {
	var buf sfnt.Buffer
	idx, err := f.parsed.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0
	}
	advance, err := f.parsed.GlyphAdvance(&buf, idx, fixed.Int26_6(size*64), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
