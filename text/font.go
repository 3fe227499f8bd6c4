// seehuhn.de/go/lcars - LCARS-style widget geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package text measures and outlines text, and picks stable font sizes for
// text which is scaled to fit a widget.
package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/outline"
)

// BaseSize is the font size, in pixels, at which text is measured before
// it is scaled to fit.
const BaseSize = 20

// Measurer measures single lines of text.
type Measurer interface {
	// Measure returns the advance width and the line height of line, set at
	// the given font size.
	Measure(line string, size float64) vec.Vec2
}

// Font is an OpenType/TrueType font, used both to measure text and to
// convert text into glyph outlines.
//
// A Font is not safe for concurrent use.
type Font struct {
	sf  *sfnt.Font
	buf sfnt.Buffer
}

var _ Measurer = (*Font)(nil)

// Parse reads a font from TrueType or OpenType data.
func Parse(data []byte) (*Font, error) {
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{sf: sf}, nil
}

// Default returns the Go Regular font.
func Default() *Font {
	f, err := Parse(goregular.TTF)
	if err != nil {
		panic(err) // the embedded font is known to be valid
	}
	return f
}

// Name returns the family name of the font.
func (f *Font) Name() string {
	name, err := f.sf.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the ascent and the descent (both positive) of the font
// at the given size.
func (f *Font) Metrics(size float64) (ascent, descent float64) {
	m, err := f.sf.Metrics(&f.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return 0.8 * size, 0.2 * size
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

// Measure implements [Measurer].  The height of a line is ascent plus
// descent.
func (f *Font) Measure(line string, size float64) vec.Vec2 {
	ascent, descent := f.Metrics(size)
	return vec.Vec2{X: f.advance(line, size), Y: ascent + descent}
}

func (f *Font) advance(line string, size float64) float64 {
	ppem := toFixed(size)
	var total fixed.Int26_6
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range line {
		gid, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			if k, err := f.sf.Kern(&f.buf, prev, gid, ppem, font.HintingNone); err == nil {
				total += k
			}
		}
		adv, err := f.sf.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone)
		if err == nil {
			total += adv
		}
		prev, hasPrev = gid, true
	}
	return fromFixed(total)
}

// AppendOutline appends the glyph outlines of line to d.  pos is the
// top-left corner of the line box; the baseline lies one ascent below it.
// It returns the advance width of the line.
func (f *Font) AppendOutline(d *outline.Data, line string, pos vec.Vec2, size float64) float64 {
	ppem := toFixed(size)
	ascent, _ := f.Metrics(size)
	origin := vec.Vec2{X: pos.X, Y: pos.Y + ascent}

	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range line {
		gid, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			if k, err := f.sf.Kern(&f.buf, prev, gid, ppem, font.HintingNone); err == nil {
				origin.X += fromFixed(k)
			}
		}
		prev, hasPrev = gid, true

		segs, err := f.sf.LoadGlyph(&f.buf, gid, ppem, nil)
		if err == nil {
			appendSegments(d, segs, origin)
		}
		if adv, err := f.sf.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone); err == nil {
			origin.X += fromFixed(adv)
		}
	}
	return origin.X - pos.X
}

// appendSegments converts glyph segments, whose y axis points down, into
// path commands relative to origin.
func appendSegments(d *outline.Data, segs sfnt.Segments, origin vec.Vec2) {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fromFixed(p.X), Y: origin.Y + fromFixed(p.Y)}
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				d.Close()
			}
			d.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			d.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			d.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			d.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		d.Close()
	}
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
