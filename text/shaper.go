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

package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/vec"
)

// Shaper measures text after HarfBuzz shaping, so that ligatures and
// contextual kerning are taken into account.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	font *font.Font
	hb   shaping.HarfbuzzShaper
}

var _ Measurer = (*Shaper)(nil)

// NewShaper parses TrueType or OpenType data for use with HarfBuzz
// shaping.  If data is nil, the Go Regular font is used.
func NewShaper(data []byte) (*Shaper, error) {
	if data == nil {
		data = goregular.TTF
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Shaper{font: face.Font}, nil
}

// Measure implements [Measurer].
func (s *Shaper) Measure(line string, size float64) vec.Vec2 {
	runes := []rune(line)
	script := language.Latin
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			script = language.LookupScript(r)
			break
		}
	}

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      toFixed(size),
		Script:    script,
		Language:  language.NewLanguage("en"),
	})

	var width float64
	for _, g := range out.Glyphs {
		width += fromFixed(g.Advance)
	}
	height := fromFixed(out.LineBounds.Ascent - out.LineBounds.Descent)
	return vec.Vec2{X: width, Y: height}
}
