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

package widget

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/text"
)

// Label shows one or more lines of text, aligned inside the widget area.
//
// The font size follows Scale, but changes only after the requested size
// has been stable for a few frames; see [text.Stabilizer].
type Label struct {
	Text  string
	Align area.Alignment

	// Wrapped breaks lines which are wider than the area.
	Wrapped bool

	// Scale is the text scale.  Values in (0,1] shrink the text relative
	// to the base size, values in (1,2] enlarge it, with 2 filling the
	// area.  0 is the same as 1.
	Scale float64

	// Margin is the distance between the text and the aligned edges of
	// the area, as a fraction in [0,1] of the free space.  It has no
	// effect with centred alignment.
	Margin float64

	Style Style

	// Measurer measures text.  If nil, the default font is used.
	Measurer text.Measurer

	Stabilizer text.Stabilizer

	size     text.SizeState
	hasState bool
}

// NewLabel returns a centred label in the LCARS style for text outside
// other elements.
func NewLabel(s string) *Label {
	style, _ := LCARS("external-label")
	return &Label{Text: s, Scale: 1, Style: style}
}

// LabelLine is one line of a laid out label.
type LabelLine struct {
	Text string
	Rect area.Rect
}

// LabelLayout is the result of laying out a label for one frame.
type LabelLayout struct {
	FontSize int
	Lines    []LabelLine

	// TextRect bounds all lines.
	TextRect area.Rect
}

// SizeState returns the current state of the font size stabilizer.
func (l *Label) SizeState() text.SizeState {
	l.ensureState()
	return l.size
}

func (l *Label) ensureState() {
	if !l.hasState {
		l.size = text.NewSizeState()
		l.hasState = true
	}
}

func (l *Label) measurer() text.Measurer {
	if l.Measurer == nil {
		l.Measurer = text.Default()
	}
	return l.Measurer
}

// Layout computes the font size and the line positions for the area a.
// Every call advances the font size stabilizer by one frame.
func (l *Label) Layout(a area.Rect) LabelLayout {
	lines := text.SplitLines(l.Text)
	if len(lines) == 0 {
		return LabelLayout{TextRect: area.Rect{Pos: a.Pos}}
	}
	l.ensureState()
	m := l.measurer()

	var wrapWidth float64
	if l.Wrapped {
		wrapWidth = a.Size.X
	}
	fontSize := l.Stabilizer.Next(&l.size, m, lines, wrapWidth, a.Size, l.Scale)
	fs := float64(fontSize)

	var res LabelLayout
	res.FontSize = fontSize
	var sizes []vec.Vec2
	for _, line := range lines {
		for _, piece := range text.Wrap(m, line, wrapWidth, fs) {
			res.Lines = append(res.Lines, LabelLine{Text: piece})
			sizes = append(sizes, m.Measure(piece, fs))
		}
	}
	block := text.BlockSize(sizes)

	margin := min(max(l.Margin, 0), 1) * max(1, area.MinElem(a.Size.Sub(block)))

	// align every line on its own, then move the group as a whole
	var y float64
	minX := 0.0
	for i, size := range sizes {
		x := l.Align.Offset(a.Size, size, margin).X
		if i == 0 || x < minX {
			minX = x
		}
		res.Lines[i].Rect = area.Rect{Pos: vec.Vec2{X: x, Y: y}, Size: size}
		y += size.Y
	}
	res.TextRect = a.Place(block, l.Align, margin)
	shift := res.TextRect.Pos.Sub(vec.Vec2{X: minX})
	for i := range res.Lines {
		res.Lines[i].Rect.Pos = res.Lines[i].Rect.Pos.Add(shift)
	}
	return res
}

// Render implements [Widget].
func (l *Label) Render(s draw.Surface, a area.Rect) {
	layout := l.Layout(a)
	col := l.Style.orDefault().Text
	for _, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		s.DrawText(line.Rect.Pos, float64(layout.FontSize), col, line.Text)
	}
}
