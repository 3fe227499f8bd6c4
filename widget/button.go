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
	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/text"
)

// Button is a filled rectangle with a text label on top.  The rectangle
// is drawn like a [Rect], the text like a [Label] in the text colour of
// the button style.
type Button struct {
	Text  string
	Align area.Alignment

	// Wrapped, Scale and Margin control the text, see [Label].
	Wrapped bool
	Scale   float64
	Margin  float64

	// Rounding and Corners control the rectangle, see [Rect].
	Rounding float64
	Corners  draw.CornerFlags

	Style Style
	State State

	// Measurer measures text.  If nil, the default font is used.
	Measurer text.Measurer

	Stabilizer text.Stabilizer

	label Label
}

// NewButton returns a centred button in the common LCARS style.
func NewButton(s string) *Button {
	return &Button{Text: s, Scale: 1, Style: DefaultStyle()}
}

// sync copies the text settings into the embedded label.  The label keeps
// its font size state between frames.
func (b *Button) sync() {
	if b.Measurer == nil {
		b.Measurer = text.Default()
	}
	l := &b.label
	l.Text = b.Text
	l.Align = b.Align
	l.Wrapped = b.Wrapped
	l.Scale = b.Scale
	l.Margin = b.Margin
	l.Style = b.Style.orDefault()
	l.Measurer = b.Measurer
	l.Stabilizer = b.Stabilizer
}

// Layout lays out the button text for the area a.  Every call advances
// the font size stabilizer by one frame.
func (b *Button) Layout(a area.Rect) LabelLayout {
	b.sync()
	return b.label.Layout(a)
}

// SizeState returns the current state of the font size stabilizer.
func (b *Button) SizeState() text.SizeState {
	return b.label.SizeState()
}

// Render implements [Widget].
func (b *Button) Render(s draw.Surface, a area.Rect) {
	r := Rect{Rounding: b.Rounding, Corners: b.Corners, Style: b.Style, State: b.State}
	r.Render(s, a)
	b.sync()
	b.label.Render(s, a)
}
