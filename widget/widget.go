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

// Package widget implements LCARS-style widgets: rounded corners, bordered
// panels, path based shapes, polygons, rectangles and text labels.
//
// All geometry is recomputed from the widget settings and the available
// area whenever a widget is rendered.  The only state kept between frames
// is the font size stabilizer of a [Label].
package widget

import (
	"fmt"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

// Widget is an element which draws itself into a rectangular area.
type Widget interface {
	Render(s draw.Surface, a area.Rect)
}

// FillMode selects how a polygon or shape outline is drawn.
type FillMode uint8

// These are the supported fill modes.
const (
	// Stroke draws the closed outline with a given thickness.
	Stroke FillMode = iota

	// ConvexFill fills the outline, which must be convex.
	ConvexFill

	// ConcaveFill fills the outline, which may be concave but must not
	// intersect itself.
	ConcaveFill
)

var fillModeNames = [...]string{"stroke", "convex-fill", "concave-fill"}

func (m FillMode) String() string {
	if int(m) < len(fillModeNames) {
		return fillModeNames[m]
	}
	return fmt.Sprintf("FillMode(%d)", uint8(m))
}

// IsValid reports whether m is one of the defined fill modes.
func (m FillMode) IsValid() bool {
	return int(m) < len(fillModeNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (m FillMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid fill mode %d", uint8(m))
	}
	return []byte(fillModeNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *FillMode) UnmarshalText(text []byte) error {
	for i, name := range fillModeNames {
		if string(text) == name {
			*m = FillMode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fill mode %q", text)
}

// innerArea returns the largest rectangle with the given aspect ratio
// inside a, after removing margin on all sides.  If useAreaRatio is set,
// the aspect ratio of a is used.  A non-positive ratio selects the whole
// inset area.
func innerArea(a area.Rect, useAreaRatio bool, ratio, margin float64) area.Rect {
	if useAreaRatio {
		ratio = a.AspectRatio()
	}
	return a.InnerRect(ratio, margin)
}
