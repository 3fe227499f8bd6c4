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

// Package draw defines the immediate-mode drawing surface which widgets
// render to.
//
// A Surface keeps a single "current path".  The Path* methods append to it,
// and PathStroke, PathFillConvex and PathFillConcave paint the path and
// then clear it.  Angles are given in radians and, because screen
// coordinates are y-down, increasing angles turn clockwise on screen.
package draw

import (
	"fmt"
	"image/color"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
)

// CornerFlags selects which corners of a rectangle are rounded.
type CornerFlags uint8

// These are the individual corner flags.
const (
	RoundTopLeft CornerFlags = 1 << iota
	RoundTopRight
	RoundBottomLeft
	RoundBottomRight

	RoundNone   CornerFlags = 0
	RoundTop                = RoundTopLeft | RoundTopRight
	RoundBottom             = RoundBottomLeft | RoundBottomRight
	RoundLeft               = RoundTopLeft | RoundBottomLeft
	RoundRight              = RoundTopRight | RoundBottomRight
	RoundAll                = RoundTop | RoundBottom
)

func (f CornerFlags) String() string {
	if f == RoundNone {
		return "none"
	}
	var parts []string
	for _, c := range []struct {
		flag CornerFlags
		name string
	}{
		{RoundTopLeft, "top-left"},
		{RoundTopRight, "top-right"},
		{RoundBottomLeft, "bottom-left"},
		{RoundBottomRight, "bottom-right"},
	} {
		if f&c.flag != 0 {
			parts = append(parts, c.name)
		}
	}
	if rest := f &^ RoundAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Surface is the set of drawing primitives available to widgets.
//
// Implementations are not required to be safe for concurrent use.
type Surface interface {
	// FillRoundedRect fills r with color c.  The corners selected by flags
	// are rounded with the given radius; the radius is reduced if the
	// rectangle is too small to fit it.
	FillRoundedRect(r area.Rect, c color.Color, radius float64, flags CornerFlags)

	// FillConvexPolygon fills the convex polygon with vertices pts.
	FillConvexPolygon(pts []vec.Vec2, c color.Color)

	// FillConcavePolygon fills the simple (not self-intersecting) polygon
	// with vertices pts.
	FillConcavePolygon(pts []vec.Vec2, c color.Color)

	// PathLineTo appends a straight line to the current path.  On an empty
	// path, p becomes the start point.
	PathLineTo(p vec.Vec2)

	// PathArcTo appends a circular arc from angle aMin to angle aMax.  The
	// path is first connected to the start point of the arc.
	PathArcTo(center vec.Vec2, radius, aMin, aMax float64)

	// PathBezierQuadraticTo appends a quadratic Bézier curve.
	PathBezierQuadraticTo(ctrl, end vec.Vec2)

	// PathBezierCubicTo appends a cubic Bézier curve.
	PathBezierCubicTo(c1, c2, end vec.Vec2)

	// PathStroke strokes the current path with the given line width and
	// clears the path.
	PathStroke(c color.Color, thickness float64)

	// PathFillConvex closes and fills the current path, which must be
	// convex, and clears the path.
	PathFillConvex(c color.Color)

	// PathFillConcave closes and fills the current path, which may be
	// concave, and clears the path.
	PathFillConcave(c color.Color)

	// DrawText draws a single line of text.  pos is the top-left corner of
	// the line box and size is the font size in pixels.
	DrawText(pos vec.Vec2, size float64, c color.Color, line string)
}
