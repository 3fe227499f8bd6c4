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

// Package area implements the screen rectangles which widgets are laid out
// in.
//
// All coordinates use a y-down screen convention: the origin is the top-left
// corner of the output, x grows to the right and y grows downwards.  Points
// inside a rectangle can be given in relative form, where (0,0) is the
// top-left corner and (1,1) is the bottom-right corner of the rectangle.
package area

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rect is an axis-aligned rectangle given by its top-left corner and its
// size.
type Rect struct {
	Pos  vec.Vec2
	Size vec.Vec2
}

// New returns the rectangle with top-left corner (x, y) and the given size.
func New(x, y, w, h float64) Rect {
	return Rect{Pos: vec.Vec2{X: x, Y: y}, Size: vec.Vec2{X: w, Y: h}}
}

// Span returns the rectangle spanned by the points a and b, where a is the
// top-left corner.
func Span(a, b vec.Vec2) Rect {
	return Rect{Pos: a, Size: b.Sub(a)}
}

// TopLeft returns the top-left corner of r.
func (r Rect) TopLeft() vec.Vec2 {
	return r.Pos
}

// TopRight returns the top-right corner of r.
func (r Rect) TopRight() vec.Vec2 {
	return vec.Vec2{X: r.Pos.X + r.Size.X, Y: r.Pos.Y}
}

// BottomLeft returns the bottom-left corner of r.
func (r Rect) BottomLeft() vec.Vec2 {
	return vec.Vec2{X: r.Pos.X, Y: r.Pos.Y + r.Size.Y}
}

// BottomRight returns the bottom-right corner of r.
func (r Rect) BottomRight() vec.Vec2 {
	return r.Pos.Add(r.Size)
}

// Center returns the center point of r.
func (r Rect) Center() vec.Vec2 {
	return r.Pos.Add(r.Size.Mul(0.5))
}

// InnerPoint maps a relative point in [0,1]² to an absolute point
// inside r.  Values outside the unit square map to points outside r.
func (r Rect) InnerPoint(rel vec.Vec2) vec.Vec2 {
	return r.Pos.Add(MulElem(rel, r.Size))
}

// RelativePoint is the inverse of InnerPoint.  Axes of zero extent map to 0.
func (r Rect) RelativePoint(p vec.Vec2) vec.Vec2 {
	d := p.Sub(r.Pos)
	var rel vec.Vec2
	if r.Size.X != 0 {
		rel.X = d.X / r.Size.X
	}
	if r.Size.Y != 0 {
		rel.Y = d.Y / r.Size.Y
	}
	return rel
}

// AspectRatio returns width divided by height, or 0 for a rectangle of zero
// height.
func (r Rect) AspectRatio() float64 {
	if r.Size.Y == 0 {
		return 0
	}
	return r.Size.X / r.Size.Y
}

// Inset returns r shrunk by margin on all four sides.  The size of the
// result is clamped to be non-negative; a rectangle which collapses stays
// centred on r.
func (r Rect) Inset(margin float64) Rect {
	res := Rect{
		Pos:  r.Pos.Add(vec.Vec2{X: margin, Y: margin}),
		Size: r.Size.Sub(vec.Vec2{X: 2 * margin, Y: 2 * margin}),
	}
	if res.Size.X < 0 {
		res.Pos.X = r.Pos.X + r.Size.X/2
		res.Size.X = 0
	}
	if res.Size.Y < 0 {
		res.Pos.Y = r.Pos.Y + r.Size.Y/2
		res.Size.Y = 0
	}
	return res
}

// InnerRect returns the largest rectangle with the given aspect ratio
// (width/height) which fits into r after shrinking r by margin on every
// side.  The result is centred inside the shrunk rectangle.  A
// non-positive aspect ratio returns the shrunk rectangle itself.
func (r Rect) InnerRect(aspect, margin float64) Rect {
	avail := r.Inset(margin)
	if aspect <= 0 || avail.Size.X <= 0 || avail.Size.Y <= 0 {
		return avail
	}

	size := avail.Size
	if size.X/size.Y > aspect {
		size.X = size.Y * aspect
	} else {
		size.Y = size.X / aspect
	}
	pos := avail.Pos.Add(avail.Size.Sub(size).Mul(0.5))
	return Rect{Pos: pos, Size: size}
}

// Contains reports whether other lies completely inside r, allowing for a
// small numerical tolerance.
func (r Rect) Contains(other Rect) bool {
	const eps = 1e-9
	a, b := other.TopLeft(), other.BottomRight()
	lo, hi := r.TopLeft(), r.BottomRight()
	return a.X >= lo.X-eps && a.Y >= lo.Y-eps &&
		b.X <= hi.X+eps && b.Y <= hi.Y+eps
}

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Bounds converts r into a [rect.Rect].  Since the screen coordinate system
// is y-down, LLy holds the top edge and URy the bottom edge.
func (r Rect) Bounds() rect.Rect {
	br := r.BottomRight()
	return rect.Rect{
		LLx: min(r.Pos.X, br.X),
		LLy: min(r.Pos.Y, br.Y),
		URx: max(r.Pos.X, br.X),
		URy: max(r.Pos.Y, br.Y),
	}
}

// MulElem returns the element-wise product of a and b.
func MulElem(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}

// MinElem returns the smaller of the two components of v.
func MinElem(v vec.Vec2) float64 {
	return min(v.X, v.Y)
}
