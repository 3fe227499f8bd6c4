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

package draw

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/outline"
)

// ArcPoint returns the point at the given angle on the circle around
// center.
func ArcPoint(center vec.Vec2, radius, angle float64) vec.Vec2 {
	return center.Add(vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius))
}

// Path accumulates the current path of a Surface as [outline.Data].
// Surfaces which render through a path based backend embed a Path and use
// it to implement the Path* methods.
//
// The zero value is an empty path.
type Path struct {
	data    outline.Data
	started bool
}

// IsEmpty reports whether no point has been added since the last reset.
func (p *Path) IsEmpty() bool {
	return !p.started
}

// Data returns the accumulated path.  The result is valid until the next
// modification of p.
func (p *Path) Data() *outline.Data {
	return &p.data
}

// Reset clears the path.
func (p *Path) Reset() {
	p.data.Reset()
	p.started = false
}

// LineTo appends a line segment, or starts the path at pt.
func (p *Path) LineTo(pt vec.Vec2) {
	if !p.started {
		p.data.MoveTo(pt)
		p.started = true
		return
	}
	p.data.LineTo(pt)
}

// ArcTo appends a circular arc from angle aMin to angle aMax, connected to
// the existing path by a straight line.
func (p *Path) ArcTo(center vec.Vec2, radius, aMin, aMax float64) {
	p.LineTo(ArcPoint(center, radius, aMin))
	if radius <= 0 || aMin == aMax {
		return
	}
	appendArc(&p.data, center, radius, aMin, aMax)
}

// QuadTo appends a quadratic Bézier curve.
func (p *Path) QuadTo(ctrl, end vec.Vec2) {
	if !p.started {
		p.LineTo(end)
		return
	}
	p.data.QuadTo(ctrl, end)
}

// CubeTo appends a cubic Bézier curve.
func (p *Path) CubeTo(c1, c2, end vec.Vec2) {
	if !p.started {
		p.LineTo(end)
		return
	}
	p.data.CubeTo(c1, c2, end)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if p.started {
		p.data.Close()
	}
}

// appendArc appends cubic Bézier approximations of a circular arc.  The
// current point must already be the start point of the arc.  The arc is
// split into pieces of at most 90 degrees.
func appendArc(d *outline.Data, center vec.Vec2, radius, a0, a1 float64) {
	sweep := a1 - a0
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius

	for i := range n {
		s := a0 + float64(i)*step
		e := s + step
		sin0, cos0 := math.Sincos(s)
		sin1, cos1 := math.Sincos(e)
		p0 := center.Add(vec.Vec2{X: cos0, Y: sin0}.Mul(radius))
		p3 := center.Add(vec.Vec2{X: cos1, Y: sin1}.Mul(radius))
		c1 := p0.Add(vec.Vec2{X: -sin0, Y: cos0}.Mul(k))
		c2 := p3.Sub(vec.Vec2{X: -sin1, Y: cos1}.Mul(k))
		d.CubeTo(c1, c2, p3)
	}
}

// ClampRadius reduces radius so that the rounded corners selected by flags
// fit into a rectangle of the given size.
func ClampRadius(size vec.Vec2, radius float64, flags CornerFlags) float64 {
	if radius <= 0 || flags&RoundAll == 0 {
		return 0
	}
	fx, fy := 1.0, 1.0
	if flags&RoundTop == RoundTop || flags&RoundBottom == RoundBottom {
		fx = 0.5
	}
	if flags&RoundLeft == RoundLeft || flags&RoundRight == RoundRight {
		fy = 0.5
	}
	return max(min(radius, math.Abs(size.X)*fx, math.Abs(size.Y)*fy), 0)
}

// AppendRoundedRect appends the outline of r, with the corners selected by
// flags rounded, as a closed subpath of d.  The outline runs clockwise on
// screen.
func AppendRoundedRect(d *outline.Data, r area.Rect, radius float64, flags CornerFlags) {
	radius = ClampRadius(r.Size, radius, flags)
	rad := func(f CornerFlags) float64 {
		if flags&f != 0 {
			return radius
		}
		return 0
	}
	tl, tr := rad(RoundTopLeft), rad(RoundTopRight)
	bl, br := rad(RoundBottomLeft), rad(RoundBottomRight)

	x0, y0 := r.Pos.X, r.Pos.Y
	x1, y1 := x0+r.Size.X, y0+r.Size.Y

	d.MoveTo(vec.Vec2{X: x0 + tl, Y: y0})
	d.LineTo(vec.Vec2{X: x1 - tr, Y: y0})
	if tr > 0 {
		appendArc(d, vec.Vec2{X: x1 - tr, Y: y0 + tr}, tr, -math.Pi/2, 0)
	}
	d.LineTo(vec.Vec2{X: x1, Y: y1 - br})
	if br > 0 {
		appendArc(d, vec.Vec2{X: x1 - br, Y: y1 - br}, br, 0, math.Pi/2)
	}
	d.LineTo(vec.Vec2{X: x0 + bl, Y: y1})
	if bl > 0 {
		appendArc(d, vec.Vec2{X: x0 + bl, Y: y1 - bl}, bl, math.Pi/2, math.Pi)
	}
	d.LineTo(vec.Vec2{X: x0, Y: y0 + tl})
	if tl > 0 {
		appendArc(d, vec.Vec2{X: x0 + tl, Y: y0 + tl}, tl, math.Pi, 3*math.Pi/2)
	}
	d.Close()
}

// AppendPolygon appends the closed polygon with vertices pts to d.
// Fewer than two points add nothing.
func AppendPolygon(d *outline.Data, pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	d.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		d.LineTo(pt)
	}
	d.Close()
}
