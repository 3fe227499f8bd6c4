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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened path segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// subpath is a range of r.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke paints the outline of p, using the current Width, Cap, Join and
// MiterLimit.
//
// The outline of every subpath is built from closed polygons ("rings")
// which are then filled together with the non-zero winding rule, so that
// self-overlapping strokes are painted only once.
func (r *Rasterizer) Stroke(p path.Path, emit Emitter) {
	r.flattenPath(p)
	if len(r.subpaths) == 0 && len(r.dots) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginRing()
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		}
	}

	for _, sp := range r.subpaths {
		segs := r.segs[sp.start:sp.end]
		rev := r.reverse(segs)
		if sp.closed {
			r.beginRing()
			r.offsetSide(segs, true, d)
			r.beginRing()
			r.offsetSide(rev, true, d)
			continue
		}

		first, last := segs[0], segs[len(segs)-1]
		r.beginRing()
		r.offsetSide(segs, false, d)
		r.addCap(last.B, last.T, d)
		r.offsetSide(rev, false, d)
		r.addCap(first.A, first.T.Mul(-1), d)
	}

	r.collectOutlineEdges()
	r.sweep(integrateNonZero, emit)
}

// flattenPath splits p into subpaths of straight segments.  Subpaths
// without any extent are collected in r.dots.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if !open {
			return
		}
		if len(r.segs) > first {
			r.subpaths = append(r.subpaths, subpath{start: first, end: len(r.segs), closed: closed})
		} else if drawn || closed {
			r.dots = append(r.dots, start)
		}
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur, start = pts[0], pts[0]
			first = len(r.segs)
			open = true
			drawn = false
		case path.CmdLineTo:
			if !open {
				continue
			}
			r.addSegment(cur, pts[0])
			cur = pts[0]
			drawn = true
		case path.CmdQuadTo:
			if !open {
				continue
			}
			r.flattenQuadratic(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
			drawn = true
		case path.CmdCubeTo:
			if !open {
				continue
			}
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
			drawn = true
		case path.CmdClose:
			if !open {
				continue
			}
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
		}
	}
	finish(false)
}

// addSegment appends the segment a→b.  Zero-length segments are skipped.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func (r *Rasterizer) reverse(segs []strokeSegment) []strokeSegment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}
	return r.rev
}

func (r *Rasterizer) beginRing() {
	r.rings = append(r.rings, len(r.outline))
}

// offsetSide appends the +N offset of segs at distance d to the outline,
// with joins at the corners.  For closed subpaths the corner between the
// last and the first segment is included.
func (r *Rasterizer) offsetSide(segs []strokeSegment, closed bool, d float64) {
	n := len(segs)
	if !closed {
		r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
		for i := 0; i < n-1; i++ {
			r.addCorner(&segs[i], &segs[i+1], d)
		}
		r.outline = append(r.outline, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
		return
	}
	for i := range n {
		r.addCorner(&segs[i], &segs[(i+1)%n], d)
	}
}

// addCorner appends the +N side of the corner where segment a ends and
// segment b begins.
func (r *Rasterizer) addCorner(a, b *strokeSegment, d float64) {
	P := a.B
	sinTheta := a.T.X*b.T.Y - a.T.Y*b.T.X
	cosTheta := a.T.Dot(b.T)

	switch {
	case cosTheta < cuspCosineThreshold:
		// the path reverses direction
		r.outline = append(r.outline, P.Add(a.N.Mul(d)))
		r.addCap(P, a.T, d)
		r.outline = append(r.outline, P.Add(b.N.Mul(d)))
	case math.Abs(sinTheta) < collinearityThreshold:
		r.outline = append(r.outline, P.Add(a.N.Mul(d)))
	case sinTheta > 0:
		// turning towards +N: this is the inner side
		if pt, ok := innerIntersection(P, a.N, b.N, cosTheta, d); ok {
			r.outline = append(r.outline, pt)
		} else {
			r.outline = append(r.outline, P.Add(a.N.Mul(d)), P.Add(b.N.Mul(d)))
		}
	default:
		r.outline = append(r.outline, P.Add(a.N.Mul(d)))
		r.addJoin(P, a, b, cosTheta, d)
		r.outline = append(r.outline, P.Add(b.N.Mul(d)))
	}
}

// innerIntersection returns the point where the two inner offset lines of
// a corner meet.
func innerIntersection(P, N1, N2 vec.Vec2, cosTheta, d float64) (vec.Vec2, bool) {
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	bis := N1.Add(N2)
	l := bis.Length()
	if cosHalf < 1e-9 || l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(bis.Mul(d / (l * cosHalf))), true
}

// addJoin appends the join geometry on the outer (+N) side of a corner.
// The offset points of both segments are added by the caller.
func (r *Rasterizer) addJoin(P vec.Vec2, a, b *strokeSegment, cosTheta, d float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		r.addArc(P, d, a.N, -angle, false)
	case graphics.LineJoinMiter:
		// the miter length relative to the line width is 1/cos(θ/2)
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		if cosHalf <= 0 || 1/cosHalf > r.MiterLimit+1e-10 {
			return // bevel
		}
		bis := a.N.Add(b.N)
		if l := bis.Length(); l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(bis.Mul(d/(l*cosHalf))))
		}
	}
}

// addCap appends a line cap at P.  T is the direction pointing away from
// the line; the outline arrives at P+N·d and continues at P-N·d, where N
// is T rotated by +90°.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, false)
	}
}

// addArc appends points on the circle of the given radius around center,
// starting in direction startDir and turning by sweep radians.  The
// number of points is chosen so that the polygon stays within the
// flatness tolerance in device space.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(r.linear(vec.Vec2{X: radius}).Length(), r.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// collectOutlineEdges converts the outline rings into edges.
func (r *Rasterizer) collectOutlineEdges() {
	r.resetEdges()
	for i, start := range r.rings {
		end := len(r.outline)
		if i+1 < len(r.rings) {
			end = r.rings[i+1]
		}
		ring := r.outline[start:end]
		if len(ring) < 3 {
			continue
		}
		for j := 1; j < len(ring); j++ {
			r.addEdge(ring[j-1], ring[j])
		}
		r.addEdge(ring[len(ring)-1], ring[0])
	}
}
