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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly (up to curve flattening) from the signed
// area of the path inside each pixel.  The result is delivered row by row
// through an [Emitter] callback, so that callers can composite into any
// pixel format.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lcars/outline"
)

// Emitter receives the coverage of one pixel row.  coverage[i] is the
// coverage of pixel (xMin+i, y), in the range [0, 1].  The slice is only
// valid during the call.
type Emitter func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer computes pixel coverage for filled and stroked paths.  A
// Rasterizer keeps its internal buffers between calls, so reusing one
// instance avoids allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which approximates it.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape of the end points of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the stroke
	// width.  Longer joins are converted to bevel joins.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bbox      rect.Rect
	bboxEmpty bool

	// stroke outline buffers
	segs     []strokeSegment
	subpaths []subpath
	dots     []vec.Vec2
	outline  []vec.Vec2
	rings    []int
	rev      []strokeSegment
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// PDF default values for the stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills p using the non-zero winding rule.
func (r *Rasterizer) FillNonZero(p *outline.Data, emit Emitter) {
	r.collectPathEdges(p)
	r.sweep(integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *outline.Data, emit Emitter) {
	r.collectPathEdges(p)
	r.sweep(integrateEvenOdd, emit)
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// The number of segments is chosen from the device space size of the
// error vector (p0 - 2p1 + p2)/4.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	errLen := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if errLen > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errLen / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

// collectPathEdges flattens p and stores its edges in device space.
func (r *Rasterizer) collectPathEdges(p *outline.Data) {
	r.resetEdges()

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// fills implicitly close open subpaths
	if cur != start {
		r.addEdge(cur, start)
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the user space segment a→b to device space and adds
// it to the edge list.  Horizontal edges do not contribute coverage and
// are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	lo := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if r.bboxEmpty {
		r.bbox = lo
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, lo.LLx)
	r.bbox.LLy = min(r.bbox.LLy, lo.LLy)
	r.bbox.URx = max(r.bbox.URx, lo.URx)
	r.bbox.URy = max(r.bbox.URy, lo.URy)
}

// pixelBounds returns the integer pixel range touched by the collected
// edges, intersected with the clip rectangle.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if r.bboxEmpty || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Each pixel accumulates two values:
//
//	cover: the signed vertical extent of all edge pieces inside the pixel
//	area:  cover weighted by the part of the pixel right of the edge
//
// Scanning a row from left to right, the coverage of pixel i is
// sum(cover[0:i]) + area[i].  This is the signed area of the path inside
// the pixel; the fill rule then maps it into [0, 1].

// sweep rasterizes the collected edges scanline by scanline, keeping a list
// of the edges which cross the current row.
func (r *Rasterizer) sweep(integrate func(cover, area []float32), emit Emitter) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if accumulate(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e inside scanline y to the cover and
// area buffers, which are indexed by x-xMin.  Pieces left of the buffer
// are folded into the first pixel.  The return value reports whether the
// edge crosses the scanline at all.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left, right := min(xTop, xBot), max(xTop, xBot)
	pixL := int(math.Floor(left))
	pixR := int(math.Floor(right))

	add := func(pix int, y0, y1 float64) {
		c := sign * float32(y1-y0)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
			frac := xMid - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}

	if pixL == pixR {
		add(pixL, top, bot)
		return true
	}

	// the edge crosses several pixel columns: split it at the column
	// boundaries
	dydx := 1 / e.dxdy
	for pix := pixL; pix <= pixR; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			add(pix, lo, hi)
		}
	}
	return true
}

// integrateNonZero turns accumulated cover/area values into coverage using
// the non-zero winding rule.  The result replaces cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area values into coverage using
// the even-odd rule.  The result replaces cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of row between the first and the last
// non-zero entry, together with its offset.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is well below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript: joins with an interior
	// angle below about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself.
	cuspCosineThreshold = -0.9999
)
