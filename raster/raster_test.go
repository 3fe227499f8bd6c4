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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lcars/outline"
)

// grid collects coverage values into a w×h array.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) sum() float64 {
	var s float64
	for _, c := range g.pix {
		s += float64(c)
	}
	return s
}

func approx(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-5
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&outline.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	g := newGrid(10, 1)
	r := NewRasterizer(clipRect(10, 1))
	r.FillNonZero(triangle, g.emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if actual := g.at(x, 0); math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	// a rectangle with half-pixel borders
	box := (&outline.Data{}).
		MoveTo(pt(2.5, 2.5)).
		LineTo(pt(7.5, 2.5)).
		LineTo(pt(7.5, 7.5)).
		LineTo(pt(2.5, 7.5)).
		Close()

	g := newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.FillNonZero(box, g.emit)

	cases := []struct {
		x, y int
		want float32
	}{
		{5, 5, 1},
		{2, 5, 0.5},
		{7, 5, 0.5},
		{5, 2, 0.5},
		{2, 2, 0.25},
		{7, 7, 0.25},
		{1, 1, 0},
		{8, 5, 0},
	}
	for _, c := range cases {
		if got := g.at(c.x, c.y); math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("pixel (%d,%d): got %.4f, want %.4f", c.x, c.y, got, c.want)
		}
	}
	if s := g.sum(); math.Abs(s-25) > 1e-4 {
		t.Errorf("total coverage %g, want 25", s)
	}
}

func TestImplicitClose(t *testing.T) {
	open := (&outline.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(4, 4)).
		LineTo(pt(0, 4))

	g := newGrid(4, 4)
	NewRasterizer(clipRect(4, 4)).FillNonZero(open, g.emit)
	if s := g.sum(); math.Abs(s-16) > 1e-4 {
		t.Errorf("total coverage %g, want 16", s)
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := (&outline.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(10, 0)).LineTo(pt(10, 10)).LineTo(pt(0, 10)).Close().
		MoveTo(pt(3, 3)).LineTo(pt(7, 3)).LineTo(pt(7, 7)).LineTo(pt(3, 7)).Close()

	nz := newGrid(10, 10)
	eo := newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.FillNonZero(p, nz.emit)
	r.FillEvenOdd(p, eo.emit)

	if got := nz.at(5, 5); !approx(got, 1) {
		t.Errorf("non-zero: centre coverage %g, want 1", got)
	}
	if got := eo.at(5, 5); !approx(got, 0) {
		t.Errorf("even-odd: centre coverage %g, want 0", got)
	}
	if got := eo.at(1, 1); !approx(got, 1) {
		t.Errorf("even-odd: ring coverage %g, want 1", got)
	}
}

func TestClip(t *testing.T) {
	p := (&outline.Data{}).
		MoveTo(pt(-5, -5)).LineTo(pt(15, -5)).LineTo(pt(15, 15)).LineTo(pt(-5, 15)).Close()

	g := newGrid(10, 10)
	NewRasterizer(clipRect(10, 10)).FillNonZero(p, g.emit)
	for y := range 10 {
		for x := range 10 {
			if c := g.at(x, y); !approx(c, 1) {
				t.Fatalf("pixel (%d,%d): coverage %g, want 1", x, y, c)
			}
		}
	}
}

func TestStrokeLine(t *testing.T) {
	line := (&outline.Data{}).MoveTo(pt(2, 5)).LineTo(pt(18, 5))

	cases := []struct {
		name string
		cap  graphics.LineCapStyle
		want float64
	}{
		{"butt", graphics.LineCapButt, 32},
		{"square", graphics.LineCapSquare, 36},
		{"round", graphics.LineCapRound, 32 + math.Pi},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newGrid(20, 10)
			r := NewRasterizer(clipRect(20, 10))
			r.Width = 2
			r.Cap = c.cap
			r.Flatness = 0.01
			r.Stroke(line.Iter(), g.emit)

			if got := g.at(10, 4); !approx(got, 1) {
				t.Errorf("pixel (10,4): coverage %g, want 1", got)
			}
			if got := g.at(10, 6); got != 0 {
				t.Errorf("pixel (10,6): coverage %g, want 0", got)
			}
			if s := g.sum(); math.Abs(s-c.want) > 0.1 {
				t.Errorf("total coverage %g, want %g", s, c.want)
			}
		})
	}
}

func TestStrokeClosedSquare(t *testing.T) {
	square := (&outline.Data{}).
		MoveTo(pt(10, 10)).LineTo(pt(30, 10)).LineTo(pt(30, 30)).LineTo(pt(10, 30)).Close()

	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinBevel, graphics.LineJoinRound} {
		t.Run(join.String(), func(t *testing.T) {
			g := newGrid(40, 40)
			r := NewRasterizer(clipRect(40, 40))
			r.Width = 2
			r.Join = join
			r.Stroke(square.Iter(), g.emit)

			if got := g.at(20, 20); !approx(got, 0) {
				t.Errorf("interior coverage %g, want 0", got)
			}
			if got := g.at(20, 9); !approx(got, 1) {
				t.Errorf("top edge coverage %g, want 1", got)
			}
			if got := g.at(30, 20); !approx(got, 1) {
				t.Errorf("right edge coverage %g, want 1", got)
			}
		})
	}
}

func TestStrokeMiterCorner(t *testing.T) {
	square := (&outline.Data{}).
		MoveTo(pt(10, 10)).LineTo(pt(30, 10)).LineTo(pt(30, 30)).LineTo(pt(10, 30)).Close()

	miter := newGrid(40, 40)
	bevel := newGrid(40, 40)
	r := NewRasterizer(clipRect(40, 40))
	r.Width = 4
	r.Stroke(square.Iter(), miter.emit)
	r.Join = graphics.LineJoinBevel
	r.Stroke(square.Iter(), bevel.emit)

	// the miter fills the outer corner pixel completely, the bevel only
	// partially
	if got := miter.at(31, 8); !approx(got, 1) {
		t.Errorf("miter corner coverage %g, want 1", got)
	}
	if got := bevel.at(31, 8); got > 0.5 {
		t.Errorf("bevel corner coverage %g, want at most 0.5", got)
	}
}

func TestRoundDot(t *testing.T) {
	dot := (&outline.Data{}).MoveTo(pt(10, 10)).LineTo(pt(10, 10))

	g := newGrid(20, 20)
	r := NewRasterizer(clipRect(20, 20))
	r.Width = 4
	r.Cap = graphics.LineCapRound
	r.Flatness = 0.01
	r.Stroke(dot.Iter(), g.emit)

	if s := g.sum(); math.Abs(s-4*math.Pi) > 0.2 {
		t.Errorf("dot area %g, want %g", s, 4*math.Pi)
	}

	butt := newGrid(20, 20)
	r.Cap = graphics.LineCapButt
	r.Stroke(dot.Iter(), butt.emit)
	if s := butt.sum(); s != 0 {
		t.Errorf("butt dot area %g, want 0", s)
	}
}

func TestCurveFlattening(t *testing.T) {
	// a circle of radius 8 built from four cubic arcs
	const k = 0.5522847498 * 8
	circle := (&outline.Data{}).
		MoveTo(pt(18, 10)).
		CubeTo(pt(18, 10+k), pt(10+k, 18), pt(10, 18)).
		CubeTo(pt(10-k, 18), pt(2, 10+k), pt(2, 10)).
		CubeTo(pt(2, 10-k), pt(10-k, 2), pt(10, 2)).
		CubeTo(pt(10+k, 2), pt(18, 10-k), pt(18, 10)).
		Close()

	g := newGrid(20, 20)
	r := NewRasterizer(clipRect(20, 20))
	r.Flatness = 0.01
	r.FillNonZero(circle, g.emit)
	if s := g.sum(); math.Abs(s-64*math.Pi) > 0.5 {
		t.Errorf("circle area %g, want %g", s, 64*math.Pi)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(clipRect(5, 5))
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.Reset(clipRect(8, 8))
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.Clip.URx != 8 {
		t.Errorf("Reset did not restore defaults: %+v", r)
	}
}
