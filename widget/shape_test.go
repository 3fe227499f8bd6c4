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
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/canvas"
	"seehuhn.de/go/lcars/draw"
)

func TestShapeLines(t *testing.T) {
	sh := &Shape{
		Start: v(0, 0),
		Segments: []Segment{
			LineSegment{End: v(1, 0)},
			LineSegment{End: v(1, 1)},
		},
		FillMode: ConvexFill,
	}
	a := area.New(0, 0, 100, 100)

	want := []vec.Vec2{v(0, 0), v(100, 0), v(100, 100)}
	got := sh.Trace(a)
	if len(got) != len(want) {
		t.Fatalf("trace %v, want %v", got, want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("point %d: %v, want %v", i, got[i], want[i])
		}
	}

	l := &draw.List{}
	sh.Render(l, a)
	if len(l.Commands) != 4 {
		t.Fatalf("%d commands, want 4", len(l.Commands))
	}
	for i, p := range l.PathPoints() {
		if !near(p, want[i]) {
			t.Errorf("path point %d: %v, want %v", i, p, want[i])
		}
	}
	if fill, ok := l.Commands[3].(draw.FillPath); !ok || !fill.Convex {
		t.Errorf("last command %#v, want a convex fill", l.Commands[3])
	}
}

func TestShapeStrokeCloses(t *testing.T) {
	sh := &Shape{
		Start:     v(0.5, 0),
		Segments:  []Segment{LineSegment{End: v(1, 1)}, LineSegment{End: v(0, 1)}},
		FillMode:  Stroke,
		Thickness: 3,
	}
	l := &draw.List{}
	sh.Render(l, area.New(0, 0, 10, 10))

	n := len(l.Commands)
	if n != 5 {
		t.Fatalf("%d commands, want 5", n)
	}
	if c, ok := l.Commands[n-2].(draw.LineTo); !ok || !near(c.P, v(5, 0)) {
		t.Errorf("outline not closed: %#v", l.Commands[n-2])
	}
	if c, ok := l.Commands[n-1].(draw.Stroke); !ok || c.Thickness != 3 {
		t.Errorf("last command %#v, want a stroke", l.Commands[n-1])
	}
}

func TestShapeArc(t *testing.T) {
	sh := &Shape{
		Start: v(0.5, 0.5),
		Segments: []Segment{
			ArcSegment{Radius: 0.1, StartAngle: 0, EndAngle: 90},
			LineSegment{End: v(0, 0)},
		},
		FillMode: ConcaveFill,
	}
	a := area.New(0, 0, 100, 100)

	trace := sh.Trace(a)
	if !near(trace[1], v(40, 60)) {
		t.Errorf("arc ends at %v, want (40,60)", trace[1])
	}

	l := &draw.List{}
	sh.Render(l, a)
	arc := l.Commands[1].(draw.ArcTo)
	if !near(arc.Center, v(40, 50)) || arc.Radius != 10 {
		t.Errorf("arc %+v", arc)
	}
	if math.Abs(arc.AMax-math.Pi/2) > eps {
		t.Errorf("end angle %g", arc.AMax)
	}
}

func TestShapeArcContinuity(t *testing.T) {
	angles := [][2]float64{{0, 90}, {200, 30}, {-45, 315}, {90, 90}, {135, -180}}
	for _, ang := range angles {
		sh := &Shape{
			Start: v(0.3, 0.7),
			Segments: []Segment{
				LineSegment{End: v(0.6, 0.6)},
				ArcSegment{Radius: 0.2, StartAngle: ang[0], EndAngle: ang[1]},
				ArcSegment{Radius: 0.05, StartAngle: ang[1], EndAngle: ang[0]},
			},
			FillMode: ConcaveFill,
		}
		a := area.New(10, 20, 300, 200)
		l := &draw.List{}
		sh.Render(l, a)
		trace := sh.Trace(a)

		prev := trace[0]
		for i, cmd := range l.Commands {
			switch cmd := cmd.(type) {
			case draw.ArcTo:
				start := draw.ArcPoint(cmd.Center, cmd.Radius, cmd.AMin)
				if math.Abs(start.X-prev.X) > 1e-6 || math.Abs(start.Y-prev.Y) > 1e-6 {
					t.Errorf("angles %v: arc %d starts at %v, previous point %v", ang, i, start, prev)
				}
				prev = draw.ArcPoint(cmd.Center, cmd.Radius, cmd.AMax)
			case draw.LineTo:
				prev = cmd.P
			}
		}
		last := trace[len(trace)-1]
		if math.Abs(last.X-prev.X) > 1e-6 || math.Abs(last.Y-prev.Y) > 1e-6 {
			t.Errorf("angles %v: trace ends at %v, path at %v", ang, last, prev)
		}
	}
}

func TestShapeZeroArc(t *testing.T) {
	sh := &Shape{
		Start:    v(0.5, 0.5),
		Segments: []Segment{ArcSegment{Radius: 0, StartAngle: 45, EndAngle: 45}},
		FillMode: Stroke,
	}
	a := area.New(0, 0, 20, 20)
	trace := sh.Trace(a)
	if !near(trace[1], trace[0]) {
		t.Errorf("zero arc moved from %v to %v", trace[0], trace[1])
	}

	c := canvas.New(20, 20)
	sh.Render(c, a)
}

func TestShapeBezier(t *testing.T) {
	sh := &Shape{
		Start: v(0, 1),
		Segments: []Segment{
			BezierSegment{Control1: v(0.5, 0), End: v(1, 1)},
			BezierSegment{Control1: v(1, 2), Control2: v(0, 2), End: v(0, 1), Cubic: true},
		},
		FillMode: ConvexFill,
	}
	l := &draw.List{}
	sh.Render(l, area.New(0, 0, 10, 10))

	q := l.Commands[1].(draw.QuadTo)
	if !near(q.Ctrl, v(5, 0)) || !near(q.End, v(10, 10)) {
		t.Errorf("quadratic %+v", q)
	}
	c := l.Commands[2].(draw.CubeTo)
	if !near(c.C1, v(10, 20)) || !near(c.C2, v(0, 20)) || !near(c.End, v(0, 10)) {
		t.Errorf("cubic %+v", c)
	}
}

func TestShapeEmpty(t *testing.T) {
	sh := &Shape{Start: v(0.5, 0.5), FillMode: Stroke}
	l := &draw.List{}
	sh.Render(l, area.New(0, 0, 10, 10))
	if len(l.Commands) != 0 {
		t.Errorf("empty shape drew %d commands", len(l.Commands))
	}
}

func TestShapeInnerArea(t *testing.T) {
	sh := &Shape{Ratio: 2, OutMargin: 10}
	got := sh.Area(area.New(0, 0, 220, 220))
	if !nearRect(got, area.New(10, 60, 200, 100)) {
		t.Errorf("inner area %v", got)
	}

	// the ratio is ignored when the area ratio is used
	sh = &Shape{UseAreaRatio: true, Ratio: 2}
	got = sh.Area(area.New(0, 0, 220, 120))
	if !nearRect(got, area.New(0, 0, 220, 120)) {
		t.Errorf("inner area %v", got)
	}
}

func TestInvalidFillMode(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	sh := &Shape{
		Segments: []Segment{LineSegment{End: v(1, 0)}, LineSegment{End: v(1, 1)}},
		FillMode: FillMode(7),
	}
	p := &Polygon{Points: []vec.Vec2{v(0, 0), v(1, 0), v(1, 1)}, FillMode: FillMode(9)}

	l := &draw.List{}
	sh.Render(l, area.New(0, 0, 10, 10))
	p.Render(l, area.New(0, 0, 10, 10))
	if len(l.Commands) != 0 {
		t.Errorf("%d commands recorded for invalid fill modes", len(l.Commands))
	}
	if n := strings.Count(buf.String(), "invalid fill mode"); n != 2 {
		t.Errorf("%d warnings logged, want 2:\n%s", n, buf)
	}
	out := buf.String()
	if !strings.Contains(out, "fill_mode=7") || !strings.Contains(out, "fill_mode=9") {
		t.Errorf("fill mode values missing from log:\n%s", out)
	}
	if strings.Contains(out, "!ERROR") {
		t.Errorf("log contains a formatting error:\n%s", out)
	}
}

func TestPolygon(t *testing.T) {
	p := NewPolygon()
	p.Points = []vec.Vec2{v(0.5, 0), v(1, 1), v(0, 1)}
	a := area.New(0, 0, 110, 110)

	want := []vec.Vec2{v(55, 5), v(105, 105), v(5, 105)}
	got := p.Vertices(a)
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("vertex %d: %v, want %v", i, got[i], want[i])
		}
	}

	l := &draw.List{}
	p.Render(l, a)
	if len(l.Commands) != 5 {
		t.Fatalf("%d commands, want 5", len(l.Commands))
	}
	if c := l.Commands[3].(draw.LineTo); !near(c.P, want[0]) {
		t.Errorf("outline closed at %v", c.P)
	}

	l.Reset()
	p.FillMode = ConcaveFill
	p.Render(l, a)
	fill := l.Commands[0].(draw.FillPolygon)
	if fill.Convex || len(fill.Points) != 3 {
		t.Errorf("fill %+v", fill)
	}

	l.Reset()
	p.Points = p.Points[:2]
	p.Render(l, a)
	if len(l.Commands) != 0 {
		t.Error("polygon with two points was drawn")
	}
}

func TestRectRadius(t *testing.T) {
	a := area.New(0, 0, 40, 20)
	cases := []struct {
		rounding, want float64
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{2, 10},
		{-1, 0},
	}
	for _, c := range cases {
		r := &Rect{Rounding: c.rounding}
		if got := r.Radius(a); got != c.want {
			t.Errorf("rounding %g: radius %g, want %g", c.rounding, got, c.want)
		}
	}
}

func TestFillModeText(t *testing.T) {
	for m := Stroke; m <= ConcaveFill; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back FillMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%s: got %v, %v", text, back, err)
		}
	}
	if _, err := FillMode(3).MarshalText(); err == nil {
		t.Error("invalid fill mode marshalled")
	}
}
