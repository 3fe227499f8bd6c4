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

package scenes

import (
	"math"

	"seehuhn.de/go/lcars/board"
	"seehuhn.de/go/lcars/widget"
)

var shapes = []Scene{
	{
		Name: "pill",
		Board: newBoard("shapes/pill", 400, 200,
			shape(at(10, 10, 380, 180), widget.ConvexFill, "main-orange", [2]float64{0.25, 0},
				line(0.75, 0),
				arc(0.5, -90, 90),
				line(0.25, 1),
				arc(0.5, 90, 270),
			),
		),
	},
	{
		Name: "elbow_outline",
		Board: newBoard("shapes/elbow_outline", 300, 300,
			shape(at(10, 10, 280, 280), widget.ConcaveFill, "main-red", [2]float64{0.5, 0},
				line(1, 0),
				line(1, 0.2),
				line(0.6, 0.2),
				arc(0.1, 270, 180),
				line(0.3, 1),
				line(0, 1),
				line(0, 0.5),
				arc(0.5, 180, 270),
			),
		),
	},
	{
		Name: "curves",
		Board: newBoard("shapes/curves", 400, 200,
			shape(at(0, 0, 200, 200), widget.ConvexFill, "main-blue", [2]float64{0, 1},
				quad(0.5, -1, 1, 1),
			),
			shape(at(200, 0, 200, 200), widget.Stroke, "main-yellow", [2]float64{0, 0.5},
				cubic(0.25, -0.5, 0.75, 1.5, 1, 0.5),
				line(0.5, 1),
			),
		),
	},
	{
		Name: "star",
		Board: newBoard("shapes/star", 400, 200,
			polygon(at(0, 0, 200, 200), widget.ConcaveFill, "main-beige", starPoints(0.5, 0.5, 0.48, 0.2)),
			polygon(at(200, 0, 200, 200), widget.Stroke, "main-green", starPoints(0.5, 0.5, 0.48, 0.2)),
		),
	},
	{
		Name: "zero_arc",
		Board: newBoard("shapes/zero_arc", 200, 200,
			shape(at(0, 0, 200, 200), widget.ConvexFill, "main-pink", [2]float64{0.5, 0},
				arc(0, 45, 45),
				line(1, 1),
				line(0, 1),
			),
		),
	},
}

func shape(a [4]float64, mode widget.FillMode, style string, start [2]float64, segs ...*board.SegmentSpec) *board.Spec {
	return &board.Spec{
		Kind:     board.KindShape,
		Area:     a,
		Style:    style,
		FillMode: mode,
		Start:    start,
		Segments: segs,
	}
}

func polygon(a [4]float64, mode widget.FillMode, style string, pts [][2]float64) *board.Spec {
	return &board.Spec{
		Kind:     board.KindPolygon,
		Area:     a,
		Style:    style,
		FillMode: mode,
		Points:   pts,
	}
}

func line(x, y float64) *board.SegmentSpec {
	return &board.SegmentSpec{Kind: "line", End: [2]float64{x, y}}
}

func arc(radius, start, end float64) *board.SegmentSpec {
	return &board.SegmentSpec{Kind: "arc", Radius: radius, StartAngle: start, EndAngle: end}
}

func quad(cx, cy, x, y float64) *board.SegmentSpec {
	return &board.SegmentSpec{Kind: "bezier", Control1: [2]float64{cx, cy}, End: [2]float64{x, y}}
}

func cubic(c1x, c1y, c2x, c2y, x, y float64) *board.SegmentSpec {
	return &board.SegmentSpec{
		Kind:     "bezier",
		Control1: [2]float64{c1x, c1y},
		Control2: [2]float64{c2x, c2y},
		End:      [2]float64{x, y},
		Cubic:    true,
	}
}

// starPoints returns the vertices of a five-pointed star, in clockwise
// order on screen.
func starPoints(cx, cy, outer, inner float64) [][2]float64 {
	pts := make([][2]float64, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}
