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
	"seehuhn.de/go/lcars/board"
	"seehuhn.de/go/lcars/widget"
)

var corners = []Scene{
	{
		Name: "all_four",
		Board: newBoard("corners/all_four", 420, 260,
			corner(at(10, 10, 200, 120), widget.TopLeft, "main-orange", 0.3, 0.2),
			corner(at(210, 10, 200, 120), widget.TopRight, "main-blue", 0.3, 0.2),
			corner(at(210, 130, 200, 120), widget.BottomRight, "main-red", 0.3, 0.2),
			corner(at(10, 130, 200, 120), widget.BottomLeft, "main-pink", 0.3, 0.2),
		),
	},
	{
		Name: "ratios",
		Board: newBoard("corners/ratios", 640, 160,
			corner(at(10, 10, 140, 140), widget.TopLeft, "main-yellow", 0.1, 0.1),
			corner(at(170, 10, 140, 140), widget.TopLeft, "main-yellow", 0.3, 0.3),
			corner(at(330, 10, 140, 140), widget.TopLeft, "main-yellow", 0.6, 0.6),
			corner(at(490, 10, 140, 140), widget.TopLeft, "main-yellow", 0.9, 0.9),
		),
	},
	{
		Name: "wide",
		Board: newBoard("corners/wide", 640, 120,
			corner(at(10, 10, 620, 100), widget.BottomLeft, "light-blue", 0.1, 0.3),
		),
	},
	{
		Name: "absolute",
		Board: newBoard("corners/absolute", 400, 200,
			absoluteCorner(at(10, 10, 180, 180), widget.TopRight, "main-green", 60, 20),
			// wider than its area: only the outer curve is drawn
			absoluteCorner(at(210, 10, 180, 180), widget.TopRight, "main-beige", 200, 20),
		),
	},
}

func corner(a [4]float64, t widget.CornerType, style string, wr, hr float64) *board.Spec {
	return &board.Spec{
		Kind:        board.KindCorner,
		Area:        a,
		Corner:      t,
		Style:       style,
		WidthRatio:  board.Float(wr),
		HeightRatio: board.Float(hr),
	}
}

func absoluteCorner(a [4]float64, t widget.CornerType, style string, w, h float64) *board.Spec {
	sp := corner(a, t, style, w, h)
	sp.Absolute = true
	return sp
}
