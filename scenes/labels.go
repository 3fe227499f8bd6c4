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
	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/board"
)

var labels = []Scene{
	{
		Name: "alignment",
		Board: newBoard("labels/alignment", 600, 300,
			labelAt(at(0, 0, 600, 300), "TOP LEFT", area.AlignTopLeft, 1),
			labelAt(at(0, 0, 600, 300), "CENTER", area.AlignCenter, 1),
			labelAt(at(0, 0, 600, 300), "BOTTOM RIGHT", area.AlignBottomRight, 1),
			labelAt(at(0, 0, 600, 300), "RIGHT\nTWO LINES", area.AlignRight, 1),
		),
	},
	{
		Name: "scaled",
		Board: newBoard("labels/scaled", 600, 400,
			labelAt(at(0, 0, 300, 200), "SMALL", area.AlignCenter, 0.5),
			labelAt(at(300, 0, 300, 200), "NORMAL", area.AlignCenter, 1),
			labelAt(at(0, 200, 300, 200), "LARGE", area.AlignCenter, 1.5),
			labelAt(at(300, 200, 300, 200), "FILL", area.AlignCenter, 2),
		),
	},
	{
		Name: "wrapped",
		Board: newBoard("labels/wrapped", 300, 300,
			&board.Spec{
				Kind:    board.KindLabel,
				Area:    at(10, 10, 280, 280),
				Text:    "WARP CORE BREACH IMMINENT ALL HANDS ABANDON SHIP",
				Align:   area.AlignTopLeft,
				Wrapped: true,
				Margin:  0.1,
			},
		),
	},
}

// label returns a label without an area, for use as panel content.
func label(text string, align area.Alignment, scale float64) *board.Spec {
	return &board.Spec{
		Kind:  board.KindLabel,
		Text:  text,
		Align: align,
		Scale: board.Float(scale),
	}
}

func labelAt(a [4]float64, text string, align area.Alignment, scale float64) *board.Spec {
	sp := label(text, align, scale)
	sp.Area = a
	sp.Style = "main-orange"
	sp.TextColor = "#ff9900"
	return sp
}
