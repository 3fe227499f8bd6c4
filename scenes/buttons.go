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
	"seehuhn.de/go/lcars/widget"
)

var buttons = []Scene{
	{
		Name: "column",
		Board: newBoard("buttons/column", 300, 400,
			button(at(20, 20, 260, 80), "HELM", "main-orange", widget.TopLeft, widget.BottomLeft),
			button(at(20, 110, 260, 80), "TACTICAL", "main-red", widget.TopLeft, widget.BottomLeft),
			button(at(20, 200, 260, 80), "ENGINEERING", "main-blue", widget.TopLeft, widget.BottomLeft),
			button(at(20, 290, 260, 80), "SCIENCE", "main-green", widget.TopLeft, widget.BottomLeft),
		),
	},
	{
		Name: "pills",
		Board: newBoard("buttons/pills", 500, 200,
			button(at(10, 10, 230, 80), "ENGAGE", "main-orange", widget.TopLeft, widget.TopRight, widget.BottomRight, widget.BottomLeft),
			button(at(260, 10, 230, 80), "HALT", "main-red", widget.TopRight, widget.BottomRight),
			&board.Spec{
				Kind:    board.KindButton,
				Area:    at(10, 110, 480, 80),
				Text:    "RED ALERT ALL DECKS",
				Style:   "main-red",
				Align:   area.AlignLeft,
				Wrapped: true,
				Margin:  0.2,
			},
		),
	},
}

// button returns a fully rounded button on the given corners.
func button(a [4]float64, text, style string, rounded ...widget.CornerType) *board.Spec {
	return &board.Spec{
		Kind:     board.KindButton,
		Area:     a,
		Text:     text,
		Style:    style,
		Rounding: 1,
		Rounded:  rounded,
	}
}
