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

var panels = []Scene{
	{
		Name: "framed",
		Board: newBoard("panels/framed", 640, 400,
			&board.Spec{
				Kind:    board.KindPanel,
				Area:    at(0, 0, 640, 400),
				Style:   "main-orange",
				Content: label("SENSOR ARRAY ONLINE", area.AlignCenter, 1),
			},
		),
	},
	{
		Name: "elbow",
		Board: newBoard("panels/elbow", 640, 400,
			&board.Spec{
				Kind:        board.KindPanel,
				Area:        at(0, 0, 640, 400),
				Style:       "main-blue",
				Borders:     borders(widget.BorderTop | widget.BorderLeft),
				Absolute:    true,
				WidthRatio:  board.Float(120),
				HeightRatio: board.Float(30),
				InnerRadius: board.Float(20),
				Content: &board.Spec{
					Kind:     board.KindRect,
					Style:    "main-beige",
					Rounding: 0.5,
					Rounded:  []widget.CornerType{widget.TopLeft, widget.BottomRight},
				},
				BorderWidgets: map[string]*board.Spec{
					"top": {Kind: board.KindRect, Style: "main-red", Rounding: 1, Rounded: []widget.CornerType{widget.TopRight, widget.BottomRight}},
				},
			},
		),
	},
	{
		Name: "side_by_side",
		Board: newBoard("panels/side_by_side", 640, 300,
			sidePanel(at(0, 0, 320, 300), widget.BorderTop|widget.BorderLeft|widget.BorderBottom, "main-pink"),
			sidePanel(at(320, 0, 320, 300), widget.BorderTop|widget.BorderRight|widget.BorderBottom, "light-blue"),
		),
	},
	{
		Name: "open",
		Board: newBoard("panels/open", 320, 200,
			&board.Spec{
				Kind:    board.KindPanel,
				Area:    at(0, 0, 320, 200),
				Borders: borders(widget.BordersNone),
				Content: &board.Spec{Kind: board.KindRect, Style: "main-green", Rounding: 1, Rounded: []widget.CornerType{widget.TopLeft, widget.TopRight, widget.BottomRight, widget.BottomLeft}},
			},
		),
	},
}

func borders(b widget.Borders) *widget.Borders {
	return &b
}

func sidePanel(a [4]float64, b widget.Borders, style string) *board.Spec {
	return &board.Spec{
		Kind:        board.KindPanel,
		Area:        a,
		Style:       style,
		Borders:     borders(b),
		Absolute:    true,
		WidthRatio:  board.Float(50),
		HeightRatio: board.Float(24),
		InnerRadius: board.Float(16),
		FillBorders: board.Bool(true),
	}
}
