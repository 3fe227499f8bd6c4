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

package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

var (
	black  = color.RGBA{A: 255}
	orange = color.RGBA{R: 0xFF, G: 0x99, A: 255}
)

func TestFillRect(t *testing.T) {
	c := New(20, 20)
	c.Clear(black)
	c.FillRoundedRect(area.New(5, 5, 10, 10), orange, 0, draw.RoundNone)

	if got := c.Image.RGBAAt(10, 10); got != orange {
		t.Errorf("inside: %v, want %v", got, orange)
	}
	if got := c.Image.RGBAAt(2, 2); got != black {
		t.Errorf("outside: %v, want %v", got, black)
	}
}

func TestRoundedCorner(t *testing.T) {
	c := New(40, 40)
	c.Clear(black)
	c.FillRoundedRect(area.New(0, 0, 40, 40), orange, 20, draw.RoundTopLeft)

	// the top-left corner is cut away, the others are square
	if got := c.Image.RGBAAt(1, 1); got != black {
		t.Errorf("rounded corner: %v, want background", got)
	}
	if got := c.Image.RGBAAt(38, 1); got != orange {
		t.Errorf("square corner: %v, want fill", got)
	}
	if got := c.Image.RGBAAt(38, 38); got != orange {
		t.Errorf("square corner: %v, want fill", got)
	}
}

func TestPathFill(t *testing.T) {
	c := New(20, 20)
	c.Clear(black)
	c.PathLineTo(vec.Vec2{X: 0, Y: 0})
	c.PathLineTo(vec.Vec2{X: 20, Y: 0})
	c.PathLineTo(vec.Vec2{X: 20, Y: 20})
	c.PathFillConvex(orange)

	if got := c.Image.RGBAAt(15, 5); got != orange {
		t.Errorf("above diagonal: %v, want fill", got)
	}
	if got := c.Image.RGBAAt(5, 15); got != black {
		t.Errorf("below diagonal: %v, want background", got)
	}

	// the path was consumed
	c.PathFillConvex(orange)
	if got := c.Image.RGBAAt(5, 15); got != black {
		t.Errorf("second fill drew %v", got)
	}
}

func TestPathStroke(t *testing.T) {
	c := New(20, 20)
	c.Clear(black)
	c.PathLineTo(vec.Vec2{X: 2, Y: 10})
	c.PathLineTo(vec.Vec2{X: 18, Y: 10})
	c.PathStroke(orange, 2)

	if got := c.Image.RGBAAt(10, 9); got != orange {
		t.Errorf("on the line: %v, want stroke colour", got)
	}
	if got := c.Image.RGBAAt(10, 12); got != black {
		t.Errorf("off the line: %v, want background", got)
	}
}

func TestArc(t *testing.T) {
	c := New(40, 40)
	c.Clear(black)
	center := vec.Vec2{X: 20, Y: 20}
	c.PathLineTo(center)
	c.PathArcTo(center, 15, 0, 2*math.Pi)
	c.PathFillConcave(orange)

	if got := c.Image.RGBAAt(20, 10); got != orange {
		t.Errorf("inside circle: %v", got)
	}
	if got := c.Image.RGBAAt(2, 2); got != black {
		t.Errorf("outside circle: %v", got)
	}
}

func TestBlend(t *testing.T) {
	c := New(1, 1)
	c.Clear(black)
	c.FillRoundedRect(area.New(0, 0, 1, 1), color.RGBA{R: 255, A: 255}, 0, draw.RoundNone)
	c.FillRoundedRect(area.New(0, 0, 1, 1), color.NRGBA{B: 255, A: 128}, 0, draw.RoundNone)

	got := c.Image.RGBAAt(0, 0)
	if got.A != 255 || got.B < 126 || got.B > 130 || got.R < 125 || got.R > 129 {
		t.Errorf("blended pixel %v", got)
	}
}

func TestDrawText(t *testing.T) {
	c := New(80, 30)
	c.Clear(black)
	c.DrawText(vec.Vec2{X: 2, Y: 2}, 20, orange, "LCARS")

	changed := 0
	for y := range 30 {
		for x := range 80 {
			if c.Image.RGBAAt(x, y) != black {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("no pixels drawn")
	}
}

func TestWritePNG(t *testing.T) {
	c := New(8, 8)
	c.Clear(orange)
	buf := &bytes.Buffer{}
	if err := c.WritePNG(buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("decoded width %d", img.Bounds().Dx())
	}
}
