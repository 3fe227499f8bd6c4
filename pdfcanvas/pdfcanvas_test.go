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

package pdfcanvas

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

func TestWritePage(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "page.pdf")
	c, err := Create(fname, 200, 100)
	if err != nil {
		t.Fatal(err)
	}

	c.Clear(color.Black)
	c.FillRoundedRect(area.New(10, 10, 80, 40), color.RGBA{R: 0xFF, G: 0x99, A: 255}, 20, draw.RoundLeft)
	c.FillConcavePolygon([]vec.Vec2{{X: 100, Y: 10}, {X: 190, Y: 10}, {X: 150, Y: 30}, {X: 190, Y: 90}}, color.White)
	c.PathLineTo(vec.Vec2{X: 10, Y: 80})
	c.PathBezierQuadraticTo(vec.Vec2{X: 50, Y: 60}, vec.Vec2{X: 90, Y: 80})
	c.PathStroke(color.White, 2)
	c.DrawText(vec.Vec2{X: 10, Y: 55}, 12, color.White, "LCARS")
	// skipped: transparent
	c.FillRoundedRect(area.New(0, 0, 10, 10), color.Transparent, 0, draw.RoundNone)

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestConvert(t *testing.T) {
	if _, ok := convert(color.Transparent); ok {
		t.Error("transparent colour was converted")
	}
	if _, ok := convert(color.NRGBA{R: 10, A: 1}); !ok {
		t.Error("translucent colour was skipped")
	}

	got, _ := convert(color.NRGBA{R: 0xFF, G: 0x33, A: 0xFF})
	want := pdfcolor.DeviceRGB{1, 0.2, 0}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
