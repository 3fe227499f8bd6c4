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

// Package pdfcanvas implements a [draw.Surface] which writes a single-page
// PDF file.  One pixel of the surface corresponds to one PDF point.
package pdfcanvas

import (
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/outline"
	"seehuhn.de/go/lcars/text"
)

// Canvas draws into the content stream of a PDF page.  Fully transparent
// colours are skipped; all other colours are painted opaque.
type Canvas struct {
	// Font is used by DrawText.
	Font *text.Font

	page          *document.Page
	width, height float64
	path          draw.Path
	tmp           outline.Data
}

var _ draw.Surface = (*Canvas)(nil)

// Create starts a new PDF file with a single page of the given size.  The
// page must be finished by calling [Canvas.Close].
func Create(fname string, width, height float64) (*Canvas, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF has the origin in the bottom-left corner, the surface in the
	// top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	return &Canvas{
		Font:   text.Default(),
		page:   page,
		width:  width,
		height: height,
	}, nil
}

// Bounds returns the page area.
func (c *Canvas) Bounds() area.Rect {
	return area.New(0, 0, c.width, c.height)
}

// Clear paints the whole page with col.
func (c *Canvas) Clear(col stdcolor.Color) {
	if !c.setFill(col) {
		return
	}
	c.page.Rectangle(0, 0, c.width, c.height)
	c.page.Fill()
}

// Close writes the page and closes the file.
func (c *Canvas) Close() error {
	return c.page.Close()
}

// FillRoundedRect implements [draw.Surface].
func (c *Canvas) FillRoundedRect(r area.Rect, col stdcolor.Color, radius float64, flags draw.CornerFlags) {
	if r.IsEmpty() || !c.setFill(col) {
		return
	}
	c.tmp.Reset()
	draw.AppendRoundedRect(&c.tmp, r, radius, flags)
	c.emit(&c.tmp)
	c.page.Fill()
}

// FillConvexPolygon implements [draw.Surface].
func (c *Canvas) FillConvexPolygon(pts []vec.Vec2, col stdcolor.Color) {
	c.fillPolygon(pts, col, false)
}

// FillConcavePolygon implements [draw.Surface].
func (c *Canvas) FillConcavePolygon(pts []vec.Vec2, col stdcolor.Color) {
	c.fillPolygon(pts, col, true)
}

func (c *Canvas) fillPolygon(pts []vec.Vec2, col stdcolor.Color, evenOdd bool) {
	if len(pts) < 3 || !c.setFill(col) {
		return
	}
	c.tmp.Reset()
	draw.AppendPolygon(&c.tmp, pts)
	c.emit(&c.tmp)
	if evenOdd {
		c.page.FillEvenOdd()
	} else {
		c.page.Fill()
	}
}

// PathLineTo implements [draw.Surface].
func (c *Canvas) PathLineTo(p vec.Vec2) {
	c.path.LineTo(p)
}

// PathArcTo implements [draw.Surface].
func (c *Canvas) PathArcTo(center vec.Vec2, radius, aMin, aMax float64) {
	c.path.ArcTo(center, radius, aMin, aMax)
}

// PathBezierQuadraticTo implements [draw.Surface].
func (c *Canvas) PathBezierQuadraticTo(ctrl, end vec.Vec2) {
	c.path.QuadTo(ctrl, end)
}

// PathBezierCubicTo implements [draw.Surface].
func (c *Canvas) PathBezierCubicTo(c1, c2, end vec.Vec2) {
	c.path.CubeTo(c1, c2, end)
}

// PathStroke implements [draw.Surface].
func (c *Canvas) PathStroke(col stdcolor.Color, thickness float64) {
	defer c.path.Reset()
	if c.path.IsEmpty() || thickness <= 0 {
		return
	}
	pc, ok := convert(col)
	if !ok {
		return
	}
	// stroke parameters must be set before the path is constructed
	c.page.SetStrokeColor(pc)
	c.page.SetLineWidth(thickness)
	c.page.SetLineCap(graphics.LineCapButt)
	c.page.SetLineJoin(graphics.LineJoinMiter)
	c.emit(c.path.Data())
	c.page.Stroke()
}

// PathFillConvex implements [draw.Surface].
func (c *Canvas) PathFillConvex(col stdcolor.Color) {
	c.fillPath(col, false)
}

// PathFillConcave implements [draw.Surface].
func (c *Canvas) PathFillConcave(col stdcolor.Color) {
	c.fillPath(col, true)
}

func (c *Canvas) fillPath(col stdcolor.Color, evenOdd bool) {
	defer c.path.Reset()
	if c.path.IsEmpty() || !c.setFill(col) {
		return
	}
	c.path.Close()
	c.emit(c.path.Data())
	if evenOdd {
		c.page.FillEvenOdd()
	} else {
		c.page.Fill()
	}
}

// DrawText implements [draw.Surface].  Glyphs are written as filled
// outlines, so that no font needs to be embedded.
func (c *Canvas) DrawText(pos vec.Vec2, size float64, col stdcolor.Color, line string) {
	if c.Font == nil || line == "" || size <= 0 || !c.setFill(col) {
		return
	}
	c.tmp.Reset()
	c.Font.AppendOutline(&c.tmp, line, pos, size)
	if c.tmp.IsEmpty() {
		return
	}
	c.emit(&c.tmp)
	c.page.Fill()
}

// emit writes the path construction operators for p.  Quadratic segments
// are converted to cubic ones, since PDF has no quadratic curves.
func (c *Canvas) emit(p *outline.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

func (c *Canvas) setFill(col stdcolor.Color) bool {
	pc, ok := convert(col)
	if ok {
		c.page.SetFillColor(pc)
	}
	return ok
}

// convert maps a Go colour to DeviceRGB.  The second return value is false
// for fully transparent colours.
func convert(col stdcolor.Color) (color.Color, bool) {
	n := stdcolor.NRGBAModel.Convert(col).(stdcolor.NRGBA)
	if n.A == 0 {
		return nil, false
	}
	return color.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}, true
}
