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

// Package canvas implements a [draw.Surface] which renders into an
// in-memory RGBA image.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/outline"
	"seehuhn.de/go/lcars/raster"
	"seehuhn.de/go/lcars/text"
)

// Canvas is a [draw.Surface] which draws anti-aliased shapes into an
// [image.RGBA].  The device coordinate system has the origin in the
// top-left corner, with y increasing downwards.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	// Font is used by DrawText.
	Font *text.Font

	r    *raster.Rasterizer
	path draw.Path
	tmp  outline.Data
	src  color.RGBA64
}

var _ draw.Surface = (*Canvas)(nil)

// New allocates a transparent canvas of the given size, using the default
// font for text.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Image: img,
		Font:  text.Default(),
		r:     raster.NewRasterizer(clip),
	}
}

// Bounds returns the canvas area.
func (c *Canvas) Bounds() area.Rect {
	b := c.Image.Bounds()
	return area.New(0, 0, float64(b.Dx()), float64(b.Dy()))
}

// Clear sets every pixel of the canvas to col.
func (c *Canvas) Clear(col color.Color) {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.Image.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
	c.path.Reset()
}

// FillRoundedRect implements [draw.Surface].
func (c *Canvas) FillRoundedRect(r area.Rect, col color.Color, radius float64, flags draw.CornerFlags) {
	if r.IsEmpty() {
		return
	}
	c.tmp.Reset()
	draw.AppendRoundedRect(&c.tmp, r, radius, flags)
	c.fill(&c.tmp, col, false)
}

// FillConvexPolygon implements [draw.Surface].
func (c *Canvas) FillConvexPolygon(pts []vec.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.tmp.Reset()
	draw.AppendPolygon(&c.tmp, pts)
	c.fill(&c.tmp, col, false)
}

// FillConcavePolygon implements [draw.Surface].
func (c *Canvas) FillConcavePolygon(pts []vec.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.tmp.Reset()
	draw.AppendPolygon(&c.tmp, pts)
	c.fill(&c.tmp, col, true)
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

// PathStroke implements [draw.Surface].  Strokes use butt caps and miter
// joins.
func (c *Canvas) PathStroke(col color.Color, thickness float64) {
	defer c.path.Reset()
	if c.path.IsEmpty() || thickness <= 0 {
		return
	}
	c.r.Width = thickness
	c.r.Cap = graphics.LineCapButt
	c.r.Join = graphics.LineJoinMiter
	c.setSource(col)
	c.r.Stroke(c.path.Data().Iter(), c.composite)
}

// PathFillConvex implements [draw.Surface].
func (c *Canvas) PathFillConvex(col color.Color) {
	defer c.path.Reset()
	if c.path.IsEmpty() {
		return
	}
	c.path.Close()
	c.fill(c.path.Data(), col, false)
}

// PathFillConcave implements [draw.Surface].
func (c *Canvas) PathFillConcave(col color.Color) {
	defer c.path.Reset()
	if c.path.IsEmpty() {
		return
	}
	c.path.Close()
	c.fill(c.path.Data(), col, true)
}

// DrawText implements [draw.Surface].  The glyphs are filled as outlines.
func (c *Canvas) DrawText(pos vec.Vec2, size float64, col color.Color, line string) {
	if c.Font == nil || line == "" || size <= 0 {
		return
	}
	c.tmp.Reset()
	c.Font.AppendOutline(&c.tmp, line, pos, size)
	c.fill(&c.tmp, col, false)
}

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = c.WritePNG(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", fname, err)
	}
	return nil
}

func (c *Canvas) fill(p *outline.Data, col color.Color, evenOdd bool) {
	c.setSource(col)
	if evenOdd {
		c.r.FillEvenOdd(p, c.composite)
	} else {
		c.r.FillNonZero(p, c.composite)
	}
}

func (c *Canvas) setSource(col color.Color) {
	c.src = color.RGBA64Model.Convert(col).(color.RGBA64)
}

// composite blends the current source colour over one row of pixels,
// weighted by coverage.
func (c *Canvas) composite(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := float32(c.src.R), float32(c.src.G), float32(c.src.B), float32(c.src.A)
	row := c.Image.Pix[y*c.Image.Stride+4*xMin:]
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		cov = min(cov, 1)
		a := sa * cov / 0xffff
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = blend(px[0], sr*cov, a)
		px[1] = blend(px[1], sg*cov, a)
		px[2] = blend(px[2], sb*cov, a)
		px[3] = blend(px[3], sa*cov, a)
	}
}

// blend computes premultiplied source-over for one channel.  src is in
// 16-bit range, dst in 8-bit range.
func blend(dst uint8, src, alpha float32) uint8 {
	v := src/257 + float32(dst)*(1-alpha)
	return uint8(min(max(v+0.5, 0), 255))
}
