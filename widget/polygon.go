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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

// Polygon is a polygon given by its vertices, in coordinates relative to
// the polygon's inner area.  Vertices should be listed in clockwise order
// on screen.
type Polygon struct {
	Points    []vec.Vec2
	FillMode  FillMode
	Thickness float64

	// UseAreaRatio, Ratio and OutMargin select the inner area, see
	// [Shape].
	UseAreaRatio bool
	Ratio        float64
	OutMargin    float64

	Style Style
	State State
}

// NewPolygon returns an empty stroked polygon which uses the aspect
// ratio of its widget area.
func NewPolygon() *Polygon {
	return &Polygon{
		FillMode:     Stroke,
		Thickness:    5,
		UseAreaRatio: true,
		Ratio:        1,
		OutMargin:    5,
	}
}

// Vertices returns the absolute vertex positions for the widget area a.
func (p *Polygon) Vertices(a area.Rect) []vec.Vec2 {
	ia := innerArea(a, p.UseAreaRatio, p.Ratio, p.OutMargin)
	res := make([]vec.Vec2, len(p.Points))
	for i, pt := range p.Points {
		res[i] = ia.InnerPoint(pt)
	}
	return res
}

// Render implements [Widget].  Polygons with fewer than three vertices
// are not drawn.
func (p *Polygon) Render(s draw.Surface, a area.Rect) {
	if len(p.Points) < 3 {
		return
	}
	if !p.FillMode.IsValid() {
		Logger().Warn("polygon: invalid fill mode, not drawn", "fill_mode", uint8(p.FillMode))
		return
	}

	pts := p.Vertices(a)
	col := p.Style.orDefault().Color(p.State)
	switch p.FillMode {
	case ConvexFill:
		s.FillConvexPolygon(pts, col)
	case ConcaveFill:
		s.FillConcavePolygon(pts, col)
	case Stroke:
		for _, pt := range pts {
			s.PathLineTo(pt)
		}
		finishPath(s, Stroke, col, p.Thickness, pts[0])
	}
}

// Rect is a filled rectangle with optionally rounded corners.
type Rect struct {
	// Rounding scales the corner radius between 0 (square corners) and 1
	// (half the smaller side of the rectangle).
	Rounding float64

	// Corners selects the corners which are rounded.
	Corners draw.CornerFlags

	Style Style
	State State
}

// Radius returns the corner radius used in the area a.
func (r *Rect) Radius(a area.Rect) float64 {
	t := min(max(r.Rounding, 0), 1)
	return area.MinElem(a.Size) * 0.5 * t
}

// Render implements [Widget].
func (r *Rect) Render(s draw.Surface, a area.Rect) {
	s.FillRoundedRect(a, r.Style.orDefault().Color(r.State), r.Radius(a), r.Corners)
}
