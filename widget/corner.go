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
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

// CornerType selects which corner of its area a [Corner] occupies.
type CornerType uint8

// These are the four corner types.  The values are used as indices into
// [PanelLayout.Corners].
const (
	TopLeft CornerType = iota
	TopRight
	BottomRight
	BottomLeft
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func (t CornerType) String() string {
	if int(t) < len(cornerNames) {
		return cornerNames[t]
	}
	return fmt.Sprintf("CornerType(%d)", uint8(t))
}

// MarshalText implements [encoding.TextMarshaler].
func (t CornerType) MarshalText() ([]byte, error) {
	if int(t) >= len(cornerNames) {
		return nil, fmt.Errorf("invalid corner type %d", uint8(t))
	}
	return []byte(cornerNames[t]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *CornerType) UnmarshalText(text []byte) error {
	for i, name := range cornerNames {
		if string(text) == name {
			*t = CornerType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown corner type %q", text)
}

// cornerCase holds the per-type constants of a corner.  All positions are
// relative to the corner's area; shifts are multiplied element-wise by
// the corner size.
type cornerCase struct {
	flag      draw.CornerFlags
	dir       vec.Vec2 // away from the rounded corner, not normalised
	pivot     vec.Vec2 // the rounded corner of the area
	bar       vec.Vec2 // top end of the edge where the bar continues
	barShift  vec.Vec2
	col       vec.Vec2 // left end of the edge where the column continues
	colShift  vec.Vec2
	cutOrigin vec.Vec2 // start of the inner cut-out, in units of the size
}

var cornerCases = [4]cornerCase{
	TopLeft: {
		flag:      draw.RoundTopLeft,
		dir:       vec.Vec2{X: -1, Y: -1},
		pivot:     vec.Vec2{X: 0, Y: 0},
		bar:       vec.Vec2{X: 1, Y: 0},
		col:       vec.Vec2{X: 0, Y: 1},
		cutOrigin: vec.Vec2{X: 1, Y: 1},
	},
	TopRight: {
		flag:      draw.RoundTopRight,
		dir:       vec.Vec2{X: 1, Y: -1},
		pivot:     vec.Vec2{X: 1, Y: 0},
		bar:       vec.Vec2{X: 0, Y: 0},
		col:       vec.Vec2{X: 1, Y: 1},
		colShift:  vec.Vec2{X: -1, Y: 0},
		cutOrigin: vec.Vec2{X: 0, Y: 1},
	},
	BottomRight: {
		flag:      draw.RoundBottomRight,
		dir:       vec.Vec2{X: 1, Y: 1},
		pivot:     vec.Vec2{X: 1, Y: 1},
		bar:       vec.Vec2{X: 0, Y: 1},
		barShift:  vec.Vec2{X: 0, Y: -1},
		col:       vec.Vec2{X: 1, Y: 0},
		colShift:  vec.Vec2{X: -1, Y: 0},
		cutOrigin: vec.Vec2{X: 0, Y: 0},
	},
	BottomLeft: {
		flag:      draw.RoundBottomLeft,
		dir:       vec.Vec2{X: -1, Y: 1},
		pivot:     vec.Vec2{X: 0, Y: 1},
		bar:       vec.Vec2{X: 1, Y: 1},
		barShift:  vec.Vec2{X: 0, Y: -1},
		col:       vec.Vec2{X: 0, Y: 0},
		cutOrigin: vec.Vec2{X: 1, Y: 0},
	},
}

// Corner is a 90 degree LCARS elbow which joins a horizontal bar and a
// vertical column.  The bar height and the column width are given as
// ratios of the corner's area, or as absolute lengths.
type Corner struct {
	Type CornerType

	// WidthRatio is the width of the column, relative to the area width.
	WidthRatio float64

	// HeightRatio is the height of the bar, relative to the area height.
	HeightRatio float64

	// UseAbsolute makes WidthRatio and HeightRatio absolute lengths.
	UseAbsolute bool

	Style Style
	State State
}

// NewCorner returns a corner of the given type which uses half of its
// area for the column and for the bar.
func NewCorner(t CornerType) *Corner {
	return &Corner{Type: t, WidthRatio: 0.5, HeightRatio: 0.5}
}

// CornerGeometry describes a corner, resolved for a specific area.
type CornerGeometry struct {
	Type CornerType
	Area area.Rect

	// Size is the column width (X) and the bar height (Y).
	Size vec.Vec2

	// Small is the radius of the inner curve, Big the radius of the outer
	// curve.
	Small, Big float64

	// Direction is the unit diagonal pointing away from the corner.
	Direction vec.Vec2

	// Pivot is the rounded corner of the area.
	Pivot vec.Vec2

	// TopBar and BottomBar are the end points of the edge where a
	// horizontal bar continues the corner.  LeftColumn and RightColumn are
	// the end points of the edge where a vertical column continues it.
	TopBar, BottomBar       vec.Vec2
	LeftColumn, RightColumn vec.Vec2

	// InnerCurveCenter is the centre of the circle of the inner curve.
	InnerCurveCenter vec.Vec2

	// Cut is the rectangle of the inner cut-out.
	Cut area.Rect
}

// Geometry resolves the corner for the area a.
func (c *Corner) Geometry(a area.Rect) CornerGeometry {
	size := vec.Vec2{X: c.WidthRatio, Y: c.HeightRatio}
	if !c.UseAbsolute {
		size = area.MulElem(size, a.Size)
	}

	rest := a.Size.Sub(size)
	small := max(area.MinElem(rest), 0)
	big := small + area.MinElem(size)

	cc := &cornerCases[c.Type%4]
	g := CornerGeometry{
		Type:      c.Type % 4,
		Area:      a,
		Size:      size,
		Small:     small,
		Big:       big,
		Direction: cc.dir.Mul(1 / math.Sqrt2),
		Pivot:     a.InnerPoint(cc.pivot),
	}
	g.TopBar = a.InnerPoint(cc.bar).Add(area.MulElem(cc.barShift, size))
	g.BottomBar = g.TopBar.Add(vec.Vec2{Y: size.Y})
	g.LeftColumn = a.InnerPoint(cc.col).Add(area.MulElem(cc.colShift, size))
	g.RightColumn = g.LeftColumn.Add(vec.Vec2{X: size.X})
	g.InnerCurveCenter = g.Pivot.Add(area.MulElem(cc.dir.Mul(-1), size.Add(vec.Vec2{X: small, Y: small})))
	g.Cut = area.Rect{Pos: a.Pos.Add(area.MulElem(cc.cutOrigin, size)), Size: rest}
	return g
}

// Flag returns the rounding flag for the corner of a rectangle which
// corresponds to t.
func (t CornerType) Flag() draw.CornerFlags {
	return cornerCases[t%4].flag
}

// Flag returns the rounding flag of the corner's own rounded corner.
func (g *CornerGeometry) Flag() draw.CornerFlags {
	return g.Type.Flag()
}

// Draw fills the corner: the whole area with the outer curve, then the
// inner cut-out in the background colour.  The cut-out is omitted if the
// inner radius is zero.
func (g *CornerGeometry) Draw(s draw.Surface, fill, background color.Color) {
	flag := g.Flag()
	s.FillRoundedRect(g.Area, fill, g.Big, flag)
	if g.Small <= 0 {
		return
	}
	s.FillRoundedRect(g.Cut, background, g.Small, flag)
}

// Render implements [Widget].
func (c *Corner) Render(s draw.Surface, a area.Rect) {
	g := c.Geometry(a)
	g.Draw(s, c.Style.orDefault().Color(c.State), Background)
}

// MinArea returns the area size for which a corner with the given column
// width and bar height has an inner curve of radius small.
func MinArea(width, height, small float64) vec.Vec2 {
	return vec.Vec2{X: width + small, Y: height + small}
}
