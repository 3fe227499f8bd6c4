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
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

// Side identifies one side of a panel.  The values are used as indices
// into [PanelLayout.Borders].
type Side uint8

// These are the four sides of a panel.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Side) UnmarshalText(text []byte) error {
	for i, name := range sideNames {
		if string(text) == name {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown panel side %q", text)
}

// Borders is a set of panel sides.
type Borders uint8

// These are the border sets with a single side, and the set of all sides.
const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether side s is in the set.
func (b Borders) Has(s Side) bool {
	return b&(1<<s) != 0
}

func (b Borders) String() string {
	switch b {
	case BordersNone:
		return "none"
	case BordersAll:
		return "all"
	}
	var parts []string
	for s := Top; s <= Left; s++ {
		if b.Has(s) {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, "|")
}

// MarshalText implements [encoding.TextMarshaler].  The result is a list
// of side names separated by "|", or "all" or "none".
func (b Borders) MarshalText() ([]byte, error) {
	if b&^BordersAll != 0 {
		return nil, fmt.Errorf("invalid border set 0x%02x", uint8(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *Borders) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch s {
	case "all":
		*b = BordersAll
		return nil
	case "none", "":
		*b = BordersNone
		return nil
	}
	var res Borders
	for part := range strings.SplitSeq(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for i, name := range sideNames {
			if part == name {
				res |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown panel side %q", part)
		}
	}
	*b = res
	return nil
}

// cornerSides lists the two sides adjoining each corner type.
var cornerSides = [4][2]Side{
	TopLeft:     {Top, Left},
	TopRight:    {Top, Right},
	BottomRight: {Bottom, Right},
	BottomLeft:  {Bottom, Left},
}

// borderCorners lists the corners at the start and at the end of each
// border.  Horizontal borders run left to right, vertical borders top to
// bottom.
var borderCorners = [4][2]CornerType{
	Top:    {TopLeft, TopRight},
	Right:  {TopRight, BottomRight},
	Bottom: {BottomLeft, BottomRight},
	Left:   {TopLeft, BottomLeft},
}

// Panel is a container with up to four borders, joined by LCARS corners,
// around a content area.
type Panel struct {
	// Borders selects the sides which have a border.  A corner is shown
	// only if both of its sides have a border.
	Borders Borders

	// OutMargin is the distance between the borders and the edges of the
	// panel area.
	OutMargin float64

	// BorderWidthRatio is the width of the left and right borders and
	// BorderHeightRatio the height of the top and bottom borders, both
	// relative to the panel size.
	BorderWidthRatio  float64
	BorderHeightRatio float64

	// CornerInnerRadiusRatio is the radius of the inner corner curves,
	// relative to the border width.
	CornerInnerRadiusRatio float64

	// UseAbsolute makes the three ratios absolute lengths.
	UseAbsolute bool

	// Style is used for the corners and for filled borders.
	Style Style

	// FillBorders fills every border without a widget with a
	// rectangle in the border style.
	FillBorders bool

	// Content is drawn into the content area.
	Content Widget

	// BorderWidgets are drawn into the border areas, indexed by Side.
	BorderWidgets [4]Widget
}

// NewPanel returns a panel with all four borders and filled borders.
func NewPanel() *Panel {
	return &Panel{
		Borders:                BordersAll,
		OutMargin:              5,
		BorderWidthRatio:       0.3,
		BorderHeightRatio:      0.1,
		CornerInnerRadiusRatio: 0.15,
		FillBorders:            true,
	}
}

// PanelCorner is a resolved panel corner.
type PanelCorner struct {
	Enabled  bool
	Corner   Corner
	Geometry CornerGeometry
}

// PanelBorder is a resolved panel border.
type PanelBorder struct {
	Enabled bool
	Area    area.Rect
}

// PanelLayout is the geometry of a panel, resolved for one area.
type PanelLayout struct {
	Corners [4]PanelCorner // indexed by CornerType
	Borders [4]PanelBorder // indexed by Side
	Content area.Rect
}

// BorderSize returns the width of the vertical borders (X) and the height
// of the horizontal borders (Y) for the panel area a.
func (p *Panel) BorderSize(a area.Rect) vec.Vec2 {
	size := vec.Vec2{X: p.BorderWidthRatio, Y: p.BorderHeightRatio}
	if !p.UseAbsolute {
		size = area.MulElem(size, a.Size)
	}
	return size
}

// CornerSize returns the size of the area occupied by each corner.
func (p *Panel) CornerSize(a area.Rect) vec.Vec2 {
	size := p.BorderSize(a)
	small := p.CornerInnerRadiusRatio
	if !p.UseAbsolute {
		small *= size.X
	}
	return MinArea(size.X, size.Y, small)
}

// Layout resolves the panel geometry for the area a.  Corners are resolved
// first, then the borders between them, then the content area.
func (p *Panel) Layout(a area.Rect) PanelLayout {
	var l PanelLayout

	m := p.OutMargin
	cs := p.CornerSize(a)
	slots := [4]vec.Vec2{
		TopLeft:     a.Pos.Add(vec.Vec2{X: m, Y: m}),
		TopRight:    a.Pos.Add(vec.Vec2{X: a.Size.X - cs.X - m, Y: m}),
		BottomRight: a.BottomRight().Sub(cs).Sub(vec.Vec2{X: m, Y: m}),
		BottomLeft:  a.Pos.Add(vec.Vec2{X: m, Y: a.Size.Y - cs.Y - m}),
	}
	for t := TopLeft; t <= BottomLeft; t++ {
		sides := cornerSides[t]
		c := Corner{
			Type:        t,
			WidthRatio:  p.BorderWidthRatio,
			HeightRatio: p.BorderHeightRatio,
			UseAbsolute: p.UseAbsolute,
			Style:       p.Style,
		}
		l.Corners[t] = PanelCorner{
			Enabled:  p.Borders.Has(sides[0]) && p.Borders.Has(sides[1]),
			Corner:   c,
			Geometry: c.Geometry(area.Rect{Pos: slots[t], Size: cs}),
		}
	}

	for s := Top; s <= Left; s++ {
		if !p.Borders.Has(s) {
			continue
		}
		start := &l.Corners[borderCorners[s][0]]
		end := &l.Corners[borderCorners[s][1]]

		var p1, p2 vec.Vec2
		if s == Top || s == Bottom {
			p1 = start.Geometry.TopBar
			if !start.Enabled {
				p1.X -= start.Geometry.Area.Size.X
			}
			p2 = end.Geometry.BottomBar
			if !end.Enabled {
				p2.X += end.Geometry.Area.Size.X
			}
		} else {
			p1 = start.Geometry.LeftColumn
			if !start.Enabled {
				p1.Y -= start.Geometry.Area.Size.Y
			}
			p2 = end.Geometry.RightColumn
			if !end.Enabled {
				p2.Y += end.Geometry.Area.Size.Y
			}
		}
		// overlapping corners leave no room for the border
		size := p2.Sub(p1)
		size.X = max(size.X, 0)
		size.Y = max(size.Y, 0)
		l.Borders[s] = PanelBorder{
			Enabled: true,
			Area:    area.Rect{Pos: p1, Size: size},
		}
	}

	l.Content = p.contentArea(a, &l)
	Logger().Debug("panel layout",
		"area", a, "content", l.Content, "borders", p.Borders)
	return l
}

// contentArea computes the content rectangle from the top-left and the
// bottom-right corner.  Each coordinate is replaced independently by the
// margin line if the corresponding side has no border.
func (p *Panel) contentArea(a area.Rect, l *PanelLayout) area.Rect {
	m := p.OutMargin

	tl := &l.Corners[TopLeft].Geometry
	pos := tl.InnerCurveCenter.Add(tl.Direction.Mul(tl.Small * 0.5))
	if !p.Borders.Has(Top) {
		pos.Y = a.Pos.Y + m
	}
	if !p.Borders.Has(Left) {
		pos.X = a.Pos.X + m
	}

	br := &l.Corners[BottomRight].Geometry
	end := br.InnerCurveCenter.Add(br.Direction.Mul(br.Small * 0.5))
	if !p.Borders.Has(Bottom) {
		end.Y = br.Area.BottomRight().Y
	}
	if !p.Borders.Has(Right) {
		end.X = br.Area.BottomRight().X
	}

	// keep the content inside the panel, even if the corners overlap
	lo, hi := a.TopLeft(), a.BottomRight()
	pos = clampVec(pos, lo, hi)
	end = clampVec(end, pos, hi)
	return area.Span(pos, end)
}

func clampVec(v, lo, hi vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: min(max(v.X, lo.X), max(hi.X, lo.X)),
		Y: min(max(v.Y, lo.Y), max(hi.Y, lo.Y)),
	}
}

// Render implements [Widget].  Enabled corners are drawn first, then the
// borders, then the content.
func (p *Panel) Render(s draw.Surface, a area.Rect) {
	l := p.Layout(a)
	style := p.Style.orDefault()

	for t := TopLeft; t <= BottomLeft; t++ {
		c := &l.Corners[t]
		if c.Enabled {
			c.Geometry.Draw(s, style.Normal, Background)
		}
	}
	for side := Top; side <= Left; side++ {
		b := &l.Borders[side]
		if !b.Enabled {
			continue
		}
		switch {
		case p.BorderWidgets[side] != nil:
			p.BorderWidgets[side].Render(s, b.Area)
		case p.FillBorders && !b.Area.IsEmpty():
			s.FillRoundedRect(b.Area, style.Normal, 0, draw.RoundNone)
		}
	}
	if p.Content != nil && !l.Content.IsEmpty() {
		p.Content.Render(s, l.Content)
	}
}
