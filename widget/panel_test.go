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
	"math"
	"testing"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

// absolutePanel has 40 wide columns, 20 high bars and inner corner curves
// of radius 10.
func absolutePanel(b Borders) *Panel {
	return &Panel{
		Borders:                b,
		OutMargin:              5,
		BorderWidthRatio:       40,
		BorderHeightRatio:      20,
		CornerInnerRadiusRatio: 10,
		UseAbsolute:            true,
		FillBorders:            true,
	}
}

func TestPanelLayout(t *testing.T) {
	p := absolutePanel(BordersAll)
	l := p.Layout(area.New(0, 0, 400, 300))

	for typ := TopLeft; typ <= BottomLeft; typ++ {
		c := l.Corners[typ]
		if !c.Enabled {
			t.Errorf("%s corner disabled", typ)
		}
		if !near(c.Geometry.Area.Size, v(50, 30)) {
			t.Errorf("%s corner size %v", typ, c.Geometry.Area.Size)
		}
		if c.Geometry.Small != 10 {
			t.Errorf("%s inner radius %g", typ, c.Geometry.Small)
		}
	}

	borders := [4]area.Rect{
		Top:    area.New(55, 5, 290, 20),
		Right:  area.New(355, 35, 40, 230),
		Bottom: area.New(55, 275, 290, 20),
		Left:   area.New(5, 35, 40, 230),
	}
	for s := Top; s <= Left; s++ {
		b := l.Borders[s]
		if !b.Enabled || !nearRect(b.Area, borders[s]) {
			t.Errorf("%s border %v, want %v", s, b.Area, borders[s])
		}
	}

	d := 5 / math.Sqrt2
	want := area.Span(v(55-d, 35-d), v(345+d, 265+d))
	if !nearRect(l.Content, want) {
		t.Errorf("content %v, want %v", l.Content, want)
	}
	for s := Top; s <= Left; s++ {
		if overlaps(l.Content, l.Borders[s].Area) {
			t.Errorf("content overlaps %s border", s)
		}
	}
}

func overlaps(a, b area.Rect) bool {
	return a.Pos.X < b.Pos.X+b.Size.X && b.Pos.X < a.Pos.X+a.Size.X &&
		a.Pos.Y < b.Pos.Y+b.Size.Y && b.Pos.Y < a.Pos.Y+a.Size.Y
}

func TestPanelPartialBorders(t *testing.T) {
	p := absolutePanel(BorderTop | BorderLeft)
	l := p.Layout(area.New(0, 0, 400, 300))

	for typ := TopLeft; typ <= BottomLeft; typ++ {
		if l.Corners[typ].Enabled != (typ == TopLeft) {
			t.Errorf("%s corner enabled=%t", typ, l.Corners[typ].Enabled)
		}
	}
	if l.Borders[Right].Enabled || l.Borders[Bottom].Enabled {
		t.Error("unexpected right or bottom border")
	}

	// borders extend over the slots of disabled corners
	if !nearRect(l.Borders[Top].Area, area.New(55, 5, 340, 20)) {
		t.Errorf("top border %v", l.Borders[Top].Area)
	}
	if !nearRect(l.Borders[Left].Area, area.New(5, 35, 40, 260)) {
		t.Errorf("left border %v", l.Borders[Left].Area)
	}

	d := 5 / math.Sqrt2
	want := area.Span(v(55-d, 35-d), v(395, 295))
	if !nearRect(l.Content, want) {
		t.Errorf("content %v, want %v", l.Content, want)
	}
}

func TestPanelNoBorders(t *testing.T) {
	a := area.New(10, 20, 200, 100)
	for _, p := range []*Panel{absolutePanel(BordersNone), {Borders: BordersNone, OutMargin: 5, BorderWidthRatio: 0.3, BorderHeightRatio: 0.1, CornerInnerRadiusRatio: 0.15}} {
		l := p.Layout(a)
		if !nearRect(l.Content, a.Inset(5)) {
			t.Errorf("content %v, want %v", l.Content, a.Inset(5))
		}
	}
}

func TestPanelContentContained(t *testing.T) {
	areas := []area.Rect{
		area.New(0, 0, 400, 300),
		area.New(-50, 10, 1000, 40),
		area.New(3, 3, 30, 600),
		area.New(0, 0, 12, 12),
	}
	panels := []func(Borders) *Panel{
		absolutePanel,
		func(b Borders) *Panel {
			p := NewPanel()
			p.Borders = b
			return p
		},
	}
	for _, a := range areas {
		for _, mk := range panels {
			for b := BordersNone; b <= BordersAll; b++ {
				l := mk(b).Layout(a)
				if !a.Contains(l.Content) {
					t.Errorf("%v, borders %s: content %v outside", a, b, l.Content)
				}
				if l.Content.Size.X < 0 || l.Content.Size.Y < 0 {
					t.Errorf("%v, borders %s: negative content size %v", a, b, l.Content.Size)
				}
			}
		}
	}
}

func TestPanelOverlappingCorners(t *testing.T) {
	p := NewPanel()
	p.BorderWidthRatio = 1
	p.BorderHeightRatio = 1
	for b := BordersNone; b <= BordersAll; b++ {
		p.Borders = b
		l := p.Layout(area.New(0, 0, 300, 200))
		for side := Top; side <= Left; side++ {
			size := l.Borders[side].Area.Size
			if size.X < 0 || size.Y < 0 {
				t.Errorf("borders %s: %s border has size %v", b, side, size)
			}
		}
	}
}

func TestPanelRender(t *testing.T) {
	p := absolutePanel(BordersAll)
	p.Content = &Rect{}
	top := &Rect{Rounding: 1, Corners: draw.RoundAll}
	p.BorderWidgets[Top] = top
	a := area.New(0, 0, 400, 300)
	l := &draw.List{}
	p.Render(l, a)

	// 4 corners with two fills each, 4 borders, the content
	if len(l.Commands) != 13 {
		t.Fatalf("%d commands, want 13", len(l.Commands))
	}
	layout := p.Layout(a)
	topFill := l.Commands[8].(draw.FillRect)
	if topFill.Rect != layout.Borders[Top].Area || topFill.Flags != draw.RoundAll {
		t.Errorf("top border widget drawn as %+v", topFill)
	}
	content := l.Commands[12].(draw.FillRect)
	if content.Rect != layout.Content {
		t.Errorf("content drawn in %v, want %v", content.Rect, layout.Content)
	}
}

func TestPanelRenderNoFill(t *testing.T) {
	p := absolutePanel(BordersAll)
	p.FillBorders = false
	l := &draw.List{}
	p.Render(l, area.New(0, 0, 400, 300))
	if len(l.Commands) != 8 {
		t.Errorf("%d commands, want only the 8 corner fills", len(l.Commands))
	}
}

func TestBordersText(t *testing.T) {
	cases := []struct {
		b    Borders
		text string
	}{
		{BordersAll, "all"},
		{BordersNone, "none"},
		{BorderTop | BorderLeft, "top|left"},
		{BorderRight | BorderBottom, "right|bottom"},
	}
	for _, c := range cases {
		got, err := c.b.MarshalText()
		if err != nil || string(got) != c.text {
			t.Errorf("%d: got %q, %v", c.b, got, err)
		}
		var back Borders
		if err := back.UnmarshalText([]byte(c.text)); err != nil || back != c.b {
			t.Errorf("%q: got %v, %v", c.text, back, err)
		}
	}

	var b Borders
	if err := b.UnmarshalText([]byte("left | top")); err != nil || b != BorderTop|BorderLeft {
		t.Errorf("got %v, %v", b, err)
	}
	if err := b.UnmarshalText([]byte("top|middle")); err == nil {
		t.Error("unknown side accepted")
	}
}
