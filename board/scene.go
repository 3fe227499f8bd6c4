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

package board

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
	"seehuhn.de/go/lcars/text"
	"seehuhn.de/go/lcars/widget"
)

// Scene is a board with all widgets constructed.  Labels keep their font
// size state between calls to [Scene.Render], so a scene should be kept
// alive for as long as the board is shown.
type Scene struct {
	Size       vec.Vec2
	Background color.NRGBA

	items []item
}

type item struct {
	id   string
	area area.Rect
	w    widget.Widget
}

// Compile constructs the widgets of the board.  Labels measure their text
// with m, or with the default font if m is nil.
func (b *Board) Compile(m text.Measurer) (*Scene, error) {
	sc := &Scene{
		Size:       vec.Vec2{X: b.Width, Y: b.Height},
		Background: widget.Background,
	}
	if b.Background != "" {
		col, err := widget.ParseColor(b.Background)
		if err != nil {
			return nil, fmt.Errorf("board background: %w", err)
		}
		sc.Background = col
	}

	for i, sp := range b.Widgets {
		w, err := sp.Build(m)
		if err != nil {
			name := sp.ID
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("widget %s: %w", name, err)
		}
		sc.items = append(sc.items, item{id: sp.ID, area: sp.Rect(), w: w})
	}
	widget.Logger().Debug("board compiled", "title", b.Title, "widgets", len(sc.items))
	return sc, nil
}

// Render draws one frame of the scene: the background, then every widget
// in board order.
func (sc *Scene) Render(s draw.Surface) {
	bg := area.Rect{Size: sc.Size}
	s.FillRoundedRect(bg, sc.Background, 0, draw.RoundNone)
	for _, it := range sc.items {
		it.w.Render(s, it.area)
	}
}

// Widget returns the widget with the given ID, or nil if there is none.
func (sc *Scene) Widget(id string) widget.Widget {
	for _, it := range sc.items {
		if it.id == id {
			return it.w
		}
	}
	return nil
}

// Len returns the number of widgets in the scene.
func (sc *Scene) Len() int {
	return len(sc.items)
}

// style resolves the style of sp.  If no style is named, def is used.
func (sp *Spec) style(def string) (widget.Style, error) {
	name := sp.Style
	if name == "" {
		name = def
	}
	st, ok := widget.LCARS(name)
	if !ok {
		return widget.Style{}, fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}
	if sp.Color != "" {
		col, err := widget.ParseColor(sp.Color)
		if err != nil {
			return widget.Style{}, err
		}
		st.Normal = col
	}
	if sp.TextColor != "" {
		col, err := widget.ParseColor(sp.TextColor)
		if err != nil {
			return widget.Style{}, err
		}
		st.Text = col
	}
	return st, nil
}

func orFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func orBool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func toVec(p [2]float64) vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}

// Build constructs the widget described by sp.
func (sp *Spec) Build(m text.Measurer) (widget.Widget, error) {
	def := "common"
	if sp.Kind == KindLabel {
		def = "external-label"
	}
	style, err := sp.style(def)
	if err != nil {
		return nil, err
	}

	switch sp.Kind {
	case KindCorner:
		c := widget.NewCorner(sp.Corner)
		c.WidthRatio = orFloat(sp.WidthRatio, c.WidthRatio)
		c.HeightRatio = orFloat(sp.HeightRatio, c.HeightRatio)
		c.UseAbsolute = sp.Absolute
		c.Style = style
		return c, nil

	case KindPanel:
		p := widget.NewPanel()
		if sp.Borders != nil {
			p.Borders = *sp.Borders
		}
		p.OutMargin = orFloat(sp.OutMargin, p.OutMargin)
		p.BorderWidthRatio = orFloat(sp.WidthRatio, p.BorderWidthRatio)
		p.BorderHeightRatio = orFloat(sp.HeightRatio, p.BorderHeightRatio)
		p.CornerInnerRadiusRatio = orFloat(sp.InnerRadius, p.CornerInnerRadiusRatio)
		p.UseAbsolute = sp.Absolute
		p.FillBorders = orBool(sp.FillBorders, p.FillBorders)
		p.Style = style
		if sp.Content != nil {
			p.Content, err = sp.Content.Build(m)
			if err != nil {
				return nil, fmt.Errorf("panel content: %w", err)
			}
		}
		for name, bs := range sp.BorderWidgets {
			var side widget.Side
			if err := side.UnmarshalText([]byte(name)); err != nil {
				return nil, err
			}
			p.BorderWidgets[side], err = bs.Build(m)
			if err != nil {
				return nil, fmt.Errorf("%s border: %w", name, err)
			}
		}
		return p, nil

	case KindShape:
		sh := &widget.Shape{
			Start:        toVec(sp.Start),
			FillMode:     sp.FillMode,
			Thickness:    orFloat(sp.Thickness, 5),
			UseAreaRatio: orBool(sp.UseAreaRatio, true),
			Ratio:        orFloat(sp.Ratio, 1),
			OutMargin:    orFloat(sp.OutMargin, 5),
			Style:        style,
		}
		for i, ss := range sp.Segments {
			seg, err := ss.Build()
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i+1, err)
			}
			sh.Segments = append(sh.Segments, seg)
		}
		return sh, nil

	case KindPolygon:
		p := widget.NewPolygon()
		for _, pt := range sp.Points {
			p.Points = append(p.Points, toVec(pt))
		}
		p.FillMode = sp.FillMode
		p.Thickness = orFloat(sp.Thickness, p.Thickness)
		p.UseAreaRatio = orBool(sp.UseAreaRatio, p.UseAreaRatio)
		p.Ratio = orFloat(sp.Ratio, p.Ratio)
		p.OutMargin = orFloat(sp.OutMargin, p.OutMargin)
		p.Style = style
		return p, nil

	case KindRect:
		r := &widget.Rect{Rounding: sp.Rounding, Style: style}
		for _, t := range sp.Rounded {
			r.Corners |= t.Flag()
		}
		return r, nil

	case KindLabel:
		l := widget.NewLabel(sp.Text)
		l.Align = sp.Align
		l.Wrapped = sp.Wrapped
		l.Scale = orFloat(sp.Scale, l.Scale)
		l.Margin = sp.Margin
		l.Style = style
		l.Stabilizer.Threshold = sp.Threshold
		if m != nil {
			l.Measurer = m
		}
		return l, nil

	case KindButton:
		b := widget.NewButton(sp.Text)
		b.Align = sp.Align
		b.Wrapped = sp.Wrapped
		b.Scale = orFloat(sp.Scale, b.Scale)
		b.Margin = sp.Margin
		b.Rounding = sp.Rounding
		for _, t := range sp.Rounded {
			b.Corners |= t.Flag()
		}
		b.Style = style
		b.Stabilizer.Threshold = sp.Threshold
		if m != nil {
			b.Measurer = m
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownWidget, sp.Kind)
}

// Build constructs the segment described by ss.
func (ss *SegmentSpec) Build() (widget.Segment, error) {
	var kind widget.SegmentKind
	if err := kind.UnmarshalText([]byte(ss.Kind)); err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownSegment, ss.Kind)
	}
	switch kind {
	case widget.LineKind:
		return widget.LineSegment{End: toVec(ss.End)}, nil
	case widget.ArcKind:
		return widget.ArcSegment{
			Radius:     ss.Radius,
			StartAngle: ss.StartAngle,
			EndAngle:   ss.EndAngle,
		}, nil
	default: // widget.BezierKind
		return widget.BezierSegment{
			Control1: toVec(ss.Control1),
			Control2: toVec(ss.Control2),
			End:      toVec(ss.End),
			Cubic:    ss.Cubic,
		}, nil
	}
}
