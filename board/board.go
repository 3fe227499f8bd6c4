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

// Package board reads and writes widget boards.
//
// A board is a fixed size screen with a list of widgets, each placed in its
// own rectangle.  Boards are stored as TOML files:
//
//	title = "bridge"
//	width = 640
//	height = 480
//
//	[[widget]]
//	kind = "corner"
//	area = [0, 0, 200, 120]
//	corner = "top-left"
//	style = "main-orange"
//
//	[[widget]]
//	kind = "shape"
//	area = [220, 0, 200, 200]
//	fill_mode = "concave-fill"
//	start = [0.5, 0]
//	  [[widget.segment]]
//	  kind = "line"
//	  end = [1, 1]
//	  [[widget.segment]]
//	  kind = "arc"
//	  radius = 0.25
//	  start_angle = 0
//	  end_angle = 180
package board

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/widget"
)

// These errors are returned, wrapped, when a board refers to an unknown
// name.
var (
	ErrUnknownWidget  = errors.New("unknown widget kind")
	ErrUnknownSegment = errors.New("unknown segment kind")
	ErrUnknownStyle   = errors.New("unknown style")
)

// These are the widget kinds.
const (
	KindCorner  = "corner"
	KindPanel   = "panel"
	KindShape   = "shape"
	KindPolygon = "polygon"
	KindRect    = "rect"
	KindLabel   = "label"
	KindButton  = "button"
)

// Board is a screen full of widgets.
type Board struct {
	Title  string  `toml:"title,omitempty"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Background is the screen colour, in the form accepted by
	// [widget.ParseColor].  The default is black.
	Background string `toml:"background,omitempty"`

	Widgets []*Spec `toml:"widget"`
}

// Spec describes one widget of a board.  Only the fields relevant for the
// given Kind are used.  Pointer fields are optional settings; if they are
// missing, the default of the widget kind is used.
type Spec struct {
	ID   string `toml:"id,omitempty"`
	Kind string `toml:"kind"`

	// Area is x, y, width and height of the widget.  It is ignored for the
	// content and the border widgets of a panel.
	Area [4]float64 `toml:"area,omitzero"`

	// Style names an LCARS style.  Color and TextColor override the normal
	// colour and the text colour of the style.
	Style     string `toml:"style,omitempty"`
	Color     string `toml:"color,omitempty"`
	TextColor string `toml:"text_color,omitempty"`

	// corners and panels
	Corner      widget.CornerType `toml:"corner,omitzero"`
	WidthRatio  *float64          `toml:"width_ratio,omitempty"`
	HeightRatio *float64          `toml:"height_ratio,omitempty"`
	Absolute    bool              `toml:"absolute,omitempty"`

	// panels
	Borders       *widget.Borders  `toml:"borders,omitempty"`
	InnerRadius   *float64         `toml:"inner_radius,omitempty"`
	FillBorders   *bool            `toml:"fill_borders,omitempty"`
	Content       *Spec            `toml:"content,omitempty"`
	BorderWidgets map[string]*Spec `toml:"border,omitempty"`

	// panels, shapes and polygons
	OutMargin *float64 `toml:"out_margin,omitempty"`

	// shapes and polygons
	Start        [2]float64      `toml:"start,omitzero"`
	Segments     []*SegmentSpec  `toml:"segment,omitempty"`
	Points       [][2]float64    `toml:"points,omitempty"`
	FillMode     widget.FillMode `toml:"fill_mode,omitzero"`
	Thickness    *float64        `toml:"thickness,omitempty"`
	UseAreaRatio *bool           `toml:"use_area_ratio,omitempty"`
	Ratio        *float64        `toml:"ratio,omitempty"`

	// rectangles and buttons
	Rounding float64             `toml:"rounding,omitzero"`
	Rounded  []widget.CornerType `toml:"rounded,omitempty"`

	// labels and buttons
	Text      string         `toml:"text,omitempty"`
	Align     area.Alignment `toml:"align,omitzero"`
	Wrapped   bool           `toml:"wrapped,omitempty"`
	Scale     *float64       `toml:"scale,omitempty"`
	Margin    float64        `toml:"margin,omitzero"`
	Threshold int            `toml:"threshold,omitzero"`
}

// SegmentSpec describes one segment of a shape.
type SegmentSpec struct {
	Kind string `toml:"kind"`

	// End is the end point of lines and curves.
	End [2]float64 `toml:"end,omitzero"`

	// Radius, StartAngle and EndAngle describe arcs.  Angles are in
	// degrees.
	Radius     float64 `toml:"radius,omitzero"`
	StartAngle float64 `toml:"start_angle,omitzero"`
	EndAngle   float64 `toml:"end_angle,omitzero"`

	// Control1 and Control2 are the control points of Bézier curves.  If
	// Cubic is false, Control2 is ignored.
	Control1 [2]float64 `toml:"control1,omitzero"`
	Control2 [2]float64 `toml:"control2,omitzero"`
	Cubic    bool       `toml:"cubic,omitempty"`
}

// Read decodes a board from TOML.  Keys which do not correspond to a board
// setting are reported as an error.
func Read(r io.Reader) (*Board, error) {
	b := &Board{}
	md, err := toml.NewDecoder(r).Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("decode board: unknown keys %s", strings.Join(names, ", "))
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("decode board: invalid size %gx%g", b.Width, b.Height)
	}
	return b, nil
}

// Load reads a board from the named file.
func Load(fname string) (*Board, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	b, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return b, nil
}

// AssignIDs gives a random ID to every top-level widget which has none.
func (b *Board) AssignIDs() {
	for _, sp := range b.Widgets {
		if sp.ID == "" {
			sp.ID = uuid.NewString()
		}
	}
}

// Write encodes the board as TOML.  Widgets without an ID are assigned one
// first.
func (b *Board) Write(w io.Writer) error {
	b.AssignIDs()
	if err := toml.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

// Save writes the board to the named file.
func (b *Board) Save(fname string) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := fd.Close(); err == nil {
			err = e
		}
	}()
	return b.Write(fd)
}

// Rect returns the widget area as a rectangle.
func (sp *Spec) Rect() area.Rect {
	return area.New(sp.Area[0], sp.Area[1], sp.Area[2], sp.Area[3])
}

// SetRect sets the widget area.
func (sp *Spec) SetRect(r area.Rect) {
	sp.Area = [4]float64{r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y}
}

// Float returns a pointer to x, for the optional settings of a [Spec].
func Float(x float64) *float64 {
	return &x
}

// Bool returns a pointer to x, for the optional settings of a [Spec].
func Bool(x bool) *bool {
	return &x
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	res := *b
	if b.Widgets != nil {
		res.Widgets = make([]*Spec, len(b.Widgets))
		for i, sp := range b.Widgets {
			res.Widgets[i] = sp.Clone()
		}
	}
	return &res
}

// Clone returns a deep copy of sp.
func (sp *Spec) Clone() *Spec {
	if sp == nil {
		return nil
	}
	res := *sp
	res.WidthRatio = clonePtr(sp.WidthRatio)
	res.HeightRatio = clonePtr(sp.HeightRatio)
	res.Borders = clonePtr(sp.Borders)
	res.InnerRadius = clonePtr(sp.InnerRadius)
	res.FillBorders = clonePtr(sp.FillBorders)
	res.OutMargin = clonePtr(sp.OutMargin)
	res.Thickness = clonePtr(sp.Thickness)
	res.UseAreaRatio = clonePtr(sp.UseAreaRatio)
	res.Ratio = clonePtr(sp.Ratio)
	res.Scale = clonePtr(sp.Scale)
	res.Content = sp.Content.Clone()
	if sp.BorderWidgets != nil {
		res.BorderWidgets = make(map[string]*Spec, len(sp.BorderWidgets))
		for side, bs := range sp.BorderWidgets {
			res.BorderWidgets[side] = bs.Clone()
		}
	}
	if sp.Segments != nil {
		res.Segments = make([]*SegmentSpec, len(sp.Segments))
		for i, ss := range sp.Segments {
			c := *ss
			res.Segments[i] = &c
		}
	}
	res.Points = slices.Clone(sp.Points)
	res.Rounded = slices.Clone(sp.Rounded)
	return &res
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
