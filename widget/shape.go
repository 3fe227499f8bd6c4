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

// SegmentKind identifies the type of a [Segment].
type SegmentKind uint8

// These are the segment kinds.
const (
	LineKind SegmentKind = iota
	ArcKind
	BezierKind
)

var segmentKindNames = [...]string{"line", "arc", "bezier"}

func (k SegmentKind) String() string {
	if int(k) < len(segmentKindNames) {
		return segmentKindNames[k]
	}
	return fmt.Sprintf("SegmentKind(%d)", uint8(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k SegmentKind) MarshalText() ([]byte, error) {
	if int(k) >= len(segmentKindNames) {
		return nil, fmt.Errorf("invalid segment kind %d", uint8(k))
	}
	return []byte(segmentKindNames[k]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *SegmentKind) UnmarshalText(text []byte) error {
	for i, name := range segmentKindNames {
		if string(text) == name {
			*k = SegmentKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown segment kind %q", text)
}

// Segment is one piece of the outline of a [Shape].  The implementations
// are [LineSegment], [ArcSegment] and [BezierSegment].
//
// Every segment starts at the end point of the previous segment.  All
// points are relative to the shape area, with (0,0) the top-left and (1,1)
// the bottom-right corner.
type Segment interface {
	Kind() SegmentKind
	isSegment()
}

// LineSegment is a straight line to End.
type LineSegment struct {
	End vec.Vec2
}

// ArcSegment is a circular arc.  The centre of the circle is derived from
// the start point, so that the arc always continues the path.
type ArcSegment struct {
	// Radius is relative to the smaller side of the area.
	Radius float64

	// StartAngle and EndAngle are in degrees.  0° points along the +x
	// axis, 90° points down.
	StartAngle float64
	EndAngle   float64
}

// BezierSegment is a quadratic Bézier curve, or a cubic one if Cubic is
// set.  Control2 is only used for cubic curves.
type BezierSegment struct {
	Control1 vec.Vec2
	Control2 vec.Vec2
	End      vec.Vec2
	Cubic    bool
}

// Kind implements [Segment].
func (LineSegment) Kind() SegmentKind { return LineKind }

// Kind implements [Segment].
func (ArcSegment) Kind() SegmentKind { return ArcKind }

// Kind implements [Segment].
func (BezierSegment) Kind() SegmentKind { return BezierKind }

func (LineSegment) isSegment()   {}
func (ArcSegment) isSegment()    {}
func (BezierSegment) isSegment() {}

func unitVector(deg float64) vec.Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: cos, Y: sin}
}

// Circle returns the absolute centre and radius of the arc, when it
// starts at the absolute point start in the area a.
func (s ArcSegment) Circle(a area.Rect, start vec.Vec2) (center vec.Vec2, radius float64) {
	radius = s.Radius * area.MinElem(a.Size)
	center = start.Sub(unitVector(s.StartAngle).Mul(radius))
	return center, radius
}

// Shape is a closed outline built from a chain of segments.
type Shape struct {
	// Start is the relative start point of the outline.
	Start vec.Vec2

	Segments []Segment

	FillMode FillMode

	// Thickness is the line width used with the Stroke fill mode.
	Thickness float64

	// UseAreaRatio, Ratio and OutMargin select the inner area in which the
	// shape is drawn: the largest rectangle of aspect ratio Ratio (or of
	// the widget area's aspect ratio, if UseAreaRatio is set) inside the
	// widget area, after removing OutMargin on every side.  A Ratio of 0
	// uses the whole area.
	UseAreaRatio bool
	Ratio        float64
	OutMargin    float64

	Style Style
	State State
}

// Area returns the inner area of the shape within a.
func (sh *Shape) Area(a area.Rect) area.Rect {
	return innerArea(a, sh.UseAreaRatio, sh.Ratio, sh.OutMargin)
}

// Trace returns the absolute start point of the outline, followed by the
// end point of every segment, for the widget area a.
func (sh *Shape) Trace(a area.Rect) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(sh.Segments)+1)
	sh.walk(sh.Area(a), nil, func(p vec.Vec2) {
		res = append(res, p)
	})
	return res
}

// walk issues the path commands for the segment chain in the inner area
// ia.  If s is nil, only the points are reported.  visit is called with
// the start point and with the end point of every segment.
func (sh *Shape) walk(ia area.Rect, s draw.Surface, visit func(vec.Vec2)) {
	prev := ia.InnerPoint(sh.Start)
	if s != nil {
		s.PathLineTo(prev)
	}
	if visit != nil {
		visit(prev)
	}

	for _, seg := range sh.Segments {
		switch seg := seg.(type) {
		case LineSegment:
			prev = ia.InnerPoint(seg.End)
			if s != nil {
				s.PathLineTo(prev)
			}
		case ArcSegment:
			center, r := seg.Circle(ia, prev)
			if s != nil {
				s.PathArcTo(center, r, seg.StartAngle*math.Pi/180, seg.EndAngle*math.Pi/180)
			}
			prev = center.Add(unitVector(seg.EndAngle).Mul(r))
		case BezierSegment:
			end := ia.InnerPoint(seg.End)
			if s != nil {
				c1 := ia.InnerPoint(seg.Control1)
				if seg.Cubic {
					s.PathBezierCubicTo(c1, ia.InnerPoint(seg.Control2), end)
				} else {
					s.PathBezierQuadraticTo(c1, end)
				}
			}
			prev = end
		}
		if visit != nil {
			visit(prev)
		}
	}
}

// Render implements [Widget].  A shape without segments draws nothing.
func (sh *Shape) Render(s draw.Surface, a area.Rect) {
	if len(sh.Segments) == 0 {
		return
	}
	if !sh.FillMode.IsValid() {
		Logger().Warn("shape: invalid fill mode, not drawn", "fill_mode", uint8(sh.FillMode))
		return
	}

	ia := sh.Area(a)
	col := sh.Style.orDefault().Color(sh.State)
	sh.walk(ia, s, nil)
	finishPath(s, sh.FillMode, col, sh.Thickness, ia.InnerPoint(sh.Start))
}

// finishPath closes and paints the current path of s.
func finishPath(s draw.Surface, mode FillMode, col color.Color, thickness float64, start vec.Vec2) {
	switch mode {
	case Stroke:
		s.PathLineTo(start)
		s.PathStroke(col, thickness)
	case ConvexFill:
		s.PathFillConvex(col)
	case ConcaveFill:
		s.PathFillConcave(col)
	}
}
