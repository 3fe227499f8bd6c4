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

package draw

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lcars/area"
)

// Command is one recorded drawing operation.
type Command interface {
	isCommand()
}

// FillRect records a call to FillRoundedRect.
type FillRect struct {
	Rect   area.Rect
	Color  color.Color
	Radius float64
	Flags  CornerFlags
}

// FillPolygon records a call to FillConvexPolygon or FillConcavePolygon.
type FillPolygon struct {
	Points []vec.Vec2
	Color  color.Color
	Convex bool
}

// LineTo records a call to PathLineTo.
type LineTo struct {
	P vec.Vec2
}

// ArcTo records a call to PathArcTo.
type ArcTo struct {
	Center     vec.Vec2
	Radius     float64
	AMin, AMax float64
}

// QuadTo records a call to PathBezierQuadraticTo.
type QuadTo struct {
	Ctrl, End vec.Vec2
}

// CubeTo records a call to PathBezierCubicTo.
type CubeTo struct {
	C1, C2, End vec.Vec2
}

// Stroke records a call to PathStroke.
type Stroke struct {
	Color     color.Color
	Thickness float64
}

// FillPath records a call to PathFillConvex or PathFillConcave.
type FillPath struct {
	Color  color.Color
	Convex bool
}

// Text records a call to DrawText.
type Text struct {
	Pos   vec.Vec2
	Size  float64
	Color color.Color
	Line  string
}

func (FillRect) isCommand()    {}
func (FillPolygon) isCommand() {}
func (LineTo) isCommand()      {}
func (ArcTo) isCommand()       {}
func (QuadTo) isCommand()      {}
func (CubeTo) isCommand()      {}
func (Stroke) isCommand()      {}
func (FillPath) isCommand()    {}
func (Text) isCommand()        {}

// List is a Surface which records all drawing operations.  A recorded list
// can be replayed onto another surface.
type List struct {
	Commands []Command
}

var _ Surface = (*List)(nil)

// Reset discards all recorded commands.
func (l *List) Reset() {
	l.Commands = l.Commands[:0]
}

// FillRoundedRect implements [Surface].
func (l *List) FillRoundedRect(r area.Rect, c color.Color, radius float64, flags CornerFlags) {
	l.Commands = append(l.Commands, FillRect{Rect: r, Color: c, Radius: radius, Flags: flags})
}

// FillConvexPolygon implements [Surface].
func (l *List) FillConvexPolygon(pts []vec.Vec2, c color.Color) {
	l.Commands = append(l.Commands, FillPolygon{Points: slices.Clone(pts), Color: c, Convex: true})
}

// FillConcavePolygon implements [Surface].
func (l *List) FillConcavePolygon(pts []vec.Vec2, c color.Color) {
	l.Commands = append(l.Commands, FillPolygon{Points: slices.Clone(pts), Color: c})
}

// PathLineTo implements [Surface].
func (l *List) PathLineTo(p vec.Vec2) {
	l.Commands = append(l.Commands, LineTo{P: p})
}

// PathArcTo implements [Surface].
func (l *List) PathArcTo(center vec.Vec2, radius, aMin, aMax float64) {
	l.Commands = append(l.Commands, ArcTo{Center: center, Radius: radius, AMin: aMin, AMax: aMax})
}

// PathBezierQuadraticTo implements [Surface].
func (l *List) PathBezierQuadraticTo(ctrl, end vec.Vec2) {
	l.Commands = append(l.Commands, QuadTo{Ctrl: ctrl, End: end})
}

// PathBezierCubicTo implements [Surface].
func (l *List) PathBezierCubicTo(c1, c2, end vec.Vec2) {
	l.Commands = append(l.Commands, CubeTo{C1: c1, C2: c2, End: end})
}

// PathStroke implements [Surface].
func (l *List) PathStroke(c color.Color, thickness float64) {
	l.Commands = append(l.Commands, Stroke{Color: c, Thickness: thickness})
}

// PathFillConvex implements [Surface].
func (l *List) PathFillConvex(c color.Color) {
	l.Commands = append(l.Commands, FillPath{Color: c, Convex: true})
}

// PathFillConcave implements [Surface].
func (l *List) PathFillConcave(c color.Color) {
	l.Commands = append(l.Commands, FillPath{Color: c})
}

// DrawText implements [Surface].
func (l *List) DrawText(pos vec.Vec2, size float64, c color.Color, line string) {
	l.Commands = append(l.Commands, Text{Pos: pos, Size: size, Color: c, Line: line})
}

// Replay issues all recorded commands, in order, on s.
func (l *List) Replay(s Surface) {
	for _, cmd := range l.Commands {
		switch cmd := cmd.(type) {
		case FillRect:
			s.FillRoundedRect(cmd.Rect, cmd.Color, cmd.Radius, cmd.Flags)
		case FillPolygon:
			if cmd.Convex {
				s.FillConvexPolygon(cmd.Points, cmd.Color)
			} else {
				s.FillConcavePolygon(cmd.Points, cmd.Color)
			}
		case LineTo:
			s.PathLineTo(cmd.P)
		case ArcTo:
			s.PathArcTo(cmd.Center, cmd.Radius, cmd.AMin, cmd.AMax)
		case QuadTo:
			s.PathBezierQuadraticTo(cmd.Ctrl, cmd.End)
		case CubeTo:
			s.PathBezierCubicTo(cmd.C1, cmd.C2, cmd.End)
		case Stroke:
			s.PathStroke(cmd.Color, cmd.Thickness)
		case FillPath:
			if cmd.Convex {
				s.PathFillConvex(cmd.Color)
			} else {
				s.PathFillConcave(cmd.Color)
			}
		case Text:
			s.DrawText(cmd.Pos, cmd.Size, cmd.Color, cmd.Line)
		}
	}
}

// PathPoints returns the end points of all path commands recorded so far,
// in order.  Arcs contribute their end point.
func (l *List) PathPoints() []vec.Vec2 {
	var pts []vec.Vec2
	for _, cmd := range l.Commands {
		switch cmd := cmd.(type) {
		case LineTo:
			pts = append(pts, cmd.P)
		case ArcTo:
			pts = append(pts, ArcPoint(cmd.Center, cmd.Radius, cmd.AMax))
		case QuadTo:
			pts = append(pts, cmd.End)
		case CubeTo:
			pts = append(pts, cmd.End)
		}
	}
	return pts
}
