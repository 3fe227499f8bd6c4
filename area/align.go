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

package area

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Alignment describes where an object is placed inside a surrounding
// rectangle.
type Alignment uint8

// These are the supported alignments.
const (
	AlignCenter Alignment = iota
	AlignTopLeft
	AlignTop
	AlignTopRight
	AlignRight
	AlignBottomRight
	AlignBottom
	AlignBottomLeft
	AlignLeft
)

var alignNames = [...]string{
	AlignCenter:      "center",
	AlignTopLeft:     "top-left",
	AlignTop:         "top",
	AlignTopRight:    "top-right",
	AlignRight:       "right",
	AlignBottomRight: "bottom-right",
	AlignBottom:      "bottom",
	AlignBottomLeft:  "bottom-left",
	AlignLeft:        "left",
}

// alignDirs holds the per-axis factors of each alignment: -1 for the
// left/top edge, 0 for centred, +1 for the right/bottom edge.
var alignDirs = [...]vec.Vec2{
	AlignCenter:      {X: 0, Y: 0},
	AlignTopLeft:     {X: -1, Y: -1},
	AlignTop:         {X: 0, Y: -1},
	AlignTopRight:    {X: 1, Y: -1},
	AlignRight:       {X: 1, Y: 0},
	AlignBottomRight: {X: 1, Y: 1},
	AlignBottom:      {X: 0, Y: 1},
	AlignBottomLeft:  {X: -1, Y: 1},
	AlignLeft:        {X: -1, Y: 0},
}

func (a Alignment) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// ParseAlignment converts the textual form produced by String back into an
// Alignment.
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return AlignCenter, fmt.Errorf("unknown alignment %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	if int(a) >= len(alignNames) {
		return nil, fmt.Errorf("invalid alignment %d", a)
	}
	return []byte(alignNames[a]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Dir returns the direction of the alignment, seen from the centre of the
// area.  Each component is -1, 0 or 1; the vector is not normalised.
func (a Alignment) Dir() vec.Vec2 {
	if int(a) < len(alignDirs) {
		return alignDirs[a]
	}
	return vec.Vec2{}
}

// Offset returns the offset of the top-left corner of an object of size obj
// placed inside an area of size outer.  The object is kept margin units
// away from the edges it is aligned to.
func (a Alignment) Offset(outer, obj vec.Vec2, margin float64) vec.Vec2 {
	dir := a.Dir()
	var pos vec.Vec2
	switch dir.X {
	case 1:
		pos.X = outer.X - obj.X
	case 0:
		pos.X = (outer.X - obj.X) / 2
	}
	switch dir.Y {
	case 1:
		pos.Y = outer.Y - obj.Y
	case 0:
		pos.Y = (outer.Y - obj.Y) / 2
	}
	return pos.Sub(dir.Mul(margin))
}

// Place returns the rectangle of size obj aligned inside r.
func (r Rect) Place(obj vec.Vec2, a Alignment, margin float64) Rect {
	return Rect{Pos: r.Pos.Add(a.Offset(r.Size, obj, margin)), Size: obj}
}
