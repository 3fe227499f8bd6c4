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


package outline

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestIter(t *testing.T) {
	d := (&Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		QuadTo(vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 1}).
		CubeTo(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 1, Y: 3}, vec.Vec2{X: 0, Y: 3}).
		Close()

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose}
	wantLen := []int{1, 1, 2, 3, 0}
	i := 0
	var last vec.Vec2
	for cmd, pts := range d.Iter() {
		if cmd != wantCmds[i] || len(pts) != wantLen[i] {
			t.Fatalf("segment %d: %v with %d points", i, cmd, len(pts))
		}
		if len(pts) > 0 {
			last = pts[len(pts)-1]
		}
		i++
	}
	if i != len(wantCmds) {
		t.Errorf("%d segments, want %d", i, len(wantCmds))
	}
	if last != (vec.Vec2{X: 0, Y: 3}) {
		t.Errorf("last point %v", last)
	}

	// the iterator composes with the path package
	bbox := d.Iter().BBox()
	if bbox.LLx != 0 || bbox.URx != 2 || bbox.URy != 3 {
		t.Errorf("bounding box %v", bbox)
	}
}

func TestIterStop(t *testing.T) {
	d := (&Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 1}).LineTo(vec.Vec2{Y: 1})
	n := 0
	for range d.Iter() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d segments", n)
	}
}

func TestReset(t *testing.T) {
	d := (&Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 1}).Close()
	if d.IsEmpty() {
		t.Fatal("path is empty")
	}
	d.Reset()
	if !d.IsEmpty() || len(d.Coords) != 0 {
		t.Errorf("reset left %d commands and %d points", len(d.Cmds), len(d.Coords))
	}
}
