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


// Package outline stores paths as flat slices of commands and points.
//
// A [Data] value can be built incrementally, reset and reused without
// allocation, and iterated as a [path.Path].
package outline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Data is a path, stored as a list of commands together with the points
// they use.  MoveTo and LineTo use one point, QuadTo two, CubeTo three and
// Close none.
type Data struct {
	Cmds   []path.Command
	Coords []vec.Vec2
}

// MoveTo starts a new subpath at p.
func (d *Data) MoveTo(p vec.Vec2) *Data {
	d.Cmds = append(d.Cmds, path.CmdMoveTo)
	d.Coords = append(d.Coords, p)
	return d
}

// LineTo adds a straight line to p.
func (d *Data) LineTo(p vec.Vec2) *Data {
	d.Cmds = append(d.Cmds, path.CmdLineTo)
	d.Coords = append(d.Coords, p)
	return d
}

// QuadTo adds a quadratic Bézier curve with control point c ending at p.
func (d *Data) QuadTo(c, p vec.Vec2) *Data {
	d.Cmds = append(d.Cmds, path.CmdQuadTo)
	d.Coords = append(d.Coords, c, p)
	return d
}

// CubeTo adds a cubic Bézier curve with control points c1 and c2, ending
// at p.
func (d *Data) CubeTo(c1, c2, p vec.Vec2) *Data {
	d.Cmds = append(d.Cmds, path.CmdCubeTo)
	d.Coords = append(d.Coords, c1, c2, p)
	return d
}

// Close closes the current subpath.
func (d *Data) Close() *Data {
	d.Cmds = append(d.Cmds, path.CmdClose)
	return d
}

// Reset removes all commands, keeping the allocated storage.
func (d *Data) Reset() {
	d.Cmds = d.Cmds[:0]
	d.Coords = d.Coords[:0]
}

// IsEmpty reports whether d has no commands.
func (d *Data) IsEmpty() bool {
	return len(d.Cmds) == 0
}

// NumPoints returns the number of points used by cmd.
func NumPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Iter returns an iterator over the segments of d.  The point slices
// passed to the iterator alias the storage of d.
func (d *Data) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range d.Cmds {
			n := NumPoints(cmd)
			if !yield(cmd, d.Coords[k:k+n:k+n]) {
				return
			}
			k += n
		}
	}
}
