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

// Package scenes provides a collection of example boards, grouped by
// category.  The boards exercise the widget geometry and are used by the
// lcarsrender command and by tests.
package scenes

import (
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"seehuhn.de/go/lcars/board"
)

// Scene is a named example board.
type Scene struct {
	Name  string // lowercase a-z and _ only
	Board *board.Board
}

// All maps category names to the scenes in that category.
var All = map[string][]Scene{
	"corners": corners,
	"panels":  panels,
	"shapes":  shapes,
	"labels":  labels,
	"buttons": buttons,
}

// FullName returns the name of a scene including its category, as used by
// [Lookup].
func FullName(category string, s Scene) string {
	return category + "_" + s.Name
}

// Names returns the full names of all scenes, sorted by category.
func Names() []string {
	var res []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			res = append(res, FullName(category, s))
		}
	}
	return res
}

// Lookup returns the board of the scene with the given full name.  The
// board is a fresh copy which the caller may modify.
func Lookup(fullName string) (*board.Board, bool) {
	category, name, ok := strings.Cut(fullName, "_")
	if !ok {
		return nil, false
	}
	for _, s := range All[category] {
		if s.Name == name {
			return s.Board.Clone(), true
		}
	}
	return nil, false
}

// newBoard returns a board with deterministic widget IDs, so that saved
// example boards do not change between runs.
func newBoard(title string, w, h float64, widgets ...*board.Spec) *board.Board {
	for i, sp := range widgets {
		key := title + "/" + string(rune('a'+i))
		sp.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
	}
	return &board.Board{Title: title, Width: w, Height: h, Widgets: widgets}
}

func at(x, y, w, h float64) [4]float64 {
	return [4]float64{x, y, w, h}
}
