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

package text

import (
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"seehuhn.de/go/geom/vec"
)

// SplitLines splits s at line breaks.  The empty string gives no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// Wrap breaks line into pieces no wider than width.  Break opportunities
// follow the Unicode line breaking algorithm; spaces at a break are
// dropped, all other spaces are kept.  A piece which has no break
// opportunity and is wider than width is kept on a line of its own.  If
// width is not positive, the line is returned unchanged.
func Wrap(m Measurer, line string, width, size float64) []string {
	if width <= 0 || m.Measure(line, size).X <= width {
		return []string{line}
	}

	var seg segmenter.Segmenter
	seg.InitWithString(line)
	iter := seg.LineIterator()

	var res []string
	cur := ""
	for iter.Next() {
		piece := string(iter.Line().Text)
		head := strings.TrimRight(cur, " ")
		if head == "" {
			// leading spaces stay with the first word
			cur += piece
			continue
		}
		candidate := cur + piece
		if m.Measure(strings.TrimRight(candidate, " "), size).X <= width {
			cur = candidate
			continue
		}
		res = append(res, head)
		cur = piece
	}
	if last := strings.TrimRight(cur, " "); last != "" || len(res) == 0 {
		res = append(res, last)
	}
	return res
}

// MeasureLines returns the size of each line at the given font size.  If
// wrapWidth is positive, each line is wrapped first and the size of the
// wrapped block is returned.
func MeasureLines(m Measurer, lines []string, wrapWidth, size float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(lines))
	for i, line := range lines {
		for _, piece := range Wrap(m, line, wrapWidth, size) {
			s := m.Measure(piece, size)
			res[i].X = max(res[i].X, s.X)
			res[i].Y += s.Y
		}
	}
	return res
}

// BlockSize returns the size of a stack of lines: the widest line and the
// sum of the heights.
func BlockSize(sizes []vec.Vec2) vec.Vec2 {
	var total vec.Vec2
	for _, s := range sizes {
		total.X = max(total.X, s.X)
		total.Y += s.Y
	}
	return total
}
