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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultThreshold is the number of consecutive frames a new font size
// must be requested before it is used.
const DefaultThreshold = 5

// SizeState is the per-label state of the font size stabilizer.  Every
// text widget owns exactly one SizeState.
type SizeState struct {
	BaseFontHeight float64
	LastComputed   int
	Counter        int
	Current        int
}

// NewSizeState returns the initial state: both the pending and the
// current size equal the base size.
func NewSizeState() SizeState {
	return SizeState{
		BaseFontHeight: BaseSize,
		LastComputed:   BaseSize,
		Current:        BaseSize,
	}
}

// Stabilizer converts a continuous text scale into a discrete font size
// which only changes after the requested size has been constant for
// Threshold frames.
type Stabilizer struct {
	// Threshold is the number of frames to wait.  Values below 1 select
	// DefaultThreshold.
	Threshold int
}

func (s Stabilizer) threshold() int {
	if s.Threshold < 1 {
		return DefaultThreshold
	}
	return s.Threshold
}

// ActualScale maps a user scale in [0,2] to the factor applied to the base
// font height.  Scales up to 1 are used as they are (0 means 1); above 1
// the factor moves linearly towards maxScale, which is reached at 2.
func ActualScale(scale, maxScale float64) float64 {
	switch {
	case scale > 1:
		return 1 + (scale-1)*(maxScale-1)
	case scale > 0:
		return scale
	default:
		return 1
	}
}

// MaxScale returns the largest factor by which a text block of size
// textSize can be enlarged while still fitting into area.  If the text has
// no extent, the result is 1.
func MaxScale(area, textSize vec.Vec2) float64 {
	if textSize.X <= 0 || textSize.Y <= 0 {
		return 1
	}
	return min(area.X/textSize.X, area.Y/textSize.Y)
}

// Candidate returns the font size requested for this frame.  The result is
// at least 1.
func (st *SizeState) Candidate(scale, maxScale float64) int {
	base := st.BaseFontHeight
	if base <= 0 {
		base = BaseSize
	}
	c := int(math.Round(base * ActualScale(scale, maxScale)))
	return max(c, 1)
}

// Update feeds the candidate size of one frame into st and returns the
// font size to use for this frame.
func (s Stabilizer) Update(st *SizeState, candidate int) int {
	n := s.threshold()
	if candidate != st.LastComputed {
		st.LastComputed = candidate
		st.Counter = 0
	} else if st.Counter < n {
		st.Counter++
	}
	if st.Counter == n {
		st.Current = st.LastComputed
	}
	return st.Current
}

// Next runs one frame of the stabilizer for a block of lines shown in an
// area of the given size.  The lines are measured at the base size,
// wrapped to wrapWidth if this is positive.
func (s Stabilizer) Next(st *SizeState, m Measurer, lines []string, wrapWidth float64, area vec.Vec2, scale float64) int {
	base := st.BaseFontHeight
	if base <= 0 {
		base = BaseSize
	}
	textSize := BlockSize(MeasureLines(m, lines, wrapWidth, base))
	return s.Update(st, st.Candidate(scale, MaxScale(area, textSize)))
}
