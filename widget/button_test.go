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
	"testing"

	"seehuhn.de/go/lcars/area"
	"seehuhn.de/go/lcars/draw"
)

func TestButtonRender(t *testing.T) {
	style, _ := LCARS("main-red")
	b := NewButton("OK")
	b.Style = style
	b.Rounding = 1
	b.Corners = draw.RoundLeft
	b.Measurer = monospace{}

	a := area.New(0, 0, 100, 40)
	l := &draw.List{}
	b.Render(l, a)

	if len(l.Commands) != 2 {
		t.Fatalf("%d commands, want 2", len(l.Commands))
	}
	fr, ok := l.Commands[0].(draw.FillRect)
	if !ok {
		t.Fatalf("first command is %T", l.Commands[0])
	}
	if fr.Rect != a || fr.Radius != 20 || fr.Flags != draw.RoundLeft || fr.Color != style.Normal {
		t.Errorf("rectangle %+v", fr)
	}
	txt, ok := l.Commands[1].(draw.Text)
	if !ok {
		t.Fatalf("second command is %T", l.Commands[1])
	}
	if txt.Line != "OK" || txt.Size != 20 || txt.Color != style.Text || !near(txt.Pos, v(40, 10)) {
		t.Errorf("text %+v", txt)
	}
}

func TestButtonState(t *testing.T) {
	b := NewButton("")
	b.State = StatePressed
	l := &draw.List{}
	b.Render(l, area.New(0, 0, 50, 20))

	// an empty text draws only the rectangle
	if len(l.Commands) != 1 {
		t.Fatalf("%d commands, want 1", len(l.Commands))
	}
	if fr := l.Commands[0].(draw.FillRect); fr.Color != DefaultStyle().Pressed || fr.Radius != 0 {
		t.Errorf("rectangle %+v", fr)
	}
}

func TestButtonStabilizer(t *testing.T) {
	b := &Button{Text: "ab\ncdef", Scale: 2, Measurer: monospace{}}
	b.Stabilizer.Threshold = 2
	a := area.New(0, 0, 100, 100)

	for frame := 1; frame <= 2; frame++ {
		if got := b.Layout(a).FontSize; got != 20 {
			t.Errorf("frame %d: font size %d, want 20", frame, got)
		}
	}
	if got := b.Layout(a).FontSize; got != 50 {
		t.Errorf("font size %d after three frames, want 50", got)
	}

	// changing the text settings between frames restarts the count
	b.Scale = 1
	if got := b.Layout(a).FontSize; got != 50 {
		t.Errorf("font size %d right after the change, want 50", got)
	}
	if st := b.SizeState(); st.LastComputed != 20 || st.Counter != 0 {
		t.Errorf("state %+v", st)
	}
}
