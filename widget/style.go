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
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// State is the interaction state of a widget.  It selects the colour of
// the widget's style.
type State uint8

// These are the supported interaction states.
const (
	StateNormal State = iota
	StateHovered
	StatePressed
	StateDisabled
)

// Style is the set of colours used by a widget.
type Style struct {
	Normal   color.NRGBA
	Hovered  color.NRGBA
	Pressed  color.NRGBA
	Disabled color.NRGBA
	Text     color.NRGBA
}

// Color returns the fill colour for the given state.
func (s Style) Color(st State) color.NRGBA {
	switch st {
	case StateHovered:
		return s.Hovered
	case StatePressed:
		return s.Pressed
	case StateDisabled:
		return s.Disabled
	default:
		return s.Normal
	}
}

// orDefault replaces the zero Style with the common LCARS style.
func (s Style) orDefault() Style {
	if s == (Style{}) {
		return DefaultStyle()
	}
	return s
}

// Background is the colour of the screen behind all widgets.  Corners use
// it to cut out their inner curve.
var Background = color.NRGBA{A: 255}

var (
	white    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black    = color.NRGBA{A: 0xFF}
	disabled = color.NRGBA{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF}
)

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func lcarsStyle(normal, hovered uint32) Style {
	return Style{
		Normal:   rgb(normal),
		Hovered:  rgb(hovered),
		Pressed:  white,
		Disabled: disabled,
		Text:     black,
	}
}

var palette = map[string]Style{
	"common":      lcarsStyle(0xEFB657, 0xC49749),
	"main-red":    lcarsStyle(0xCC6666, 0xAB5555),
	"main-pink":   lcarsStyle(0xE6B0D4, 0xBD92AF),
	"main-blue":   lcarsStyle(0x99CCFF, 0x85A8C5),
	"light-blue":  lcarsStyle(0xADD8E6, 0x91B5C0),
	"main-orange": lcarsStyle(0xFF9900, 0xCC7F16),
	"main-yellow": lcarsStyle(0xEFB657, 0xC49749),
	"main-beige":  lcarsStyle(0xEEB683, 0xC4986D),
	"main-green":  lcarsStyle(0x15A957, 0x088E48),
	"external-label": {
		Normal:   black,
		Hovered:  black,
		Pressed:  black,
		Disabled: black,
		Text:     rgb(0xFF9900),
	},
}

// LCARS returns the named LCARS style.  Names are lower case with dashes,
// for example "main-orange".
func LCARS(name string) (Style, bool) {
	s, ok := palette[strings.ToLower(name)]
	return s, ok
}

// StyleNames lists the names accepted by [LCARS], in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultStyle returns the common LCARS style.
func DefaultStyle() Style {
	return palette["common"]
}

// ParseColor parses a colour in the form "#rrggbb", "#rgb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor is the inverse of [ParseColor].  The alpha channel is only
// included if the colour is not opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
