// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"cogentcore.org/palette/colors"
)

// Coordinates returns the components of the given color in the given space,
// in the units persisted with palette shades:
//   - LCH: L 0-100, C 0-~150, H 0-360
//   - OKLCH: L 0-1, C 0-~0.4, H 0-360
//   - LAB: L 0-100, a and b around -128-128
//   - OKLAB: L 0-1, a and b around -0.4-0.4
//   - HSL: H 0-360, S 0-1, L 0-1
//   - HSLuv: H 0-360, S 0-100, L 0-100
//
// NaN components (the hue of greys) are returned as 0.
// An unknown space returns the 0-1 RGB components.
func Coordinates(c colors.RGB, s Space) [3]float64 {
	cf := c.Colorful()
	var v [3]float64
	switch s {
	case LCH:
		h, ch, l := cf.Hcl()
		v = [3]float64{l * 100, ch * 100, h}
	case OKLCH:
		l, ch, h := cf.OkLch()
		v = [3]float64{l, ch, h}
	case LAB:
		l, a, b := cf.Lab()
		v = [3]float64{l * 100, a * 100, b * 100}
	case OKLAB:
		l, a, b := cf.OkLab()
		v = [3]float64{l, a, b}
	case HSL:
		h, sa, l := cf.Hsl()
		v = [3]float64{h, sa, l}
	case HSLuv:
		h, sa, l := cf.HSLuv()
		v = [3]float64{h, sa * 100, l * 100}
	default:
		v = [3]float64{c.R, c.G, c.B}
	}
	for i := range v {
		v[i] = nanToZero(v[i])
	}
	return v
}

// NativeLightness returns the lightness of the given color in the given
// space on the unified 0-100 scale used by [Color.Lightness].
func NativeLightness(c colors.RGB, s Space) float64 {
	v := Coordinates(c, s)
	switch s {
	case LCH, LAB:
		return v[0]
	case HSLuv:
		return v[2]
	case OKLCH, OKLAB:
		return v[0] * 100
	case HSL:
		return v[2] * 100
	default:
		return 0
	}
}
