// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the sRGB transfer functions and the
// CIE relative luminance and lightness (L*) conversions
// used by the contrast computations.
package cie

import "math"

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB linear rgb component
// back to gamma-corrected sRGB space.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of linear rgb components
// back to gamma-corrected sRGB.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// Luminance returns the relative luminance (XYZ Y in the 0-1 range)
// of the given gamma-corrected sRGB components, as defined by WCAG 2.1.
func Luminance(r, g, b float64) float64 {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LToY converts an L* lightness value (0-100)
// into a Y luminance value (0-100).
func LToY(l float64) float64 {
	if l > 8 {
		ft := (l + 16) / 116
		return 100 * ft * ft * ft
	}
	return 100 * l / labKappa
}

// YToL converts a Y luminance value (0-100)
// into an L* lightness value (0-100).
func YToL(y float64) float64 {
	y /= 100
	if y > labEpsilon {
		return 116*math.Cbrt(y) - 16
	}
	return labKappa * y
}
