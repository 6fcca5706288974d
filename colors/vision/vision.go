// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vision simulates color vision deficiencies (CVD)
// by applying fixed 3x3 matrices to RGB colors.
package vision

import (
	"math"

	"cogentcore.org/palette/colors"
)

// Matrix is a 3x3 transform applied to an RGB column vector.
type Matrix [3][3]float64

// Identity is the identity [Matrix].
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Matrix returns the simulation matrix for the mode.
// [None] and unknown modes return [Identity].
func (m Mode) Matrix() Matrix {
	switch m {
	case Protanomaly:
		return Matrix{{0.817, 0.183, 0}, {0.333, 0.667, 0}, {0, 0.125, 0.875}}
	case Protanopia:
		return Matrix{{0.567, 0.433, 0}, {0.558, 0.442, 0}, {0, 0.242, 0.758}}
	case Deuteranomaly:
		return Matrix{{0.8, 0.2, 0}, {0.258, 0.742, 0}, {0, 0.142, 0.858}}
	case Deuteranopia:
		return Matrix{{0.625, 0.375, 0}, {0.7, 0.3, 0}, {0, 0.3, 0.7}}
	case Tritanomaly:
		return Matrix{{0.967, 0.033, 0}, {0, 0.733, 0.267}, {0, 0.183, 0.817}}
	case Tritanopia:
		return Matrix{{0.95, 0.05, 0}, {0, 0.433, 0.567}, {0, 0.475, 0.525}}
	case Achromatomaly:
		return Matrix{{0.618, 0.32, 0.062}, {0.163, 0.775, 0.062}, {0.163, 0.32, 0.516}}
	case Achromatopsia:
		return Matrix{{0.299, 0.587, 0.114}, {0.299, 0.587, 0.114}, {0.299, 0.587, 0.114}}
	default:
		return Identity
	}
}

// Apply multiplies the given 0-255 RGB triple by the matrix,
// clamping each resulting channel to 0-255 and rounding it.
func (mx Matrix) Apply(rgb [3]float64) [3]float64 {
	var res [3]float64
	for i, row := range mx {
		v := row[0]*rgb[0] + row[1]*rgb[1] + row[2]*rgb[2]
		res[i] = math.Round(clamp255(v))
	}
	return res
}

// Simulate returns the color as seen with the given deficiency.
// Mode [None] returns the color unchanged.
func Simulate(c colors.RGB, mode Mode) colors.RGB {
	if mode == None {
		return c
	}
	if !mode.IsValid() {
		return c
	}
	res := mode.Matrix().Apply(c.RGB255())
	return colors.FromRGB255(res[0], res[1], res[2])
}

func clamp255(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
