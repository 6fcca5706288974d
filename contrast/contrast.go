// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast scores the contrast of text and background colors
// with the WCAG 2.1 ratio and the APCA lightness contrast (Lc), and maps
// between the lightness of a background and its WCAG ratio against a
// fixed text color.
package contrast

import (
	"math"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/cie"
)

// WCAG returns the WCAG 2.1 contrast ratio between the two colors,
// between 1 and 21. The order of the colors does not matter.
func WCAG(fg, bg colors.RGB) float64 {
	return RatioOfLuminances(Luminance(fg), Luminance(bg))
}

// Luminance returns the WCAG relative luminance (0-1) of the color.
func Luminance(c colors.RGB) float64 {
	c = c.Clamped()
	return cie.Luminance(c.R, c.G, c.B)
}

// RatioOfLuminances returns the WCAG contrast ratio of two
// relative luminances in the 0-1 range.
func RatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// APCA constants, version 0.0.98G-4g.
const (
	apcaMainTRC = 2.4

	apcaRCo = 0.2126729
	apcaGCo = 0.7151522
	apcaBCo = 0.0721750

	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevTXT  = 0.62
	apcaRevBG   = 0.65

	apcaBlkThrs = 0.022
	apcaBlkClmp = 1.414

	apcaScale     = 1.14
	apcaOffset    = 0.027
	apcaDeltaYMin = 0.0005
	apcaLoClip    = 0.1
)

// APCA returns the APCA lightness contrast (Lc) of the text color on the
// background color, roughly between -108 and 106. It is positive for dark
// text on a light background and negative for light text on a dark
// background; the polarity matters and the colors can not be swapped.
func APCA(text, bg colors.RGB) float64 {
	return apcaContrast(apcaY(text), apcaY(bg))
}

// apcaY returns the APCA screen luminance of the color.
func apcaY(c colors.RGB) float64 {
	c = c.Clamped()
	return apcaRCo*math.Pow(c.R, apcaMainTRC) +
		apcaGCo*math.Pow(c.G, apcaMainTRC) +
		apcaBCo*math.Pow(c.B, apcaMainTRC)
}

func apcaClampBlack(y float64) float64 {
	if y > apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}

func apcaContrast(txtY, bgY float64) float64 {
	if math.IsNaN(txtY) || math.IsNaN(bgY) || min(txtY, bgY) < 0 || max(txtY, bgY) > 1.1 {
		return 0
	}
	txtY = apcaClampBlack(txtY)
	bgY = apcaClampBlack(bgY)
	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0
	}
	var out float64
	if bgY > txtY {
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTXT)) * apcaScale
		if sapc >= apcaLoClip {
			out = sapc - apcaOffset
		}
	} else {
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTXT)) * apcaScale
		if sapc <= -apcaLoClip {
			out = sapc + apcaOffset
		}
	}
	return out * 100
}

// RatioForLightness returns the WCAG ratio between the given text color and
// a background of the given L* lightness (0-100, clamped).
func RatioForLightness(lightness float64, text colors.RGB) float64 {
	l := min(max(lightness, 0), 100)
	return RatioOfLuminances(cie.LToY(l)/100, Luminance(text))
}

// LightnessForRatio returns the L* lightness (0-100) of a background that
// has the given WCAG ratio with the given text color. Backgrounds lighter
// than the text are tried first for dark text, and darker ones first for
// light text. It returns -1, false if the ratio can not be achieved.
func LightnessForRatio(ratio float64, text colors.RGB) (float64, bool) {
	ty := Luminance(text)
	if cie.YToL(ty*100) > 50 {
		if l, ok := darkerLightness(ty, ratio); ok {
			return l, true
		}
		return lighterLightness(ty, ratio)
	}
	if l, ok := lighterLightness(ty, ratio); ok {
		return l, true
	}
	return darkerLightness(ty, ratio)
}

// LightnessForRatioUnsafe is like [LightnessForRatio], but if the ratio can
// not be achieved it returns the extreme lightness (0 or 100) that gives the
// highest ratio, which may not satisfy the requirement.
func LightnessForRatioUnsafe(ratio float64, text colors.RGB) float64 {
	if l, ok := LightnessForRatio(ratio, text); ok {
		return l
	}
	if RatioForLightness(0, text) > RatioForLightness(100, text) {
		return 0
	}
	return 100
}

// lighterLightness returns the lightness of the background lighter than
// text of luminance ty that has the given ratio.
func lighterLightness(ty, ratio float64) (float64, bool) {
	if math.IsNaN(ratio) || ratio < 1 {
		return -1, false
	}
	y := ratio*(ty+0.05) - 0.05
	if y > 1+1e-9 {
		return -1, false
	}
	return min(cie.YToL(min(y, 1)*100), 100), true
}

// darkerLightness returns the lightness of the background darker than
// text of luminance ty that has the given ratio.
func darkerLightness(ty, ratio float64) (float64, bool) {
	if math.IsNaN(ratio) || ratio < 1 {
		return -1, false
	}
	y := (ty+0.05)/ratio - 0.05
	if y < -1e-9 {
		return -1, false
	}
	return max(cie.YToL(max(y, 0)*100), 0), true
}
