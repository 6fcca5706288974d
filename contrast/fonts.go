// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"math"

	"cogentcore.org/palette/colors"
)

const (
	// FontSizeProhibited is the font size of a weight that must not
	// be used for text at a given contrast.
	FontSizeProhibited = 999

	// FontSizeNonText is the font size of a weight that may only
	// be used for non-text elements at a given contrast.
	FontSizeNonText = 777
)

// FontSize is the minimum legible font size in px of a font weight.
type FontSize struct {
	Weight int     `json:"weight"`
	Size   float64 `json:"size"`
}

// IsText returns whether the weight can be used for text.
func (f FontSize) IsText() bool {
	return f.Size < FontSizeNonText
}

// fontTable holds the APCA minimum font sizes by Lc, in rows of 5 Lc from
// 0 to 125, and columns of weights from 100 to 900.
var fontTable = [...][9]float64{
	{999, 999, 999, 999, 999, 999, 999, 999, 999},
	{999, 999, 999, 999, 999, 999, 999, 999, 999},
	{999, 999, 999, 999, 999, 999, 999, 999, 999},
	{777, 777, 777, 777, 777, 777, 777, 777, 777},
	{777, 777, 777, 777, 777, 777, 777, 777, 777},
	{777, 777, 777, 120, 120, 108, 96, 96, 96},
	{777, 777, 120, 108, 108, 96, 72, 72, 72},
	{777, 120, 108, 96, 72, 60, 48, 48, 48},
	{120, 108, 96, 60, 48, 42, 32, 32, 32},
	{108, 96, 72, 42, 32, 28, 24, 24, 24},
	{96, 72, 60, 32, 28, 24, 21, 21, 21},
	{80, 60, 48, 28, 24, 21, 18, 18, 18},
	{72, 48, 42, 24, 21, 18, 16, 16, 18},
	{68, 46, 32, 21.75, 19, 17, 15, 16, 18},
	{64, 44, 28, 19.5, 18, 16, 14.5, 16, 18},
	{60, 42, 24, 18, 16, 15, 14, 16, 18},
	{56, 38.25, 23, 17.25, 15.81, 14.81, 14, 16, 18},
	{52, 34.5, 22, 16.5, 15.625, 14.625, 14, 16, 18},
	{48, 32, 21, 16, 15.5, 14.5, 14, 16, 18},
	{45, 28, 19.5, 15.5, 15, 14, 13.5, 16, 18},
	{42, 26.5, 18.5, 15, 14.5, 13.5, 13, 16, 18},
	{39, 25, 18, 14.5, 14, 13, 12, 16, 18},
	{36, 24, 18, 14, 13, 12, 11, 16, 18},
	{34.5, 22.5, 17.25, 12.5, 11.875, 11.25, 10.625, 14.5, 16.5},
	{33, 21, 16.5, 11, 10.75, 10.5, 10.25, 13, 15},
	{32, 20, 16, 10, 10, 10, 10, 12, 14},
}

// FontWeights are the weights reported by [MinFontSizes].
var FontWeights = []int{200, 300, 400, 500, 600, 700}

// MinFontSizes returns the minimum font size per weight (200 to 700) for
// the text color on the background color under APCA. Sizes are interpolated
// linearly between the Lc rows of the lookup table, except next to
// [FontSizeNonText] and [FontSizeProhibited] entries, which are kept as is.
func MinFontSizes(text, bg colors.RGB) []FontSize {
	return FontSizesForLc(APCA(text, bg))
}

// FontSizesForLc is [MinFontSizes] for a given Lc value.
func FontSizesForLc(lc float64) []FontSize {
	a := math.Abs(lc)
	if math.IsNaN(a) {
		a = 0
	}
	last := len(fontTable) - 1
	pos := min(a/5, float64(last))
	row := int(pos)
	frac := pos - float64(row)
	res := make([]FontSize, len(FontWeights))
	for i, w := range FontWeights {
		col := w/100 - 1
		lo := fontTable[row][col]
		size := lo
		if row < last && frac > 0 {
			hi := fontTable[row+1][col]
			if lo < FontSizeNonText && hi < FontSizeNonText {
				size = lo + (hi-lo)*frac
			}
		}
		res[i] = FontSize{Weight: w, Size: size}
	}
	return res
}
