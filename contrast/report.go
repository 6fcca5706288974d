// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"math"

	"cogentcore.org/palette/colors"
)

// Report bundles every contrast measure of a text color on a background.
type Report struct {
	WCAG      float64    `json:"wcag"`
	WCAGScore WCAGScore  `json:"wcagScore"`
	APCA      float64    `json:"apca"`
	APCAScore APCAScore  `json:"apcaScore"`
	FontSizes []FontSize `json:"fontSizes"`
}

// NewReport returns the contrast [Report] of the text color on the background.
func NewReport(text, bg colors.RGB) Report {
	w := WCAG(text, bg)
	lc := APCA(text, bg)
	return Report{
		WCAG:      w,
		WCAGScore: WCAGScoreFor(w),
		APCA:      lc,
		APCAScore: APCAScoreFor(lc),
		FontSizes: FontSizesForLc(lc),
	}
}

// TextColorFor returns whichever of the light and dark text colors has the
// higher APCA contrast on the background, and whether it is the light one.
// Ties go to the dark color.
func TextColorFor(bg, light, dark colors.RGB) (colors.RGB, bool) {
	if math.Abs(APCA(light, bg)) > math.Abs(APCA(dark, bg)) {
		return light, true
	}
	return dark, false
}

