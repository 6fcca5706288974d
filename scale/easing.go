// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Ease maps the given progress in [0, 1] through the easing curve.
// Every curve is strictly increasing with Ease(0) == 0 and Ease(1) == 1.
// Unknown easings are linear.
func (e Easing) Ease(t float64) float64 {
	t = min(max(t, 0), 1)
	switch e {
	case SlowEaseIn:
		return 1 - math.Cos(t*math.Pi/2)
	case SlowEaseOut:
		return math.Sin(t * math.Pi / 2)
	case SlowEaseInOut:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case FastEaseIn:
		return t * t * t
	case FastEaseOut:
		return 1 - math.Pow(1-t, 3)
	case FastEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}
