// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "strconv"

const (
	// DefaultMax is the value of the first stop of a scale with no bounds yet.
	DefaultMax = 100

	// DefaultMin is the value of the last stop of a scale with no bounds yet.
	DefaultMin = 0
)

// Build returns a scale with the given stop names distributed from max
// (first stop) down to min (last stop) along the easing curve. The values
// are strictly monotonic by rank when min != max and the endpoints are
// exactly max and min. At most [MaxStops] names are used.
func Build(names []string, min, max float64, e Easing) *Scale {
	s := &Scale{}
	n := len(names)
	if n > MaxStops {
		n = MaxStops
	}
	for i := 0; i < n; i++ {
		var v float64
		switch i {
		case 0:
			v = max
		case n - 1:
			v = min
		default:
			v = max - (max-min)*e.Ease(float64(i)/float64(n-1))
		}
		s.Set(names[i], v)
	}
	return s
}

// BuildCount is like [Build] with n stops named "1" through "n".
// The count is clamped to [1, MaxStops].
func BuildCount(n int, min, max float64, e Easing) *Scale {
	return Build(CountNames(n), min, max, e)
}

// CountNames returns the stop names "1" through "n",
// with n clamped to [1, MaxStops].
func CountNames(n int) []string {
	n = clampCount(n)
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

// Distribute returns a copy of the scale where the anchor stop is set to
// the given value and the stops on each side of it are spread again along
// the easing curve, between the anchor and the first or last stop. Moving
// the first or last stop spreads the whole scale. The value of an inner
// anchor is clamped to the bounds of the scale. An unknown anchor returns
// an unchanged copy.
func Distribute(s *Scale, anchor string, value float64, e Easing) *Scale {
	k := s.Index(anchor)
	if k < 0 {
		return s.Clone()
	}
	n := s.Len()
	names := s.Names()
	first, last := s.Bounds()
	switch k {
	case 0:
		return Build(names, last, value, e)
	case n - 1:
		return Build(names, value, first, e)
	}
	value = min(max(value, min(first, last)), max(first, last))
	res := Build(names[:k+1], value, first, e)
	for _, st := range Build(names[k:], last, value, e).Stops() {
		res.Set(st.Name, st.Value)
	}
	return res
}

// Rescale returns a new scale with the given stop names spread along the
// easing curve between the first and last values of the given scale,
// which are kept as the two anchors. A scale with fewer than two stops
// uses [DefaultMax] and [DefaultMin].
func Rescale(s *Scale, names []string, e Easing) *Scale {
	first, last := float64(DefaultMax), float64(DefaultMin)
	if s.Len() >= 2 {
		first, last = s.Bounds()
	}
	return Build(names, last, first, e)
}

// AddStop returns a scale with a new stop inserted at the given index and
// all of the stops spread again between the two anchors. The scale is
// returned unchanged if the name is used or the scale is full.
func AddStop(s *Scale, name string, idx int, e Easing) *Scale {
	if s.Index(name) >= 0 || s.Len() >= MaxStops {
		return s.Clone()
	}
	names := s.Names()
	idx = min(max(idx, 0), len(names))
	names = append(names[:idx], append([]string{name}, names[idx:]...)...)
	return Rescale(s, names, e)
}

// RemoveStop returns a scale without the named stop and with the remaining
// stops spread again between the two anchors of the original scale.
// An unknown name returns an unchanged copy.
func RemoveStop(s *Scale, name string, e Easing) *Scale {
	k := s.Index(name)
	if k < 0 {
		return s.Clone()
	}
	names := s.Names()
	names = append(names[:k], names[k+1:]...)
	return Rescale(s, names, e)
}

func clampCount(n int) int {
	return min(max(n, 1), MaxStops)
}
