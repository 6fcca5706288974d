// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"strings"
)

// Easing is a named curve used to distribute stops between two bounds.
type Easing int32

const (
	// None is the easing of a scale whose curve has not been picked;
	// it distributes stops linearly.
	None Easing = iota

	// Linear distributes stops evenly.
	Linear

	// SlowEaseIn is a sine ease-in.
	SlowEaseIn

	// SlowEaseOut is a sine ease-out.
	SlowEaseOut

	// SlowEaseInOut is a sine ease-in-out.
	SlowEaseInOut

	// EaseIn is a quadratic ease-in.
	EaseIn

	// EaseOut is a quadratic ease-out.
	EaseOut

	// EaseInOut is a quadratic ease-in-out.
	EaseInOut

	// FastEaseIn is a cubic ease-in.
	FastEaseIn

	// FastEaseOut is a cubic ease-out.
	FastEaseOut

	// FastEaseInOut is a cubic ease-in-out.
	FastEaseInOut

	easingN
)

var easingNames = [...]string{"NONE", "LINEAR", "SLOW_EASE_IN", "SLOW_EASE_OUT", "SLOW_EASE_IN_OUT", "EASE_IN", "EASE_OUT", "EASE_IN_OUT", "FAST_EASE_IN", "FAST_EASE_OUT", "FAST_EASE_IN_OUT"}

// Easings returns all of the valid easings.
func Easings() []Easing {
	res := make([]Easing, easingN)
	for i := range res {
		res[i] = Easing(i)
	}
	return res
}

// IsValid returns whether the easing is one of the known easings.
func (e Easing) IsValid() bool {
	return e >= 0 && e < easingN
}

// String returns the persisted name of the easing.
func (e Easing) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Easing(%d)", int32(e))
	}
	return easingNames[e]
}

// SetString sets the easing from its persisted name, case-insensitively.
// Dashes are accepted in place of underscores.
func (e *Easing) SetString(s string) error {
	s = strings.ReplaceAll(s, "-", "_")
	for i, nm := range easingNames {
		if strings.EqualFold(nm, s) {
			*e = Easing(i)
			return nil
		}
	}
	return fmt.Errorf("scale.Easing: unknown easing %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Easing) UnmarshalText(text []byte) error {
	return e.SetString(string(text))
}
