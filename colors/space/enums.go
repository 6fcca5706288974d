// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"strings"
)

// Space is a color space in which shades are generated.
type Space int32

const (
	// LCH is the CIE LCh(ab) space (cylindrical LAB).
	LCH Space = iota

	// OKLCH is the cylindrical form of OKLAB.
	OKLCH

	// LAB is the CIE L*a*b* space.
	LAB

	// OKLAB is the OKLAB perceptual space.
	OKLAB

	// HSL is the hue, saturation, lightness space.
	HSL

	// HSLuv is the human-friendly HSL alternative based on CIE LUV.
	HSLuv

	spaceN
)

var spaceNames = [...]string{"LCH", "OKLCH", "LAB", "OKLAB", "HSL", "HSLUV"}

// Spaces returns all of the valid spaces.
func Spaces() []Space {
	res := make([]Space, spaceN)
	for i := range res {
		res[i] = Space(i)
	}
	return res
}

// IsValid returns whether the space is one of the known spaces.
func (s Space) IsValid() bool {
	return s >= 0 && s < spaceN
}

// String returns the persisted name of the space.
func (s Space) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Space(%d)", int32(s))
	}
	return spaceNames[s]
}

// SetString sets the space from its persisted name, case-insensitively.
func (s *Space) SetString(str string) error {
	for i, nm := range spaceNames {
		if strings.EqualFold(nm, str) {
			*s = Space(i)
			return nil
		}
	}
	return fmt.Errorf("space.Space: unknown color space %q", str)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Space) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Algorithm is the chroma compensation strategy applied to
// generated shades, persisted with each palette so that
// it renders the same way later on.
type Algorithm int32

const (
	// V1 leaves chroma unchanged.
	V1 Algorithm = iota

	// V2 scales chroma by sin(L/100*pi), which removes
	// chroma at both lightness extremes.
	V2

	// V3 scales chroma by the square root of the average of
	// sin(L/100*pi) and tanh(L/100*pi), a softer falloff than V2.
	V3

	algorithmN
)

// Latest is the algorithm used for new palettes.
const Latest = V3

var algorithmNames = [...]string{"v1", "v2", "v3"}

// IsValid returns whether the algorithm is one of the known versions.
func (a Algorithm) IsValid() bool {
	return a >= 0 && a < algorithmN
}

// String returns the persisted name of the algorithm.
func (a Algorithm) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("Algorithm(%d)", int32(a))
	}
	return algorithmNames[a]
}

// SetString sets the algorithm from its persisted name, case-insensitively.
func (a *Algorithm) SetString(s string) error {
	for i, nm := range algorithmNames {
		if strings.EqualFold(nm, s) {
			*a = Algorithm(i)
			return nil
		}
	}
	return fmt.Errorf("space.Algorithm: unknown algorithm version %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Algorithm) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}
