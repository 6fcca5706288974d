// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"fmt"
	"strings"
)

// Mode is a color vision deficiency simulation mode.
type Mode int32

const (
	// None shows colors as they are.
	None Mode = iota

	// Protanomaly is reduced sensitivity to red light.
	Protanomaly

	// Protanopia is the absence of red cones.
	Protanopia

	// Deuteranomaly is reduced sensitivity to green light.
	Deuteranomaly

	// Deuteranopia is the absence of green cones.
	Deuteranopia

	// Tritanomaly is reduced sensitivity to blue light.
	Tritanomaly

	// Tritanopia is the absence of blue cones.
	Tritanopia

	// Achromatomaly is partial color blindness.
	Achromatomaly

	// Achromatopsia is total color blindness.
	Achromatopsia

	modeN
)

var modeNames = [...]string{"NONE", "PROTANOMALY", "PROTANOPIA", "DEUTERANOMALY", "DEUTERANOPIA", "TRITANOMALY", "TRITANOPIA", "ACHROMATOMALY", "ACHROMATOPSIA"}

// Modes returns all of the valid modes.
func Modes() []Mode {
	res := make([]Mode, modeN)
	for i := range res {
		res[i] = Mode(i)
	}
	return res
}

// IsValid returns whether the mode is one of the known modes.
func (m Mode) IsValid() bool {
	return m >= 0 && m < modeN
}

// String returns the persisted name of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
	return modeNames[m]
}

// SetString sets the mode from its persisted name, case-insensitively.
func (m *Mode) SetString(s string) error {
	for i, nm := range modeNames {
		if strings.EqualFold(nm, s) {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("vision.Mode: unknown mode %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Unknown names decode to [None].
func (m *Mode) UnmarshalText(text []byte) error {
	if err := m.SetString(string(text)); err != nil {
		*m = None
	}
	return nil
}
