// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"
)

// ThemeType is whether a theme is the default one of a palette
// or was added by the user.
type ThemeType int32

const (
	// DefaultTheme is the theme every palette starts with.
	DefaultTheme ThemeType = iota

	// CustomTheme is a theme added by the user.
	CustomTheme

	themeTypeN
)

var themeTypeNames = [...]string{"default", "custom"}

// String returns the persisted name of the theme type.
func (t ThemeType) String() string {
	if t < 0 || t >= themeTypeN {
		return fmt.Sprintf("ThemeType(%d)", int32(t))
	}
	return themeTypeNames[t]
}

// SetString sets the theme type from its persisted name, case-insensitively.
func (t *ThemeType) SetString(s string) error {
	for i, nm := range themeTypeNames {
		if strings.EqualFold(nm, s) {
			*t = ThemeType(i)
			return nil
		}
	}
	return fmt.Errorf("palette.ThemeType: unknown theme type %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (t ThemeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *ThemeType) UnmarshalText(text []byte) error { return t.SetString(string(text)) }

// ShadeType is the persisted kind of a shade.
type ShadeType string

const (
	// SourceShade is the unmodified source color of a color.
	SourceShade ShadeType = "source color"

	// GeneratedShade is a shade generated for a scale stop.
	GeneratedShade ShadeType = "color shade"
)

// Persisted kinds of the other nodes of [Data].
const (
	dataType  = "palette"
	colorType = "color"
)
