// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/space"
	"cogentcore.org/palette/colors/vision"
	"cogentcore.org/palette/scale"
)

// Shift is a hue or chroma shift of a source color.
type Shift struct {

	// Shift is in degrees for hue and in percent of the
	// source chroma for chroma.
	Shift float64 `json:"shift"`

	// IsLocked is whether the color keeps its own shift
	// instead of following the global shift of the palette.
	IsLocked bool `json:"isLocked"`
}

// Transparency configures a color whose stops are opacities.
type Transparency struct {
	IsEnabled bool `json:"isEnabled"`

	// BackgroundColor is the hex color the translucent shades are
	// composited over for their mixed color.
	BackgroundColor string `json:"backgroundColor"`
}

// SourceColor is a color a palette is generated from.
type SourceColor struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	RGB          colors.RGB   `json:"rgb"`
	Hue          Shift        `json:"hue"`
	Chroma       Shift        `json:"chroma"`
	Transparency Transparency `json:"transparency"`
}

// TextColors are the light and dark text colors (hex) of a theme,
// used to score the contrast of its shades.
type TextColors struct {
	LightColor string `json:"lightColor"`
	DarkColor  string `json:"darkColor"`
}

// Theme is one variant of a palette, with its own scale.
type Theme struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ThemeType `json:"type"`

	// Scale maps stop names to lightness (or opacity) values in 0-100.
	Scale *scale.Scale `json:"scale"`

	// PaletteBackground is the hex background color of the theme.
	PaletteBackground string `json:"paletteBackground"`

	VisionSimulationMode vision.Mode `json:"visionSimulationMode"`

	TextColorsTheme TextColors `json:"textColorsTheme"`

	// IsEnabled marks the live theme; exactly one theme is enabled.
	IsEnabled bool `json:"isEnabled"`
}

// GlobalShift is the shift of colors that do not lock their own.
type GlobalShift struct {
	Chroma float64 `json:"chroma"`
	Hue    float64 `json:"hue"`
}

// Config is the full configuration a palette is built from.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Preset is the id of the [scale.Preset] the scales started from.
	Preset string `json:"preset"`

	ColorSpace       space.Space     `json:"colorSpace"`
	AlgorithmVersion space.Algorithm `json:"algorithmVersion"`

	// AreSourceColorsLocked replaces the closest generated shade of each
	// color with the exact source color.
	AreSourceColorsLocked bool `json:"areSourceColorsLocked"`

	Shift  GlobalShift   `json:"shift"`
	Colors []SourceColor `json:"colors"`
	Themes []Theme       `json:"themes"`
}

// Data is the palette generated from a [Config].
type Data struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Themes      []ThemeData `json:"themes"`
	Type        string      `json:"type"`
}

// ThemeData is the generated data of one theme.
type ThemeData struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        ThemeType   `json:"type"`
	Colors      []ColorData `json:"colors"`
}

// ColorData is the generated data of one color in one theme.
type ColorData struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Shades       []Shade      `json:"shades"`
	Transparency Transparency `json:"transparency"`
	Type         string       `json:"type"`
}

// Shade is one generated color. All of the space coordinates describe the
// final color, in the units of [space.Coordinates].
type Shade struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Hex         string `json:"hex"`

	// RGB is in 0-255.
	RGB [3]float64 `json:"rgb"`

	// GL is the unit RGBA.
	GL [4]float64 `json:"gl"`

	LCH   [3]float64 `json:"lch"`
	OKLCH [3]float64 `json:"oklch"`
	LAB   [3]float64 `json:"lab"`
	OKLAB [3]float64 `json:"oklab"`
	HSL   [3]float64 `json:"hsl"`
	HSLuv [3]float64 `json:"hsluv"`

	// Alpha is the opacity of transparent shades.
	Alpha *float64 `json:"alpha,omitempty"`

	// BackgroundColor is the 0-255 RGB background transparent
	// shades are composited over.
	BackgroundColor *[3]float64 `json:"backgroundColor,omitempty"`

	// MixedColor is the hex of a transparent shade composited
	// over its background.
	MixedColor string `json:"mixedColor,omitempty"`

	IsClosestToRef      bool `json:"isClosestToRef"`
	IsSourceColorLocked bool `json:"isSourceColorLocked"`
	IsTransparent       bool `json:"isTransparent"`

	// StyleID and VariableID are the ids of the external
	// resources bound to the shade, if any.
	StyleID    string `json:"styleId"`
	VariableID string `json:"variableId"`

	Type ShadeType `json:"type"`
}

// Lookup returns the shade with the given name of the given color
// in the given theme.
func (d *Data) Lookup(themeID, colorID, shade string) (*Shade, bool) {
	if d == nil {
		return nil, false
	}
	for ti := range d.Themes {
		th := &d.Themes[ti]
		if th.ID != themeID {
			continue
		}
		for ci := range th.Colors {
			c := &th.Colors[ci]
			if c.ID != colorID {
				continue
			}
			for si := range c.Shades {
				if c.Shades[si].Name == shade {
					return &c.Shades[si], true
				}
			}
		}
	}
	return nil, false
}

// Theme returns the data of the theme with the given id.
func (d *Data) Theme(id string) (*ThemeData, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Themes {
		if d.Themes[i].ID == id {
			return &d.Themes[i], true
		}
	}
	return nil, false
}
