// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/base/iox/jsonx"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/space"
	"cogentcore.org/palette/scale"
	"github.com/jinzhu/copier"
)

// NewConfig returns a new palette configuration with the given name, one
// enabled default theme using the given scale preset (Material if it is
// unknown), the LCH space and the latest algorithm.
func NewConfig(name, preset string) *Config {
	p, ok := scale.PresetByID(preset)
	if !ok {
		p, _ = scale.PresetByID("MATERIAL")
	}
	return &Config{
		Name:             name,
		Preset:           p.ID,
		ColorSpace:       space.LCH,
		AlgorithmVersion: space.Latest,
		Shift:            GlobalShift{Chroma: 100},
		Themes: []Theme{{
			ID:                "00000000000000",
			Name:              "None",
			Type:              DefaultTheme,
			Scale:             p.Scale(),
			PaletteBackground: "#ffffff",
			TextColorsTheme:   TextColors{LightColor: "#ffffff", DarkColor: "#000000"},
			IsEnabled:         true,
		}},
	}
}

// AddColor adds a new source color with the given id, name and hex value,
// following the global shifts.
func (c *Config) AddColor(id, name, hex string) error {
	rgb, _, err := colors.FromHex(hex)
	if err != nil {
		return err
	}
	c.Colors = append(c.Colors, SourceColor{
		ID:     id,
		Name:   name,
		RGB:    rgb,
		Hue:    Shift{Shift: c.Shift.Hue},
		Chroma: Shift{Shift: c.Shift.Chroma},
		Transparency: Transparency{
			BackgroundColor: "#ffffff",
		},
	})
	return nil
}

// LiveTheme returns the enabled theme, which is the one
// edited interactively.
func (c *Config) LiveTheme() (*Theme, bool) {
	for i := range c.Themes {
		if c.Themes[i].IsEnabled {
			return &c.Themes[i], true
		}
	}
	return nil, false
}

// Validate returns an error describing everything wrong with the
// configuration, or nil if it can be built.
func (c *Config) Validate() error {
	var errs []error
	if !c.ColorSpace.IsValid() {
		errs = append(errs, fmt.Errorf("unknown color space %v", c.ColorSpace))
	}
	if !c.AlgorithmVersion.IsValid() {
		errs = append(errs, fmt.Errorf("unknown algorithm version %v", c.AlgorithmVersion))
	}

	colorIDs := map[string]bool{}
	for _, sc := range c.Colors {
		if colorIDs[sc.ID] {
			errs = append(errs, fmt.Errorf("duplicate color id %q", sc.ID))
		}
		colorIDs[sc.ID] = true
		if sc.Transparency.IsEnabled {
			if _, _, err := colors.FromHex(sc.Transparency.BackgroundColor); err != nil {
				errs = append(errs, fmt.Errorf("color %q: transparency background: %w", sc.ID, err))
			}
		}
	}

	if len(c.Themes) == 0 {
		errs = append(errs, errors.New("no themes"))
	}
	themeIDs := map[string]bool{}
	enabled := 0
	for _, th := range c.Themes {
		if themeIDs[th.ID] {
			errs = append(errs, fmt.Errorf("duplicate theme id %q", th.ID))
		}
		themeIDs[th.ID] = true
		if th.IsEnabled {
			enabled++
		}
		if n := th.Scale.Len(); n < 1 || n > scale.MaxStops {
			errs = append(errs, fmt.Errorf("theme %q: scale has %d stops, want 1 to %d", th.ID, n, scale.MaxStops))
		}
		if !th.VisionSimulationMode.IsValid() {
			errs = append(errs, fmt.Errorf("theme %q: unknown vision simulation mode %v", th.ID, th.VisionSimulationMode))
		}
		for _, hex := range []string{th.PaletteBackground, th.TextColorsTheme.LightColor, th.TextColorsTheme.DarkColor} {
			if _, _, err := colors.FromHex(hex); err != nil {
				errs = append(errs, fmt.Errorf("theme %q: %w", th.ID, err))
			}
		}
	}
	if len(c.Themes) > 0 && enabled != 1 {
		errs = append(errs, fmt.Errorf("%d enabled themes, want exactly 1", enabled))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("palette.Config %q: %w", c.Name, errors.Join(errs...))
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	res := &Config{}
	errors.Log(copier.CopyWithOption(res, c, copyOptions))
	return res
}

// copyOptions deep copies configurations, cloning scales explicitly
// since their stops are not exported.
var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{{
		SrcType: &scale.Scale{},
		DstType: &scale.Scale{},
		Fn: func(src any) (any, error) {
			return src.(*scale.Scale).Clone(), nil
		},
	}},
}

// String returns the configuration as JSON.
func (c *Config) String() string {
	return string(errors.Log1(jsonx.WriteBytes(c)))
}
