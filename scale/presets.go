// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"strconv"
	"strings"
)

// Preset is a named scale layout from a common design system.
type Preset struct {

	// ID is the persisted identifier of the preset.
	ID string

	// Name is the display name.
	Name string

	// Stops are the stop names, from the lightest to the darkest.
	Stops []string

	// Min and Max are the default bounds of the lightness scale.
	Min, Max float64

	// Easing is the default curve.
	Easing Easing
}

// Scale returns the lightness scale of the preset.
func (p Preset) Scale() *Scale {
	return Build(p.Stops, p.Min, p.Max, p.Easing)
}

func steps(from, to, step int) []string {
	var res []string
	for v := from; (step > 0 && v <= to) || (step < 0 && v >= to); v += step {
		res = append(res, strconv.Itoa(v))
	}
	return res
}

var presets = []Preset{
	{
		ID: "MATERIAL", Name: "Material",
		Stops: append([]string{"50"}, steps(100, 900, 100)...),
		Min:   24, Max: 96, Easing: Linear,
	},
	{
		ID: "MATERIAL_3", Name: "Material 3",
		Stops: steps(100, 0, -10),
		Min:   0, Max: 100, Easing: Linear,
	},
	{
		ID: "TAILWIND", Name: "Tailwind",
		Stops: append(append([]string{"50"}, steps(100, 900, 100)...), "950"),
		Min:   12, Max: 97, Easing: Linear,
	},
	{
		ID: "ANT", Name: "Ant Design",
		Stops: steps(1, 10, 1),
		Min:   20, Max: 96, Easing: Linear,
	},
	{
		ID: "CARBON", Name: "Carbon",
		Stops: steps(10, 100, 10),
		Min:   10, Max: 97, Easing: Linear,
	},
	{
		ID: "ATLASSIAN", Name: "Atlassian",
		Stops: steps(100, 1000, 100),
		Min:   16, Max: 96, Easing: Linear,
	},
	{
		ID: "ADOBE", Name: "Adobe Spectrum",
		Stops: steps(100, 1400, 100),
		Min:   10, Max: 98, Easing: Linear,
	},
	{
		ID: "CUSTOM", Name: "Custom",
		Stops: CountNames(10),
		Min:   10, Max: 95, Easing: Linear,
	},
}

// Presets returns all of the presets.
func Presets() []Preset {
	res := make([]Preset, len(presets))
	copy(res, presets)
	return res
}

// PresetByID returns the preset with the given id, case-insensitively.
func PresetByID(id string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return Preset{}, false
}
