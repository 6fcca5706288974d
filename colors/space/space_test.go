// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"encoding/json"
	"math"
	"testing"

	"cogentcore.org/palette/base/tolassert"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/vision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = colors.MustFromHex("#ff0000")

func TestRoundTrip(t *testing.T) {
	srcs := []string{"#3b82f6", "#e11d48", "#22c55e", "#808080", "#ff0000", "#0d0d0d"}
	for _, hex := range srcs {
		src := colors.MustFromHex(hex)
		for _, s := range Spaces() {
			c := Color{
				Source:      src,
				Lightness:   NativeLightness(src, s),
				ChromaShift: 100,
				Algorithm:   V1,
			}
			res := c.Render(s)
			assert.Equal(t, hex, res.Hex(), "%s in %s", hex, s)
			assert.Equal(t, 1.0, res.Alpha)
		}
	}
}

func TestLightnessScenario(t *testing.T) {
	src := Coordinates(red, LCH)
	tolassert.EqualTol(t, 40, src[2], 0.5)

	for _, l := range []float64{90, 70, 50, 30, 10} {
		c := Color{Source: red, Lightness: l, ChromaShift: 100, Algorithm: V1}
		res := c.LCH()
		assert.Equal(t, l, res.Target[0])
		tolassert.EqualTol(t, src[1], res.Target[1], 1e-9)
		tolassert.EqualTol(t, src[2], res.Target[2], 1e-9)
		assert.True(t, res.RGB.IsValid())
	}
}

func TestCompensationScenario(t *testing.T) {
	chroma := func(l float64) float64 {
		c := Color{Source: red, Lightness: l, ChromaShift: 100, Algorithm: V3}
		return c.LCH().Target[1]
	}
	assert.Greater(t, chroma(50), chroma(90))
	assert.Greater(t, chroma(50), chroma(10))

	for _, l := range []float64{0, 100} {
		c := Color{Source: red, Lightness: l, ChromaShift: 100, Algorithm: V2}
		tolassert.EqualTol(t, 0, c.LCH().Target[1], 1e-9)
	}
}

func TestCompensation(t *testing.T) {
	for _, l := range []float64{0, 25, 50, 100} {
		assert.Equal(t, 1.0, Compensation(V1, l))
		assert.Equal(t, 1.0, Compensation(Algorithm(9), l))
	}
	tolassert.Equal(t, 1.0, Compensation(V2, 50))
	tolassert.Equal(t, 0.0, Compensation(V2, 0))
	tolassert.Equal(t, 0.0, Compensation(V2, 100))
	tolassert.Equal(t, math.Sqrt(0.5), Compensation(V2, 25))
	tolassert.Equal(t, 0.0, Compensation(V3, 0))
	tolassert.Equal(t, 0.97907, Compensation(V3, 50))
	// tanh keeps v3 from reaching zero at the white end
	tolassert.Equal(t, 0.706, Compensation(V3, 100))
	tolassert.Equal(t, 0.0, Compensation(V2, -20))
	tolassert.Equal(t, 0.0, Compensation(V3, math.NaN()))

	// v3 keeps more chroma than v2 away from the midpoint
	for _, l := range []float64{10, 30, 70, 90} {
		assert.Greater(t, Compensation(V3, l), Compensation(V2, l), l)
	}
}

func TestAdjustHue(t *testing.T) {
	c := Color{HueShift: 30}
	assert.Equal(t, 20.0, c.AdjustHue(350))
	assert.Equal(t, 30.0, c.AdjustHue(math.NaN()))
	c.HueShift = -50
	assert.Equal(t, 330.0, c.AdjustHue(20))
	c.HueShift = 720
	assert.Equal(t, 10.0, c.AdjustHue(10))
	assert.Equal(t, 0.0, WrapHue(360))
}

func TestAdjustChroma(t *testing.T) {
	c := Color{ChromaShift: 50, Algorithm: V1, Lightness: 50}
	assert.Equal(t, 20.0, c.AdjustChroma(40))
	assert.Equal(t, 0.0, c.AdjustChroma(math.NaN()))
	c.Algorithm = V2
	tolassert.Equal(t, 20.0, c.AdjustChroma(40))
}

func TestShiftCartesian(t *testing.T) {
	c := Color{ChromaShift: 100, Algorithm: V1}
	quadrants := [][2]float64{{30, 40}, {-30, 40}, {-30, -40}, {30, -40}, {0, 25}, {0, -25}, {-12, 0}}
	for _, q := range quadrants {
		a, b := c.shiftCartesian(q[0], q[1])
		tolassert.EqualTol(t, q[0], a, 1e-9, q)
		tolassert.EqualTol(t, q[1], b, 1e-9, q)
	}

	c.HueShift = 180
	a, b := c.shiftCartesian(-30, -40)
	tolassert.EqualTol(t, 30, a, 1e-9)
	tolassert.EqualTol(t, 40, b, 1e-9)

	a, b = c.shiftCartesian(0, 0)
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 0.0, b)
}

func TestHueShiftPreservesLightness(t *testing.T) {
	blue := colors.MustFromHex("#3b82f6")
	for _, s := range []Space{LCH, LAB} {
		c := Color{Source: blue, Lightness: 60, HueShift: 45, ChromaShift: 60, Algorithm: V1}
		res := c.Render(s)
		tolassert.EqualTol(t, 60, Coordinates(res.RGB, LCH)[0], 1, s)
	}
}

func TestVisionIsLast(t *testing.T) {
	for _, s := range Spaces() {
		c := Color{Source: red, Lightness: 50, ChromaShift: 100, Algorithm: V2, Vision: vision.Achromatopsia}
		res := c.Render(s)
		u := res.RGB.Uint8()
		assert.Equal(t, u[0], u[1], s)
		assert.Equal(t, u[1], u[2], s)
	}
}

func TestAlpha(t *testing.T) {
	c := Color{Source: red, Lightness: 10, ChromaShift: 100, Algorithm: V1, Alpha: 0.5}
	for _, s := range Spaces() {
		res := c.RenderAlpha(s)
		assert.Equal(t, 0.5, res.Alpha, s)
		assert.Equal(t, "#ff000080", res.Hex(), s)
	}
	c.Alpha = 2
	assert.Equal(t, 1.0, c.LCHA().Alpha)
	assert.Equal(t, "#ff0000", c.LCHA().Hex())
}

func TestMixColorsRGB(t *testing.T) {
	blue := colors.MustFromHex("#0000ff")
	assert.Equal(t, "#8080ff", MixColorsRGB(blue, 0.5, colors.White, vision.None).Hex())
	mixed := MixColorsRGB(blue, 0.5, colors.White, vision.Achromatopsia).Uint8()
	assert.Equal(t, mixed[0], mixed[2])
}

func TestUnknownSpace(t *testing.T) {
	c := Color{Source: red, Lightness: 20, ChromaShift: 100, Vision: vision.Protanopia}
	assert.Equal(t, red, c.Render(Space(99)).RGB)
	assert.Equal(t, red, c.RenderAlpha(Space(99)).RGB)
	assert.Equal(t, [3]float64{1, 0, 0}, Coordinates(red, Space(99)))
}

func TestCoordinates(t *testing.T) {
	grey := colors.MustFromHex("#808080")
	for _, s := range Spaces() {
		v := Coordinates(grey, s)
		for _, x := range v {
			assert.False(t, math.IsNaN(x), s)
		}
	}
	white := Coordinates(colors.White, LCH)
	tolassert.EqualTol(t, 100, white[0], 0.01)
	tolassert.EqualTol(t, 1, Coordinates(colors.White, OKLAB)[0], 0.001)
	tolassert.EqualTol(t, 100, NativeLightness(colors.White, HSL), 1e-9)
	tolassert.EqualTol(t, 100, NativeLightness(colors.White, HSLuv), 0.01)
}

func TestMemo(t *testing.T) {
	m := NewMemo()
	c := Color{Source: red, Lightness: 40, ChromaShift: 100, Algorithm: V3}
	a := m.Render(c, OKLCH, false)
	b := m.Render(c, OKLCH, false)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, m.Hits())
	m.Render(c, OKLCH, true)
	assert.Equal(t, 1, m.Hits())

	var nm *Memo
	assert.Equal(t, a, nm.Render(c, OKLCH, false))
	assert.Equal(t, 0, nm.Hits())
}

func TestEnumText(t *testing.T) {
	var s Space
	require.NoError(t, s.SetString("hsluv"))
	assert.Equal(t, HSLuv, s)
	assert.Error(t, s.SetString("CMYK"))

	b, err := json.Marshal(map[string]any{"space": OKLCH, "algorithm": V2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"space": "OKLCH", "algorithm": "v2"}`, string(b))

	var a Algorithm
	require.NoError(t, json.Unmarshal([]byte(`"V3"`), &a))
	assert.Equal(t, V3, a)
	assert.Error(t, json.Unmarshal([]byte(`"v9"`), &a))
}
