// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space generates shades of a source color in one of six color
// spaces: the source is decomposed in the target space, its lightness
// channel is replaced, its hue and chroma are shifted and compensated,
// and the result is recomposed to sRGB and passed through the color
// vision deficiency simulation.
package space

import (
	"math"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/vision"
	"github.com/lucasb-eyer/go-colorful"
)

// Color describes one shade to generate from a source color.
type Color struct {

	// Source is the color the shade is derived from.
	Source colors.RGB

	// Lightness is the target lightness on a unified 0-100 scale,
	// rescaled to the native range of each space.
	Lightness float64

	// HueShift is added to the source hue, in degrees.
	HueShift float64

	// ChromaShift is the percent of the source chroma to keep
	// before compensation; 100 leaves it unchanged.
	ChromaShift float64

	// Algorithm is the chroma compensation version.
	Algorithm Algorithm

	// Vision is the deficiency simulated on the result.
	Vision vision.Mode

	// Alpha is the 0-1 opacity used by the alpha variants.
	Alpha float64
}

// Result is a generated shade.
type Result struct {

	// RGB is the final color, clamped to the sRGB gamut
	// and with the vision simulation applied.
	RGB colors.RGB

	// Alpha is the 0-1 opacity; it is 1 for opaque results.
	Alpha float64

	// Target holds the requested coordinates in the generating space,
	// before gamut clamping, in the units of [Coordinates].
	Target [3]float64
}

// Hex returns the result as #rrggbb, or #rrggbbaa when it is translucent.
func (r Result) Hex() string {
	if r.Alpha < 1 {
		return r.RGB.HexAlpha(r.Alpha)
	}
	return r.RGB.Hex()
}

// RGB255 returns the result as rounded 0-255 components.
func (r Result) RGB255() [3]float64 {
	u := r.RGB.Uint8()
	return [3]float64{float64(u[0]), float64(u[1]), float64(u[2])}
}

// AdjustHue adds the hue shift to the given hue in degrees,
// wrapping the result into [0, 360).
func (c Color) AdjustHue(hue float64) float64 {
	return WrapHue(nanToZero(hue) + c.HueShift)
}

// AdjustChroma scales the given chroma by the chroma shift and then
// applies the compensation curve of the algorithm at the target lightness.
func (c Color) AdjustChroma(chroma float64) float64 {
	ch := nanToZero(chroma) * c.ChromaShift / 100
	return ch * Compensation(c.Algorithm, c.Lightness)
}

// Compensation returns the chroma factor of the given algorithm
// at the given 0-100 lightness. Unknown algorithms return 1.
func Compensation(a Algorithm, lightness float64) float64 {
	l := min(max(nanToZero(lightness), 0), 100) / 100
	switch a {
	case V2:
		return max(math.Sin(l*math.Pi), 0)
	case V3:
		s := math.Sin(l * math.Pi)
		t := math.Tanh(l * math.Pi)
		return math.Sqrt(max(s*0.5+t*0.5, 0))
	default:
		return 1
	}
}

// WrapHue wraps the given hue in degrees into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(nanToZero(h), 360)
	if h < 0 {
		h += 360
	}
	return h
}

// LCH returns the shade generated in the LCH space.
func (c Color) LCH() Result {
	h, ch, _ := c.Source.Colorful().Hcl()
	nc := c.AdjustChroma(ch * 100)
	nh := c.AdjustHue(h)
	res := colorful.Hcl(nh, nc/100, c.Lightness/100)
	return c.finish(res, [3]float64{c.Lightness, nc, nh})
}

// OKLCH returns the shade generated in the OKLCH space.
func (c Color) OKLCH() Result {
	_, ch, h := c.Source.Colorful().OkLch()
	nc := c.AdjustChroma(ch)
	nh := c.AdjustHue(h)
	l := c.Lightness / 100
	res := colorful.OkLch(l, nc, nh)
	return c.finish(res, [3]float64{l, nc, nh})
}

// LAB returns the shade generated in the LAB space.
func (c Color) LAB() Result {
	_, a, b := c.Source.Colorful().Lab()
	na, nb := c.shiftCartesian(a*100, b*100)
	res := colorful.Lab(c.Lightness/100, na/100, nb/100)
	return c.finish(res, [3]float64{c.Lightness, na, nb})
}

// OKLAB returns the shade generated in the OKLAB space.
func (c Color) OKLAB() Result {
	_, a, b := c.Source.Colorful().OkLab()
	na, nb := c.shiftCartesian(a, b)
	l := c.Lightness / 100
	res := colorful.OkLab(l, na, nb)
	return c.finish(res, [3]float64{l, na, nb})
}

// HSL returns the shade generated in the HSL space,
// where saturation plays the role of chroma.
func (c Color) HSL() Result {
	h, s, _ := c.Source.Colorful().Hsl()
	ns := c.AdjustChroma(s)
	nh := c.AdjustHue(h)
	l := c.Lightness / 100
	res := colorful.Hsl(nh, min(ns, 1), l)
	return c.finish(res, [3]float64{nh, ns, l})
}

// HSLuv returns the shade generated in the HSLuv space,
// where saturation plays the role of chroma.
func (c Color) HSLuv() Result {
	h, s, _ := c.Source.Colorful().HSLuv()
	ns := c.AdjustChroma(s * 100)
	nh := c.AdjustHue(h)
	res := colorful.HSLuv(nh, min(ns, 100)/100, c.Lightness/100)
	return c.finish(res, [3]float64{nh, ns, c.Lightness})
}

// LCHA is like [Color.LCH] but keeps the native lightness of the
// source and returns a translucent result with [Color.Alpha].
func (c Color) LCHA() Result { return c.withAlpha(LCH) }

// OKLCHA is the alpha variant of [Color.OKLCH]; see [Color.LCHA].
func (c Color) OKLCHA() Result { return c.withAlpha(OKLCH) }

// LABA is the alpha variant of [Color.LAB]; see [Color.LCHA].
func (c Color) LABA() Result { return c.withAlpha(LAB) }

// OKLABA is the alpha variant of [Color.OKLAB]; see [Color.LCHA].
func (c Color) OKLABA() Result { return c.withAlpha(OKLAB) }

// HSLA is the alpha variant of [Color.HSL]; see [Color.LCHA].
func (c Color) HSLA() Result { return c.withAlpha(HSL) }

// HSLuvA is the alpha variant of [Color.HSLuv]; see [Color.LCHA].
func (c Color) HSLuvA() Result { return c.withAlpha(HSLuv) }

// Render returns the shade generated in the given space.
// An unknown space returns the source unchanged.
func (c Color) Render(s Space) Result {
	switch s {
	case LCH:
		return c.LCH()
	case OKLCH:
		return c.OKLCH()
	case LAB:
		return c.LAB()
	case OKLAB:
		return c.OKLAB()
	case HSL:
		return c.HSL()
	case HSLuv:
		return c.HSLuv()
	default:
		return Result{RGB: c.Source, Alpha: 1, Target: Coordinates(c.Source, LCH)}
	}
}

// RenderAlpha returns the translucent shade generated in the given space.
// An unknown space returns the source unchanged with [Color.Alpha].
func (c Color) RenderAlpha(s Space) Result {
	switch s {
	case LCH:
		return c.LCHA()
	case OKLCH:
		return c.OKLCHA()
	case LAB:
		return c.LABA()
	case OKLAB:
		return c.OKLABA()
	case HSL:
		return c.HSLA()
	case HSLuv:
		return c.HSLuvA()
	default:
		return Result{RGB: c.Source, Alpha: clampAlpha(c.Alpha), Target: Coordinates(c.Source, LCH)}
	}
}

// MixColorsRGB composites the translucent foreground over the opaque
// background and simulates the given vision deficiency on the composite,
// which is how the color actually renders.
func MixColorsRGB(fg colors.RGB, alpha float64, bg colors.RGB, mode vision.Mode) colors.RGB {
	return vision.Simulate(colors.Over(fg, alpha, bg), mode)
}

func (c Color) withAlpha(s Space) Result {
	nc := c
	nc.Lightness = NativeLightness(c.Source, s)
	res := nc.Render(s)
	res.Alpha = clampAlpha(c.Alpha)
	return res
}

// shiftCartesian converts the a/b channels to polar form, shifts
// and compensates them, and converts them back.
func (c Color) shiftCartesian(a, b float64) (na, nb float64) {
	ch := math.Hypot(a, b)
	h := 0.0
	if ch > 1e-12 {
		h = math.Atan2(b, a) * 180 / math.Pi
	}
	nc := c.AdjustChroma(ch)
	nh := c.AdjustHue(h) * math.Pi / 180
	return nanToZero(nc * math.Cos(nh)), nanToZero(nc * math.Sin(nh))
}

func (c Color) finish(res colorful.Color, target [3]float64) Result {
	rgb := colors.FromColorful(res).Clamped()
	return Result{
		RGB:    vision.Simulate(rgb, c.Vision),
		Alpha:  1,
		Target: target,
	}
}

func clampAlpha(a float64) float64 {
	return min(max(nanToZero(a), 0), 1)
}

func nanToZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
