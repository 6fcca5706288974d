// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the sRGB color type shared by the palette
// packages, along with hex parsing and formatting, RGB distance
// and alpha compositing.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/palette/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque sRGB color with gamma-corrected components
// normalized to the 0-1 range.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Standard colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// FromRGB255 returns the color with the given 0-255 components.
func FromRGB255(r, g, b float64) RGB {
	return RGB{r / 255, g / 255, b / 255}
}

// FromColorful returns the color for the given [colorful.Color].
func FromColorful(c colorful.Color) RGB {
	return RGB{c.R, c.G, c.B}
}

// Colorful returns the color as a [colorful.Color].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGB255 returns the components scaled to 0-255, without rounding.
func (c RGB) RGB255() [3]float64 {
	return [3]float64{c.R * 255, c.G * 255, c.B * 255}
}

// Clamped returns the color with each component clamped to 0-1.
// NaN components become 0.
func (c RGB) Clamped() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// IsValid returns whether all of the components are within 0-1.
func (c RGB) IsValid() bool {
	return c.Colorful().IsValid()
}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	cl := c.Clamped()
	r = uint32(math.Round(cl.R * 65535))
	g = uint32(math.Round(cl.G * 65535))
	b = uint32(math.Round(cl.B * 65535))
	a = 0xffff
	return
}

// Uint8 returns the components clamped and rounded to 0-255.
func (c RGB) Uint8() [3]uint8 {
	cl := c.Clamped()
	return [3]uint8{to255(cl.R), to255(cl.G), to255(cl.B)}
}

// Hex returns the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	u := c.Uint8()
	return fmt.Sprintf("#%02x%02x%02x", u[0], u[1], u[2])
}

// HexAlpha returns the color as a lowercase #rrggbbaa string
// with the given 0-1 alpha.
func (c RGB) HexAlpha(alpha float64) string {
	return c.Hex() + fmt.Sprintf("%02x", to255(clamp01(alpha)))
}

// Rounded returns the color with its components rounded
// to the nearest 0-255 step, which is what [RGB.Hex] encodes.
func (c RGB) Rounded() RGB {
	u := c.Uint8()
	return FromRGB255(float64(u[0]), float64(u[1]), float64(u[2]))
}

func (c RGB) String() string {
	return c.Hex()
}

// FromHex parses the given hex color string (#rgb, #rrggbb or #rrggbbaa,
// with the # optional) and returns the resulting color and alpha.
func FromHex(hex string) (RGB, float64, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return RGB{}, 0, errors.New("colors.FromHex: could not process: " + hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, 0, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	alpha := 1.0
	if len(h) == 8 {
		alpha = float64(v&0xff) / 255
		v >>= 8
	}
	return FromRGB255(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)), alpha, nil
}

// MustFromHex is like [FromHex] but panics on error and ignores alpha.
// It is intended for package-level constants.
func MustFromHex(hex string) RGB {
	c, _, err := FromHex(hex)
	errors.Must(err)
	return c
}

// Distance returns the Euclidean distance between the two colors
// in 0-255 RGB space.
func Distance(a, b RGB) float64 {
	dr := (a.R - b.R) * 255
	dg := (a.G - b.G) * 255
	db := (a.B - b.B) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Over composites the given foreground color with the given 0-1 alpha
// over the given opaque background, using the standard source-over operator.
func Over(fg RGB, alpha float64, bg RGB) RGB {
	a := clamp01(alpha)
	return RGB{
		R: fg.R*a + bg.R*(1-a),
		G: fg.G*a + bg.G*(1-a),
		B: fg.B*a + bg.B*(1-a),
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func to255(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
