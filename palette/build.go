// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"log/slog"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/space"
)

// ClosestToRefDistance is the RGB distance (0-255 space) under which the
// closest generated shade is flagged as close to the source color.
const ClosestToRefDistance = 4

// SourceShadeName is the name of the shade holding the source color.
const SourceShadeName = "source"

// Basis is what a palette is built on: nothing ([Fresh]) or previously
// generated data whose external resource ids are carried over to the
// matching shades ([Correlated]).
type Basis interface {
	previous() *Data
}

type fresh struct{}

func (fresh) previous() *Data { return nil }

type correlated struct {
	prev *Data
}

func (c correlated) previous() *Data { return c.prev }

// Fresh returns the basis of a newly created palette.
func Fresh() Basis { return fresh{} }

// Correlated returns the basis of an edited palette, whose previous data
// is consulted only for the style and variable ids of its shades.
// A nil previous is the same as [Fresh].
func Correlated(prev *Data) Basis {
	if prev == nil {
		return fresh{}
	}
	return correlated{prev: prev}
}

// shadeKey identifies a shade across builds.
type shadeKey struct {
	theme, color, shade string
}

// builder holds the state of one [Build] call.
type builder struct {
	cfg  *Config
	ids  map[shadeKey][2]string
	memo *space.Memo

	// misses counts shades without previous ids when correlating.
	misses int
}

// Build generates the palette data of the configuration. It is a pure
// function of its inputs: the basis only provides ids for correlation.
// Building the same configuration on the same basis always gives the
// same data.
func Build(cfg *Config, basis Basis) *Data {
	if basis == nil {
		basis = Fresh()
	}
	b := &builder{cfg: cfg, memo: space.NewMemo()}
	b.index(basis.previous())
	data := &Data{
		Name:        cfg.Name,
		Description: cfg.Description,
		Themes:      make([]ThemeData, 0, len(cfg.Themes)),
		Type:        dataType,
	}
	for i := range cfg.Themes {
		data.Themes = append(data.Themes, b.theme(&cfg.Themes[i]))
	}
	slog.Debug("palette: built", "name", cfg.Name, "themes", len(data.Themes), "colors", len(cfg.Colors), "memoHits", b.memo.Hits(), "idMisses", b.misses)
	return data
}

// BuildTheme generates the data of one theme of the configuration,
// which is what a live preview needs.
func BuildTheme(cfg *Config, th *Theme, basis Basis) ThemeData {
	if basis == nil {
		basis = Fresh()
	}
	b := &builder{cfg: cfg, memo: space.NewMemo()}
	b.index(basis.previous())
	return b.theme(th)
}

func (b *builder) index(prev *Data) {
	b.ids = map[shadeKey][2]string{}
	if prev == nil {
		return
	}
	for _, th := range prev.Themes {
		for _, c := range th.Colors {
			for _, s := range c.Shades {
				if s.StyleID == "" && s.VariableID == "" {
					continue
				}
				b.ids[shadeKey{th.ID, c.ID, s.Name}] = [2]string{s.StyleID, s.VariableID}
			}
		}
	}
}

// correlate sets the external ids of the shade from the previous data.
// A missing shade keeps empty ids, so a new resource gets created.
func (b *builder) correlate(s *Shade, themeID, colorID string) {
	ids, ok := b.ids[shadeKey{themeID, colorID, s.Name}]
	if !ok {
		if len(b.ids) > 0 {
			b.misses++
		}
		return
	}
	s.StyleID, s.VariableID = ids[0], ids[1]
}

func (b *builder) theme(th *Theme) ThemeData {
	td := ThemeData{
		ID:          th.ID,
		Name:        th.Name,
		Description: th.Description,
		Type:        th.Type,
		Colors:      make([]ColorData, 0, len(b.cfg.Colors)),
	}
	for i := range b.cfg.Colors {
		td.Colors = append(td.Colors, b.color(th, &b.cfg.Colors[i]))
	}
	return td
}

// shifts returns the hue and chroma shifts used by the color.
func (b *builder) shifts(sc *SourceColor) (hue, chroma float64) {
	hue, chroma = b.cfg.Shift.Hue, b.cfg.Shift.Chroma
	if sc.Hue.IsLocked {
		hue = sc.Hue.Shift
	}
	if sc.Chroma.IsLocked {
		chroma = sc.Chroma.Shift
	}
	return
}

func (b *builder) color(th *Theme, sc *SourceColor) ColorData {
	cd := ColorData{
		ID:           sc.ID,
		Name:         sc.Name,
		Description:  sc.Description,
		Transparency: sc.Transparency,
		Type:         colorType,
	}
	src := sc.RGB.Clamped()
	source := newShade(SourceShadeName, src, SourceShade)
	source.Description = sc.Description
	b.correlate(&source, th.ID, sc.ID)

	stops := th.Scale.Sorted().Stops()
	cd.Shades = make([]Shade, 0, len(stops)+1)
	cd.Shades = append(cd.Shades, source)

	hue, chroma := b.shifts(sc)
	base := space.Color{
		Source:      src,
		HueShift:    hue,
		ChromaShift: chroma,
		Algorithm:   b.cfg.AlgorithmVersion,
		Vision:      th.VisionSimulationMode,
	}

	if sc.Transparency.IsEnabled {
		bg := parseHex(sc.Transparency.BackgroundColor, colors.White)
		for _, st := range stops {
			c := base
			c.Alpha = st.Value / 100
			res := b.memo.Render(c, b.cfg.ColorSpace, true)
			s := newShade(st.Name, res.RGB, GeneratedShade)
			alpha := res.Alpha
			bgRGB := rgb255(bg)
			s.Alpha = &alpha
			s.GL[3] = alpha
			s.BackgroundColor = &bgRGB
			s.MixedColor = space.MixColorsRGB(res.RGB, alpha, bg, th.VisionSimulationMode).Hex()
			s.IsTransparent = true
			b.correlate(&s, th.ID, sc.ID)
			cd.Shades = append(cd.Shades, s)
		}
		return cd
	}

	closest, dist := -1, 0.0
	for i, st := range stops {
		c := base
		c.Lightness = st.Value
		res := b.memo.Render(c, b.cfg.ColorSpace, false)
		if d := colors.Distance(res.RGB, src); closest < 0 || d < dist {
			closest, dist = i+1, d
		}
		s := newShade(st.Name, res.RGB, GeneratedShade)
		b.correlate(&s, th.ID, sc.ID)
		cd.Shades = append(cd.Shades, s)
	}
	if closest < 0 {
		return cd
	}
	s := &cd.Shades[closest]
	switch {
	case b.cfg.AreSourceColorsLocked:
		locked := newShade(s.Name, src, GeneratedShade)
		locked.StyleID, locked.VariableID = s.StyleID, s.VariableID
		locked.IsSourceColorLocked = true
		*s = locked
	case dist < ClosestToRefDistance:
		s.IsClosestToRef = true
	}
	return cd
}

// newShade returns a shade of the given color with all of its
// representations filled in.
func newShade(name string, c colors.RGB, typ ShadeType) Shade {
	return Shade{
		Name:  name,
		Hex:   c.Hex(),
		RGB:   rgb255(c),
		GL:    [4]float64{c.R, c.G, c.B, 1},
		LCH:   space.Coordinates(c, space.LCH),
		OKLCH: space.Coordinates(c, space.OKLCH),
		LAB:   space.Coordinates(c, space.LAB),
		OKLAB: space.Coordinates(c, space.OKLAB),
		HSL:   space.Coordinates(c, space.HSL),
		HSLuv: space.Coordinates(c, space.HSLuv),
		Type:  typ,
	}
}

// parseHex parses the hex color, returning def if it is invalid.
func parseHex(hex string, def colors.RGB) colors.RGB {
	c, _, err := colors.FromHex(hex)
	if err != nil {
		return def
	}
	return c
}

// rgb255 returns the color as rounded 0-255 components.
func rgb255(c colors.RGB) [3]float64 {
	u := c.Uint8()
	return [3]float64{float64(u[0]), float64(u[1]), float64(u[2])}
}
