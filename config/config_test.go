// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/palette/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Open(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	fn := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("LogLevel = \"debug\"\nDebounce = \"1s\"\n"), 0o644))
	cfg, err = Open(filepath.Join(dir, "missing.toml"), fn)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
	assert.Equal(t, "json", cfg.Format)

	cfg.Format = "yaml"
	out := filepath.Join(dir, "sub", "saved.toml")
	require.NoError(t, cfg.Save(out))
	again, err := Open(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)

	require.NoError(t, os.WriteFile(fn, []byte("Debounce = \"soon\"\n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("Debounce = \n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, d)

	cfg.Format = "xml"
	cfg.Debounce = "-1s"
	cfg.DB = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
	assert.Contains(t, err.Error(), "Debounce")
	assert.Contains(t, err.Error(), "DB")
}

func TestFormatFor(t *testing.T) {
	for fn, want := range map[string]Format{"a.json": JSON, "b.YAML": YAML, "c.yml": YAML, "d.toml": TOML} {
		f, err := FormatFor(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, want, f, fn)
	}
	_, err := FormatFor("palette.xml")
	assert.Error(t, err)
	assert.Equal(t, "yaml", YAML.String())
}

func testPalette(t *testing.T) *palette.Config {
	cfg := palette.NewConfig("Brand", "TAILWIND")
	require.NoError(t, cfg.AddColor("blue", "Blue", "#3b82f6"))
	require.NoError(t, cfg.AddColor("rose", "Rose", "#e11d48"))
	cfg.Colors[1].Transparency.IsEnabled = true
	cfg.Colors[1].Hue = palette.Shift{Shift: -12.5, IsLocked: true}
	return cfg
}

func TestPaletteFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := testPalette(t)
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		fn := filepath.Join(dir, "palette"+ext)
		require.NoError(t, SavePalette(cfg, fn), ext)
		got, err := OpenPalette(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, cfg.String(), got.String(), ext)
		assert.Equal(t, cfg.Themes[0].Scale.Names(), got.Themes[0].Scale.Names(), ext)
	}

	_, err := OpenPalette(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.Error(t, SavePalette(cfg, filepath.Join(dir, "palette.txt")))
}

func TestDataFiles(t *testing.T) {
	dir := t.TempDir()
	data := palette.Build(testPalette(t), palette.Fresh())
	for _, ext := range []string{".json", ".yml", ".toml"} {
		fn := filepath.Join(dir, "data"+ext)
		require.NoError(t, SaveData(data, fn), ext)
		got, err := OpenData(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, data, got, ext)
	}
}

func TestHandWrittenYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "palette.yaml")
	src := `
name: Hand
colorSpace: OKLCH
algorithmVersion: v2
shift: {chroma: 100, hue: 0}
colors:
  - id: green
    name: Green
    rgb: {r: 0.13, g: 0.77, b: 0.37}
themes:
  - id: light
    name: Light
    type: default
    isEnabled: true
    paletteBackground: "#ffffff"
    textColorsTheme: {lightColor: "#ffffff", darkColor: "#000000"}
    scale:
      900: 20
      50: 95
      500: 55
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	cfg, err := OpenPalette(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"50", "500", "900"}, cfg.Themes[0].Scale.Names())
	assert.Equal(t, "OKLCH", cfg.ColorSpace.String())

	data := palette.Build(cfg, palette.Fresh())
	assert.Len(t, data.Themes[0].Colors[0].Shades, 4)

	require.NoError(t, os.WriteFile(fn, []byte("themes: [\n"), 0o644))
	_, err = OpenPalette(fn)
	assert.Error(t, err)
}

func TestHandWrittenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "palette.toml")
	src := `
name = "Hand"
colorSpace = "HSLUV"
algorithmVersion = "v3"

[shift]
chroma = 100
hue = 0

[[colors]]
id = "green"
name = "Green"
rgb = { r = 0.13, g = 0.77, b = 0.37 }

[[themes]]
id = "light"
name = "Light"
type = "default"
isEnabled = true
paletteBackground = "#ffffff"
textColorsTheme = { lightColor = "#ffffff", darkColor = "#000000" }

[themes.scale]
100 = 90
10 = 10
50 = 50
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	cfg, err := OpenPalette(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"100", "50", "10"}, cfg.Themes[0].Scale.Names())

	require.NoError(t, os.WriteFile(fn, []byte("colorSpace = \"CMYK\"\n"), 0o644))
	_, err = OpenPalette(fn)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	data := palette.Build(testPalette(t), palette.Fresh())
	for _, name := range []string{"json", "yaml", "toml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Write(data, &buf, f), name)
		assert.Contains(t, buf.String(), "isClosestToRef", name)
		assert.Contains(t, buf.String(), "Brand", name)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
