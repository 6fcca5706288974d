// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEditor(t *testing.T) *Editor {
	cfg := testConfig(t, "#3b82f6", "#e11d48")
	dark := cfg.Themes[0]
	dark.ID = "dark"
	dark.IsEnabled = false
	dark.Scale = dark.Scale.Clone()
	cfg.Themes = append(cfg.Themes, dark)
	ed, err := NewEditor(cfg, Fresh())
	require.NoError(t, err)
	return ed
}

func TestEditorPreview(t *testing.T) {
	ed := testEditor(t)
	before := ed.Data()
	live, _ := ed.Config().LiveTheme()
	old, _ := before.Lookup(live.ID, "c0", "500")
	oldHex := old.Hex

	assert.False(t, ed.Dirty())
	td, err := ed.Preview("500", 20)
	require.NoError(t, err)
	assert.True(t, ed.Dirty())
	assert.Equal(t, live.ID, td.ID)
	require.Len(t, td.Colors, 2)

	var preview *Shade
	for i, s := range td.Colors[0].Shades {
		if s.Name == "500" {
			preview = &td.Colors[0].Shades[i]
		}
	}
	require.NotNil(t, preview)
	assert.NotEqual(t, oldHex, preview.Hex)

	// the committed data is unchanged until commit
	s, _ := ed.Data().Lookup(live.ID, "c0", "500")
	assert.Equal(t, oldHex, s.Hex)

	_, err = ed.Preview("nope", 20)
	assert.Error(t, err)

	data := ed.Commit()
	assert.False(t, ed.Dirty())
	s, _ = data.Lookup(live.ID, "c0", "500")
	assert.Equal(t, preview.Hex, s.Hex)
	// only the live theme was edited
	s, _ = data.Lookup("dark", "c0", "500")
	assert.Equal(t, oldHex, s.Hex)
}

func TestEditorCommitCorrelates(t *testing.T) {
	ed := testEditor(t)
	live, _ := ed.Config().LiveTheme()
	s, ok := ed.Data().Lookup(live.ID, "c1", "700")
	require.True(t, ok)
	s.StyleID = "style-700"
	s.VariableID = "var-700"

	td, err := ed.Preview("700", 25)
	require.NoError(t, err)
	for _, sh := range td.Colors[1].Shades {
		if sh.Name == "700" {
			assert.Equal(t, "style-700", sh.StyleID)
		}
	}

	data := ed.Commit()
	s, _ = data.Lookup(live.ID, "c1", "700")
	assert.Equal(t, "style-700", s.StyleID)
	assert.Equal(t, "var-700", s.VariableID)
	s, _ = data.Lookup("dark", "c1", "700")
	assert.Equal(t, "", s.StyleID)
}

func TestEditorRevert(t *testing.T) {
	ed := testEditor(t)
	before := ed.Config().String()
	_, err := ed.Distribute("300", 40)
	require.NoError(t, err)
	assert.True(t, ed.Dirty())
	ed.Revert()
	assert.False(t, ed.Dirty())
	assert.Equal(t, before, ed.Config().String())
}

func TestEditorStops(t *testing.T) {
	ed := testEditor(t)
	td, err := ed.AddStop("150", 2)
	require.NoError(t, err)
	assert.Len(t, td.Colors[0].Shades, 12)
	for _, th := range ed.Config().Themes {
		assert.Equal(t, 11, th.Scale.Len())
		assert.Equal(t, 2, th.Scale.Index("150"))
		first, last := th.Scale.Bounds()
		assert.Equal(t, 96.0, first)
		assert.Equal(t, 24.0, last)
	}
	_, err = ed.AddStop("150", 0)
	assert.Error(t, err)

	td, err = ed.RemoveStop("900")
	require.NoError(t, err)
	assert.Len(t, td.Colors[0].Shades, 11)
	_, err = ed.RemoveStop("900")
	assert.Error(t, err)

	data := ed.Commit()
	_, ok := data.Lookup("dark", "c0", "150")
	assert.True(t, ok)
	_, ok = data.Lookup("dark", "c0", "900")
	assert.False(t, ok)
}

func TestEditorDistribute(t *testing.T) {
	ed := testEditor(t)
	_, err := ed.Distribute("500", 50)
	require.NoError(t, err)
	live, _ := ed.Config().LiveTheme()
	v, _ := live.Scale.Value("500")
	assert.Equal(t, 50.0, v)
	vs := live.Scale.Values()
	for i := 1; i < len(vs); i++ {
		assert.Less(t, vs[i], vs[i-1])
	}
	_, err = ed.Distribute("nope", 50)
	assert.Error(t, err)
}

func TestEditorPreset(t *testing.T) {
	ed := testEditor(t)
	td, err := ed.ApplyPreset("ADOBE")
	require.NoError(t, err)
	assert.Len(t, td.Colors[0].Shades, 15)
	assert.Equal(t, "ADOBE", ed.Config().Preset)
	_, err = ed.ApplyPreset("nope")
	assert.Error(t, err)

	data := ed.Commit()
	_, ok := data.Lookup("dark", "c1", "1400")
	assert.True(t, ok)
}

func TestEditorUpdate(t *testing.T) {
	ed := testEditor(t)
	require.NoError(t, ed.Update(func(cfg *Config) {
		cfg.AreSourceColorsLocked = true
	}))
	assert.True(t, ed.Config().AreSourceColorsLocked)
	assert.Error(t, ed.Update(func(cfg *Config) {
		cfg.Themes[1].IsEnabled = true
	}))
	assert.False(t, ed.Config().Themes[1].IsEnabled)

	data := ed.Commit()
	locked := 0
	allShades(data, func(th *ThemeData, c *ColorData, s *Shade) {
		if s.IsSourceColorLocked {
			locked++
		}
	})
	assert.Equal(t, 4, locked)

	_, err := NewEditor(&Config{}, Fresh())
	assert.Error(t, err)
}
