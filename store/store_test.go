// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/palette/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	st, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testConfig(t *testing.T, name string) *palette.Config {
	cfg := palette.NewConfig(name, "MATERIAL")
	require.NoError(t, cfg.AddColor("blue", "Blue", "#3b82f6"))
	return cfg
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	cfg := testConfig(t, "Brand")
	rec := &Record{Config: cfg, Data: palette.Build(cfg, palette.Fresh())}
	require.NoError(t, st.Save(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Brand", rec.Name)
	assert.False(t, rec.UpdatedAt.IsZero())

	got, err := st.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Brand", got.Name)
	assert.Equal(t, cfg.String(), got.Config.String())
	assert.Equal(t, rec.Data, got.Data)
	assert.True(t, rec.UpdatedAt.Equal(got.UpdatedAt))

	rec.Name = "Renamed"
	rec.Data = nil
	require.NoError(t, st.Save(ctx, rec))
	got, err = st.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Nil(t, got.Data)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.Save(ctx, &Record{}), ErrInvalidRecord)
	assert.ErrorIs(t, st.Save(ctx, nil), ErrInvalidRecord)
}

func TestListDelete(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	list, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	a := &Record{ID: "a", Config: testConfig(t, "A")}
	b := &Record{ID: "b", Config: testConfig(t, "B")}
	require.NoError(t, st.Save(ctx, a))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, st.Save(ctx, b))

	list, err = st.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, st.Save(ctx, a))
	list, err = st.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", list[0].ID)

	require.NoError(t, st.Delete(ctx, "a"))
	assert.ErrorIs(t, st.Delete(ctx, "a"), ErrNotFound)
	list, err = st.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Name)
}

func TestBuildCorrelates(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	cfg := testConfig(t, "Brand")
	rec, err := st.Build(ctx, "", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	basis, err := st.Previous(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, palette.Fresh(), basis)

	// bind an external resource to one shade
	th := cfg.Themes[0].ID
	s, ok := rec.Data.Lookup(th, "blue", "500")
	require.True(t, ok)
	s.StyleID = "S:500"
	require.NoError(t, st.Save(ctx, rec))

	cfg.Themes[0].Scale.Set("500", 40)
	next, err := st.Build(ctx, rec.ID, cfg)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, next.ID)
	s, ok = next.Data.Lookup(th, "blue", "500")
	require.True(t, ok)
	assert.Equal(t, "S:500", s.StyleID)

	got, err := st.Get(ctx, rec.ID)
	require.NoError(t, err)
	s, _ = got.Data.Lookup(th, "blue", "500")
	assert.Equal(t, "S:500", s.StyleID)

	cfg.Themes[0].IsEnabled = false
	_, err = st.Build(ctx, rec.ID, cfg)
	assert.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "palettes.db")
	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, &Record{ID: "x", Config: testConfig(t, "X")}))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()
	rec, err := st.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "X", rec.Name)
}
