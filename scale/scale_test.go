// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"encoding/json"
	"fmt"
	"testing"

	"cogentcore.org/palette/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func assertMonotonic(t *testing.T, s *Scale, msgAndArgs ...any) {
	t.Helper()
	vs := s.Values()
	for i := 1; i < len(vs); i++ {
		assert.Less(t, vs[i], vs[i-1], msgAndArgs...)
	}
}

func TestEase(t *testing.T) {
	for _, e := range append(Easings(), Easing(99)) {
		assert.Equal(t, 0.0, e.Ease(0), e)
		tolassert.EqualTol(t, 1.0, e.Ease(1), 1e-12, e)
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.Ease(float64(i) / 100)
			assert.Greater(t, v, prev, e)
			prev = v
		}
	}
	assert.Equal(t, 0.25, EaseIn.Ease(0.5))
	assert.Equal(t, 0.5, EaseInOut.Ease(0.5))
	assert.Equal(t, 0.125, FastEaseIn.Ease(0.5))
	assert.Equal(t, 0.3, None.Ease(0.3))
	assert.Equal(t, 1.0, Linear.Ease(7))
}

func TestBuild(t *testing.T) {
	for _, e := range Easings() {
		for _, n := range []int{2, 3, 5, 10, 24} {
			s := BuildCount(n, 10, 90, e)
			require.Equal(t, n, s.Len())
			first, last := s.Bounds()
			assert.Equal(t, 90.0, first)
			assert.Equal(t, 10.0, last)
			assertMonotonic(t, s, e, n)
			for _, v := range s.Values() {
				assert.GreaterOrEqual(t, v, 10.0)
				assert.LessOrEqual(t, v, 90.0)
			}
		}
	}

	s := Build([]string{"a", "b", "c", "d", "e"}, 10, 90, Linear)
	assert.Equal(t, []float64{90, 70, 50, 30, 10}, s.Values())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.Names())

	assert.Equal(t, 1, BuildCount(0, 0, 100, Linear).Len())
	assert.Equal(t, MaxStops, BuildCount(100, 0, 100, Linear).Len())
	assert.Equal(t, "24", BuildCount(30, 0, 100, Linear).Names()[23])

	one := Build([]string{"x"}, 10, 90, EaseIn)
	assert.Equal(t, []float64{90}, one.Values())
}

func TestDistribute(t *testing.T) {
	s := Build([]string{"a", "b", "c", "d", "e"}, 10, 90, Linear)

	d := Distribute(s, "b", 50, Linear)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, d.Names())
	tolassert.EqualSlice(t, []float64{90, 50, 110.0 / 3, 70.0 / 3, 10}, d.Values(), 1e-9)
	// the input is not modified
	assert.Equal(t, []float64{90, 70, 50, 30, 10}, s.Values())

	d = Distribute(s, "c", 200, Linear)
	assert.Equal(t, []float64{90, 90, 90, 50, 10}, d.Values())

	d = Distribute(s, "a", 70, Linear)
	assert.Equal(t, []float64{70, 55, 40, 25, 10}, d.Values())

	d = Distribute(s, "e", 30, EaseOut)
	first, last := d.Bounds()
	assert.Equal(t, 90.0, first)
	assert.Equal(t, 30.0, last)
	assertMonotonic(t, d)

	assert.Equal(t, s.Values(), Distribute(s, "zz", 1, Linear).Values())
}

func TestAddRemoveStop(t *testing.T) {
	s := Build([]string{"a", "b", "c"}, 20, 80, Linear)

	a := AddStop(s, "x", 1, Linear)
	assert.Equal(t, []string{"a", "x", "b", "c"}, a.Names())
	tolassert.EqualSlice(t, []float64{80, 60, 40, 20}, a.Values(), 1e-9)

	a = AddStop(s, "z", 99, Linear)
	assert.Equal(t, []string{"a", "b", "c", "z"}, a.Names())
	first, last := a.Bounds()
	assert.Equal(t, 80.0, first)
	assert.Equal(t, 20.0, last)

	assert.Equal(t, s.Names(), AddStop(s, "b", 0, Linear).Names())
	full := BuildCount(MaxStops, 0, 100, Linear)
	assert.Equal(t, MaxStops, AddStop(full, "new", 0, Linear).Len())

	r := RemoveStop(a, "a", Linear)
	assert.Equal(t, []string{"b", "c", "z"}, r.Names())
	assert.Equal(t, []float64{80, 50, 20}, r.Values())
	assert.Equal(t, 4, RemoveStop(a, "nope", Linear).Len())
}

func TestRescale(t *testing.T) {
	s := Build([]string{"a", "b"}, 5, 95, Linear)
	r := Rescale(s, CountNames(10), SlowEaseInOut)
	assert.Equal(t, 10, r.Len())
	first, last := r.Bounds()
	assert.Equal(t, 95.0, first)
	assert.Equal(t, 5.0, last)
	assertMonotonic(t, r)

	r = Rescale(nil, []string{"p", "q", "r"}, Linear)
	assert.Equal(t, []float64{100, 50, 0}, r.Values())
}

func TestSorted(t *testing.T) {
	s := New(Stop{"a", 20}, Stop{"b", 90}, Stop{"c", 50}, Stop{"d", 50})
	so := s.Sorted()
	assert.Equal(t, []string{"b", "c", "d", "a"}, so.Names())
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Names())
}

func TestScaleEdit(t *testing.T) {
	s := New(Stop{"a", 1}, Stop{"b", 2})
	assert.True(t, s.Insert(1, "x", 5))
	assert.False(t, s.Insert(0, "a", 5))
	assert.Equal(t, []string{"a", "x", "b"}, s.Names())
	assert.True(t, s.Delete("x"))
	assert.False(t, s.Delete("x"))
	v, ok := s.Value("b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	var ns *Scale
	assert.Equal(t, 0, ns.Len())
	assert.Equal(t, -1, ns.Index("a"))
	assert.Empty(t, ns.Stops())
}

func TestJSON(t *testing.T) {
	s := New(Stop{"50", 96}, Stop{"100", 90}, Stop{"900", 24.5})
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"50":96,"100":90,"900":24.5}`, string(b))

	var d Scale
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "a": 2, "m": 3}`), &d))
	assert.Equal(t, []string{"z", "a", "m"}, d.Names())

	type theme struct {
		Scale *Scale `json:"scale"`
	}
	var th theme
	require.NoError(t, json.Unmarshal([]byte(`{"scale": {"b": 2, "a": 1}}`), &th))
	assert.Equal(t, []string{"b", "a"}, th.Scale.Names())
}

func TestYAML(t *testing.T) {
	s := New(Stop{"50", 96}, Stop{"100", 90}, Stop{"10", 24.5})
	b, err := yaml.Marshal(s)
	require.NoError(t, err)

	var d Scale
	require.NoError(t, yaml.Unmarshal(b, &d))
	assert.Equal(t, s.Stops(), d.Stops())

	assert.Error(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &d))
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		s := p.Scale()
		assert.Equal(t, len(p.Stops), s.Len(), p.ID)
		assert.LessOrEqual(t, s.Len(), MaxStops)
		assertMonotonic(t, s, p.ID)
		first, last := s.Bounds()
		assert.Equal(t, p.Max, first)
		assert.Equal(t, p.Min, last)
	}

	p, ok := PresetByID("material_3")
	require.True(t, ok)
	assert.Equal(t, "100", p.Stops[0])
	v, _ := p.Scale().Value("40")
	tolassert.Equal(t, 40.0, v)

	p, ok = PresetByID("TAILWIND")
	require.True(t, ok)
	assert.Equal(t, "950", p.Stops[len(p.Stops)-1])

	_, ok = PresetByID("nope")
	assert.False(t, ok)
}

func TestEasingText(t *testing.T) {
	var e Easing
	require.NoError(t, e.SetString("slow-ease-in-out"))
	assert.Equal(t, SlowEaseInOut, e)
	assert.Error(t, e.SetString("bounce"))
	assert.Equal(t, "FAST_EASE_OUT", FastEaseOut.String())
	assert.Equal(t, "Easing(42)", fmt.Sprint(Easing(42)))
}
