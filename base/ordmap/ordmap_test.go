// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"cmp"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	assert.Equal(t, 1, om.ValueByKey("key1"))
	assert.Equal(t, 2, om.IndexByKey("key2"))
	assert.Equal(t, 1, om.ValueByIndex(1))
	assert.Equal(t, 3, om.Len())

	om.DeleteIndex(1, 2)
	assert.Equal(t, 2, om.ValueByIndex(1))
	assert.Equal(t, 1, om.IndexByKey("key2"))
	assert.Equal(t, -1, om.IndexByKey("key1"))

	om.InsertAtIndex(0, "new0", 3)
	assert.Equal(t, 3, om.ValueByIndex(0))
	assert.Equal(t, 0, om.ValueByIndex(1))
	assert.Equal(t, 2, om.IndexByKey("key2"))

	assert.True(t, om.DeleteKey("key0"))
	assert.False(t, om.DeleteKey("key0"))
	assert.Equal(t, []string{"new0", "key2"}, om.Keys())
	assert.Equal(t, []int{3, 2}, om.Values())

	_, ok := om.ValueByKeyTry("missing")
	assert.False(t, ok)
}

func TestSortStableFunc(t *testing.T) {
	om := Make([]KeyValue[string, float64]{{"a", 10}, {"b", 90}, {"c", 50}, {"d", 50}})
	om.SortStableFunc(func(a, b KeyValue[string, float64]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	assert.Equal(t, []string{"b", "c", "d", "a"}, om.Keys())
	assert.Equal(t, 3, om.IndexByKey("a"))
}

func TestClone(t *testing.T) {
	om := Make([]KeyValue[string, int]{{"a", 1}, {"b", 2}})
	cl := om.Clone()
	cl.Add("a", 5)
	assert.Equal(t, 1, om.ValueByKey("a"))
	assert.Equal(t, 5, cl.ValueByKey("a"))
}

func TestJSON(t *testing.T) {
	om := Make([]KeyValue[string, float64]{{"900", 12.5}, {"50", 96}, {"500", 48}})
	b, err := json.Marshal(om)
	require.NoError(t, err)
	assert.Equal(t, `{"900":12.5,"50":96,"500":48}`, string(b))

	res := New[string, float64]()
	require.NoError(t, json.Unmarshal(b, res))
	assert.Equal(t, []string{"900", "50", "500"}, res.Keys())
	assert.Equal(t, 96.0, res.ValueByKey("50"))

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), res))
}
