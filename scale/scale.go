// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale builds and edits the lightness (or opacity) scales of
// palette themes. A scale is an ordered set of named stops; the names are
// stable identifiers that outlive edits of the values, so external
// resources bound to a stop survive rescaling.
package scale

import (
	"cmp"
	"encoding/json"
	"fmt"

	"cogentcore.org/palette/base/ordmap"
	"gopkg.in/yaml.v3"
)

// MaxStops is the maximum number of stops in a scale.
const MaxStops = 24

// Stop is one named position on a scale.
type Stop struct {
	Name  string
	Value float64
}

// Scale is an ordered map from stop names to values. The zero value is an
// empty scale ready to use. Scales encode to JSON and YAML as objects with
// their stops in order.
type Scale struct {
	stops ordmap.Map[string, float64]
}

// New returns a new scale with the given stops in order.
// A repeated name replaces the earlier value in place.
func New(stops ...Stop) *Scale {
	s := &Scale{}
	for _, st := range stops {
		s.Set(st.Name, st.Value)
	}
	return s
}

// Len returns the number of stops.
func (s *Scale) Len() int {
	if s == nil {
		return 0
	}
	return s.stops.Len()
}

// Names returns the stop names in order.
func (s *Scale) Names() []string {
	if s == nil {
		return []string{}
	}
	return s.stops.Keys()
}

// Values returns the stop values in order.
func (s *Scale) Values() []float64 {
	if s == nil {
		return []float64{}
	}
	return s.stops.Values()
}

// Stops returns the stops in order.
func (s *Scale) Stops() []Stop {
	res := make([]Stop, s.Len())
	for i := range res {
		kv := s.stops.Order[i]
		res[i] = Stop{Name: kv.Key, Value: kv.Value}
	}
	return res
}

// Value returns the value of the named stop and whether it exists.
func (s *Scale) Value(name string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	return s.stops.ValueByKeyTry(name)
}

// Index returns the position of the named stop, or -1 if it does not exist.
func (s *Scale) Index(name string) int {
	if s == nil {
		return -1
	}
	return s.stops.IndexByKey(name)
}

// Set sets the value of the named stop, adding it at the end if it is new.
func (s *Scale) Set(name string, value float64) {
	s.stops.Add(name, value)
}

// Insert inserts a new stop at the given index, clamped to the scale.
// It returns false if the name is already used.
func (s *Scale) Insert(idx int, name string, value float64) bool {
	if s.Index(name) >= 0 {
		return false
	}
	idx = min(max(idx, 0), s.Len())
	s.stops.InsertAtIndex(idx, name, value)
	return true
}

// Delete removes the named stop, returning false if it does not exist.
func (s *Scale) Delete(name string) bool {
	if s.Len() == 0 {
		return false
	}
	return s.stops.DeleteKey(name)
}

// Bounds returns the values of the first and last stops,
// which are the maximum and minimum of a built scale.
func (s *Scale) Bounds() (first, last float64) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	return s.stops.ValueByIndex(0), s.stops.ValueByIndex(n - 1)
}

// Clone returns a copy of the scale.
func (s *Scale) Clone() *Scale {
	c := &Scale{}
	for _, st := range s.Stops() {
		c.Set(st.Name, st.Value)
	}
	return c
}

// Sorted returns a copy of the scale with its stops sorted by value from
// high to low, which is the order shades are generated in. Stops with equal
// values keep their relative order.
func (s *Scale) Sorted() *Scale {
	c := s.Clone()
	c.stops.SortStableFunc(func(a, b ordmap.KeyValue[string, float64]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return c
}

// String returns the stops as name=value pairs.
func (s *Scale) String() string {
	return fmt.Sprint(s.Stops())
}

// MarshalJSON encodes the scale as an object with its stops in order.
func (s *Scale) MarshalJSON() ([]byte, error) {
	return s.stops.MarshalJSON()
}

// UnmarshalJSON decodes an object of stop values, keeping their order.
func (s *Scale) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	return s.stops.UnmarshalJSON(b)
}

// MarshalYAML encodes the scale as a mapping with its stops in order.
func (s *Scale) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, st := range s.Stops() {
		var k, v yaml.Node
		if err := k.Encode(st.Name); err != nil {
			return nil, err
		}
		if err := v.Encode(st.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of stop values, keeping their order.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("scale.Scale: line %d: expected a mapping of stops", node.Line)
	}
	s.stops = ordmap.Map[string, float64]{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v float64
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("scale.Scale: stop %q: %w", node.Content[i].Value, err)
		}
		s.Set(node.Content[i].Value, v)
	}
	return nil
}

var (
	_ json.Marshaler   = (*Scale)(nil)
	_ yaml.Unmarshaler = (*Scale)(nil)
)
