// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/palette/scale"
)

// Editor is an interactive editing session of a palette. Edits of the
// live theme scale update a working copy of the configuration and return
// a cheap preview of that theme only; [Editor.Commit] rebuilds the full
// data, correlated with the previously committed data. An Editor is not
// safe for concurrent use.
type Editor struct {

	// Easing is the curve used to spread stops in
	// [Editor.Distribute], [Editor.AddStop] and [Editor.RemoveStop].
	Easing scale.Easing

	working   *Config
	committed *Config
	data      *Data
}

// NewEditor returns a new editor of a copy of the configuration, whose
// data is built on the given basis.
func NewEditor(cfg *Config, basis Basis) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ed := &Editor{Easing: scale.Linear}
	ed.committed = cfg.Clone()
	ed.working = cfg.Clone()
	ed.data = Build(ed.committed, basis)
	return ed, nil
}

// Config returns a copy of the working configuration.
func (ed *Editor) Config() *Config {
	return ed.working.Clone()
}

// Data returns the last committed data.
func (ed *Editor) Data() *Data {
	return ed.data
}

// Dirty returns whether there are edits that have not been committed.
func (ed *Editor) Dirty() bool {
	return ed.working.String() != ed.committed.String()
}

func (ed *Editor) live() (*Theme, error) {
	th, ok := ed.working.LiveTheme()
	if !ok {
		return nil, fmt.Errorf("palette.Editor: no enabled theme in %q", ed.working.Name)
	}
	return th, nil
}

// preview builds the live theme of the working configuration.
func (ed *Editor) preview(th *Theme) *ThemeData {
	td := BuildTheme(ed.working, th, Correlated(ed.data))
	return &td
}

// Preview sets the value of the given stop of the live theme scale
// and returns a preview of the live theme.
func (ed *Editor) Preview(stop string, value float64) (*ThemeData, error) {
	th, err := ed.live()
	if err != nil {
		return nil, err
	}
	if th.Scale.Index(stop) < 0 {
		return nil, fmt.Errorf("palette.Editor: unknown stop %q in theme %q", stop, th.ID)
	}
	th.Scale.Set(stop, value)
	return ed.preview(th), nil
}

// Distribute moves the given stop of the live theme scale to the value
// and spreads the other stops again, returning a preview of the live theme.
func (ed *Editor) Distribute(stop string, value float64) (*ThemeData, error) {
	th, err := ed.live()
	if err != nil {
		return nil, err
	}
	if th.Scale.Index(stop) < 0 {
		return nil, fmt.Errorf("palette.Editor: unknown stop %q in theme %q", stop, th.ID)
	}
	th.Scale = scale.Distribute(th.Scale, stop, value, ed.Easing)
	return ed.preview(th), nil
}

// AddStop inserts a new stop at the given index of the scales of every
// theme, keeping their two anchors, and returns a preview of the live theme.
func (ed *Editor) AddStop(name string, idx int) (*ThemeData, error) {
	th, err := ed.live()
	if err != nil {
		return nil, err
	}
	if th.Scale.Index(name) >= 0 {
		return nil, fmt.Errorf("palette.Editor: stop %q already exists", name)
	}
	if th.Scale.Len() >= scale.MaxStops {
		return nil, fmt.Errorf("palette.Editor: scale already has %d stops", scale.MaxStops)
	}
	for i := range ed.working.Themes {
		t := &ed.working.Themes[i]
		t.Scale = scale.AddStop(t.Scale, name, idx, ed.Easing)
	}
	return ed.preview(th), nil
}

// RemoveStop removes the given stop from the scales of every theme,
// keeping their two anchors, and returns a preview of the live theme.
func (ed *Editor) RemoveStop(name string) (*ThemeData, error) {
	th, err := ed.live()
	if err != nil {
		return nil, err
	}
	if th.Scale.Index(name) < 0 {
		return nil, fmt.Errorf("palette.Editor: unknown stop %q", name)
	}
	if th.Scale.Len() <= 1 {
		return nil, fmt.Errorf("palette.Editor: can not remove the last stop %q", name)
	}
	for i := range ed.working.Themes {
		t := &ed.working.Themes[i]
		t.Scale = scale.RemoveStop(t.Scale, name, ed.Easing)
	}
	return ed.preview(th), nil
}

// ApplyPreset replaces the scales of every theme with the scale of
// the preset with the given id.
func (ed *Editor) ApplyPreset(id string) (*ThemeData, error) {
	p, ok := scale.PresetByID(id)
	if !ok {
		return nil, fmt.Errorf("palette.Editor: unknown preset %q", id)
	}
	th, err := ed.live()
	if err != nil {
		return nil, err
	}
	ed.working.Preset = p.ID
	ed.Easing = p.Easing
	for i := range ed.working.Themes {
		ed.working.Themes[i].Scale = p.Scale()
	}
	return ed.preview(th), nil
}

// Update applies the given function to the working configuration,
// for edits other than scale edits. The configuration must remain valid.
func (ed *Editor) Update(fun func(cfg *Config)) error {
	next := ed.working.Clone()
	fun(next)
	if err := next.Validate(); err != nil {
		return err
	}
	ed.working = next
	return nil
}

// Commit rebuilds the full data of the working configuration, correlated
// with the previously committed data, and makes it the committed state.
func (ed *Editor) Commit() *Data {
	ed.data = Build(ed.working, Correlated(ed.data))
	ed.committed = ed.working.Clone()
	return ed.data
}

// Revert discards the edits made since the last commit.
func (ed *Editor) Revert() {
	ed.working = ed.committed.Clone()
}
