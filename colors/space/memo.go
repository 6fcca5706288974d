// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

// Memo caches rendered shades. Every rendering is a pure function of
// the [Color], the [Space] and whether the alpha variant is used,
// so a Memo can be shared across the themes of one build.
// The zero value is not usable; use [NewMemo]. A Memo is not safe
// for concurrent use.
type Memo struct {
	results map[memoKey]Result
	hits    int
}

type memoKey struct {
	color Color
	space Space
	alpha bool
}

// NewMemo returns a new empty [Memo].
func NewMemo() *Memo {
	return &Memo{results: map[memoKey]Result{}}
}

// Render is a cached [Color.Render] (or [Color.RenderAlpha] if alpha is set).
// A nil Memo renders without caching.
func (m *Memo) Render(c Color, s Space, alpha bool) Result {
	render := func() Result {
		if alpha {
			return c.RenderAlpha(s)
		}
		return c.Render(s)
	}
	if m == nil {
		return render()
	}
	k := memoKey{c, s, alpha}
	if r, ok := m.results[k]; ok {
		m.hits++
		return r
	}
	r := render()
	m.results[k] = r
	return r
}

// Hits returns the number of renders served from the cache.
func (m *Memo) Hits() int {
	if m == nil {
		return 0
	}
	return m.hits
}
