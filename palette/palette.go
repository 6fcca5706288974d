// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette builds tonal palettes: for every theme of a [Config] and
// every source color, one shade per stop of the theme scale, generated in
// the configured color space by [space.Color]. The resulting [Data] is the
// persisted form of a palette.
//
// Builds are pure. Data generated before an edit can be passed back with
// [Correlated] so that shades keep the ids of the external resources
// (styles and variables) bound to them.
package palette
