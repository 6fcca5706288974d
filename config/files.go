// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/palette/base/iox/jsonx"
	"cogentcore.org/palette/base/iox/tomlx"
	"cogentcore.org/palette/base/iox/yamlx"
	"cogentcore.org/palette/palette"
)

// Format is a file format for palette configurations and data.
type Format int32

const (
	JSON Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ParseFormat returns the format with the given name: json, yaml or toml.
func ParseFormat(name string) (Format, error) {
	return FormatFor("data." + name)
}

// FormatFor returns the format of the given file from its extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unsupported file format %q (want .json, .yaml, .yml or .toml)", filepath.Ext(filename))
}

// decode decodes the file into v, which must define its JSON decoding.
// YAML keeps the order of mapping keys; TOML does not.
func decode(v any, filename string) error {
	f, err := FormatFor(filename)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		b, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		js, err := yamlx.ToJSON(b)
		if err != nil {
			return err
		}
		return jsonx.ReadBytes(v, js)
	case TOML:
		var m map[string]any
		if err := tomlx.Open(&m, filename); err != nil {
			return err
		}
		return jsonx.Convert(v, m)
	default:
		return jsonx.Open(v, filename)
	}
}

// encode writes v to the file in the format of its extension.
func encode(v any, filename string) error {
	f, err := FormatFor(filename)
	if err != nil {
		return err
	}
	if f == JSON {
		return jsonx.Save(v, filename)
	}
	m, err := toMap(v)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Save(m, filename)
	}
	return tomlx.Save(m, filename)
}

// Write writes v to the writer in the given format. YAML and TOML are
// written from the JSON form of v, with sorted mapping keys.
func Write(v any, w io.Writer, f Format) error {
	if f == JSON {
		return jsonx.Write(v, w)
	}
	m, err := toMap(v)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Write(m, w)
	}
	return tomlx.Write(m, w)
}

func toMap(v any) (map[string]any, error) {
	var m map[string]any
	err := jsonx.Convert(&m, v)
	return m, err
}

// OpenPalette reads a palette configuration from a JSON, YAML or TOML file
// and validates it. The scales of formats that do not keep the order of
// their stops are sorted from the highest to the lowest value.
func OpenPalette(filename string) (*palette.Config, error) {
	cfg := &palette.Config{}
	if err := decode(cfg, filename); err != nil {
		return nil, fmt.Errorf("open palette %q: %w", filename, err)
	}
	if f, _ := FormatFor(filename); f != JSON {
		for i := range cfg.Themes {
			if th := &cfg.Themes[i]; th.Scale != nil {
				th.Scale = th.Scale.Sorted()
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("open palette %q: %w", filename, err)
	}
	return cfg, nil
}

// SavePalette writes the palette configuration to a JSON, YAML or TOML file.
func SavePalette(cfg *palette.Config, filename string) error {
	if err := encode(cfg, filename); err != nil {
		return fmt.Errorf("save palette %q: %w", filename, err)
	}
	return nil
}

// OpenData reads generated palette data from a JSON, YAML or TOML file.
func OpenData(filename string) (*palette.Data, error) {
	data := &palette.Data{}
	if err := decode(data, filename); err != nil {
		return nil, fmt.Errorf("open data %q: %w", filename, err)
	}
	return data, nil
}

// SaveData writes generated palette data to a JSON, YAML or TOML file.
func SaveData(data *palette.Data, filename string) error {
	if err := encode(data, filename); err != nil {
		return fmt.Errorf("save data %q: %w", filename, err)
	}
	return nil
}
