// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config handles the configuration of the palette tool and the
// reading and writing of palette files in JSON, YAML and TOML.
package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/base/iox/tomlx"
	"cogentcore.org/palette/base/logx"
)

// Config is the configuration of the palette tool, read from TOML.
type Config struct {

	// LogLevel is the minimum level of logged messages:
	// debug, info, warn or error.
	LogLevel string

	// DB is the path of the SQLite palette store.
	DB string

	// Debounce is how long the watch command waits for a palette file
	// to stop changing before rebuilding it, as a duration like 150ms.
	Debounce string

	// Format is the default format of written data: json, yaml or toml.
	Format string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		DB:       filepath.Join(Dir(), "palettes.db"),
		Debounce: "150ms",
		Format:   "json",
	}
}

// Dir returns the directory of the configuration and the default store.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "palette")
}

// DefaultFile returns the path of the default configuration file.
func DefaultFile() string {
	return filepath.Join(Dir(), "config.toml")
}

// Open returns the default configuration overridden by the given TOML
// files, in order. Missing files are skipped.
func Open(filenames ...string) (*Config, error) {
	cfg := Default()
	if len(filenames) == 0 {
		return cfg, nil
	}
	err := tomlx.OpenFiles(cfg, filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to the given TOML file,
// creating its directory if needed.
func (c *Config) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return tomlx.Save(c, filename)
}

// Validate returns an error if a setting can not be used.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.DebounceDuration(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("config: Format: %w", err))
	}
	if c.DB == "" {
		errs = append(errs, errors.New("config: DB: empty path"))
	}
	return errors.Join(errs...)
}

// DebounceDuration returns the parsed [Config.Debounce].
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0, fmt.Errorf("config: Debounce: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: Debounce: negative duration %v", d)
	}
	return d, nil
}

// Level returns the [Config.LogLevel] as a slog level.
func (c *Config) Level() slog.Level {
	return logx.LevelFromString(c.LogLevel)
}
