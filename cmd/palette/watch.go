// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/config"
	"cogentcore.org/palette/palette"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Rebuild palette data whenever a palette file changes",
		Long: `Watch builds a palette file into the output file, and rebuilds it each time
the palette file is saved. Every rebuild keeps the shade ids of the previous
build. Existing output is used as the first previous build.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounce, err := o.cfg.DebounceDuration()
			if err != nil {
				return err
			}
			rb, err := newRebuilder(args[0], output)
			if err != nil {
				return err
			}
			if err := rb.rebuild(); err != nil {
				return err
			}
			return watchFile(cmd.Context(), args[0], debounce, func() {
				if err := rb.rebuild(); err != nil {
					slog.Error("rebuild failed", "file", args[0], "err", err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output data file")
	cmd.MarkFlagRequired("output")
	return cmd
}

// rebuilder builds a palette file into an output file. The first build
// is correlated with the existing output, and later builds are edits
// committed through a [palette.Editor], so shade ids carry over.
type rebuilder struct {
	src, out string
	prev     *palette.Data
	ed       *palette.Editor
}

func newRebuilder(src, out string) (*rebuilder, error) {
	rb := &rebuilder{src: src, out: out}
	prev, err := config.OpenData(out)
	switch {
	case err == nil:
		rb.prev = prev
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}
	return rb, nil
}

func (rb *rebuilder) rebuild() error {
	cfg, err := config.OpenPalette(rb.src)
	if err != nil {
		return err
	}
	var data *palette.Data
	if rb.ed == nil {
		basis := palette.Fresh()
		if rb.prev != nil {
			basis = palette.Correlated(rb.prev)
		}
		if rb.ed, err = palette.NewEditor(cfg, basis); err != nil {
			return err
		}
		data = rb.ed.Data()
	} else {
		if err := rb.ed.Update(func(c *palette.Config) { *c = *cfg }); err != nil {
			return err
		}
		if !rb.ed.Dirty() {
			slog.Debug("palette unchanged", "file", rb.src)
			return nil
		}
		data = rb.ed.Commit()
	}
	if err := config.SaveData(data, rb.out); err != nil {
		return err
	}
	rb.prev = data
	slog.Info("rebuilt palette", "file", rb.src, "output", rb.out)
	return nil
}

// watchFile calls fun once the file has not changed for the debounce
// duration after a change, until the context is done. The directory of the
// file is watched, since editors often replace files instead of writing them.
func watchFile(ctx context.Context, filename string, debounce time.Duration, fun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	slog.Info("watching", "file", abs, "debounce", debounce)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || filepath.Clean(event.Name) != abs {
				continue
			}
			slog.Debug("file event", "event", event)
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)
		case <-timer.C:
			fun()
		}
	}
}
