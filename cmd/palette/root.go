// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"cogentcore.org/palette/base/logx"
	"cogentcore.org/palette/config"
	"cogentcore.org/palette/palette"
	"github.com/spf13/cobra"
)

// options are the settings shared by all commands.
type options struct {
	configFile string
	vv, v, q   bool

	// cfg is the tool configuration, loaded before any command runs.
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate tonal palettes and score their contrast",
		Long: `palette generates tonal palettes (themes x source colors x scale stops)
from a few source colors, scores text and background contrast with WCAG 2.1
and APCA, and keeps palettes in a local store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", config.DefaultFile(), "tool configuration file")
	pf.BoolVarP(&o.v, "verbose", "v", false, "show info messages")
	pf.BoolVar(&o.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&o.q, "quiet", "q", false, "only show errors")

	cmd.AddCommand(
		newBuildCmd(o),
		newShowCmd(o),
		newContrastCmd(),
		newScaleCmd(),
		newWatchCmd(o),
		newStoreCmd(o),
	)
	return cmd
}

// setup loads the tool configuration and sets the default logger. Verbosity
// flags take precedence over the configured level.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Open(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if o.vv || o.v || o.q {
		logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
	} else {
		logx.UserLevel = cfg.Level()
	}
	logx.SetDefaultLogger(cmd.ErrOrStderr())
	return nil
}

// writeData writes the data to the file, or to w in the configured format
// if there is no file.
func (o *options) writeData(w io.Writer, data *palette.Data, filename string) error {
	if filename != "" {
		return config.SaveData(data, filename)
	}
	f, err := config.ParseFormat(o.cfg.Format)
	if err != nil {
		return err
	}
	return config.Write(data, w, f)
}
