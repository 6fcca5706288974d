// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/palette/config"
	"cogentcore.org/palette/palette"
	"github.com/spf13/cobra"
)

func newBuildCmd(o *options) *cobra.Command {
	var output, previous string
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build palette data from a palette file",
		Long: `Build generates the data of every theme and color of a palette file
(.json, .yaml, .yml or .toml). With --previous, the ids of shades in
previously generated data are carried over to the matching new shades.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.OpenPalette(args[0])
			if err != nil {
				return err
			}
			basis, err := openBasis(previous)
			if err != nil {
				return err
			}
			data := palette.Build(cfg, basis)
			slog.Info("built palette", "name", cfg.Name, "themes", len(data.Themes), "colors", len(cfg.Colors))
			return o.writeData(cmd.OutOrStdout(), data, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; standard output in the configured format if empty")
	cmd.Flags().StringVar(&previous, "previous", "", "previously generated data to correlate shade ids with")
	return cmd
}

// openBasis returns the build basis for the given previous data file,
// or [palette.Fresh] if there is none.
func openBasis(previous string) (palette.Basis, error) {
	if previous == "" {
		return palette.Fresh(), nil
	}
	prev, err := config.OpenData(previous)
	if err != nil {
		return nil, err
	}
	return palette.Correlated(prev), nil
}
