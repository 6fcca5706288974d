// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"cogentcore.org/palette/scale"
	"github.com/spf13/cobra"
)

func newScaleCmd() *cobra.Command {
	var (
		stops    int
		names    []string
		min, max float64
		easing   string
		preset   string
	)
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Print a lightness scale",
		Long: `Scale prints the stop values of a lightness scale, either of a preset or
built from a number of stops (or stop names), bounds and an easing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *scale.Scale
			if preset != "" {
				p, ok := scale.PresetByID(preset)
				if !ok {
					return fmt.Errorf("unknown scale preset %q", preset)
				}
				s = p.Scale()
			} else {
				var e scale.Easing
				if err := e.SetString(easing); err != nil {
					return err
				}
				if len(names) == 0 {
					names = scale.CountNames(stops)
				}
				s = scale.Build(names, min, max, e)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, st := range s.Stops() {
				fmt.Fprintf(tw, "%s\t%.2f\n", st.Name, st.Value)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.IntVar(&stops, "stops", 10, "number of stops, named 1 to n")
	f.StringSliceVar(&names, "names", nil, "stop names, from the lightest to the darkest")
	f.Float64Var(&min, "min", 10, "lightness of the darkest stop")
	f.Float64Var(&max, "max", 95, "lightness of the lightest stop")
	f.StringVar(&easing, "easing", "linear", "easing curve between the bounds")
	f.StringVar(&preset, "preset", "", "print the scale of this preset instead")
	return cmd
}
