// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/palette/base/iox/jsonx"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/contrast"
	"github.com/spf13/cobra"
)

func newContrastCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "contrast <text> <background>",
		Short: "Score the contrast of a text color on a background",
		Long: `Contrast prints the WCAG 2.1 ratio and the APCA lightness contrast of a
text color on a background color, with their scores and the minimum font
sizes per weight.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := colors.FromHex(args[0])
			if err != nil {
				return fmt.Errorf("text color: %w", err)
			}
			bg, _, err := colors.FromHex(args[1])
			if err != nil {
				return fmt.Errorf("background color: %w", err)
			}
			r := contrast.NewReport(text, bg)
			if asJSON {
				return jsonx.Write(r, cmd.OutOrStdout())
			}
			return writeReport(cmd.OutOrStdout(), &r)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the report as JSON")
	return cmd
}

func writeReport(w io.Writer, r *contrast.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "WCAG\t%.2f\t%s\n", r.WCAG, r.WCAGScore)
	fmt.Fprintf(tw, "APCA\t%.1f\t%s\n", r.APCA, r.APCAScore)
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "weight\tsize\t\n")
	for _, fs := range r.FontSizes {
		fmt.Fprintf(tw, "%d\t%s\t\n", fs.Weight, fontSize(fs))
	}
	return tw.Flush()
}

func fontSize(fs contrast.FontSize) string {
	switch {
	case fs.Size >= contrast.FontSizeProhibited:
		return "prohibited"
	case fs.Size >= contrast.FontSizeNonText:
		return "non-text"
	}
	return fmt.Sprintf("%gpx", fs.Size)
}
