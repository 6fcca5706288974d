// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/config"
	"cogentcore.org/palette/contrast"
	"cogentcore.org/palette/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newShowCmd(o *options) *cobra.Command {
	var themeID string
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show the shades of a palette file in the terminal",
		Long: `Show builds a palette file and prints every shade as a swatch, with the
contrast of the theme text color that reads best on it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.OpenPalette(args[0])
			if err != nil {
				return err
			}
			data := palette.Build(cfg, palette.Fresh())
			w := cmd.OutOrStdout()
			out := termenv.NewOutput(w)
			for i := range cfg.Themes {
				th := &cfg.Themes[i]
				if themeID != "" && th.ID != themeID {
					continue
				}
				td, ok := data.Theme(th.ID)
				if !ok {
					continue
				}
				if err := showTheme(w, out, th, td); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&themeID, "theme", "", "only show the theme with this id")
	return cmd
}

// showTheme writes a table of the shades of the theme. Swatches are the
// last column so that their escape sequences do not break the alignment.
func showTheme(w io.Writer, out *termenv.Output, th *palette.Theme, td *palette.ThemeData) error {
	light := hexOr(th.TextColorsTheme.LightColor, colors.White)
	dark := hexOr(th.TextColorsTheme.DarkColor, colors.Black)
	title := th.Name
	if th.IsEnabled {
		title += " (live)"
	}
	fmt.Fprintln(w, out.String(title).Bold())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range td.Colors {
		fmt.Fprintf(tw, "%s\t\t\t\t\t\t\n", c.Name)
		for _, s := range c.Shades {
			hex := s.Hex
			if s.IsTransparent {
				hex = s.MixedColor
			}
			bg := hexOr(hex, colors.White)
			text, _ := contrast.TextColorFor(bg, light, dark)
			r := contrast.NewReport(text, bg)
			swatch := out.String(fmt.Sprintf(" %-8s", s.Name)).
				Foreground(out.Color(text.Hex())).
				Background(out.Color(bg.Hex()))
			fmt.Fprintf(tw, "  %s\t%s\t%.2f %s\t%.1f %s\t%s\t%s\n",
				s.Name, s.Hex, r.WCAG, r.WCAGScore, r.APCA, r.APCAScore, shadeFlags(&s), swatch)
		}
	}
	return tw.Flush()
}

func shadeFlags(s *palette.Shade) string {
	var flags []string
	if s.Type == palette.SourceShade {
		flags = append(flags, "source")
	}
	if s.IsClosestToRef {
		flags = append(flags, "closest")
	}
	if s.IsSourceColorLocked {
		flags = append(flags, "locked")
	}
	if s.Alpha != nil {
		flags = append(flags, fmt.Sprintf("alpha %.2f", *s.Alpha))
	}
	return strings.Join(flags, ",")
}

func hexOr(hex string, def colors.RGB) colors.RGB {
	c, _, err := colors.FromHex(hex)
	if err != nil {
		return def
	}
	return c
}
