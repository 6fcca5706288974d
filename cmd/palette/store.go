// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"cogentcore.org/palette/config"
	"cogentcore.org/palette/store"
	"github.com/spf13/cobra"
)

func newStoreCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep palettes in the local store",
		Long: `Store keeps palette configurations and their generated data in a SQLite
database. Saving a palette again under its id rebuilds it with the shade ids
of the stored build.`,
	}
	cmd.AddCommand(
		newStoreSaveCmd(o),
		newStoreGetCmd(o),
		newStoreListCmd(o),
		newStoreDeleteCmd(o),
	)
	return cmd
}

// openStore opens the configured store, creating its directory if needed.
func (o *options) openStore() (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(o.cfg.DB), 0o755); err != nil {
		return nil, err
	}
	return store.Open(o.cfg.DB)
}

func newStoreSaveCmd(o *options) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Build a palette file and save it in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.OpenPalette(args[0])
			if err != nil {
				return err
			}
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			rec, err := st.Build(cmd.Context(), id, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "id of the palette to update; a new palette if empty")
	return cmd
}

func newStoreGetCmd(o *options) *cobra.Command {
	var output string
	var configOnly bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write the data or configuration of a stored palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			rec, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !configOnly {
				if rec.Data == nil {
					return fmt.Errorf("palette %s has no data", rec.ID)
				}
				return o.writeData(cmd.OutOrStdout(), rec.Data, output)
			}
			if output != "" {
				return config.SavePalette(rec.Config, output)
			}
			f, err := config.ParseFormat(o.cfg.Format)
			if err != nil {
				return err
			}
			return config.Write(rec.Config, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; standard output in the configured format if empty")
	cmd.Flags().BoolVar(&configOnly, "config-only", false, "write the palette configuration instead of its data")
	return cmd
}

func newStoreListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored palettes, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			list, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUPDATED")
			for _, s := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, s.UpdatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func newStoreDeleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete stored palettes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			for _, id := range args {
				if err := st.Delete(cmd.Context(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
