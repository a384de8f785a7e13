// seehuhn.de/go/barcode - EAN-13 barcodes as vector PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/spf13/cobra"

	"seehuhn.de/go/barcode/canvas"
	"seehuhn.de/go/barcode/config"
)

func (a *app) newLayoutCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout settings as a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := a.loadLayout(configFile)
			if err != nil {
				return err
			}
			return config.FromLayout(layout).Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "layout configuration file (TOML)")
	return cmd
}

// loadLayout returns the default layout, modified by the given configuration
// file if fname is not empty.
func (a *app) loadLayout(fname string) (*canvas.Layout, error) {
	layout := canvas.DefaultLayout()
	if fname == "" {
		return layout, nil
	}

	a.log.Debug("reading layout from %s", fname)
	cfg, err := config.Load(fname)
	if err != nil {
		return nil, err
	}
	return cfg.Apply(layout)
}
