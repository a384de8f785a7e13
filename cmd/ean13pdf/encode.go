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

	"seehuhn.de/go/barcode"
)

func (a *app) newEncodeCmd() *cobra.Command {
	var addon, configFile, output string
	var force bool

	cmd := &cobra.Command{
		Use:   "encode CODE",
		Short: "Write a barcode as a PDF file",
		Long: `Write the EAN-13 barcode for CODE as a single page PDF file.

CODE must contain 12 or 13 digits, other characters are ignored.  For 12
digits the check digit is added, for 13 digits it is verified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.loadLayout(configFile)
			if err != nil {
				return err
			}

			a.log.Debug("encoding %q, add-on %q", args[0], addon)
			data, err := barcode.EAN13(args[0], addon, &barcode.Options{Layout: layout})
			if err != nil {
				return err
			}

			err = writeOutput(cmd, output, data, force)
			if err != nil {
				return err
			}
			a.log.Info("wrote %d bytes to %s", len(data), output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addon, "addon", "", "2 or 5 digit price add-on")
	flags.StringVar(&configFile, "config", "", "layout configuration file (TOML)")
	flags.StringVarP(&output, "output", "o", "barcode.pdf", `output file name, or "-" for standard output`)
	flags.BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return cmd
}
