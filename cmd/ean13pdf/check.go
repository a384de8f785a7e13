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
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/barcode/ean13"
)

func (a *app) newCheckCmd() *cobra.Command {
	var addon string

	cmd := &cobra.Command{
		Use:   "check CODE",
		Short: "Validate a code and print it with its check digit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := ean13.Normalize(args[0])
			if err != nil {
				return err
			}
			code, err := ean13.EnsureChecksum(digits)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, code)

			p, err := ean13.Main(code)
			if err != nil {
				return err
			}
			a.log.Debug("modules: %s", p.Bits())

			if addon == "" {
				return nil
			}
			addonDigits, err := ean13.NormalizeAddon(addon)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "add-on %s, parity %s\n", addonDigits, ean13.AddonParity(addonDigits))
			return nil
		},
	}
	cmd.Flags().StringVar(&addon, "addon", "", "2 or 5 digit price add-on")
	return cmd
}
