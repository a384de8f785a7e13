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

// Ean13pdf writes EAN-13 barcodes as PDF files.
//
// Usage:
//
//	ean13pdf encode [--addon DIGITS] [--config FILE] [-o FILE] [-f] CODE
//	ean13pdf check [--addon DIGITS] CODE
//	ean13pdf inspect FILE
//	ean13pdf layout [--config FILE]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/barcode/internal/buildinfo"
	"seehuhn.de/go/barcode/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all sub-commands.
type app struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "ean13pdf",
		Short:        "Write EAN-13 barcodes as PDF files",
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logger.New(cmd.ErrOrStderr(), a.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "print progress messages")

	rootCmd.AddCommand(
		a.newEncodeCmd(),
		a.newCheckCmd(),
		a.newInspectCmd(),
		a.newLayoutCmd(),
	)
	return rootCmd
}

// isTerminal reports whether w is connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeOutput writes data to the named file, or to the command's standard
// output if fname is "-".  Existing files are only replaced if force is set.
func writeOutput(cmd *cobra.Command, fname string, data []byte, force bool) error {
	if fname == "-" {
		out := cmd.OutOrStdout()
		if isTerminal(out) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		_, err := out.Write(data)
		return err
	}

	if !force {
		if _, err := os.Stat(fname); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", fname)
		}
	}
	return os.WriteFile(fname, data, 0o644)
}
