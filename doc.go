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

// Package barcode renders EAN-13 barcodes, optionally with a 2- or 5-digit
// price add-on, as single-page vector PDF files.
//
// A barcode is created in a single call:
//
//	data, err := barcode.EAN13("978-0-306-40615", "59995", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = os.WriteFile("barcode.pdf", data, 0o644)
//
// The work is split between several sub-packages, which can also be used on
// their own:
//
//	ean13      digit normalisation, check digits and module patterns
//	canvas     page layout and format independent drawing instructions
//	graphics   PDF content streams
//	document   PDF file assembly and cross-reference tables
//	config     layout configuration files
//
// Apart from [document.Write] and the config package, no function in this
// module performs I/O.  All functions are safe for concurrent use.
package barcode
