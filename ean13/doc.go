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

// Package ean13 implements the EAN-13 barcode symbology, together with the
// 2- and 5-digit add-on symbols used for prices.
//
// The package works in two steps.  First, user input is reduced to a
// validated digit string:
//
//	code, err := ean13.Normalize("400-638-133-393")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, err = ean13.EnsureChecksum(code) // "4006381333931"
//
// Then the digit string is turned into a [Pattern], a sequence of guard and
// data [Segment]s.  Every character of a segment stands for one module (the
// unit bar width): '1' is a dark module, '0' a light one.
//
//	p, err := ean13.Main(code)
//	fmt.Println(p.Width()) // 95
//
// All functions are pure and safe for concurrent use.
package ean13
