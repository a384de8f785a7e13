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

package graphics

import "fmt"

// SetFillRGB sets the fill colour to the given DeviceRGB colour.
// The components must be in the range [0, 1].
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if !w.isValid("SetFillRGB", objPage|objText) {
		return
	}
	for _, x := range []float64{r, g, b} {
		if x < 0 || x > 1 {
			w.Err = fmt.Errorf("SetFillRGB: invalid colour component %g", x)
			return
		}
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(r), w.coord(g), w.coord(b), "rg")
}
