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

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/barcode/canvas"
)

// ContentStream converts the drawing instructions of c into the data of a
// PDF content stream.  Rectangles are filled in black, text is shown using
// the font with resource name fontName at size c.FontSize.  Consecutive text
// instructions share one text object.
//
// The returned data has no trailing end-of-line marker.
func ContentStream(c *canvas.Canvas, fontName string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.SetFillRGB(0, 0, 0)
	for _, op := range c.Ops {
		switch op := op.(type) {
		case canvas.FillRect:
			if w.currentObject == objText {
				w.TextEnd()
			}
			r := op.Rect
			w.Rectangle(r.LLx, r.LLy, r.Dx(), r.Dy())
			w.Fill()
		case canvas.ShowText:
			if w.currentObject != objText {
				w.TextStart()
				w.TextSetFont(fontName, c.FontSize)
			}
			w.TextMoveTo(op.X, op.Y)
			w.TextShow(op.Text)
		default:
			return nil, fmt.Errorf("unsupported drawing instruction %T", op)
		}
	}
	if w.currentObject == objText {
		w.TextEnd()
	}
	if w.Err != nil {
		return nil, w.Err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
