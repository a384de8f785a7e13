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
	"fmt"
	"strings"
)

// This file implements the text operators needed for barcode labels.  The
// operators are defined in tables 103, 106 and 107 of ISO 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText
	w.lineX, w.lineY = 0, 0

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The font is given by its name in
// the Font sub-dictionary of the page resources.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name string, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if !isRegularName(name) {
		w.Err = fmt.Errorf("TextSetFont: invalid font name %q", name)
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "/"+name, w.coord(size), "Tf")
}

// TextFirstLine moves to the start of the next line, offset from the start
// of the current line by (dx, dy).
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.lineX += dx
	w.lineY += dy

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextMoveTo moves to the start of a new line at (x, y) in text space, by
// emitting a "Td" operator relative to the current line.
func (w *Writer) TextMoveTo(x, y float64) {
	w.TextFirstLine(x-w.lineX, y-w.lineY)
}

// TextShow shows a string.  The string is written as a PDF literal string;
// each byte selects one glyph of the current font.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	if !w.isValid("TextShow", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, quote(s), "Tj")
}

// quote formats s as a PDF literal string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('(')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// isRegularName reports whether s can be written as a PDF name without
// escape sequences.
func isRegularName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c >= 0x7f || strings.IndexByte("()<>[]{}/%#", c) >= 0 {
			return false
		}
	}
	return true
}
