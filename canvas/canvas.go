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

// Package canvas lays out barcode symbols on a page.
//
// The result of the layout is a [Canvas], an ordered list of drawing
// instructions which does not depend on any output format.  The
// seehuhn.de/go/barcode/graphics package turns a Canvas into a PDF content
// stream.
package canvas

import "seehuhn.de/go/geom/rect"

// Op is a drawing instruction.  The concrete types are [FillRect] and
// [ShowText].
type Op interface {
	isOp()
}

// FillRect fills a rectangle with the foreground colour.
type FillRect struct {
	Rect rect.Rect
}

// ShowText draws a single line of text, starting at the given baseline
// position.
type ShowText struct {
	X, Y float64
	Text string
}

func (FillRect) isOp() {}
func (ShowText) isOp() {}

// Canvas is the drawing of one page.
type Canvas struct {
	// Page is the page area.
	Page rect.Rect

	// FontSize is the font size used by all text instructions.
	FontSize float64

	// Ops lists the drawing instructions in painting order.
	Ops []Op
}

// Width returns the page width.
func (c *Canvas) Width() float64 {
	return c.Page.Dx()
}

// Height returns the page height.
func (c *Canvas) Height() float64 {
	return c.Page.Dy()
}
