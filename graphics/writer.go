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
	"io"
	"math"
	"strconv"
)

// Writer writes a PDF content stream.
//
// Errors are sticky: once an operator fails, Err is set and all further
// operators are ignored.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType

	// start of the current text line, in text space
	lineX, lineY float64
}

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
	}
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return FormatNumber(x)
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

// FormatNumber formats x for use in PDF content, with at most two decimal
// places.
func FormatNumber(x float64) string {
	x = math.Round(x*100) / 100
	if x == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
