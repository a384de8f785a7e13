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

// Package document serialises numbered PDF objects into a complete PDF file,
// and reads back the cross-reference table of such files.
//
// The package knows nothing about the meaning of the objects.  Callers supply
// the object bodies as pre-formatted PDF syntax, keyed by object number:
//
//	data, err := document.Assemble(map[int][]byte{
//	    1: []byte("<< /Type /Catalog /Pages 2 0 R >>"),
//	    2: []byte("<< /Type /Pages /Kids [] /Count 0 >>"),
//	}, 1)
//
// All objects have generation number 0.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Header is the first line of every file written by this package.
const Header = "%PDF-1.4"

var (
	// ErrEmptyObjectSet is returned when there are no objects to write.
	ErrEmptyObjectSet = errors.New("no objects to write")

	// ErrInvalidObjectNumber is returned for object numbers less than 1.
	ErrInvalidObjectNumber = errors.New("invalid object number")
)

// Assemble returns a PDF file which contains the given objects, with
// object number root as the document catalog.
//
// Objects are written in ascending order of their numbers, followed by the
// cross-reference table and the trailer.  The bodies are written verbatim
// and are not checked.
func Assemble(objs map[int][]byte, root int) ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := Write(buf, objs, root)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write is like [Assemble], but writes the file to w.  The number of bytes
// written is returned.
func Write(w io.Writer, objs map[int][]byte, root int) (int64, error) {
	if len(objs) == 0 {
		return 0, ErrEmptyObjectSet
	}
	numbers := slices.Sorted(maps.Keys(objs))
	if numbers[0] < 1 {
		return 0, fmt.Errorf("%w %d", ErrInvalidObjectNumber, numbers[0])
	}
	if _, ok := objs[root]; !ok {
		return 0, fmt.Errorf("root object %d is missing", root)
	}

	out := &posWriter{w: w}

	_, err := fmt.Fprintf(out, "%s\n", Header)
	if err != nil {
		return out.pos, err
	}

	xref := make(map[int]int64, len(numbers))
	for _, n := range numbers {
		xref[n] = out.pos
		_, err = fmt.Fprintf(out, "%d 0 obj\n%s\nendobj\n", n, objs[n])
		if err != nil {
			return out.pos, err
		}
	}

	xRefPos := out.pos
	size := numbers[len(numbers)-1] + 1
	err = writeXRefTable(out, xref, size)
	if err != nil {
		return out.pos, err
	}

	_, err = fmt.Fprintf(out, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF",
		size, root, xRefPos)
	return out.pos, err
}

// writeXRefTable writes a cross-reference table with a single subsection
// covering objects 0 to size-1.  Numbers without an object are marked as
// free.
func writeXRefTable(w io.Writer, xref map[int]int64, size int) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for i := range size {
		pos, ok := xref[i]
		if ok {
			_, err = fmt.Fprintf(w, "%010d 00000 n \n", pos)
		} else {
			_, err = io.WriteString(w, "0000000000 65535 f \n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// posWriter keeps track of the number of bytes written.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
