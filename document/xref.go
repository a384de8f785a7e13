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

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// XRef is the cross-reference information of a PDF file which uses a single
// cross-reference table.
type XRef struct {
	// Start is the byte offset of the "xref" keyword.
	Start int64

	// Size is the value of /Size in the trailer.
	Size int

	// Root is the object number of the document catalog.
	Root int

	// InUse maps the numbers of all objects present in the file to their
	// byte offsets.
	InUse map[int]int64
}

// ReadXRef locates and decodes the cross-reference table and the trailer of
// a PDF file.  Cross-reference streams and incremental updates are not
// supported.
func ReadXRef(data []byte) (*XRef, error) {
	start, err := findXRef(data)
	if err != nil {
		return nil, err
	}

	s := &scanner{data: data, pos: int(start)}
	if !s.skipString("xref") {
		return nil, s.errorf("missing xref keyword")
	}

	xref := &XRef{
		Start: start,
		InUse: make(map[int]int64),
	}
	for {
		s.skipWhiteSpace()
		if s.pos >= len(data) || !isDigit(data[s.pos]) {
			break
		}
		first, ok := s.readInteger()
		if !ok {
			return nil, s.errorf("invalid xref subsection")
		}
		s.skipWhiteSpace()
		count, ok := s.readInteger()
		if !ok {
			return nil, s.errorf("invalid xref subsection")
		}
		s.skipWhiteSpace()
		err := decodeXRefSection(xref, s, first, first+count)
		if err != nil {
			return nil, err
		}
	}

	if !s.skipString("trailer") {
		return nil, s.errorf("missing trailer")
	}
	s.skipWhiteSpace()
	err = readTrailer(xref, s)
	if err != nil {
		return nil, err
	}
	return xref, nil
}

// Verify checks that data is a complete PDF file as written by [Write]:
// the file starts with the PDF header, ends with an end-of-file marker, and
// every entry of the cross-reference table points to the start of the
// corresponding "N 0 obj" line.
func Verify(data []byte) (*XRef, error) {
	if !bytes.HasPrefix(data, []byte(Header)) {
		return nil, &MalformedFileError{Err: errors.New("missing PDF header")}
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, "\r\n"), []byte("%%EOF")) {
		return nil, &MalformedFileError{
			Pos: int64(len(data)),
			Err: errors.New("missing end-of-file marker"),
		}
	}

	xref, err := ReadXRef(data)
	if err != nil {
		return nil, err
	}
	for n, pos := range xref.InUse {
		tag := strconv.Itoa(n) + " 0 obj"
		if !bytes.HasPrefix(data[pos:], []byte(tag)) {
			return nil, &MalformedFileError{
				Pos: pos,
				Err: fmt.Errorf("object %d not found at recorded offset", n),
			}
		}
	}
	if _, ok := xref.InUse[xref.Root]; !ok {
		return nil, &MalformedFileError{
			Err: fmt.Errorf("root object %d is missing", xref.Root),
		}
	}
	return xref, nil
}

func findXRef(data []byte) (int64, error) {
	// Only search the end of the file.
	const tailSize = 1024
	tailStart := max(len(data)-tailSize, 0)

	idx := bytes.LastIndex(data[tailStart:], []byte("startxref"))
	if idx < 0 {
		return 0, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	s := &scanner{data: data, pos: tailStart + idx + len("startxref")}
	s.skipWhiteSpace()
	xRefPos, ok := s.readInteger()
	if !ok || xRefPos <= 0 || xRefPos >= len(data) {
		return 0, s.errorf("invalid xref position")
	}
	return int64(xRefPos), nil
}

// decodeXRefSection reads the 20-byte entries for objects start, ...,
// end-1.
func decodeXRefSection(xref *XRef, s *scanner, start, end int) error {
	for i := start; i < end; i++ {
		if len(s.data)-s.pos < 20 {
			return &MalformedFileError{Pos: int64(s.pos), Err: io.ErrUnexpectedEOF}
		}
		buf := s.data[s.pos : s.pos+20]

		a, err := strconv.ParseInt(string(buf[:10]), 10, 64)
		if err != nil {
			return s.errorf("invalid xref offset %q", buf[:10])
		}
		_, err = strconv.ParseUint(string(buf[11:16]), 10, 16)
		if err != nil {
			return s.errorf("invalid xref generation %q", buf[11:16])
		}

		switch buf[17] {
		case 'n':
			if a < 0 || a >= int64(len(s.data)) {
				return s.errorf("xref offset %d for object %d out of range", a, i)
			}
			xref.InUse[i] = a
		case 'f':
			// free entry
		default:
			return s.errorf("invalid xref entry type %q", buf[17])
		}
		s.pos += 20
	}
	return nil
}

// readTrailer extracts /Size and /Root from the trailer dictionary.
func readTrailer(xref *XRef, s *scanner) error {
	if !s.skipString("<<") {
		return s.errorf("missing trailer dictionary")
	}
	end := bytes.Index(s.data[s.pos:], []byte(">>"))
	if end < 0 {
		return s.errorf("unterminated trailer dictionary")
	}
	fields := bytes.Fields(s.data[s.pos : s.pos+end])

	hasSize, hasRoot := false, false
	for i := 0; i < len(fields); i++ {
		switch string(fields[i]) {
		case "/Size":
			if i+1 >= len(fields) {
				return s.errorf("missing /Size value")
			}
			size, err := strconv.Atoi(string(fields[i+1]))
			if err != nil {
				return s.errorf("invalid /Size value %q", fields[i+1])
			}
			xref.Size = size
			hasSize = true
		case "/Root":
			if i+3 >= len(fields) || string(fields[i+3]) != "R" {
				return s.errorf("/Root is not a reference")
			}
			root, err := strconv.Atoi(string(fields[i+1]))
			if err != nil {
				return s.errorf("invalid /Root value %q", fields[i+1])
			}
			xref.Root = root
			hasRoot = true
		}
	}
	if !hasSize || !hasRoot {
		return s.errorf("trailer without /Size or /Root")
	}
	return nil
}

type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) skipWhiteSpace() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\r', '\n', '\f', 0:
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) skipString(pat string) bool {
	if !bytes.HasPrefix(s.data[s.pos:], []byte(pat)) {
		return false
	}
	s.pos += len(pat)
	return true
}

func (s *scanner) readInteger() (int, bool) {
	start := s.pos
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	x, err := strconv.Atoi(string(s.data[start:s.pos]))
	if err != nil {
		return 0, false
	}
	return x, true
}

func (s *scanner) errorf(format string, args ...any) error {
	return &MalformedFileError{
		Pos: int64(s.pos),
		Err: fmt.Errorf(format, args...),
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
