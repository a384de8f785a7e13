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
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssembleGolden(t *testing.T) {
	objs := map[int][]byte{
		2: []byte("<< /Type /Pages /Kids [] /Count 0 >>"),
		1: []byte("<< /Type /Catalog /Pages 2 0 R >>"),
	}
	got, err := Assemble(objs, 1)
	if err != nil {
		t.Fatal(err)
	}

	obj1 := "1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n"
	obj2 := "2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n"
	pos1 := len("%PDF-1.4\n")
	pos2 := pos1 + len(obj1)
	xrefPos := pos2 + len(obj2)
	want := "%PDF-1.4\n" + obj1 + obj2 +
		"xref\n0 3\n" +
		"0000000000 65535 f \n" +
		fmt.Sprintf("%010d 00000 n \n", pos1) +
		fmt.Sprintf("%010d 00000 n \n", pos2) +
		"trailer\n<< /Size 3 /Root 1 0 R >>\n" +
		fmt.Sprintf("startxref\n%d\n%%%%EOF", xrefPos)

	if d := cmp.Diff(want, string(got)); d != "" {
		t.Errorf("output differs (-want +got):\n%s", d)
	}
}

func randomObjects(rng *rand.Rand, n int, gaps bool) map[int][]byte {
	objs := make(map[int][]byte, n)
	num := 0
	for range n {
		num++
		if gaps && num > 1 {
			num += rng.Intn(3)
		}
		body := fmt.Sprintf("<< /Index %d /Pad (%s) >>", num, strings.Repeat("x", rng.Intn(200)))
		if rng.Intn(4) == 0 {
			// make the body look like it contains object headers
			body += fmt.Sprintf("\n%% %d 0 obj", num+1)
		}
		objs[num] = []byte(body)
	}
	return objs
}

// TestOffsets re-reads the cross-reference table and checks that every
// offset lands on the corresponding object.
func TestOffsets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := range 200 {
		n := 1 + rng.Intn(30)
		gaps := i%2 == 1
		objs := randomObjects(rng, n, gaps)

		data, err := Assemble(objs, 1)
		if err != nil {
			t.Fatal(err)
		}
		xref, err := Verify(data)
		if err != nil {
			t.Fatal(err)
		}

		if len(xref.InUse) != len(objs) {
			t.Errorf("%d objects in xref, want %d", len(xref.InUse), len(objs))
		}
		maxNum := 0
		for num, body := range objs {
			maxNum = max(maxNum, num)
			pos, ok := xref.InUse[num]
			if !ok {
				t.Errorf("object %d missing from xref", num)
				continue
			}
			want := fmt.Sprintf("%d 0 obj\n%s\nendobj\n", num, body)
			if !bytes.HasPrefix(data[pos:], []byte(want)) {
				t.Errorf("object %d: wrong offset %d", num, pos)
			}
		}
		if xref.Size != maxNum+1 {
			t.Errorf("size %d, want %d", xref.Size, maxNum+1)
		}
		if xref.Root != 1 {
			t.Errorf("root %d", xref.Root)
		}
		if !bytes.Equal(data[xref.Start:xref.Start+4], []byte("xref")) {
			t.Errorf("xref start %d does not point to the table", xref.Start)
		}
	}
}

func TestWriteCount(t *testing.T) {
	objs := map[int][]byte{1: []byte("<< >>")}
	buf := &bytes.Buffer{}
	n, err := Write(buf, objs, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Write returned %d, wrote %d bytes", n, buf.Len())
	}
}

func TestAssembleErrors(t *testing.T) {
	_, err := Assemble(nil, 1)
	if !errors.Is(err, ErrEmptyObjectSet) {
		t.Errorf("got %v, want ErrEmptyObjectSet", err)
	}
	_, err = Assemble(map[int][]byte{}, 1)
	if !errors.Is(err, ErrEmptyObjectSet) {
		t.Errorf("got %v, want ErrEmptyObjectSet", err)
	}

	_, err = Assemble(map[int][]byte{0: nil, 1: nil}, 1)
	if !errors.Is(err, ErrInvalidObjectNumber) {
		t.Errorf("got %v, want ErrInvalidObjectNumber", err)
	}

	_, err = Assemble(map[int][]byte{1: nil}, 2)
	if err == nil {
		t.Error("missing root object accepted")
	}
}

func TestVerifyErrors(t *testing.T) {
	good, err := Assemble(map[int][]byte{1: []byte("<< /Type /Catalog >>")}, 1)
	if err != nil {
		t.Fatal(err)
	}

	// shift all objects by one byte, so that the offsets are wrong
	shifted := bytes.Replace(good, []byte("%PDF-1.4\n"), []byte("%PDF-1.4\n\n"), 1)

	cases := map[string][]byte{
		"empty":     {},
		"no header": good[1:],
		"truncated": good[:len(good)-10],
		"shifted":   shifted,
	}
	for name, data := range cases {
		_, err := Verify(data)
		var malformed *MalformedFileError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: got %v, want MalformedFileError", name, err)
		}
	}
}
