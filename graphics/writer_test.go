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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/barcode/canvas"
	"seehuhn.de/go/barcode/ean13"
)

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:           "0",
		-0.001:      "0",
		1:           "1",
		10.5:        "10.5",
		3.527777778: "3.53",
		-18:         "-18",
		140:         "140",
	}
	for x, want := range cases {
		if got := FormatNumber(x); got != want {
			t.Errorf("FormatNumber(%g) = %q, want %q", x, got, want)
		}
	}
}

func TestQuote(t *testing.T) {
	cases := map[string]string{
		"4006381333931": "(4006381333931)",
		"Price 59995":   "(Price 59995)",
		"a(b)c\\":       `(a\(b\)c\\)`,
		"x\ny":          `(x\ny)`,
		"\x01\xff":      `(\001\377)`,
	}
	for in, want := range cases {
		if got := quote(in); got != want {
			t.Errorf("quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestStickyError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Fill() // no current path
	if w.Err == nil {
		t.Fatal("Fill without path accepted")
	}
	n := buf.Len()
	w.Rectangle(0, 0, 1, 1)
	if buf.Len() != n {
		t.Error("output written after error")
	}

	w = NewWriter(&bytes.Buffer{})
	w.TextShow("x")
	if w.Err == nil {
		t.Error("TextShow outside text object accepted")
	}

	w = NewWriter(&bytes.Buffer{})
	w.TextStart()
	w.TextSetFont("F 1", 12)
	if w.Err == nil {
		t.Error("invalid font name accepted")
	}

	w = NewWriter(&bytes.Buffer{})
	w.SetFillRGB(0, 2, 0)
	if w.Err == nil {
		t.Error("invalid colour accepted")
	}
}

func TestContentStream(t *testing.T) {
	c := &canvas.Canvas{
		Page:     rect.Rect{URx: 40, URy: 140},
		FontSize: 12,
		Ops: []canvas.Op{
			canvas.FillRect{Rect: rect.Rect{LLx: 10, LLy: 40, URx: 11, URy: 120}},
			canvas.FillRect{Rect: rect.Rect{LLx: 12, LLy: 40, URx: 13, URy: 110}},
			canvas.ShowText{X: 10, Y: 22, Text: "12"},
			canvas.ShowText{X: 29, Y: 22, Text: "Price 12"},
		},
	}
	got, err := ContentStream(c, "F1")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"0 0 0 rg",
		"10 40 1 80 re f",
		"12 40 1 70 re f",
		"BT",
		"/F1 12 Tf",
		"10 22 Td",
		"(12) Tj",
		"19 0 Td",
		"(Price 12) Tj",
		"ET",
	}, "\n")
	if d := cmp.Diff(want, string(got)); d != "" {
		t.Errorf("content stream differs (-want +got):\n%s", d)
	}
}

func TestContentStreamBarcode(t *testing.T) {
	p, err := ean13.Main("4006381333931")
	if err != nil {
		t.Fatal(err)
	}
	c, err := canvas.Draw(&canvas.Symbol{Pattern: p, Label: p.Digits}, nil, canvas.DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}

	data, err := ContentStream(c, "F1")
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)

	nRect := strings.Count(s, " re f\n")
	if want := strings.Count(p.Bits(), "1"); nRect != want {
		t.Errorf("%d rectangles, want %d", nRect, want)
	}
	if !strings.HasPrefix(s, "0 0 0 rg\n10 40 1 80 re f\n") {
		t.Errorf("unexpected start of content stream: %.40q", s)
	}
	if !strings.HasSuffix(s, "BT\n/F1 12 Tf\n10 22 Td\n(4006381333931) Tj\nET") {
		t.Errorf("unexpected end of content stream: %q", s[len(s)-60:])
	}
	if strings.Count(s, "BT") != 1 {
		t.Error("labels are not in a single text object")
	}
}
