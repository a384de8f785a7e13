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

package ean13

import (
	"errors"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/boombuler/barcode/ean"
	"github.com/google/go-cmp/cmp"
)

func TestMainGolden(t *testing.T) {
	type testCase struct {
		code string
		bits string
	}
	cases := []testCase{
		{
			code: "4006381333931",
			bits: "10100011010100111010111101111010001001011001101010100001010000101000010111010010000101100110101",
		},
		{
			code: "9780306406157",
			bits: "10101110110001001010011101111010100111010111101010101110011100101010000110011010011101000100101",
		},
	}
	for _, c := range cases {
		p, err := Main(c.code)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.bits, p.Bits()); d != "" {
			t.Errorf("%s: bits differ (-want +got):\n%s", c.code, d)
		}
	}
}

func TestMainStructure(t *testing.T) {
	p, err := Main("4006381333931")
	if err != nil {
		t.Fatal(err)
	}

	var kinds []Kind
	for _, seg := range p.Segments {
		kinds = append(kinds, seg.Kind)
	}
	want := []Kind{Guard}
	for range 6 {
		want = append(want, Data)
	}
	want = append(want, Guard)
	for range 6 {
		want = append(want, Data)
	}
	want = append(want, Guard)
	if d := cmp.Diff(want, kinds); d != "" {
		t.Errorf("segment kinds differ (-want +got):\n%s", d)
	}

	if p.Segments[0].Bits != "101" || p.Segments[7].Bits != "01010" || p.Segments[14].Bits != "101" {
		t.Errorf("wrong guards: %v", p.Segments)
	}
	if p.Digits != "4006381333931" {
		t.Errorf("got digits %q", p.Digits)
	}
}

// TestMainWidth checks that every main symbol is exactly 95 modules wide,
// independent of the digits.
func TestMainWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for first := range 10 {
		for range 50 {
			digits := string(rune('0'+first)) + randomDigits(rng, 11)
			code, err := EnsureChecksum(digits)
			if err != nil {
				t.Fatal(err)
			}
			p, err := Main(code)
			if err != nil {
				t.Fatal(err)
			}
			if w := p.Width(); w != 3+42+5+42+3 {
				t.Fatalf("%s: width %d", code, w)
			}
			if len(p.Bits()) != p.Width() {
				t.Fatalf("%s: %d bits for width %d", code, len(p.Bits()), p.Width())
			}
		}
	}
}

// TestMainOracle compares the module sequence with an independent EAN-13
// encoder.
func TestMainOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for range 200 {
		code, err := EnsureChecksum(randomDigits(rng, 12))
		if err != nil {
			t.Fatal(err)
		}
		p, err := Main(code)
		if err != nil {
			t.Fatal(err)
		}

		bc, err := ean.Encode(code)
		if err != nil {
			t.Fatal(err)
		}
		n := bc.Bounds().Dx()
		if n != p.Width() {
			t.Fatalf("%s: oracle has %d modules, we have %d", code, n, p.Width())
		}
		var want strings.Builder
		for x := range n {
			if bc.At(x, 0) == color.Black {
				want.WriteByte('1')
			} else {
				want.WriteByte('0')
			}
		}
		if d := cmp.Diff(want.String(), p.Bits()); d != "" {
			t.Errorf("%s: bits differ (-want +got):\n%s", code, d)
		}
	}
}

func TestMainErrors(t *testing.T) {
	type testCase struct {
		code string
		want error
	}
	cases := []testCase{
		{"400638133393", ErrInvalidLength},
		{"40063813339311", ErrInvalidLength},
		{"4006381333932", ErrChecksumMismatch},
		{"40063813339x1", ErrInvalidInput},
	}
	for _, c := range cases {
		_, err := Main(c.code)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.code, err, c.want)
		}
	}
}

func TestAddonGolden(t *testing.T) {
	type testCase struct {
		digits string
		parity string
		bits   string
	}
	cases := []testCase{
		{"59995", "AABAB", "10110110001010001011010010111010001011010111001"},
		{"52495", "BABAA", "10110111001010010011010011101010001011010110001"},
		{"12", "AB", "10110011001010011011"},
	}
	for _, c := range cases {
		if got := AddonParity(c.digits); got != c.parity {
			t.Errorf("%s: parity %s, want %s", c.digits, got, c.parity)
		}
		p, err := Addon(c.digits)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.bits, p.Bits()); d != "" {
			t.Errorf("%s: bits differ (-want +got):\n%s", c.digits, d)
		}
	}
}

func TestAddonStructure(t *testing.T) {
	for _, digits := range []string{"00", "99", "00000", "59995"} {
		p, err := Addon(digits)
		if err != nil {
			t.Fatal(err)
		}

		n := len(digits)
		if len(p.Segments) != 2*n {
			t.Fatalf("%s: %d segments", digits, len(p.Segments))
		}
		if p.Segments[0] != (Segment{Bits: "1011", Kind: Guard}) {
			t.Errorf("%s: wrong start %v", digits, p.Segments[0])
		}
		for i := 1; i < len(p.Segments); i++ {
			seg := p.Segments[i]
			if i%2 == 1 {
				if seg.Kind != Data || len(seg.Bits) != 7 {
					t.Errorf("%s: segment %d: %v", digits, i, seg)
				}
			} else if seg != (Segment{Bits: "01", Kind: Guard}) {
				t.Errorf("%s: segment %d: %v", digits, i, seg)
			}
		}
		if last := p.Segments[len(p.Segments)-1]; last.Kind != Data {
			t.Errorf("%s: ends with %v", digits, last)
		}

		want := 4 + 7*n + 2*(n-1)
		if p.Width() != want {
			t.Errorf("%s: width %d, want %d", digits, p.Width(), want)
		}
	}
}

func TestAddonParityTables(t *testing.T) {
	for _, s := range addon5Parity {
		if strings.Count(s, "B") != 2 {
			t.Errorf("parity %s does not have two B digits", s)
		}
	}
	seen := make(map[string]bool)
	for _, s := range addon5Parity {
		if seen[s] {
			t.Errorf("duplicate parity %s", s)
		}
		seen[s] = true
	}
}

func TestAddonErrors(t *testing.T) {
	for _, digits := range []string{"1", "123", "1234", "123456"} {
		_, err := Addon(digits)
		if !errors.Is(err, ErrInvalidAddonLength) {
			t.Errorf("%s: got %v, want ErrInvalidAddonLength", digits, err)
		}
	}
	_, err := Addon("1a")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}
