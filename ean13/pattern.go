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

import "strings"

// Kind distinguishes guard bars from bars which encode digits.
type Kind uint8

// The segment kinds.
const (
	// Data segments encode a single digit.
	Data Kind = iota

	// Guard segments delimit the regions of a symbol.  They are normally
	// drawn taller than data bars.
	Guard
)

func (k Kind) String() string {
	switch k {
	case Data:
		return "data"
	case Guard:
		return "guard"
	default:
		return "unknown"
	}
}

// Segment is a run of modules.  Each byte of Bits is either '1' (dark) or
// '0' (light).
type Segment struct {
	Bits string
	Kind Kind
}

// Pattern is the module sequence of one symbol, either a main EAN-13 code or
// an add-on.
type Pattern struct {
	// Digits is the encoded value.
	Digits string

	// Segments lists the segments from left to right.
	Segments []Segment
}

// Width returns the total number of modules in the pattern.
func (p *Pattern) Width() int {
	if p == nil {
		return 0
	}
	w := 0
	for _, seg := range p.Segments {
		w += len(seg.Bits)
	}
	return w
}

// Bits returns the modules of all segments as a single string.
func (p *Pattern) Bits() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(p.Width())
	for _, seg := range p.Segments {
		b.WriteString(seg.Bits)
	}
	return b.String()
}

// Main builds the pattern for a 13 digit EAN code.  The check digit must be
// present and correct, see [EnsureChecksum].
//
// The result always has a width of 95 modules: a 3 module start guard, six
// left-hand digits of 7 modules, a 5 module centre guard, six right-hand
// digits and a 3 module end guard.
func Main(code string) (*Pattern, error) {
	if len(code) != 13 {
		return nil, &InputError{Input: code, Err: ErrInvalidLength}
	}
	if _, err := EnsureChecksum(code); err != nil {
		return nil, err
	}

	segs := make([]Segment, 0, 15)
	segs = append(segs, Segment{Bits: normalGuard, Kind: Guard})

	// The system digit is not drawn, it only selects the parities.
	parity := parityPattern[code[0]-'0']
	for i := 1; i <= 6; i++ {
		d := code[i] - '0'
		segs = append(segs, Segment{Bits: leftCode(d, Parity(parity[i-1])), Kind: Data})
	}

	segs = append(segs, Segment{Bits: centreGuard, Kind: Guard})

	for i := 7; i <= 12; i++ {
		d := code[i] - '0'
		segs = append(segs, Segment{Bits: right[d], Kind: Data})
	}

	segs = append(segs, Segment{Bits: normalGuard, Kind: Guard})

	return &Pattern{Digits: code, Segments: segs}, nil
}

// Addon builds the pattern for a 2 or 5 digit add-on symbol.
//
// The symbol starts with a guard, and consecutive digits are separated by a
// 2 module separator guard.  There is no separator after the last digit.
func Addon(digits string) (*Pattern, error) {
	if !isDigits(digits) {
		return nil, &InputError{Input: digits, Err: ErrInvalidInput}
	}
	if len(digits) != 2 && len(digits) != 5 {
		return nil, &InputError{Input: digits, Err: ErrInvalidAddonLength}
	}

	parity := AddonParity(digits)

	segs := make([]Segment, 0, 2*len(digits))
	segs = append(segs, Segment{Bits: addonStart, Kind: Guard})
	for i := 0; i < len(digits); i++ {
		d := digits[i] - '0'
		segs = append(segs, Segment{Bits: leftCode(d, Parity(parity[i])), Kind: Data})
		if i < len(digits)-1 {
			segs = append(segs, Segment{Bits: addonSeparator, Kind: Guard})
		}
	}

	return &Pattern{Digits: digits, Segments: segs}, nil
}

// AddonParity returns the parity string for a 2 or 5 digit add-on, one
// letter per digit.  For other lengths the empty string is returned.
//
// For 2 digits the checksum is (3*d0 + 9*d1) mod 4, for 5 digits it is
// (3*d0 + 9*d1 + 3*d2 + 9*d3 + 3*d4) mod 10.  The checksum selects the
// parity string from a fixed table.
func AddonParity(digits string) string {
	sum := 0
	for i := 0; i < len(digits); i++ {
		v := int(digits[i] - '0')
		if i%2 == 0 {
			sum += 3 * v
		} else {
			sum += 9 * v
		}
	}

	switch len(digits) {
	case 2:
		return addon2Parity[sum%4]
	case 5:
		return addon5Parity[sum%10]
	default:
		return ""
	}
}
