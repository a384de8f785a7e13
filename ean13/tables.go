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

// Parity selects one of the two encoding tables for left-hand digits.
type Parity byte

// The two left-hand parities.  In GS1 terminology, A is the "L" (odd parity)
// set and B is the "G" (even parity) set.
const (
	ParityA Parity = 'A'
	ParityB Parity = 'B'
)

func (p Parity) String() string {
	return string(rune(p))
}

// Fixed bit patterns of the guard bars.
const (
	normalGuard    = "101"
	centreGuard    = "01010"
	addonStart     = "1011"
	addonSeparator = "01"
)

// leftA, leftB and right give the 7-module code of each digit.
var (
	leftA = [10]string{
		"0001101", "0011001", "0010011", "0111101", "0100011",
		"0110001", "0101111", "0111011", "0110111", "0001011",
	}
	leftB = [10]string{
		"0100111", "0110011", "0011011", "0100001", "0011101",
		"0111001", "0000101", "0010001", "0001001", "0010111",
	}
	right = [10]string{
		"1110010", "1100110", "1101100", "1000010", "1011100",
		"1001110", "1010000", "1000100", "1001000", "1110100",
	}
)

// parityPattern is indexed by the leading (system) digit of a code and gives
// the parities of the six left-hand digits.
var parityPattern = [10]string{
	"AAAAAA", "AABABB", "AABBAB", "AABBBA", "ABAABB",
	"ABBAAB", "ABBBAA", "ABABAB", "ABABBA", "ABBABA",
}

// addon2Parity is indexed by the 2-digit add-on checksum.
var addon2Parity = [4]string{"AA", "AB", "BA", "BB"}

// addon5Parity is indexed by the 5-digit add-on checksum.  Every entry has
// exactly two B digits.
var addon5Parity = [10]string{
	"BBAAA", "BABAA", "BAABA", "BAAAB", "ABBAA",
	"AABBA", "AAABB", "ABABA", "ABAAB", "AABAB",
}

// leftCode returns the 7-module code of digit d (0-9) in the given parity.
func leftCode(d byte, p Parity) string {
	if p == ParityB {
		return leftB[d]
	}
	return leftA[d]
}
