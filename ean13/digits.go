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
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize removes all characters from raw which are not decimal digits.
// Other decimal digits with an ASCII compatibility form, for example
// full-width digits, are folded to ASCII.  Characters which merely contain
// digits, like fractions, superscripts or circled numbers, are removed.
//
// If no digits remain, an error wrapping [ErrInvalidInput] is returned.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if !unicode.Is(unicode.Nd, r) {
			continue
		}
		folded := norm.NFKC.String(string(r))
		if len(folded) == 1 && folded[0] >= '0' && folded[0] <= '9' {
			b.WriteByte(folded[0])
		}
	}
	if b.Len() == 0 {
		return "", &InputError{Input: raw, Err: ErrInvalidInput}
	}
	return b.String(), nil
}

// EnsureChecksum returns a 13 digit EAN code.
//
// If digits has length 12, the check digit is computed and appended.  If
// digits has length 13, the last digit is verified against the first 12 and
// the code is returned unchanged.  All other lengths are rejected.
func EnsureChecksum(digits string) (string, error) {
	if !isDigits(digits) {
		return "", &InputError{Input: digits, Err: ErrInvalidInput}
	}

	switch len(digits) {
	case 12:
		return digits + string(rune('0'+CheckDigit(digits))), nil
	case 13:
		expected := CheckDigit(digits[:12])
		if int(digits[12]-'0') != expected {
			return "", &InputError{
				Input: digits,
				Err:   fmt.Errorf("%w (expected %d)", ErrChecksumMismatch, expected),
			}
		}
		return digits, nil
	default:
		return "", &InputError{Input: digits, Err: ErrInvalidLength}
	}
}

// CheckDigit computes the EAN-13 check digit for the first 12 digits of
// digits.  Digits at even positions (counting from 0) have weight 1, digits
// at odd positions have weight 3.  The caller must make sure that digits
// consists of ASCII decimal digits only.
func CheckDigit(digits string) int {
	sum := 0
	for i := 0; i < len(digits) && i < 12; i++ {
		v := int(digits[i] - '0')
		if i%2 == 0 {
			sum += v
		} else {
			sum += 3 * v
		}
	}
	return (10 - sum%10) % 10
}

// NormalizeAddon normalizes an add-on value and checks that exactly 2 or 5
// digits remain.
func NormalizeAddon(raw string) (string, error) {
	digits, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	if len(digits) != 2 && len(digits) != 5 {
		return "", &InputError{Input: raw, Err: ErrInvalidAddonLength}
	}
	return digits, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
