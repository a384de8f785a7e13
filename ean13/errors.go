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
	"strconv"
)

// Errors returned by the functions in this package.  The errors are
// wrapped in an [*InputError]; use [errors.Is] to test for them.
var (
	// ErrInvalidInput indicates that the input contains no digits at all.
	ErrInvalidInput = errors.New("no digits found")

	// ErrInvalidLength indicates that a main code has neither 12 nor 13
	// digits.
	ErrInvalidLength = errors.New("EAN-13 requires 12 or 13 digits")

	// ErrChecksumMismatch indicates that the 13th digit of a code is not
	// the check digit of the first 12.
	ErrChecksumMismatch = errors.New("invalid EAN-13 check digit")

	// ErrInvalidAddonLength indicates that an add-on has neither 2 nor 5
	// digits.
	ErrInvalidAddonLength = errors.New("add-on must have 2 or 5 digits")
)

// InputError is returned when a barcode value cannot be encoded.
type InputError struct {
	Input string
	Err   error
}

func (err *InputError) Error() string {
	return "barcode value " + strconv.Quote(err.Input) + ": " + err.Err.Error()
}

func (err *InputError) Unwrap() error {
	return err.Err
}
