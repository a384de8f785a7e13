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

// Package config reads barcode layout settings from TOML files.
//
// A configuration file sets some or all of the following keys, all given in
// millimetres:
//
//	margin_mm      = 3.5
//	bar_unit_mm    = 0.33
//	bar_height_mm  = 22.85
//	guard_extra_mm = 1.65
//	page_height_mm = 40
//
// Keys which are not set keep their default values.  The settings only
// affect the layout of the page, never the encoded symbols.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/barcode/canvas"
)

// PointsPerMM is the number of PDF points in one millimetre.
const PointsPerMM = 72 / 25.4

// Layout holds the layout settings of a configuration file.
// Fields which are nil were not set.
type Layout struct {
	MarginMM     *float64 `toml:"margin_mm"`
	BarUnitMM    *float64 `toml:"bar_unit_mm"`
	BarHeightMM  *float64 `toml:"bar_height_mm"`
	GuardExtraMM *float64 `toml:"guard_extra_mm"`
	PageHeightMM *float64 `toml:"page_height_mm"`
}

// Decode reads a configuration file from r.  Unknown keys are an error.
func Decode(r io.Reader) (*Layout, error) {
	l := &Layout{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	err := dec.Decode(l)
	if err != nil {
		return nil, fmt.Errorf("layout configuration: %w", err)
	}
	return l, nil
}

// Load reads the named configuration file.
func Load(fname string) (*Layout, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	l, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return l, nil
}

// Apply returns a copy of base, with all settings from l applied.
// The result is validated using [canvas.Layout.Validate].
func (l *Layout) Apply(base *canvas.Layout) (*canvas.Layout, error) {
	res := *base

	set := func(dst *float64, mm *float64) {
		if mm != nil {
			*dst = *mm * PointsPerMM
		}
	}
	set(&res.Margin, l.MarginMM)
	set(&res.BarUnit, l.BarUnitMM)
	set(&res.BarHeight, l.BarHeightMM)
	set(&res.GuardExtra, l.GuardExtraMM)
	set(&res.PageHeight, l.PageHeightMM)

	err := res.Validate()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// FromLayout returns the settings which reproduce the given layout.
func FromLayout(cl *canvas.Layout) *Layout {
	mm := func(pt float64) *float64 {
		x := pt / PointsPerMM
		return &x
	}
	return &Layout{
		MarginMM:     mm(cl.Margin),
		BarUnitMM:    mm(cl.BarUnit),
		BarHeightMM:  mm(cl.BarHeight),
		GuardExtraMM: mm(cl.GuardExtra),
		PageHeightMM: mm(cl.PageHeight),
	}
}

// Encode writes l as a TOML configuration file.
func (l *Layout) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(l)
}
