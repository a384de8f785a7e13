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

package canvas

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Layout holds the geometry parameters of a barcode page.
// All lengths are in PDF points (1/72 inch).
type Layout struct {
	// Margin is the space to the left of the main symbol and to the right of
	// the last symbol.
	Margin float64

	// BarUnit is the width of one module.
	BarUnit float64

	// BarHeight is the height of data bars in the main symbol.
	BarHeight float64

	// GuardExtra is added to BarHeight for guard bars.
	GuardExtra float64

	// PageHeight is the height of the page.
	PageHeight float64

	// BarBottom is the y coordinate of the lower edge of all bars.
	BarBottom float64

	// AddonGap is the space between the main symbol and the add-on,
	// in modules.
	AddonGap float64

	// AddonShorten is subtracted from BarHeight for the data bars of an
	// add-on symbol.
	AddonShorten float64

	// FontSize is the size of the human readable labels.
	FontSize float64

	// LabelDrop is the distance from BarBottom down to the label baseline.
	LabelDrop float64
}

// DefaultLayout returns the standard barcode layout.
func DefaultLayout() *Layout {
	return &Layout{
		Margin:       10,
		BarUnit:      1,
		BarHeight:    70,
		GuardExtra:   10,
		PageHeight:   140,
		BarBottom:    40,
		AddonGap:     6,
		AddonShorten: 8,
		FontSize:     12,
		LabelDrop:    18,
	}
}

// Validate checks that the layout can be used to draw a barcode.
func (l *Layout) Validate() error {
	type check struct {
		name     string
		val      float64
		positive bool
	}
	checks := []check{
		{"margin", l.Margin, false},
		{"bar unit", l.BarUnit, true},
		{"bar height", l.BarHeight, true},
		{"guard extra height", l.GuardExtra, false},
		{"page height", l.PageHeight, true},
		{"bar bottom", l.BarBottom, false},
		{"add-on gap", l.AddonGap, false},
		{"add-on shortening", l.AddonShorten, false},
		{"font size", l.FontSize, true},
	}
	for _, c := range checks {
		if c.val < 0 || c.positive && c.val == 0 {
			return fmt.Errorf("invalid layout: %s %g", c.name, c.val)
		}
	}
	if l.AddonShorten >= l.BarHeight {
		return fmt.Errorf("invalid layout: add-on shortening %g exceeds bar height %g",
			l.AddonShorten, l.BarHeight)
	}
	return nil
}

// Geometry describes where the symbols are placed on the page.
type Geometry struct {
	// Page is the page area, with the lower left corner at the origin.
	Page rect.Rect

	// MainX is the left edge of the main symbol.
	MainX float64

	// AddonX is the left edge of the add-on symbol.  If there is no add-on,
	// this is the position where it would start.
	AddonX float64
}

// Geometry computes the page size for a main symbol of mainWidth modules and
// an add-on of addonWidth modules.  If addonWidth is 0, no add-on is
// present and no gap is reserved.
func (l *Layout) Geometry(mainWidth, addonWidth int) *Geometry {
	mainEnd := l.Margin + float64(mainWidth)*l.BarUnit

	gap := 0.0
	if addonWidth > 0 {
		gap = l.AddonGap * l.BarUnit
	}
	addonX := mainEnd + gap

	width := 2*l.Margin + float64(mainWidth)*l.BarUnit
	if addonWidth > 0 {
		width += gap + float64(addonWidth)*l.BarUnit
	}

	return &Geometry{
		Page:   rect.Rect{URx: width, URy: l.PageHeight},
		MainX:  l.Margin,
		AddonX: addonX,
	}
}
