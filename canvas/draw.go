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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/barcode/ean13"
)

// Symbol is a barcode pattern together with its human readable label.
type Symbol struct {
	Pattern *ean13.Pattern
	Label   string
}

// Draw lays out a main symbol and an optional add-on symbol.
// If addon is nil, only the main symbol is drawn.
//
// Each dark module becomes one [FillRect].  Guard bars of both symbols are
// GuardExtra taller than the data bars of the main symbol, data bars of the
// add-on are AddonShorten shorter.  The labels are placed below the bars,
// the main label at the left edge of the main symbol and the add-on label at
// the left edge of the add-on.
//
// The layout is checked using [Layout.Validate]; for an invalid layout
// no canvas is returned.
func Draw(main, addon *Symbol, l *Layout) (*Canvas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	addonWidth := 0
	if addon != nil {
		addonWidth = addon.Pattern.Width()
	}
	geom := l.Geometry(main.Pattern.Width(), addonWidth)

	c := &Canvas{
		Page:     geom.Page,
		FontSize: l.FontSize,
	}

	c.bars(main.Pattern, geom.MainX, l, func(k ean13.Kind) float64 {
		if k == ean13.Guard {
			return l.BarHeight + l.GuardExtra
		}
		return l.BarHeight
	})
	if addon != nil {
		c.bars(addon.Pattern, geom.AddonX, l, func(k ean13.Kind) float64 {
			if k == ean13.Guard {
				return l.BarHeight + l.GuardExtra
			}
			return l.BarHeight - l.AddonShorten
		})
	}

	labelY := l.BarBottom - l.LabelDrop
	c.Ops = append(c.Ops, ShowText{X: geom.MainX, Y: labelY, Text: main.Label})
	if addon != nil {
		c.Ops = append(c.Ops, ShowText{X: geom.AddonX, Y: labelY, Text: addon.Label})
	}

	return c, nil
}

// bars appends one rectangle per dark module of p, starting at x.
func (c *Canvas) bars(p *ean13.Pattern, x float64, l *Layout, height func(ean13.Kind) float64) {
	for _, seg := range p.Segments {
		h := height(seg.Kind)
		for i := 0; i < len(seg.Bits); i++ {
			if seg.Bits[i] == '1' {
				c.Ops = append(c.Ops, FillRect{
					Rect: rect.Rect{
						LLx: x,
						LLy: l.BarBottom,
						URx: x + l.BarUnit,
						URy: l.BarBottom + h,
					},
				})
			}
			x += l.BarUnit
		}
	}
}
