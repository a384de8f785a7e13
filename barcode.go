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

package barcode

import (
	"fmt"

	"seehuhn.de/go/barcode/canvas"
	"seehuhn.de/go/barcode/document"
	"seehuhn.de/go/barcode/ean13"
	"seehuhn.de/go/barcode/graphics"
)

// Options control the appearance of a barcode.
type Options struct {
	// Layout gives the page geometry.  If this is nil,
	// [canvas.DefaultLayout] is used.
	Layout *canvas.Layout
}

// The object numbers of the fixed document structure.
const (
	objCatalog = iota + 1
	objPages
	objPage
	objContents
	objFont
)

// fontName is the resource name of the label font.
const fontName = "F1"

// EAN13 returns a PDF file showing the EAN-13 barcode for code.
//
// All non-digit characters are removed from code.  The remaining 12 or 13
// digits form the barcode; for 12 digits the check digit is appended, for 13
// digits the check digit is verified.  If addon is not empty, it is
// normalised in the same way and must then have 2 or 5 digits.  The add-on is
// drawn to the right of the main symbol, labelled "Price NNNNN".
//
// On error, no data is returned.  Errors from input validation wrap the
// errors defined in the [ean13] package.
func EAN13(code, addon string, opt *Options) ([]byte, error) {
	l := canvas.DefaultLayout()
	if opt != nil && opt.Layout != nil {
		l = opt.Layout
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	digits, err := ean13.Normalize(code)
	if err != nil {
		return nil, err
	}
	digits, err = ean13.EnsureChecksum(digits)
	if err != nil {
		return nil, err
	}
	mainPattern, err := ean13.Main(digits)
	if err != nil {
		return nil, err
	}
	main := &canvas.Symbol{Pattern: mainPattern, Label: digits}

	var extra *canvas.Symbol
	if addon != "" {
		addonDigits, err := ean13.NormalizeAddon(addon)
		if err != nil {
			return nil, err
		}
		addonPattern, err := ean13.Addon(addonDigits)
		if err != nil {
			return nil, err
		}
		extra = &canvas.Symbol{Pattern: addonPattern, Label: "Price " + addonDigits}
	}

	page, err := canvas.Draw(main, extra, l)
	if err != nil {
		return nil, err
	}
	content, err := graphics.ContentStream(page, fontName)
	if err != nil {
		return nil, err
	}

	return document.Assemble(pageObjects(page, content), objCatalog)
}

// pageObjects returns the bodies of the five objects of a single page
// document: catalog, page tree, page, content stream and font.
func pageObjects(page *canvas.Canvas, content []byte) map[int][]byte {
	num := graphics.FormatNumber

	objs := map[int][]byte{
		objCatalog: fmt.Appendf(nil, "<< /Type /Catalog /Pages %d 0 R >>", objPages),
		objPages:   fmt.Appendf(nil, "<< /Type /Pages /Kids [%d 0 R] /Count 1 >>", objPage),
		objPage: fmt.Appendf(nil,
			"<< /Type /Page /Parent %d 0 R /MediaBox [%s %s %s %s] /Contents %d 0 R"+
				" /Resources << /Font << /%s %d 0 R >> >> >>",
			objPages,
			num(page.Page.LLx), num(page.Page.LLy), num(page.Page.URx), num(page.Page.URy),
			objContents, fontName, objFont),
		objContents: fmt.Appendf(nil, "<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		objFont:     []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"),
	}
	return objs
}
