// seehuhn.de/go/pdfpaint - gradients and transparency for PDF files
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

package pdfpaint

import (
	"errors"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/content"
	"seehuhn.de/go/pdfpaint/graphics/extgstate"
	"seehuhn.de/go/pdfpaint/graphics/form"
	"seehuhn.de/go/pdfpaint/graphics/group"
	"seehuhn.de/go/pdfpaint/graphics/pattern"
	"seehuhn.de/go/pdfpaint/graphics/softclip"
	"seehuhn.de/go/pdfpaint/logging"
	"seehuhn.de/go/pdfpaint/pdf"
)

// WriteGradients writes a pattern for every distinct gradient used in the
// resource sets of col.  Gradients which have been written before are
// skipped, so that WriteGradients can be called more than once.
func (c *Context) WriteGradients(col Collector) error {
	var err error
	count := 0
	col.Traverse(func(res *Resources) {
		if err != nil {
			return
		}
		for _, d := range res.Gradients.Items() {
			key := d.Key()
			if _, done := c.gradients[key]; done {
				continue
			}

			var ref pdf.Reference
			ref, err = c.writeGradient(&d)
			if err != nil {
				return
			}
			c.gradients[key] = ref
			count++
		}
	})
	if err != nil {
		return err
	}
	logging.Logger().Debug("gradients written", "count", count, "total", len(c.gradients))
	return nil
}

// writeGradient writes the pattern for one gradient.  Transparent
// gradients are painted by a tiling pattern, which applies the opacity
// of the gradient using a soft mask.
func (c *Context) writeGradient(d *GradientDescriptor) (pdf.Reference, error) {
	shadingPattern, err := c.writePattern(d)
	if err != nil {
		return 0, err
	}
	if !d.IsTransparent() {
		return shadingPattern, nil
	}
	return c.transparentTiling(d, shadingPattern)
}

// transparentTiling writes a tiling pattern which covers the whole page
// with the gradient d, using the alpha values of d as a soft mask.
func (c *Context) transparentTiling(d *GradientDescriptor, shadingPattern pdf.Reference) (pdf.Reference, error) {
	w, h := d.PageSize.X, d.PageSize.Y
	if !(w > 0 && h > 0) {
		return 0, errors.New("transparent gradient on a page without size")
	}
	page := rect.Rect{URx: w, URy: h}

	alpha := *d
	alpha.Gradient = gradient.AlphaGradient(d.Gradient)
	alphaPattern, err := c.writePattern(&alpha)
	if err != nil {
		return 0, err
	}

	// The soft mask fills the page with the alpha gradient.
	maskContent, err := fillPage(w, h, false)
	if err != nil {
		return 0, err
	}
	gray, err := c.Colors.Embed(c.RM, color.D65Gray)
	if err != nil {
		return 0, err
	}
	mask := &form.Form{
		BBox:  page,
		Group: &group.TransparencyAttributes{CS: gray},
		Resources: pdf.Dict{
			"Pattern": pdf.Dict{patternName: alphaPattern},
		},
		Content: maskContent,
	}
	gs := &extgstate.ExtGState{
		Set: extgstate.SoftMask,
		SoftMask: &softclip.Mask{
			S: softclip.Luminosity,
			G: mask,
		},
		SingleUse: true,
	}
	gsObj, err := gs.Embed(c.RM)
	if err != nil {
		return 0, err
	}

	// The pattern cell fills the page with the gradient, through the mask.
	tileContent, err := fillPage(w, h, true)
	if err != nil {
		return 0, err
	}
	tile := &pattern.Type1{
		PaintType:  1,
		TilingType: 2,
		BBox:       page,
		XStep:      w,
		YStep:      h,
		Resources: pdf.Dict{
			"Pattern":   pdf.Dict{patternName: shadingPattern},
			"ExtGState": pdf.Dict{extGStName: gsObj},
		},
		Content: tileContent,
	}
	obj, err := tile.Embed(c.RM)
	if err != nil {
		return 0, err
	}
	return obj.(pdf.Reference), nil
}

// fillPage returns a content stream which fills the rectangle
// [0, w] x [0, h] with the pattern "Gr".  If withState is set, the
// graphics state "Gs" is installed first.
func fillPage(w, h float64, withState bool) ([]byte, error) {
	cw := content.NewWriter()
	if withState {
		cw.SetExtGState(extGStName)
	}
	cw.SetFillPattern(patternName)
	cw.Rectangle(0, 0, w, h)
	cw.Fill()
	return cw.Bytes()
}
