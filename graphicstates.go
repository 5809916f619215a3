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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/content"
	"seehuhn.de/go/pdfpaint/graphics/extgstate"
	"seehuhn.de/go/pdfpaint/graphics/form"
	"seehuhn.de/go/pdfpaint/graphics/group"
	"seehuhn.de/go/pdfpaint/graphics/softclip"
	"seehuhn.de/go/pdfpaint/logging"
	"seehuhn.de/go/pdfpaint/pdf"
)

// WriteGraphicStates writes a graphics state parameter dictionary for
// every distinct graphics state used in the resource sets of col.
// Graphics states which have been written before are skipped.
func (c *Context) WriteGraphicStates(col Collector) error {
	var err error
	count := 0
	col.Traverse(func(res *Resources) {
		if err != nil {
			return
		}
		for _, gs := range res.ExtGStates.Items() {
			key := gs.Key()
			if _, done := c.extGStates[key]; done {
				continue
			}

			var ref pdf.Reference
			ref, err = c.writeExtGState(&gs)
			if err != nil {
				return
			}
			c.extGStates[key] = ref
			count++
		}
	})
	if err != nil {
		return err
	}
	logging.Logger().Debug("graphics states written", "count", count, "total", len(c.extGStates))
	return nil
}

func (c *Context) writeExtGState(gs *ExtGState) (pdf.Reference, error) {
	e := &extgstate.ExtGState{
		Set:         extgstate.StrokeAlpha | extgstate.FillAlpha | extgstate.SoftMask,
		StrokeAlpha: float64(gs.StrokeOpacity) / 255,
		FillAlpha:   float64(gs.FillOpacity) / 255,
	}

	if m := gs.SoftMask; m != nil {
		sh, err := c.writeShading(&m.Gradient)
		if err != nil {
			return 0, err
		}
		gray, err := c.Colors.Embed(c.RM, color.D65Gray)
		if err != nil {
			return 0, err
		}
		cw := content.NewWriter()
		cw.DrawShading(shadingName)
		data, err := cw.Bytes()
		if err != nil {
			return 0, err
		}
		e.SoftMask = &softclip.Mask{
			S: softclip.Luminosity,
			G: &form.Form{
				BBox:   softMaskBBox(m),
				Matrix: m.Transform,
				Group:  &group.TransparencyAttributes{CS: gray},
				Resources: pdf.Dict{
					"Shading": pdf.Dict{shadingName: sh},
				},
				Content: data,
			},
		}
	}

	obj, err := e.Embed(c.RM)
	if err != nil {
		return 0, err
	}
	return obj.(pdf.Reference), nil
}

// softMaskBBox returns the unit square, enlarged by half the stroke
// thickness.  The thickness is given in page units and is converted to
// the coordinate system of the mask.
func softMaskBBox(m *SoftMask) rect.Rect {
	M := m.Transform
	dx := axisExtension(m.StrokeThickness, math.Hypot(M[0], M[1]))
	dy := axisExtension(m.StrokeThickness, math.Hypot(M[2], M[3]))
	return rect.Rect{LLx: -dx, LLy: -dy, URx: 1 + dx, URy: 1 + dy}
}

func axisExtension(thickness, scale float64) float64 {
	if !(thickness > 0) || !(scale > 0) || math.IsInf(scale, 0) {
		return 0
	}
	return thickness / 2 / scale
}
