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

package shading

import (
	"errors"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/function"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Type2 represents a type 2 (axial) shading.
//
// The color varies along the axis from P0 to P1, and is constant along
// lines perpendicular to the axis.
type Type2 struct {
	// ColorSpace is the PDF representation of the color space,
	// as returned by [seehuhn.de/go/pdfpaint/graphics/color.Functions.Embed].
	ColorSpace pdf.Object

	// Channels is the number of color components of ColorSpace.
	Channels int

	// P0 and P1 are the start and end point of the axis.
	P0, P1 vec.Vec2

	// F maps the parameter t in [0, 1] to color values.
	F function.Func

	ExtendStart bool
	ExtendEnd   bool
	AntiAlias   bool
}

// ShadingType returns 2.
// This implements the [Shading] interface.
func (s *Type2) ShadingType() int {
	return 2
}

// Embed writes the shading dictionary to a PDF file.
// This implements the [Shading] interface.
func (s *Type2) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 2 shadings", pdf.V1_3); err != nil {
		return nil, err
	}
	if s.ColorSpace == nil {
		return nil, errors.New("missing ColorSpace")
	}
	if err := checkFunction(s.F, s.Channels); err != nil {
		return nil, err
	}
	if s.P0 == s.P1 {
		return nil, errors.New("axial shading with zero-length axis")
	}

	fn, err := rm.Embed(s.F)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"ShadingType": pdf.Integer(2),
		"ColorSpace":  s.ColorSpace,
		"Coords": pdf.Array{
			pdf.Number(s.P0.X), pdf.Number(s.P0.Y),
			pdf.Number(s.P1.X), pdf.Number(s.P1.Y),
		},
		"Function": fn,
		"Extend":   extendArray(s.ExtendStart, s.ExtendEnd),
	}
	if s.AntiAlias {
		dict["AntiAlias"] = pdf.Boolean(true)
	}

	ref := rm.Out.Alloc()
	err = rm.Out.Put(ref, dict)
	if err != nil {
		return nil, err
	}
	return ref, nil
}
