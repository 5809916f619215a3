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
	"fmt"

	"seehuhn.de/go/pdfpaint/function"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Type3 represents a type 3 (radial) shading.
//
// The color is defined on a family of circles, interpolating between the
// starting circle (X1, Y1, R1) and the ending circle (X2, Y2, R2).
type Type3 struct {
	// ColorSpace is the PDF representation of the color space.
	ColorSpace pdf.Object

	// Channels is the number of color components of ColorSpace.
	Channels int

	X1, Y1, R1 float64
	X2, Y2, R2 float64

	// F maps the parameter t in [0, 1] to color values.
	F function.Func

	ExtendStart bool
	ExtendEnd   bool
	AntiAlias   bool
}

// ShadingType returns 3.
// This implements the [Shading] interface.
func (s *Type3) ShadingType() int {
	return 3
}

// Embed writes the shading dictionary to a PDF file.
// This implements the [Shading] interface.
func (s *Type3) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 3 shadings", pdf.V1_3); err != nil {
		return nil, err
	}
	if s.ColorSpace == nil {
		return nil, errors.New("missing ColorSpace")
	}
	if s.R1 < 0 {
		return nil, fmt.Errorf("invalid radius: %g", s.R1)
	}
	if s.R2 < 0 {
		return nil, fmt.Errorf("invalid radius: %g", s.R2)
	}
	if err := checkFunction(s.F, s.Channels); err != nil {
		return nil, err
	}

	fn, err := rm.Embed(s.F)
	if err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"ShadingType": pdf.Integer(3),
		"ColorSpace":  s.ColorSpace,
		"Coords": pdf.Array{
			pdf.Number(s.X1), pdf.Number(s.Y1), pdf.Number(s.R1),
			pdf.Number(s.X2), pdf.Number(s.Y2), pdf.Number(s.R2),
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
