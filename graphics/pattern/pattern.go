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

// Package pattern implements PDF shading patterns and tiling patterns.
//
// Patterns are selected as the current color with the "scn" and "SCN"
// operators, after selecting the /Pattern color space.
package pattern

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Type2 represents a shading pattern.
type Type2 struct {
	// Shading is a reference to the shading dictionary.
	Shading pdf.Object

	// Matrix maps pattern space to the default coordinate space of the
	// page.  The zero value is treated as the identity matrix.
	Matrix matrix.Matrix
}

// Embed writes the pattern dictionary to a PDF file.
//
// This implements the [pdf.Embedder] interface.
func (p *Type2) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "shading patterns", pdf.V1_3); err != nil {
		return nil, err
	}
	if p.Shading == nil {
		return nil, errors.New("missing shading")
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(2),
		"Shading":     p.Shading,
		"Matrix":      matrixObject(p.Matrix),
	}

	ref := rm.Out.Alloc()
	err := rm.Out.Put(ref, dict)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// Type1 represents a tiling pattern.
type Type1 struct {
	// PaintType is 1 for colored patterns, and 2 for uncolored patterns.
	PaintType int

	// TilingType controls adjustments to the spacing of tiles relative to
	// the device pixel grid: 1 for constant spacing, 2 for no distortion,
	// 3 for constant spacing and faster tiling.
	TilingType int

	// BBox is the pattern cell's bounding box.
	BBox rect.Rect

	// XStep and YStep give the spacing between pattern cells.
	XStep, YStep float64

	// Matrix maps pattern space to the default coordinate space of the
	// page.  The zero value is treated as the identity matrix.
	Matrix matrix.Matrix

	// Resources is the resource dictionary of the pattern cell.
	Resources pdf.Dict

	// Content is the content stream which paints the pattern cell.
	Content []byte
}

// Embed writes the pattern stream to a PDF file.
//
// This implements the [pdf.Embedder] interface.
func (p *Type1) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if p.PaintType != 1 && p.PaintType != 2 {
		return nil, errors.New("invalid PaintType")
	}
	if p.TilingType < 1 || p.TilingType > 3 {
		return nil, errors.New("invalid TilingType")
	}
	if p.BBox.URx <= p.BBox.LLx || p.BBox.URy <= p.BBox.LLy {
		return nil, errors.New("empty pattern cell")
	}
	if p.XStep == 0 || p.YStep == 0 {
		return nil, errors.New("invalid pattern step")
	}

	res := p.Resources
	if res == nil {
		res = pdf.Dict{}
	}
	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(p.PaintType),
		"TilingType":  pdf.Integer(p.TilingType),
		"BBox":        pdf.ArrayFromRect(p.BBox),
		"XStep":       pdf.Number(p.XStep),
		"YStep":       pdf.Number(p.YStep),
		"Resources":   res,
		"Matrix":      matrixObject(p.Matrix),
	}

	ref := rm.Out.Alloc()
	stm, err := rm.Out.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return nil, err
	}
	_, err = stm.Write(p.Content)
	if err != nil {
		return nil, err
	}
	err = stm.Close()
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func matrixObject(m matrix.Matrix) pdf.Object {
	if m == (matrix.Matrix{}) || m == matrix.Identity {
		return nil
	}
	return pdf.ArrayFromFloats(m[:])
}
