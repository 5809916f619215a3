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

// Package form implements form XObjects.
package form

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfpaint/graphics/group"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Form represents a PDF form XObject.
type Form struct {
	// BBox is the bounding box of the form, in form space.
	BBox rect.Rect

	// Matrix maps form space to user space.
	// The zero value is treated as the identity matrix.
	Matrix matrix.Matrix

	// Group (optional) makes the form a transparency group.
	Group *group.TransparencyAttributes

	// Resources is the resource dictionary of the content stream.
	Resources pdf.Dict

	// Content is the content stream of the form.
	Content []byte
}

// Embed writes the form XObject to a PDF file.
//
// This implements the [pdf.Embedder] interface.
func (f *Form) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if f.BBox.URx <= f.BBox.LLx || f.BBox.URy <= f.BBox.LLy {
		return nil, errors.New("form XObject with empty bounding box")
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("XObject"),
		"Subtype": pdf.Name("Form"),
		"BBox":    pdf.ArrayFromRect(f.BBox),
	}
	if f.Matrix != (matrix.Matrix{}) && f.Matrix != matrix.Identity {
		dict["Matrix"] = pdf.ArrayFromFloats(f.Matrix[:])
	}
	if f.Resources != nil {
		dict["Resources"] = f.Resources
	} else {
		dict["Resources"] = pdf.Dict{}
	}
	if f.Group != nil {
		grp, err := f.Group.Embed(rm)
		if err != nil {
			return nil, err
		}
		dict["Group"] = grp
	}

	ref := rm.Out.Alloc()
	stm, err := rm.Out.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return nil, err
	}
	_, err = stm.Write(f.Content)
	if err != nil {
		return nil, err
	}
	err = stm.Close()
	if err != nil {
		return nil, err
	}
	return ref, nil
}
