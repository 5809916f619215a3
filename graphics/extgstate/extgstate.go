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

// Package extgstate implements PDF graphics state parameter dictionaries.
//
// Only the parameters used for transparency are supported: constant
// opacity for stroking and non-stroking operations, and soft masks.
package extgstate

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/pdfpaint/graphics/softclip"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Bits indicates which parameters of an ExtGState are set.
type Bits uint8

// These are the possible parameters.
const (
	StrokeAlpha Bits = 1 << iota
	FillAlpha
	SoftMask

	allBits = StrokeAlpha | FillAlpha | SoftMask
)

// ExtGState represents a graphics state parameter dictionary.
type ExtGState struct {
	// Set indicates which parameters in this ExtGState are active.
	Set Bits

	// StrokeAlpha is the constant opacity for stroking operations, from 0 to 1.
	StrokeAlpha float64

	// FillAlpha is the constant opacity for non-stroking operations, from 0 to 1.
	FillAlpha float64

	// SoftMask is the soft mask.  If the SoftMask bit is set and this is
	// nil, the dictionary explicitly removes any soft mask.
	SoftMask *softclip.Mask

	// SingleUse can be set if the graphics state is used only in a single
	// content stream.  In this case the dictionary is embedded directly in
	// the resource dictionary, instead of being stored as an indirect
	// object.
	SingleUse bool
}

// Embed writes the graphics state parameter dictionary to a PDF file.
// This implements the [pdf.Embedder] interface.
func (e *ExtGState) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "ExtGState", pdf.V1_2); err != nil {
		return nil, err
	}
	set := e.Set
	if excess := set &^ allBits; excess != 0 {
		return nil, fmt.Errorf("unsupported graphics state bits: 0b%b", excess)
	}
	if set&(StrokeAlpha|FillAlpha|SoftMask) != 0 {
		if err := pdf.CheckVersion(rm.Out, "transparency", pdf.V1_4); err != nil {
			return nil, err
		}
	}

	dict := pdf.Dict{
		"Type": pdf.Name("ExtGState"),
	}
	if set&StrokeAlpha != 0 {
		if !isAlpha(e.StrokeAlpha) {
			return nil, fmt.Errorf("invalid StrokeAlpha %g", e.StrokeAlpha)
		}
		dict["CA"] = pdf.Number(e.StrokeAlpha)
	} else if e.StrokeAlpha != 0 {
		return nil, errors.New("unexpected StrokeAlpha value")
	}
	if set&FillAlpha != 0 {
		if !isAlpha(e.FillAlpha) {
			return nil, fmt.Errorf("invalid FillAlpha %g", e.FillAlpha)
		}
		dict["ca"] = pdf.Number(e.FillAlpha)
	} else if e.FillAlpha != 0 {
		return nil, errors.New("unexpected FillAlpha value")
	}
	if set&SoftMask != 0 {
		if e.SoftMask == nil {
			dict["SMask"] = pdf.Name("None")
		} else {
			mask, err := rm.Embed(e.SoftMask)
			if err != nil {
				return nil, err
			}
			dict["SMask"] = mask
		}
	} else if e.SoftMask != nil {
		return nil, errors.New("unexpected SoftMask value")
	}

	if e.SingleUse {
		return dict, nil
	}
	ref := rm.Out.Alloc()
	err := rm.Out.Put(ref, dict)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func isAlpha(x float64) bool {
	return x >= 0 && x <= 1 && !math.IsNaN(x)
}
