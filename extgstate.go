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
	"encoding/binary"

	"seehuhn.de/go/geom/matrix"
)

// SoftMask describes a luminosity soft mask, derived from a gradient.
type SoftMask struct {
	// StrokeThickness is the width of the stroke the mask is applied to.
	// The mask extends by half this width beyond the unit square.
	StrokeThickness float64

	// Transform maps the unit square of the mask to the page.
	Transform matrix.Matrix

	// Gradient provides the luminosity values of the mask.
	Gradient GradientDescriptor
}

// ExtGState describes a graphics state with opacity and soft mask
// settings.
type ExtGState struct {
	// StrokeOpacity is the opacity of stroking operations, from 0 to 255.
	StrokeOpacity uint8

	// FillOpacity is the opacity of non-stroking operations, from 0 to 255.
	FillOpacity uint8

	// SoftMask (optional) is the soft mask for the graphics state.
	SoftMask *SoftMask
}

// DefaultExtGState returns the graphics state of fully opaque painting
// without a soft mask.
func DefaultExtGState() ExtGState {
	return ExtGState{StrokeOpacity: 255, FillOpacity: 255}
}

// UsesOpacities reports whether gs has any opacity other than 255.
func (gs ExtGState) UsesOpacities() bool {
	return gs.StrokeOpacity != 255 || gs.FillOpacity != 255
}

// Key returns a canonical encoding of gs.  Two graphics states have the
// same key if and only if all fields are equal.
func (gs ExtGState) Key() string {
	buf := []byte{gs.StrokeOpacity, gs.FillOpacity, 0}
	if gs.SoftMask == nil {
		return string(buf)
	}
	buf[2] = 1
	buf = appendFloat(buf, gs.SoftMask.StrokeThickness)
	for _, x := range gs.SoftMask.Transform {
		buf = appendFloat(buf, x)
	}
	gKey := gs.SoftMask.Gradient.Key()
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(gKey)))
	return string(buf) + gKey
}
