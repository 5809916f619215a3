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
	"math"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Shading represents a PDF shading dictionary.
type Shading interface {
	// ShadingType returns the PDF shading type.
	ShadingType() int

	// Embed writes the shading to a PDF file and returns the reference.
	// This implements the [pdf.Embedder] interface.
	Embed(rm *pdf.ResourceManager) (pdf.Object, error)
}

// Quantize maps v from the interval [lo, hi] to the integers 0, ..., 65535.
// Values outside the interval are clamped; lo maps to 0 and hi maps to
// 65535.
func Quantize(v, lo, hi float64) uint16 {
	if !(hi > lo) {
		return 0
	}
	t := (v - lo) / (hi - lo)
	if !(t > 0) { // also catches NaN
		return 0
	}
	if t >= 1 {
		return math.MaxUint16
	}
	return uint16(math.Round(t * math.MaxUint16))
}

// Dequantize is the inverse of [Quantize], up to rounding.
func Dequantize(q uint16, lo, hi float64) float64 {
	return lo + float64(q)/math.MaxUint16*(hi-lo)
}

func checkFunction(f interface{ Shape() (int, int) }, colorChannels int) error {
	if f == nil {
		return errors.New("missing function")
	}
	m, n := f.Shape()
	if m != 1 {
		return errors.New("shading function must have one input")
	}
	if colorChannels > 0 && n != colorChannels {
		return errors.New("number of function outputs does not match the color space")
	}
	return nil
}

func extendArray(start, end bool) pdf.Object {
	if !start && !end {
		return nil
	}
	return pdf.Array{pdf.Boolean(start), pdf.Boolean(end)}
}
