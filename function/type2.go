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

package function

import (
	"fmt"
	"math"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Type2 represents an exponential interpolation function of the form
// y = C0 + x^N × (C1 - C0).  The function has a single input x and one
// output per color channel.  Gradient segments between two stops use
// N = 1, i.e. linear interpolation.
type Type2 struct {
	// XMin and XMax give the domain of the function.  Inputs outside this
	// interval are clipped.
	XMin, XMax float64

	// Range (optional) gives clipping ranges for the outputs, in the form
	// [min0, max0, min1, max1, ...].
	Range []float64

	// C0 is the function result for x = 0.
	C0 []float64

	// C1 is the function result for x = 1.
	// This must have the same length as C0.
	C1 []float64

	// N is the interpolation exponent.
	N float64
}

// FunctionType returns 2.
// This implements the [Func] interface.
func (f *Type2) FunctionType() int {
	return 2
}

// Shape returns the number of input and output values of the function.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

// Apply evaluates the function at x.
func (f *Type2) Apply(x float64) []float64 {
	x = clip(x, f.XMin, f.XMax)

	var xN float64
	switch f.N {
	case 0:
		xN = 1
	case 1:
		xN = x
	default:
		xN = math.Pow(x, f.N)
	}

	y := make([]float64, len(f.C0))
	for i := range y {
		y[i] = f.C0[i] + xN*(f.C1[i]-f.C0[i])
	}
	clipOutputs(y, f.Range)
	return y
}

// Embed adds the function dictionary to a PDF file.
// The function is always written as an indirect object.
//
// This implements the [pdf.Embedder] interface.
func (f *Type2) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 2 functions", pdf.V1_3); err != nil {
		return nil, err
	} else if err := f.validate(); err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"FunctionType": pdf.Integer(2),
		"Domain":       pdf.Array{pdf.Number(f.XMin), pdf.Number(f.XMax)},
		"C0":           pdf.ArrayFromFloats(f.C0),
		"C1":           pdf.ArrayFromFloats(f.C1),
		"N":            pdf.Number(f.N),
	}
	if len(f.Range) > 0 {
		dict["Range"] = pdf.ArrayFromFloats(f.Range)
	}

	ref := rm.Out.Alloc()
	err := rm.Out.Put(ref, dict)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (f *Type2) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return errInvalid(2, "Domain", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}
	if len(f.C0) < 1 || len(f.C0) != len(f.C1) {
		return errInvalid(2, "C0/C1", "invalid length %d,%d",
			len(f.C0), len(f.C1))
	}
	for i := range f.C0 {
		if !isFinite(f.C0[i]) || !isFinite(f.C1[i]) {
			return errInvalid(2, "C0/C1", "non-finite value in channel %d", i)
		}
	}
	if f.Range != nil && !isRanges(f.Range, len(f.C0)) {
		return errInvalid(2, "Range", "invalid range %v", f.Range)
	}
	if !isFinite(f.N) {
		return errInvalid(2, "N", "must be finite, got %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		return errInvalid(2, "Domain",
			"minimum must be >= 0 when N is non-integer, got %g", f.XMin)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		return errInvalid(2, "Domain", "must not include 0 when N is negative")
	}
	return nil
}

// String returns a short description of the function, for debugging.
func (f *Type2) String() string {
	return fmt.Sprintf("Type2{%v -> %v}", f.C0, f.C1)
}
