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

	"seehuhn.de/go/pdfpaint/pdf"
)

// Type3 represents a piecewise defined function with a single input.
// The PDF specification refers to this as a "stitching function".
type Type3 struct {
	// XMin and XMax give the overall domain of the function.
	XMin, XMax float64

	// Range (optional) gives clipping ranges for the outputs, in the form
	// [min0, max0, min1, max1, ...].
	Range []float64

	// Functions is the list of k functions to be combined.
	// All functions must have 1 input and the same number of outputs.
	Functions []Func

	// Bounds gives the k-1 boundaries between the subdomains, in
	// non-decreasing order.  Repeated values describe a subdomain of length
	// zero, which is how hard color stops are represented.
	Bounds []float64

	// Encode maps each subdomain to the domain of the corresponding
	// function, in the form [min0, max0, min1, max1, ...].
	Encode []float64
}

// FunctionType returns 3.
// This implements the [Func] interface.
func (f *Type3) FunctionType() int {
	return 3
}

// Shape returns the number of input and output values of the function.
func (f *Type3) Shape() (int, int) {
	if len(f.Functions) == 0 {
		return 1, 0
	}
	_, n := f.Functions[0].Shape()
	return 1, n
}

type applier interface {
	Apply(x float64) []float64
}

// Apply evaluates the function at x.
// This panics if one of the sub-functions cannot be evaluated in Go.
func (f *Type3) Apply(x float64) []float64 {
	x = clip(x, f.XMin, f.XMax)

	idx, a, b := f.findSubdomain(x)
	encoded := interpolate(x, a, b, f.Encode[2*idx], f.Encode[2*idx+1])

	sub, ok := f.Functions[idx].(applier)
	if !ok {
		panic(fmt.Sprintf("cannot evaluate Type %d function",
			f.Functions[idx].FunctionType()))
	}
	y := sub.Apply(encoded)
	clipOutputs(y, f.Range)
	return y
}

// findSubdomain returns the index of the function responsible for x,
// together with the boundaries of its subdomain.
//
// Subdomains are half-open intervals [a, b), except for the last one
// which includes the right end point.  If XMin equals Bounds[0], the
// first subdomain is [XMin, XMin] and the second one excludes its left
// end point.
func (f *Type3) findSubdomain(x float64) (int, float64, float64) {
	k := len(f.Functions)
	if k == 1 {
		return 0, f.XMin, f.XMax
	}

	if x == f.XMin && f.Bounds[0] == f.XMin {
		return 0, f.XMin, f.XMin
	}

	for i, bound := range f.Bounds {
		if x < bound {
			left := f.XMin
			if i > 0 {
				left = f.Bounds[i-1]
			}
			return i, left, bound
		}
	}
	return k - 1, f.Bounds[k-2], f.XMax
}

// Embed adds the function dictionary, together with all sub-functions, to a
// PDF file.  The function is always written as an indirect object.
//
// This implements the [pdf.Embedder] interface.
func (f *Type3) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 3 functions", pdf.V1_3); err != nil {
		return nil, err
	} else if err := f.validate(); err != nil {
		return nil, err
	}

	functions := make(pdf.Array, len(f.Functions))
	for i, fn := range f.Functions {
		obj, err := rm.Embed(fn)
		if err != nil {
			return nil, err
		}
		functions[i] = obj
	}

	dict := pdf.Dict{
		"FunctionType": pdf.Integer(3),
		"Domain":       pdf.Array{pdf.Number(f.XMin), pdf.Number(f.XMax)},
		"Functions":    functions,
		"Bounds":       pdf.ArrayFromFloats(f.Bounds),
		"Encode":       pdf.ArrayFromFloats(f.Encode),
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

func (f *Type3) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return errInvalid(3, "Domain", "invalid domain [%g,%g]",
			f.XMin, f.XMax)
	}

	k := len(f.Functions)
	if k == 0 {
		return errInvalid(3, "Functions", "at least one function required")
	}
	_, n := f.Functions[0].Shape()
	for i, fn := range f.Functions {
		if fn == nil {
			return errInvalid(3, "Functions", "function %d is missing", i)
		}
		m, ni := fn.Shape()
		if m != 1 {
			return errInvalid(3, "Functions",
				"function %d has %d inputs, expected 1", i, m)
		}
		if ni != n {
			return errInvalid(3, "Functions",
				"function %d has %d outputs, expected %d", i, ni, n)
		}
	}

	if len(f.Bounds) != k-1 {
		return errInvalid(3, "Bounds",
			"expected %d elements, got %d", k-1, len(f.Bounds))
	}
	prev := f.XMin
	for i, bound := range f.Bounds {
		if !isFinite(bound) || bound < prev || bound > f.XMax {
			return errInvalid(3, "Bounds",
				"bound %d (%g) out of order", i, bound)
		}
		prev = bound
	}

	if len(f.Encode) != 2*k {
		return errInvalid(3, "Encode",
			"expected %d elements, got %d", 2*k, len(f.Encode))
	}
	for i, x := range f.Encode {
		if !isFinite(x) {
			return errInvalid(3, "Encode", "element %d is not finite", i)
		}
	}

	if f.Range != nil && !isRanges(f.Range, n) {
		return errInvalid(3, "Range", "invalid range %v", f.Range)
	}
	return nil
}
