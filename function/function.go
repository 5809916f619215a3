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
	"math"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Func is a PDF function.
type Func interface {
	// FunctionType returns the PDF function type (2, 3 or 4).
	FunctionType() int

	// Shape returns the number of input and output values of the function.
	Shape() (int, int)

	// Embed writes the function dictionary into a PDF file.
	// This implements the [pdf.Embedder] interface.
	Embed(rm *pdf.ResourceManager) (pdf.Object, error)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// isRange reports whether [a, b] is a non-empty, finite interval.
func isRange(a, b float64) bool {
	return isFinite(a) && isFinite(b) && a <= b
}

// isRanges checks a list of the form [min0, max0, min1, max1, ...].
func isRanges(r []float64, n int) bool {
	if len(r) != 2*n {
		return false
	}
	for i := 0; i < n; i++ {
		if !isRange(r[2*i], r[2*i+1]) {
			return false
		}
	}
	return true
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// interpolate maps x from the interval [xMin, xMax] to [yMin, yMax].
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax == xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

func clipOutputs(y []float64, r []float64) {
	if len(r) < 2*len(y) {
		return
	}
	for i := range y {
		y[i] = clip(y[i], r[2*i], r[2*i+1])
	}
}
