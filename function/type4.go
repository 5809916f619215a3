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
	"io"
	"strings"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Type4 represents a PostScript calculator function.
type Type4 struct {
	// Domain gives the valid input ranges as [min0, max0, min1, max1, ...].
	Domain []float64

	// Range gives the valid output ranges as [min0, max0, min1, max1, ...].
	Range []float64

	// Program contains the PostScript code, without the enclosing braces.
	Program string
}

// FunctionType returns 4.
// This implements the [Func] interface.
func (f *Type4) FunctionType() int {
	return 4
}

// Shape returns the number of input and output values of the function.
func (f *Type4) Shape() (int, int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

// Embed adds the function stream to a PDF file.
//
// This implements the [pdf.Embedder] interface.
func (f *Type4) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 4 functions", pdf.V1_3); err != nil {
		return nil, err
	} else if err := f.validate(); err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"FunctionType": pdf.Integer(4),
		"Domain":       pdf.ArrayFromFloats(f.Domain),
		"Range":        pdf.ArrayFromFloats(f.Range),
	}

	ref := rm.Out.Alloc()
	stm, err := rm.Out.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return nil, err
	}
	_, err = io.WriteString(stm, "{"+strings.TrimSpace(f.Program)+"}")
	if err != nil {
		return nil, err
	}
	err = stm.Close()
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (f *Type4) validate() error {
	m, n := f.Shape()
	if m < 1 || !isRanges(f.Domain, m) {
		return errInvalid(4, "Domain", "invalid domain %v", f.Domain)
	}
	if n < 1 || !isRanges(f.Range, n) {
		return errInvalid(4, "Range", "invalid range %v", f.Range)
	}
	if strings.TrimSpace(f.Program) == "" {
		return errInvalid(4, "Program", "empty program")
	}
	if _, err := parseProgram(f.Program); err != nil {
		return errInvalid(4, "Program", "%v", err)
	}
	return nil
}
