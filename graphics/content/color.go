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

package content

import "seehuhn.de/go/pdfpaint/pdf"

// SetFillColor sets the color space and the color used for filling.
// The color space is given by its resource name.
//
// This implements the PDF graphics operators "cs" and "sc".
func (w *Writer) SetFillColor(space pdf.Name, values ...float64) {
	if !w.isValid("SetFillColor", objPage) {
		return
	}
	w.emit(pdf.Format(space), "cs")
	w.emit(colorArgs(values, "sc")...)
}

// SetStrokeColor sets the color space and the color used for stroking.
// The color space is given by its resource name.
//
// This implements the PDF graphics operators "CS" and "SC".
func (w *Writer) SetStrokeColor(space pdf.Name, values ...float64) {
	if !w.isValid("SetStrokeColor", objPage) {
		return
	}
	w.emit(pdf.Format(space), "CS")
	w.emit(colorArgs(values, "SC")...)
}

// SetFillPattern selects the colored pattern with the given resource name
// for filling.
//
// This implements the PDF graphics operators "cs" and "scn".
func (w *Writer) SetFillPattern(name pdf.Name) {
	if !w.isValid("SetFillPattern", objPage) {
		return
	}
	w.emit("/Pattern cs", pdf.Format(name), "scn")
}

// SetStrokePattern selects the colored pattern with the given resource name
// for stroking.
//
// This implements the PDF graphics operators "CS" and "SCN".
func (w *Writer) SetStrokePattern(name pdf.Name) {
	if !w.isValid("SetStrokePattern", objPage) {
		return
	}
	w.emit("/Pattern CS", pdf.Format(name), "SCN")
}

func colorArgs(values []float64, op string) []any {
	args := make([]any, 0, len(values)+1)
	for _, v := range values {
		args = append(args, format(v))
	}
	return append(args, op)
}
