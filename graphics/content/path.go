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

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	w.emit(format(x), format(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}
	w.emit(format(x), format(y), "l")
}

// CurveTo appends a cubic Bézier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}
	w.emit(format(x1), format(y1), format(x2), format(y2),
		format(x3), format(y3), "c")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}
	w.emit("h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	w.emit(format(x), format(y), format(width), format(height), "re")
}

// Fill fills the current path, using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if !w.isValid("Fill", objPath) {
		return
	}
	w.currentObject = objPage
	w.emit("f")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if !w.isValid("Stroke", objPath) {
		return
	}
	w.currentObject = objPage
	w.emit("S")
}

// FillAndStroke fills and then strokes the current path.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if !w.isValid("FillAndStroke", objPath) {
		return
	}
	w.currentObject = objPage
	w.emit("B")
}
