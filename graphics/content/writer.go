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

// Package content writes PDF content streams.
//
// Only the operators needed to paint rectangles and paths with colors,
// patterns, shadings and graphics states are implemented.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfpaint/pdf"
)

// Writer writes a PDF content stream into memory.
//
// Errors are sticky: after the first error, all further operations are
// ignored and the error is available in Err.
type Writer struct {
	Content bytes.Buffer
	Err     error

	currentObject objectType
	nesting       int
}

type objectType byte

const (
	objPage objectType = 1 << iota
	objPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

// NewWriter allocates a new Writer.
func NewWriter() *Writer {
	return &Writer{currentObject: objPage}
}

// Bytes returns the content stream.  An error is returned if the
// stream is incomplete, i.e. if a path is not painted or if a
// graphics state is not restored.
func (w *Writer) Bytes() ([]byte, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	if w.currentObject != objPage {
		return nil, errors.New("unfinished path")
	}
	if w.nesting != 0 {
		return nil, errors.New("unbalanced PushGraphicsState")
	}
	return w.Content.Bytes(), nil
}

func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}
	if w.currentObject&ss != 0 {
		return true
	}
	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) emit(args ...any) {
	_, w.Err = fmt.Fprintln(&w.Content, args...)
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if !w.isValid("PushGraphicsState", objPage) {
		return
	}
	w.nesting++
	w.emit("q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if !w.isValid("PopGraphicsState", objPage) {
		return
	}
	if w.nesting == 0 {
		w.Err = errors.New("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.nesting--
	w.emit("Q")
}

// Transform applies a transformation matrix to the coordinate system.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if !w.isValid("Transform", objPage) {
		return
	}
	w.emit(format(m[0]), format(m[1]), format(m[2]), format(m[3]),
		format(m[4]), format(m[5]), "cm")
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage) {
		return
	}
	w.emit(format(width), "w")
}

// SetExtGState applies the graphics state parameter dictionary with the
// given resource name.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) SetExtGState(name pdf.Name) {
	if !w.isValid("SetExtGState", objPage) {
		return
	}
	w.emit(pdf.Format(name), "gs")
}

// DrawShading paints the shading with the given resource name, clipped
// to the current clipping path.
//
// This implements the PDF graphics operator "sh".
func (w *Writer) DrawShading(name pdf.Name) {
	if !w.isValid("DrawShading", objPage) {
		return
	}
	w.emit(pdf.Format(name), "sh")
}

func format(x float64) string {
	x = math.Round(x*1e5) / 1e5
	if x == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
