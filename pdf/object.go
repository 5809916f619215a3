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

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
)

// Object represents an object in a PDF file.  The basic types of PDF objects
// which implement this interface are [Array], [Boolean], [Dict], [Integer],
// [Name], [Number], [Real], [Reference], [*Stream], and [String].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Boolean represents a boolean value in a PDF file.
type Boolean bool

// PDF implements the [Object] interface.
func (x Boolean) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid real number %g", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// A Number is either an Integer or a Real.  Integral values are written
// without a decimal point.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	if i := Integer(x); Number(i) == x {
		return i.PDF(w)
	}
	return Real(x).PDF(w)
}

// String represents a raw string in a PDF file.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		default:
			if c < 32 || c > 126 {
				fmt.Fprintf(buf, `\%03o`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Array represent an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represent a Dictionary object in a PDF file.
// Entries with a nil value are omitted when the dictionary is written.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val == nil {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, name := range keys {
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = x[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Stream represent a stream object in a PDF file.
// Data holds the encoded stream data, i.e. the data after all filters listed
// in the stream dictionary have been applied.
type Stream struct {
	Dict
	Data []byte
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := make(Dict, len(x.Dict)+1)
	for key, val := range x.Dict {
		dict[key] = val
	}
	dict["Length"] = Integer(len(x.Data))

	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// All objects written by this package use generation number 0.
type Reference uint32

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

func (x Reference) String() string {
	return "obj_" + strconv.FormatUint(uint64(x), 10)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x == 0 {
		return errInvalidReference
	}
	_, err := fmt.Fprintf(w, "%d 0 R", uint32(x))
	return err
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// ArrayFromFloats converts a slice of numbers to a PDF array.
func ArrayFromFloats(x []float64) Array {
	res := make(Array, len(x))
	for i, xi := range x {
		res[i] = Number(xi)
	}
	return res
}

// ArrayFromRect converts a rectangle to a PDF rectangle array
// [llx lly urx ury].
func ArrayFromRect(r rect.Rect) Array {
	return ArrayFromFloats([]float64{r.LLx, r.LLy, r.URx, r.URy})
}

// Format formats a PDF object as a string, in the same way as it
// would be written to a PDF file.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
