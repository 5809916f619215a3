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
	"strconv"
)

// InvalidFunctionError reports a function which cannot be written to a PDF
// file.  Key names the offending entry of the function dictionary.
type InvalidFunctionError struct {
	Type   int
	Key    string
	Reason string
}

func (e *InvalidFunctionError) Error() string {
	return "function type " + strconv.Itoa(e.Type) + ": /" + e.Key + ": " + e.Reason
}

// Is reports whether target is an *InvalidFunctionError, so that
// errors.Is(err, &InvalidFunctionError{}) matches any invalid function.
func (e *InvalidFunctionError) Is(target error) bool {
	_, ok := target.(*InvalidFunctionError)
	return ok
}

func errInvalid(tp int, key, format string, args ...any) error {
	return &InvalidFunctionError{Type: tp, Key: key, Reason: fmt.Sprintf(format, args...)}
}
