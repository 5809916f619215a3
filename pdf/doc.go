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

// Package pdf implements the output container for PDF files.
//
// Objects are allocated and stored in memory using a [Writer]:
//
//	w, err := pdf.NewWriter(out, pdf.V1_7, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ref := w.Alloc()
//	err = w.Put(ref, pdf.Dict{"Type": pdf.Name("Catalog"), ...})
//	...
//	err = w.Close(ref)
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Boolean
//	Dict
//	Integer
//	Name
//	Number
//	Real
//	Reference
//	*Stream
//	String
//
// A [ResourceManager] makes sure that resources like color spaces or
// functions are only written once per file.
package pdf
