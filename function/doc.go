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

// Package function implements the PDF functions used to describe color
// transitions in shadings, and color space conversions.
//
// The following function types are supported:
//
//   - [Type2]: exponential interpolation between two colors, y = C0 + x^N × (C1 - C0)
//   - [Type3]: stitching functions, which combine several 1-input functions
//     across adjacent subdomains
//   - [Type4]: PostScript calculator functions
//
// All function types implement the [Func] interface.  Type 2 and Type 3
// functions can also be evaluated in Go, using their Apply methods.
package function
