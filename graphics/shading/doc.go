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

// Package shading implements the PDF shading dictionaries used for
// gradients.
//
// The following shading types are supported:
//   - [Type2]: axial shadings, for linear gradients
//   - [Type3]: radial shadings
//   - [Type6]: Coons patch meshes, for conic gradients
//
// All types implement the [Shading] interface.  Shadings are always written
// as indirect objects, so that shading patterns and soft masks can refer
// to them.
package shading
