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

// Package softclip provides types for PDF soft-mask dictionaries.
//
// Soft masks control the opacity of objects during compositing.  The mask
// values are derived from a transparency group XObject, using either the
// group's alpha channel or its luminosity.
//
// A [Mask] is set as the current soft mask via the SMask entry in an
// extended graphics state dictionary.
//
// See PDF 2.0 specification sections 11.5 and 11.6.5.1.
package softclip
