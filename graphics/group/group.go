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

// Package group implements transparency group attribute dictionaries.
package group

import "seehuhn.de/go/pdfpaint/pdf"

// TransparencyAttributes represents a transparency group attributes
// dictionary, as used in the /Group entry of form XObjects.
type TransparencyAttributes struct {
	// CS (optional) is the group color space, used for compositing within
	// the group.  For soft masks with luminosity, this is the space in which
	// the luminosity is computed.
	CS pdf.Object

	// Isolated specifies whether the group is composited against a fully
	// transparent initial backdrop.
	Isolated bool

	// Knockout specifies whether objects within the group overwrite
	// earlier overlapping objects.
	Knockout bool
}

// Embed converts the attributes into a PDF dictionary.
// The dictionary is returned directly, it is not written as an
// indirect object.
//
// This implements the [pdf.Embedder] interface.
func (a *TransparencyAttributes) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "transparency groups", pdf.V1_4); err != nil {
		return nil, err
	}

	dict := pdf.Dict{
		"Type": pdf.Name("Group"),
		"S":    pdf.Name("Transparency"),
		"CS":   a.CS,
	}
	if a.Isolated {
		dict["I"] = pdf.Boolean(true)
	}
	if a.Knockout {
		dict["K"] = pdf.Boolean(true)
	}
	return dict, nil
}
