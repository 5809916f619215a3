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

package softclip

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdfpaint/graphics/form"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Type selects how mask values are derived from the transparency group.
type Type uint8

// These are the supported mask types.
const (
	Alpha Type = iota + 1
	Luminosity
)

func (t Type) String() string {
	switch t {
	case Alpha:
		return "Alpha"
	case Luminosity:
		return "Luminosity"
	default:
		return fmt.Sprintf("softclip.Type(%d)", uint8(t))
	}
}

// Mask represents a soft-mask dictionary.
type Mask struct {
	// S is the method used to derive the mask values.
	S Type

	// G is the transparency group used as the source of mask values.
	G *form.Form

	// BC (optional) is the backdrop color, in the color space of the
	// group.  This is only used for luminosity masks.
	BC []float64
}

// Embed writes the soft-mask dictionary, and returns it as a direct object.
// The transparency group is written as an indirect object.
// This implements the [pdf.Embedder] interface.
func (m *Mask) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "soft masks", pdf.V1_4); err != nil {
		return nil, err
	}
	if m.S != Alpha && m.S != Luminosity {
		return nil, fmt.Errorf("invalid soft mask type %s", m.S)
	}
	if m.G == nil {
		return nil, errors.New("missing transparency group")
	}
	if m.G.Group == nil {
		return nil, errors.New("soft mask form is not a transparency group")
	}
	if m.BC != nil && m.S != Luminosity {
		return nil, errors.New("unexpected backdrop color")
	}

	g, err := rm.Embed(m.G)
	if err != nil {
		return nil, err
	}
	dict := pdf.Dict{
		"Type": pdf.Name("Mask"),
		"S":    pdf.Name(m.S.String()),
		"G":    g,
	}
	if m.BC != nil {
		dict["BC"] = pdf.ArrayFromFloats(m.BC)
	}
	return dict, nil
}
