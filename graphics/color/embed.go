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

package color

import (
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfpaint/function"
	"seehuhn.de/go/pdfpaint/pdf"
)

var (
	whitePointD65 = []float64{0.9505, 1, 1.089}

	// matrixSRGB maps linear sRGB to CIE XYZ, in the column order used
	// by CalRGB color spaces.
	matrixSRGB = []float64{
		0.4124, 0.2126, 0.0193,
		0.3576, 0.7152, 0.1192,
		0.1805, 0.0722, 0.9505,
	}
)

// oklabProgram converts Oklab values (L a b) into linear RGB.
const oklabProgram = `2 index 2 index 0.3963377774 mul add 1 index 0.2158037573 mul add ` +
	`3 index 3 index -0.1055613458 mul add 2 index -0.0638541728 mul add ` +
	`4 index 4 index -0.0894841775 mul add 3 index -1.2914855480 mul add ` +
	`dup dup mul mul exch dup dup mul mul exch 3 -1 roll dup dup mul mul 3 1 roll ` +
	`6 3 roll pop pop pop ` +
	`2 index 4.0767416621 mul 2 index -3.3077115913 mul add 1 index 0.2309699292 mul add ` +
	`3 index -1.2684380046 mul 3 index 2.6097574011 mul add 2 index -0.3413193965 mul add ` +
	`4 index -0.0041960863 mul 4 index -0.7034186147 mul add 3 index 1.7076147010 mul add ` +
	`6 3 roll pop pop pop`

// Functions holds the data needed to write color spaces to PDF files.
// A Functions value is immutable and can be shared between documents
// and goroutines.
type Functions struct {
	srgbV2    []byte
	srgbV4    []byte
	oklabTint *function.Type4
}

// NewFunctions prepares the color space data.
// The built-in sRGB ICC profiles are checked for consistency.
func NewFunctions() (*Functions, error) {
	for _, profile := range [][]byte{icc.SRGBv2Profile, icc.SRGBv4Profile} {
		p, err := icc.Decode(profile)
		if err != nil {
			return nil, fmt.Errorf("sRGB profile: %w", err)
		}
		if p.ColorSpace != icc.RGBSpace || p.ColorSpace.NumComponents() != 3 {
			return nil, fmt.Errorf("sRGB profile: unexpected color space %v", p.ColorSpace)
		}
	}

	return &Functions{
		srgbV2: icc.SRGBv2Profile,
		srgbV4: icc.SRGBv4Profile,
		oklabTint: &function.Type4{
			Domain:  rangeOklab,
			Range:   rangeRGB,
			Program: oklabProgram,
		},
	}, nil
}

// Embed writes the PDF representation of the color space s.
// Every color space is written at most once per resource manager.
//
// Spaces with a hue component have no PDF representation, and must be
// mapped using [Space.Output] first.
func (f *Functions) Embed(rm *pdf.ResourceManager, s Space) (pdf.Object, error) {
	if s.HasHue() || s >= numSpaces {
		return nil, fmt.Errorf("color space %s cannot be used in PDF files", s)
	}
	return rm.Embed(spaceObject{fn: f, space: s})
}

// ResourceDict returns a /ColorSpace resource dictionary which contains
// all spaces in u, using the names from [Space.ResourceName].
// If u is empty, nil is returned.
func (f *Functions) ResourceDict(rm *pdf.ResourceManager, u Usage) (pdf.Dict, error) {
	var res pdf.Dict
	for _, s := range u.Spaces() {
		s = s.Output()
		name := s.ResourceName()
		if _, seen := res[name]; seen {
			continue
		}
		obj, err := f.Embed(rm, s)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = pdf.Dict{}
		}
		res[name] = obj
	}
	return res, nil
}

// spaceObject is the [pdf.Embedder] for one color space.
type spaceObject struct {
	fn    *Functions
	space Space
}

func (so spaceObject) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	w := rm.Out
	switch so.space {
	case D65Gray:
		if err := pdf.CheckVersion(w, "CalGray color space", pdf.V1_1); err != nil {
			return nil, err
		}
		return pdf.Array{
			pdf.Name("CalGray"),
			pdf.Dict{
				"WhitePoint": pdf.ArrayFromFloats(whitePointD65),
				"Gamma":      pdf.Number(grayGamma),
			},
		}, nil

	case LinearRGB:
		return calRGB(w)

	case CMYK:
		return pdf.Name("DeviceCMYK"), nil

	case SRGB:
		if err := pdf.CheckVersion(w, "ICCBased color space", pdf.V1_3); err != nil {
			return nil, err
		}
		profile := so.fn.srgbV2
		if w.Version >= pdf.V1_7 {
			// ICC version 4 profiles can be used since PDF 1.7
			profile = so.fn.srgbV4
		}
		dict := pdf.Dict{
			"N":         pdf.Integer(3),
			"Alternate": pdf.Name("DeviceRGB"),
		}
		ref := w.Alloc()
		stm, err := w.OpenStream(ref, dict, pdf.FilterFlate{})
		if err != nil {
			return nil, err
		}
		_, err = stm.Write(profile)
		if err != nil {
			return nil, err
		}
		err = stm.Close()
		if err != nil {
			return nil, err
		}
		return pdf.Array{pdf.Name("ICCBased"), ref}, nil

	case Oklab:
		if err := pdf.CheckVersion(w, "DeviceN color space", pdf.V1_3); err != nil {
			return nil, err
		}
		alt, err := calRGB(w)
		if err != nil {
			return nil, err
		}
		tint, err := rm.Embed(so.fn.oklabTint)
		if err != nil {
			return nil, err
		}
		return pdf.Array{
			pdf.Name("DeviceN"),
			pdf.Array{pdf.Name("L"), pdf.Name("a"), pdf.Name("b")},
			alt,
			tint,
		}, nil

	default:
		return nil, fmt.Errorf("color space %s cannot be used in PDF files", so.space)
	}
}

func calRGB(w *pdf.Writer) (pdf.Object, error) {
	if err := pdf.CheckVersion(w, "CalRGB color space", pdf.V1_1); err != nil {
		return nil, err
	}
	return pdf.Array{
		pdf.Name("CalRGB"),
		pdf.Dict{
			"WhitePoint": pdf.ArrayFromFloats(whitePointD65),
			"Matrix":     pdf.ArrayFromFloats(matrixSRGB),
		},
	}, nil
}
