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

	"seehuhn.de/go/pdfpaint/pdf"
)

// Space identifies one of the supported color spaces.
type Space uint8

// These are the supported color spaces.
const (
	Oklab Space = iota
	Oklch
	SRGB
	D65Gray
	LinearRGB
	CMYK
	HSL
	HSV

	numSpaces
)

// AllSpaces lists all supported color spaces.
var AllSpaces = []Space{Oklab, Oklch, SRGB, D65Gray, LinearRGB, CMYK, HSL, HSV}

var spaceNames = [numSpaces]string{
	Oklab:     "oklab",
	Oklch:     "oklch",
	SRGB:      "srgb",
	D65Gray:   "d65gray",
	LinearRGB: "linearrgb",
	CMYK:      "cmyk",
	HSL:       "hsl",
	HSV:       "hsv",
}

func (s Space) String() string {
	if s < numSpaces {
		return spaceNames[s]
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// ParseSpace returns the color space with the given name,
// as returned by [Space.String].
func ParseSpace(name string) (Space, error) {
	for s, n := range spaceNames {
		if n == name {
			return Space(s), nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", name)
}

// Channels returns the number of color components.
func (s Space) Channels() int {
	switch s {
	case D65Gray:
		return 1
	case CMYK:
		return 4
	default:
		return 3
	}
}

// HueIndex returns the index of the hue component, if the space has one.
// Hue components are measured in degrees and wrap around at 360.
func (s Space) HueIndex() (int, bool) {
	switch s {
	case Oklch:
		return 2, true
	case HSL, HSV:
		return 0, true
	default:
		return 0, false
	}
}

// HasHue reports whether the space has a hue component.
func (s Space) HasHue() bool {
	_, ok := s.HueIndex()
	return ok
}

// Range returns the valid range of each component, in the form
// [min0, max0, min1, max1, ...].  The returned slice must not be modified.
func (s Space) Range() []float64 {
	switch s {
	case D65Gray:
		return rangeGray
	case Oklab:
		return rangeOklab
	case Oklch:
		return rangeOklch
	case HSL, HSV:
		return rangeHue
	case CMYK:
		return rangeCMYK
	default:
		return rangeRGB
	}
}

var (
	rangeGray  = []float64{0, 1}
	rangeRGB   = []float64{0, 1, 0, 1, 0, 1}
	rangeCMYK  = []float64{0, 1, 0, 1, 0, 1, 0, 1}
	rangeOklab = []float64{0, 1, -0.4, 0.4, -0.4, 0.4}
	rangeOklch = []float64{0, 1, 0, 0.5, 0, 360}
	rangeHue   = []float64{0, 360, 0, 1, 0, 1}
)

// Output returns the color space used in PDF files for colors in s.
// Spaces with a hue component are written as Oklab, all other spaces
// are written as they are.
func (s Space) Output() Space {
	if s.HasHue() {
		return Oklab
	}
	return s
}

// ResourceName returns the name used for the color space in resource
// dictionaries.  For spaces with a hue component, this is the name of
// the output space.
func (s Space) ResourceName() pdf.Name {
	return pdf.Name(s.Output().String())
}
