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

// Package color implements the color spaces used for gradients.
//
// Every [Color] is a value in one of a fixed set of color spaces:
//   - [Oklab]: the perceptual Oklab space, used for all hue-bearing output
//   - [Oklch]: the cylindrical form of Oklab, with a hue angle
//   - [SRGB]: gamma-encoded sRGB
//   - [D65Gray]: gray levels with a D65 white point, used for soft masks
//   - [LinearRGB]: sRGB primaries without the transfer curve
//   - [CMYK]: device CMYK
//   - [HSL] and [HSV]: cylindrical forms of sRGB, with a hue angle
//
// Colors can be converted between all spaces and mixed with weights.
// Color spaces with a hue component cannot be written to PDF directly;
// [Space.Output] gives the space which is used in their place.
//
// The PDF representations of the color spaces are written by a
// [Functions] value, which holds the data (like the sRGB ICC profile)
// shared by all files.
package color
