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
	stdcolor "image/color"
)

// Color is a color value, together with an alpha value for opacity.
//
// Color values are comparable and can be used as map keys.
type Color struct {
	Space Space

	// Values holds the color components.  Only the first
	// Space.Channels() entries are used, the others are zero.
	Values [4]float64

	// Alpha is the opacity, from 0 (transparent) to 1 (opaque).
	Alpha float64
}

// RGB returns an opaque sRGB color.
func RGB(r, g, b float64) Color {
	return Color{Space: SRGB, Values: [4]float64{r, g, b}, Alpha: 1}
}

// RGBA returns an sRGB color with the given opacity.
func RGBA(r, g, b, alpha float64) Color {
	return Color{Space: SRGB, Values: [4]float64{r, g, b}, Alpha: alpha}
}

// Luma returns an opaque gray level in the D65Gray space.
func Luma(l float64) Color {
	return Color{Space: D65Gray, Values: [4]float64{l}, Alpha: 1}
}

// NewOklab returns an opaque Oklab color.
func NewOklab(l, a, b float64) Color {
	return Color{Space: Oklab, Values: [4]float64{l, a, b}, Alpha: 1}
}

// NewOklch returns an opaque Oklch color.  The hue is given in degrees.
func NewOklch(l, c, h float64) Color {
	return Color{Space: Oklch, Values: [4]float64{l, c, wrapHue(h)}, Alpha: 1}
}

// NewLinearRGB returns an opaque linear RGB color.
func NewLinearRGB(r, g, b float64) Color {
	return Color{Space: LinearRGB, Values: [4]float64{r, g, b}, Alpha: 1}
}

// NewCMYK returns an opaque CMYK color.
func NewCMYK(c, m, y, k float64) Color {
	return Color{Space: CMYK, Values: [4]float64{c, m, y, k}, Alpha: 1}
}

// NewHSL returns an opaque HSL color.  The hue is given in degrees.
func NewHSL(h, s, l float64) Color {
	return Color{Space: HSL, Values: [4]float64{wrapHue(h), s, l}, Alpha: 1}
}

// NewHSV returns an opaque HSV color.  The hue is given in degrees.
func NewHSV(h, s, v float64) Color {
	return Color{Space: HSV, Values: [4]float64{wrapHue(h), s, v}, Alpha: 1}
}

// FromImageColor converts a color from the standard library to an sRGB
// color.  Premultiplied alpha is removed.
func FromImageColor(c stdcolor.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA(0, 0, 0, 0)
	}
	fa := float64(a)
	return RGBA(float64(r)/fa, float64(g)/fa, float64(b)/fa, fa/0xffff)
}

// WithAlpha returns a copy of c with the given opacity.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = alpha
	return c
}

// Components returns the used color components of c.
func (c Color) Components() []float64 {
	return append([]float64(nil), c.Values[:c.Space.Channels()]...)
}

// IsOpaque reports whether the color is fully opaque.
func (c Color) IsOpaque() bool {
	return c.Alpha >= 1
}

func (c Color) String() string {
	return fmt.Sprintf("%s%.4g/%.3g", c.Space, c.Components(), c.Alpha)
}

// To converts c to the color space s.  The alpha value is preserved.
func (c Color) To(s Space) Color {
	if c.Space == s {
		return c
	}

	// Oklch and Oklab convert directly, to avoid the round trip through
	// linear RGB.
	switch {
	case c.Space == Oklch && s == Oklab:
		l, a, b := lchToLab(c.Values[0], c.Values[1], c.Values[2])
		return Color{Space: Oklab, Values: [4]float64{l, a, b}, Alpha: c.Alpha}
	case c.Space == Oklab && s == Oklch:
		l, ch, h := labToLch(c.Values[0], c.Values[1], c.Values[2])
		return Color{Space: Oklch, Values: [4]float64{l, ch, h}, Alpha: c.Alpha}
	}

	r, g, b := c.toLinear()
	return fromLinear(s, r, g, b, c.Alpha)
}

// Encode converts c to the color space s and returns the color components,
// clamped to the range of s.  This gives the values which are written to a
// PDF file.
func (s Space) Encode(c Color) []float64 {
	conv := c.To(s)
	n := s.Channels()
	r := s.Range()
	res := make([]float64, n)
	for i := range res {
		res[i] = clamp(conv.Values[i], r[2*i], r[2*i+1])
	}
	return res
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
