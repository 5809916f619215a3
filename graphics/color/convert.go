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

import "math"

// grayGamma is the exponent of the D65Gray transfer function.
const grayGamma = 2.2

// toLinear converts c to linear RGB, i.e. to sRGB primaries without the
// transfer curve.
func (c Color) toLinear() (r, g, b float64) {
	v := c.Values
	switch c.Space {
	case LinearRGB:
		return v[0], v[1], v[2]
	case SRGB:
		return srgbToLinear(v[0]), srgbToLinear(v[1]), srgbToLinear(v[2])
	case D65Gray:
		y := math.Pow(math.Max(v[0], 0), grayGamma)
		return y, y, y
	case Oklab:
		return oklabToLinear(v[0], v[1], v[2])
	case Oklch:
		return oklabToLinear(lchToLab(v[0], v[1], v[2]))
	case CMYK:
		k := 1 - v[3]
		return srgbToLinear((1 - v[0]) * k), srgbToLinear((1 - v[1]) * k), srgbToLinear((1 - v[2]) * k)
	case HSL:
		sr, sg, sb := hslToRGB(v[0], v[1], v[2])
		return srgbToLinear(sr), srgbToLinear(sg), srgbToLinear(sb)
	case HSV:
		sr, sg, sb := hsvToRGB(v[0], v[1], v[2])
		return srgbToLinear(sr), srgbToLinear(sg), srgbToLinear(sb)
	default:
		panic("unknown color space " + c.Space.String())
	}
}

func fromLinear(s Space, r, g, b, alpha float64) Color {
	res := Color{Space: s, Alpha: alpha}
	v := &res.Values
	switch s {
	case LinearRGB:
		v[0], v[1], v[2] = r, g, b
	case SRGB:
		v[0], v[1], v[2] = linearToSRGB(r), linearToSRGB(g), linearToSRGB(b)
	case D65Gray:
		y := 0.2126*r + 0.7152*g + 0.0722*b
		v[0] = math.Pow(math.Max(y, 0), 1/grayGamma)
	case Oklab:
		v[0], v[1], v[2] = linearToOklab(r, g, b)
	case Oklch:
		v[0], v[1], v[2] = labToLch(linearToOklab(r, g, b))
	case CMYK:
		sr, sg, sb := linearToSRGB(r), linearToSRGB(g), linearToSRGB(b)
		k := 1 - math.Max(sr, math.Max(sg, sb))
		if k >= 1 {
			v[3] = 1
			break
		}
		v[0] = (1 - sr - k) / (1 - k)
		v[1] = (1 - sg - k) / (1 - k)
		v[2] = (1 - sb - k) / (1 - k)
		v[3] = k
	case HSL:
		v[0], v[1], v[2] = rgbToHSL(linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
	case HSV:
		v[0], v[1], v[2] = rgbToHSV(linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
	default:
		panic("unknown color space " + s.String())
	}
	return res
}

func srgbToLinear(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func linearToSRGB(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func linearToOklab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		0.0259040371*l + 0.7827717662*m - 0.8086757660*s
}

func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b

	l, m, s = l*l*l, m*m*m, s*s*s

	return 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s
}

func labToLch(l, a, b float64) (float64, float64, float64) {
	c := math.Hypot(a, b)
	h := 0.0
	if c > 1e-9 {
		h = wrapHue(math.Atan2(b, a) * 180 / math.Pi)
	}
	return l, c, h
}

func lchToLab(l, c, h float64) (float64, float64, float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// wrapHue maps a hue angle in degrees to the interval [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func hueToRGB(h, c, x float64) (float64, float64, float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h = wrapHue(h)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	r, g, b := hueToRGB(h, c, x)
	return r + m, g + m, b + m
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = wrapHue(h)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	r, g, b := hueToRGB(h, c, x)
	return r + m, g + m, b + m
}

// rgbHue returns the hue angle shared by HSL and HSV, together with
// the maximum and minimum of the components.
func rgbHue(r, g, b float64) (h, max, min float64) {
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))
	d := max - min
	switch {
	case d == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/d, 6)
	case max == g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	return wrapHue(h), max, min
}

func rgbToHSL(r, g, b float64) (float64, float64, float64) {
	h, max, min := rgbHue(r, g, b)
	l := (max + min) / 2
	s := 0.0
	if d := max - min; d > 0 {
		s = d / (1 - math.Abs(2*l-1))
	}
	return h, s, l
}

func rgbToHSV(r, g, b float64) (float64, float64, float64) {
	h, max, min := rgbHue(r, g, b)
	s := 0.0
	if max > 0 {
		s = (max - min) / max
	}
	return h, s, max
}
