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

package gradient

import (
	"fmt"
	"math"

	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/shading"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Maximal angular width of a patch, as a fraction of the full turn.
const (
	stepConstant = 0.25
	stepHue      = 0.005
	stepDefault  = 0.05
)

// MeshSpace returns the color space used to encode the mesh of a conic
// gradient.  Spaces with a hue component are encoded in Oklab.
func MeshSpace(g *Conic) color.Space {
	return g.Space.Output()
}

// Tessellate approximates the conic gradient g by a mesh of Coons
// patches, for drawing into a frame with the given aspect ratio.
// The result is the deflate-compressed patch data of a type 6 shading,
// with coordinates in the unit square and colors in [MeshSpace].
//
// Tessellate panics if g is not a [*Conic].
func Tessellate(g Gradient, aspect float64) []byte {
	conic, ok := g.(*Conic)
	if !ok {
		panic(fmt.Sprintf("cannot tessellate %s gradient", g.Kind()))
	}
	return pdf.Deflate(patches(conic, aspect))
}

// patches returns the uncompressed patch data for g.
func patches(g *Conic, aspect float64) []byte {
	angle := CorrectAspectRatio(g.Angle, aspect)
	out := MeshSpace(g)
	ranges := out.Range()

	encode := func(c color.Color) []uint16 {
		values := out.Encode(c)
		res := make([]uint16, len(values))
		for i, v := range values {
			res[i] = shading.Quantize(v, ranges[2*i], ranges[2*i+1])
		}
		return res
	}

	var buf []byte
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		c0, c1 := s0.Color, s1.Color
		t0, t1 := s0.Offset, s1.Offset

		if t0 == t1 {
			buf = appendConicPatch(buf, t0, t1, encode(c0), encode(c1), angle)
			continue
		}

		maxStep := stepDefault
		if c0 == c1 {
			maxStep = stepConstant
		} else if g.Space.HasHue() {
			maxStep = stepHue
		}
		n := int(math.Ceil((t1-t0)/maxStep - 1e-9))
		if n < 1 {
			n = 1
		}

		prevT := t0
		prevC := encode(color.Lerp(c0, c1, 0, g.Space))
		for k := 1; k <= n; k++ {
			nextT := t0 + (t1-t0)*float64(k)/float64(n)
			if k == n {
				nextT = t1
			}
			nextC := encode(color.Lerp(c0, c1, (nextT-t0)/(t1-t0), g.Space))
			buf = appendConicPatch(buf, prevT, nextT, prevC, nextC, angle)
			prevT, prevC = nextT, nextC
		}
	}
	return buf
}

// appendConicPatch appends a patch covering the circular sector between
// the turning fractions t0 and t1.  The patch degenerates to a triangle
// with one corner at the center of the unit square.
func appendConicPatch(buf []byte, t0, t1 float64, c0, c1 []uint16, angle float64) []byte {
	theta0 := -2*math.Pi*t0 + angle + math.Pi
	theta1 := -2*math.Pi*t1 + angle + math.Pi

	cp1, cp2 := arcControlPoints(0.5, 0.5, 0.5, theta0, theta1)

	center := [2]uint16{
		shading.Quantize(0.5, 0, 1),
		shading.Quantize(0.5, 0, 1),
	}
	start := [2]uint16{
		shading.Quantize(math.Cos(theta0), -1, 1),
		shading.Quantize(math.Sin(theta0), -1, 1),
	}
	end := [2]uint16{
		shading.Quantize(math.Cos(theta1), -1, 1),
		shading.Quantize(math.Sin(theta1), -1, 1),
	}
	q1 := [2]uint16{shading.Quantize(cp1[0], 0, 1), shading.Quantize(cp1[1], 0, 1)}
	q2 := [2]uint16{shading.Quantize(cp2[0], 0, 1), shading.Quantize(cp2[1], 0, 1)}

	p := &shading.Patch{
		Points: [12][2]uint16{
			center, center, start, start, q1, q2, end, end,
			center, center, center, center,
		},
		Colors: [4][]uint16{c0, c0, c1, c1},
	}
	return shading.AppendPatch(buf, p)
}

// arcControlPoints returns the inner control points of a cubic Bézier
// curve approximating the circular arc with center (cx, cy) and radius r,
// from angle a0 to angle a1.
func arcControlPoints(cx, cy, r, a0, a1 float64) (p1, p2 [2]float64) {
	n := math.Abs(2 * math.Pi / (a1 - a0))
	f := math.Tan((a1-a0)/n) * 4 / 3

	s0, c0 := math.Sincos(a0)
	s1, c1 := math.Sincos(a1)
	p1 = [2]float64{
		cx + r*c0 - f*r*s0,
		cy + r*s0 + f*r*c0,
	}
	p2 = [2]float64{
		cx + r*c1 + f*r*s1,
		cy + r*s1 - f*r*c1,
	}
	return p1, p2
}
