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

package pdfpaint

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/function"
	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/pattern"
	"seehuhn.de/go/pdfpaint/graphics/shading"
	"seehuhn.de/go/pdfpaint/pdf"
)

// hueSegments is the number of segments used for each pair of stops, when
// interpolating in a color space with a hue component.
const hueSegments = 32

// writePattern writes a shading pattern for d.
func (c *Context) writePattern(d *GradientDescriptor) (pdf.Reference, error) {
	sh, err := c.writeShading(d)
	if err != nil {
		return 0, err
	}
	pat := &pattern.Type2{
		Shading: sh,
		Matrix:  d.Transform,
	}
	obj, err := pat.Embed(c.RM)
	if err != nil {
		return 0, err
	}
	return obj.(pdf.Reference), nil
}

// writeShading writes the shading dictionary for d.  The shading paints
// the unit square.
func (c *Context) writeShading(d *GradientDescriptor) (pdf.Reference, error) {
	g := d.Gradient
	base := g.Common()
	space := base.Space.Output()
	cs, err := c.Colors.Embed(c.RM, space)
	if err != nil {
		return 0, err
	}

	var sh shading.Shading
	switch g := g.(type) {
	case *gradient.Linear:
		p0, p1 := linearAxis(d.Angle)
		sh = &shading.Type2{
			ColorSpace:  cs,
			Channels:    space.Channels(),
			P0:          p0,
			P1:          p1,
			F:           shadingFunction(base, space),
			ExtendStart: true,
			ExtendEnd:   true,
			AntiAlias:   base.AntiAlias,
		}
	case *gradient.Radial:
		sh = &shading.Type3{
			ColorSpace:  cs,
			Channels:    space.Channels(),
			X1:          g.FocalCenter.X,
			Y1:          g.FocalCenter.Y,
			R1:          g.FocalRadius,
			X2:          g.Center.X,
			Y2:          g.Center.Y,
			R2:          g.Radius,
			F:           shadingFunction(base, space),
			ExtendStart: true,
			ExtendEnd:   true,
			AntiAlias:   base.AntiAlias,
		}
	case *gradient.Conic:
		sh = &shading.Type6{
			ColorSpace: cs,
			Ranges:     space.Range(),
			Data:       c.Meshes.Get(g, d.AspectRatio),
			AntiAlias:  base.AntiAlias,
		}
	default:
		panic(fmt.Sprintf("unexpected gradient type %T", g))
	}

	obj, err := sh.Embed(c.RM)
	if err != nil {
		return 0, fmt.Errorf("%s gradient: %w", g.Kind(), err)
	}
	return obj.(pdf.Reference), nil
}

// linearAxis returns the start and end point of the axis of a linear
// gradient in the unit square.
func linearAxis(angle float64) (p0, p1 vec.Vec2) {
	sin, cos := math.Sincos(angle)

	// scale to the edges of the unit square
	factor := math.Abs(cos) + math.Abs(sin)
	sin *= factor
	cos *= factor

	switch gradient.QuadrantOf(angle) {
	case gradient.First:
		return vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: cos, Y: sin}
	case gradient.Second:
		return vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: cos + 1, Y: sin}
	case gradient.Third:
		return vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: cos + 1, Y: sin + 1}
	default:
		return vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: cos, Y: sin + 1}
	}
}

// shadingFunction returns the function which maps [0, 1] to the colors of
// the gradient, in the color space out.
func shadingFunction(g *gradient.Base, out color.Space) function.Func {
	var functions []function.Func
	var bounds, encode []float64

	addSegment := func(c0, c1 color.Color, end float64) {
		functions = append(functions, &function.Type2{
			XMin:  0,
			XMax:  1,
			Range: out.Range(),
			C0:    out.Encode(c0),
			C1:    out.Encode(c1),
			N:     1,
		})
		bounds = append(bounds, end)
		encode = append(encode, 0, 1)
	}

	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if !g.Space.HasHue() || s0.Offset == s1.Offset {
			addSegment(s0.Color, s1.Color, s1.Offset)
			continue
		}

		// Interpolate in the hue space, using short linear segments
		// in the output space.
		prev := s0.Color
		for k := 1; k <= hueSegments; k++ {
			u := float64(k) / hueSegments
			next := color.Lerp(s0.Color, s1.Color, u, g.Space)
			end := s0.Offset + u*(s1.Offset-s0.Offset)
			if k == hueSegments {
				end = s1.Offset
			}
			addSegment(prev, next, end)
			prev = next
		}
	}

	if len(functions) == 1 {
		return functions[0]
	}
	return &function.Type3{
		XMin:      0,
		XMax:      1,
		Range:     out.Range(),
		Functions: functions,
		Bounds:    bounds[:len(bounds)-1],
		Encode:    encode,
	}
}
