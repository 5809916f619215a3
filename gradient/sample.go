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

	"seehuhn.de/go/pdfpaint/graphics/color"
)

// AlphaGradient returns a gradient of the same kind and geometry as g,
// which describes the opacity of g instead of its color.  The stops are
// at the same offsets, with gray values equal to the alpha values of the
// original stops.  The result interpolates in [color.D65Gray].
func AlphaGradient(g Gradient) Gradient {
	base := *g.Common()
	base.Space = color.D65Gray
	base.Stops = make([]Stop, len(g.Common().Stops))
	for i, s := range g.Common().Stops {
		base.Stops[i] = Stop{
			Color:  color.Luma(s.Color.Alpha),
			Offset: s.Offset,
		}
	}

	switch g := g.(type) {
	case *Linear:
		return &Linear{Base: base, Angle: g.Angle}
	case *Radial:
		return &Radial{
			Base:        base,
			Center:      g.Center,
			Radius:      g.Radius,
			FocalCenter: g.FocalCenter,
			FocalRadius: g.FocalRadius,
		}
	case *Conic:
		return &Conic{Base: base, Center: g.Center, Angle: g.Angle}
	default:
		panic(fmt.Sprintf("unexpected gradient type %T", g))
	}
}
