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
	"encoding/binary"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Key returns a canonical encoding of the gradient.
// This implements the [Gradient] interface.
func (g *Linear) Key() string {
	buf := g.appendKey(nil, KindLinear)
	buf = appendFloat(buf, g.Angle)
	return string(buf)
}

// Key returns a canonical encoding of the gradient.
// This implements the [Gradient] interface.
func (g *Radial) Key() string {
	buf := g.appendKey(nil, KindRadial)
	buf = appendVec(buf, g.Center)
	buf = appendFloat(buf, g.Radius)
	buf = appendVec(buf, g.FocalCenter)
	buf = appendFloat(buf, g.FocalRadius)
	return string(buf)
}

// Key returns a canonical encoding of the gradient.
// This implements the [Gradient] interface.
func (g *Conic) Key() string {
	buf := g.appendKey(nil, KindConic)
	buf = appendVec(buf, g.Center)
	buf = appendFloat(buf, g.Angle)
	return string(buf)
}

func (b *Base) appendKey(buf []byte, kind Kind) []byte {
	var flags byte
	if b.AntiAlias {
		flags = 1
	}
	buf = append(buf, byte(kind), byte(b.Space), byte(b.Relative), flags)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b.Stops)))
	for _, s := range b.Stops {
		buf = append(buf, byte(s.Color.Space))
		for _, x := range s.Color.Values {
			buf = appendFloat(buf, x)
		}
		buf = appendFloat(buf, s.Color.Alpha)
		buf = appendFloat(buf, s.Offset)
	}
	return buf
}

// appendFloat appends the canonical encoding of x to buf.
// Negative zero is encoded like zero.
func appendFloat(buf []byte, x float64) []byte {
	if x == 0 {
		x = 0
	}
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
}

func appendVec(buf []byte, v vec.Vec2) []byte {
	buf = appendFloat(buf, v.X)
	return appendFloat(buf, v.Y)
}
