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

// Package pdfpaint writes gradients and transparency effects to PDF files.
//
// Content streams register the gradients and graphics states they use
// with their [Resources].  Registration returns a small integer, which is
// used to form the resource names "Gr<n>" and "Gs<n>" in the content
// stream.  After all content has been generated, [Context.WriteGradients]
// and [Context.WriteGraphicStates] write every distinct gradient and
// graphics state to the PDF file exactly once.
//
// [Document] ties these steps together for simple documents.
package pdfpaint

import (
	"encoding/binary"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/gradient"
)

// Frame describes the coordinate frame at the point where a gradient is
// used.
type Frame struct {
	// Size is the size of the painted element.
	Size vec.Vec2

	// Transform maps the element's coordinate system to the page.
	Transform matrix.Matrix

	// ContainerSize is the size of the enclosing container.
	ContainerSize vec.Vec2

	// ContainerTransform maps the container's coordinate system to the
	// page.
	ContainerTransform matrix.Matrix
}

// GradientDescriptor is a gradient, together with the geometry needed
// to draw it on a page.
type GradientDescriptor struct {
	// Transform maps the unit square to page coordinates.
	Transform matrix.Matrix

	// AspectRatio is the ratio of width to height of the painted area.
	AspectRatio float64

	Gradient gradient.Gradient

	// Angle is the rotation angle of the gradient, corrected for the
	// aspect ratio.
	Angle float64

	// PageSize is the size of the page the gradient is drawn on.
	// This is used for transparent gradients.
	PageSize vec.Vec2
}

// NewGradientDescriptor computes the descriptor for drawing g in the
// given frame.  If onText is true, the gradient is applied to text;
// this affects the choice of reference frame for [gradient.Auto].
func NewGradientDescriptor(g gradient.Gradient, frame Frame, onText bool, pageSize vec.Vec2) GradientDescriptor {
	// zero-width strokes have zero-size frames
	if frame.Size.X == 0 {
		frame.Size.X = 1
	}
	if frame.Size.Y == 0 {
		frame.Size.Y = 1
	}

	var size vec.Vec2
	var transform matrix.Matrix
	switch g.Common().Relative.Unwrap(onText) {
	case gradient.Parent:
		size, transform = frame.ContainerSize, frame.ContainerTransform
	default:
		size, transform = frame.Size, frame.Transform
	}
	if size.X == 0 {
		size.X = 1
	}
	if size.Y == 0 {
		size.Y = 1
	}
	if transform == (matrix.Matrix{}) {
		transform = matrix.Identity
	}

	var offX, offY float64
	scale := 1.0
	switch g := g.(type) {
	case *gradient.Conic:
		offX = -size.X * (1 - g.Center.X/2) / 2
		offY = -size.Y * (1 - g.Center.Y/2) / 2
		scale = 4
	case *gradient.Linear, *gradient.Radial:
		// no offset
	default:
		panic("unexpected gradient type")
	}

	aspect := size.X / size.Y
	return GradientDescriptor{
		Transform: matrix.Scale(size.X*scale, size.Y*scale).
			Mul(matrix.Translate(offX*scale, offY*scale)).
			Mul(transform),
		AspectRatio: aspect,
		Gradient:    g,
		Angle:       gradient.CorrectAspectRatio(gradient.Angle(g), aspect),
		PageSize:    pageSize,
	}
}

// Key returns a canonical encoding of d.  Two descriptors have the same
// key if and only if all fields are equal.
func (d GradientDescriptor) Key() string {
	buf := make([]byte, 0, 128)
	for _, x := range d.Transform {
		buf = appendFloat(buf, x)
	}
	buf = appendFloat(buf, d.AspectRatio)
	buf = appendFloat(buf, d.Angle)
	buf = appendFloat(buf, d.PageSize.X)
	buf = appendFloat(buf, d.PageSize.Y)
	return string(buf) + d.Gradient.Key()
}

// IsTransparent reports whether the gradient has any stops which are not
// fully opaque.
func (d GradientDescriptor) IsTransparent() bool {
	return d.Gradient.IsTransparent()
}

func appendFloat(buf []byte, x float64) []byte {
	if x == 0 {
		x = 0 // normalize negative zero
	}
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(x))
}
