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
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/content"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Page is a page of a [Document] under construction.
//
// Paths are constructed using the methods of Content.  The Page methods
// select colors, gradients and graphics states, and record the resources
// used.  Graphics states must be saved and restored using
// [Page.PushGraphicsState] and [Page.PopGraphicsState], not via Content,
// so that the page knows which opacities are in effect.
type Page struct {
	// Size is the width and height of the page.
	Size vec.Vec2

	Content   *content.Writer
	Resources *Resources

	state ExtGState
	saved []ExtGState
}

func newPage(width, height float64) *Page {
	return &Page{
		Size:      vec.Vec2{X: width, Y: height},
		Content:   content.NewWriter(),
		Resources: &Resources{},
		state:     DefaultExtGState(),
	}
}

// PushGraphicsState saves the current graphics state ("q").
func (p *Page) PushGraphicsState() {
	p.Content.PushGraphicsState()
	p.saved = append(p.saved, p.state)
}

// PopGraphicsState restores the graphics state saved by the matching call
// to [Page.PushGraphicsState] ("Q").
func (p *Page) PopGraphicsState() {
	p.Content.PopGraphicsState()
	if k := len(p.saved); k > 0 {
		p.state = p.saved[k-1]
		p.saved = p.saved[:k-1]
	}
}

// SetFillColor sets a solid color for filling.  Colors which are not
// fully opaque select a graphics state with the corresponding opacity.
func (p *Page) SetFillColor(c color.Color) {
	space := c.Space.Output()
	p.Resources.MarkColor(space)
	p.Content.SetFillColor(space.ResourceName(), space.Encode(c)...)
	p.setOpacity(toOpacity(c.Alpha), p.state.StrokeOpacity)
}

// SetStrokeColor sets a solid color for stroking.
func (p *Page) SetStrokeColor(c color.Color) {
	space := c.Space.Output()
	p.Resources.MarkColor(space)
	p.Content.SetStrokeColor(space.ResourceName(), space.Encode(c)...)
	p.setOpacity(p.state.FillOpacity, toOpacity(c.Alpha))
}

// SetFillGradient selects a gradient for filling.  The gradient is
// positioned using frame.
func (p *Page) SetFillGradient(g gradient.Gradient, frame Frame, onText bool) {
	idx := p.Resources.RegisterGradient(g, frame, onText, p.Size)
	p.Content.SetFillPattern(gradientName(idx))
	p.setOpacity(255, p.state.StrokeOpacity)
}

// SetStrokeGradient selects a gradient for stroking.
func (p *Page) SetStrokeGradient(g gradient.Gradient, frame Frame, onText bool) {
	idx := p.Resources.RegisterGradient(g, frame, onText, p.Size)
	p.Content.SetStrokePattern(gradientName(idx))
	p.setOpacity(p.state.FillOpacity, 255)
}

// FillRectangle fills the rectangle with lower left corner (x, y) with
// the gradient g.  The rectangle is used as the gradient's frame.
func (p *Page) FillRectangle(g gradient.Gradient, x, y, width, height float64) {
	frame := RectFrame(x, y, width, height)
	frame.ContainerSize = p.Size
	frame.ContainerTransform = matrix.Identity
	p.SetFillGradient(g, frame, false)
	p.Content.Rectangle(x, y, width, height)
	p.Content.Fill()
}

// SetExtGState selects the graphics state gs.  Nothing is written if gs
// is already the current graphics state.
func (p *Page) SetExtGState(gs ExtGState) {
	if gs == p.state {
		return
	}
	idx := p.Resources.RegisterExtGState(gs)
	p.Content.SetExtGState(extGStateName(idx))
	p.state = gs
}

// setOpacity changes the opacities of the current graphics state and
// keeps its soft mask.
func (p *Page) setOpacity(fill, stroke uint8) {
	gs := p.state
	gs.FillOpacity = fill
	gs.StrokeOpacity = stroke
	p.SetExtGState(gs)
}

// RectFrame returns the frame of an axis-parallel rectangle with lower
// left corner (x, y).
func RectFrame(x, y, width, height float64) Frame {
	return Frame{
		Size:      vec.Vec2{X: width, Y: height},
		Transform: matrix.Translate(x, y),
	}
}

func toOpacity(alpha float64) uint8 {
	if !(alpha > 0) {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(math.Round(alpha * 255))
}

func gradientName(idx int) pdf.Name {
	return pdf.Name("Gr" + strconv.Itoa(idx))
}

func extGStateName(idx int) pdf.Name {
	return pdf.Name("Gs" + strconv.Itoa(idx))
}
