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
	"errors"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Fixed resource names used inside the generated patterns and forms.
const (
	patternName pdf.Name = "Gr"
	extGStName  pdf.Name = "Gs"
	shadingName pdf.Name = "ShX"
)

// Context holds the state needed to write gradients and graphics states to
// one PDF file.
type Context struct {
	RM     *pdf.ResourceManager
	Colors *color.Functions
	Meshes *gradient.MeshCache

	gradients  map[string]pdf.Reference
	extGStates map[string]pdf.Reference
}

// NewContext creates a new Context which writes to the file of rm.
// The color space data and the mesh cache can be shared between contexts.
// If meshes is nil, a new cache is allocated.
func NewContext(rm *pdf.ResourceManager, colors *color.Functions, meshes *gradient.MeshCache) (*Context, error) {
	if colors == nil {
		return nil, errors.New("missing color space data")
	}
	if meshes == nil {
		meshes = &gradient.MeshCache{}
	}
	return &Context{
		RM:         rm,
		Colors:     colors,
		Meshes:     meshes,
		gradients:  make(map[string]pdf.Reference),
		extGStates: make(map[string]pdf.Reference),
	}, nil
}

// GradientRef returns the pattern written for d by [Context.WriteGradients].
func (c *Context) GradientRef(d GradientDescriptor) (pdf.Reference, bool) {
	ref, ok := c.gradients[d.Key()]
	return ref, ok
}

// ExtGStateRef returns the graphics state dictionary written for gs by
// [Context.WriteGraphicStates].
func (c *Context) ExtGStateRef(gs ExtGState) (pdf.Reference, bool) {
	ref, ok := c.extGStates[gs.Key()]
	return ref, ok
}

// ResourceDict returns the /Pattern, /ExtGState and /ColorSpace entries of
// the resource dictionary for res.  The gradients and graphics states of
// res must have been written before.
func (c *Context) ResourceDict(res *Resources) (pdf.Dict, error) {
	dict := pdf.Dict{}

	if gradients := res.Gradients.Items(); len(gradients) > 0 {
		patterns := pdf.Dict{}
		for i, d := range gradients {
			ref, ok := c.GradientRef(d)
			if !ok {
				return nil, errors.New("gradient has not been written")
			}
			patterns[gradientName(i)] = ref
		}
		dict["Pattern"] = patterns
	}

	if states := res.ExtGStates.Items(); len(states) > 0 {
		gsDict := pdf.Dict{}
		for i, gs := range states {
			ref, ok := c.ExtGStateRef(gs)
			if !ok {
				return nil, errors.New("graphics state has not been written")
			}
			gsDict[extGStateName(i)] = ref
		}
		dict["ExtGState"] = gsDict
	}

	spaces, err := c.Colors.ResourceDict(c.RM, res.Colors())
	if err != nil {
		return nil, err
	}
	if spaces != nil {
		dict["ColorSpace"] = spaces
	}
	return dict, nil
}
