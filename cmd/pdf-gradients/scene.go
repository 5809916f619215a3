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

package main

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint"
	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
)

// scene is the description of a document, read from a YAML or JSON file.
type scene struct {
	Pages []*pageSpec `yaml:"pages"`
}

type pageSpec struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Items  []*itemSpec `yaml:"items"`
}

// itemSpec describes a rectangle filled with a gradient or a solid color.
type itemSpec struct {
	Rect     [4]float64    `yaml:"rect"`
	Color    string        `yaml:"color,omitempty"`
	Gradient *gradientSpec `yaml:"gradient,omitempty"`

	// Opacity is the fill opacity, in the range [0, 1].
	Opacity *float64 `yaml:"opacity,omitempty"`

	// Mask (optional) is a luminosity soft mask, covering the rectangle.
	Mask *gradientSpec `yaml:"mask,omitempty"`
}

type gradientSpec struct {
	Kind     string      `yaml:"kind"`
	Space    string      `yaml:"space,omitempty"`
	Angle    float64     `yaml:"angle,omitempty"` // degrees
	Center   *[2]float64 `yaml:"center,omitempty"`
	Radius   float64     `yaml:"radius,omitempty"`
	Focus    *[2]float64 `yaml:"focus,omitempty"`
	FocusR   float64     `yaml:"focusRadius,omitempty"`
	Relative string      `yaml:"relative,omitempty"`
	Smooth   *bool       `yaml:"antiAlias,omitempty"`
	Stops    []stopSpec  `yaml:"stops"`
}

type stopSpec struct {
	Color  string   `yaml:"color"`
	Offset *float64 `yaml:"offset,omitempty"`
}

func parseScene(r io.Reader) (*scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &scene{}
	err := dec.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if len(s.Pages) == 0 {
		return nil, errors.New("scene: no pages")
	}
	for i, p := range s.Pages {
		if !(p.Width > 0 && p.Height > 0) {
			return nil, fmt.Errorf("scene: page %d: invalid size %gx%g", i+1, p.Width, p.Height)
		}
	}
	return s, nil
}

func (s *scene) render(doc *pdfpaint.Document) error {
	for i, p := range s.Pages {
		page := doc.AddPage(p.Width, p.Height)
		for j, item := range p.Items {
			err := item.render(page)
			if err != nil {
				return fmt.Errorf("page %d, item %d: %w", i+1, j+1, err)
			}
		}
	}
	return nil
}

func (item *itemSpec) render(page *pdfpaint.Page) error {
	x, y, w, h := item.Rect[0], item.Rect[1], item.Rect[2], item.Rect[3]
	if !(w > 0 && h > 0) {
		return fmt.Errorf("invalid rectangle %v", item.Rect)
	}

	var g gradient.Gradient
	var solid color.Color
	switch {
	case item.Gradient != nil && item.Color != "":
		return errors.New("both color and gradient given")
	case item.Gradient != nil:
		var err error
		g, err = item.Gradient.build()
		if err != nil {
			return err
		}
	case item.Color != "":
		var err error
		solid, err = parseColor(item.Color)
		if err != nil {
			return err
		}
	default:
		return errors.New("missing color or gradient")
	}

	frame := pdfpaint.RectFrame(x, y, w, h)
	frame.ContainerSize = page.Size
	frame.ContainerTransform = matrix.Identity
	if g != nil {
		page.SetFillGradient(g, frame, false)
	} else {
		page.SetFillColor(solid)
	}

	// The opacity and the mask apply on top of the selected paint.
	if item.Opacity != nil || item.Mask != nil {
		gs := pdfpaint.DefaultExtGState()
		if g == nil {
			gs.FillOpacity = uint8(math.Round(solid.Alpha * 255))
		}
		if item.Opacity != nil {
			op := *item.Opacity
			if !(op >= 0 && op <= 1) {
				return fmt.Errorf("invalid opacity %g", op)
			}
			gs.FillOpacity = uint8(math.Round(op * 255))
		}
		if item.Mask != nil {
			mg, err := item.Mask.build()
			if err != nil {
				return fmt.Errorf("mask: %w", err)
			}
			gs.SoftMask = &pdfpaint.SoftMask{
				Transform: matrix.Scale(w, h).Mul(matrix.Translate(x, y)),
				Gradient:  pdfpaint.NewGradientDescriptor(mg, frame, false, page.Size),
			}
		}
		page.SetExtGState(gs)
	}

	page.Content.Rectangle(x, y, w, h)
	page.Content.Fill()
	page.SetExtGState(pdfpaint.DefaultExtGState())
	return nil
}

func (spec *gradientSpec) build() (gradient.Gradient, error) {
	space := color.Oklab
	if spec.Space != "" {
		var err error
		space, err = color.ParseSpace(spec.Space)
		if err != nil {
			return nil, err
		}
	}
	stops, err := spec.stops()
	if err != nil {
		return nil, err
	}
	angle := spec.Angle * math.Pi / 180
	center := vec.Vec2{X: 0.5, Y: 0.5}
	if spec.Center != nil {
		center = vec.Vec2{X: spec.Center[0], Y: spec.Center[1]}
	}

	var g gradient.Gradient
	switch strings.ToLower(spec.Kind) {
	case "linear":
		g, err = gradient.NewLinear(stops, space, angle)
	case "radial":
		radius := spec.Radius
		if radius == 0 {
			radius = 0.5
		}
		var r *gradient.Radial
		r, err = gradient.NewRadial(stops, space, center, radius)
		if err == nil && spec.Focus != nil {
			r, err = r.WithFocus(vec.Vec2{X: spec.Focus[0], Y: spec.Focus[1]}, spec.FocusR)
		}
		g = r
	case "conic":
		g, err = gradient.NewConic(stops, space, center, angle)
	default:
		return nil, fmt.Errorf("unknown gradient kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	base := g.Common()
	switch strings.ToLower(spec.Relative) {
	case "", "auto":
		base.Relative = gradient.Auto
	case "self":
		base.Relative = gradient.Self
	case "parent":
		base.Relative = gradient.Parent
	default:
		return nil, fmt.Errorf("invalid relative-to value %q", spec.Relative)
	}
	if spec.Smooth != nil {
		base.AntiAlias = *spec.Smooth
	}
	return g, nil
}

func (spec *gradientSpec) stops() ([]gradient.Stop, error) {
	colors := make([]color.Color, len(spec.Stops))
	explicit := 0
	for i, s := range spec.Stops {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		colors[i] = c
		if s.Offset != nil {
			explicit++
		}
	}
	switch explicit {
	case 0:
		return gradient.EvenStops(colors...), nil
	case len(spec.Stops):
		stops := make([]gradient.Stop, len(colors))
		for i, c := range colors {
			stops[i] = gradient.Stop{Color: c, Offset: *spec.Stops[i].Offset}
		}
		return stops, nil
	default:
		return nil, errors.New("either all or no stops must have offsets")
	}
}

// parseColor parses a color given either as an SVG color name or in
// the form #rgb, #rrggbb or #rrggbbaa.
func parseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "transparent" {
		return color.RGBA(0, 0, 0, 0), nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.FromImageColor(c), nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok {
		return color.Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.Color{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Color{}, fmt.Errorf("malformed color %q", s)
	}
	return color.FromImageColor(stdcolor.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}
