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

// Package gradient describes color gradients and computes the data needed
// to paint them.
//
// There are three kinds of gradients: [Linear], [Radial] and [Conic].  All
// share a list of color stops, a color space for interpolation and a
// reference frame, given by the embedded [Base] type.  Conic gradients
// cannot be expressed by PDF shading functions; [Tessellate] approximates
// them by a mesh of Coons patches.
package gradient

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/graphics/color"
)

// Kind identifies the type of a gradient.
type Kind uint8

// These are the supported gradient kinds.
const (
	KindLinear Kind = iota + 1
	KindRadial
	KindConic
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	case KindConic:
		return "conic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// RelativeTo selects the reference frame of a gradient.
type RelativeTo uint8

// These are the possible reference frames.
const (
	// Auto uses the container for text and the element itself otherwise.
	Auto RelativeTo = iota

	// Self uses the bounding box of the painted element.
	Self

	// Parent uses the bounding box of the enclosing container.
	Parent
)

func (r RelativeTo) String() string {
	switch r {
	case Auto:
		return "auto"
	case Self:
		return "self"
	case Parent:
		return "parent"
	default:
		return fmt.Sprintf("RelativeTo(%d)", uint8(r))
	}
}

// Unwrap resolves [Auto] to a concrete reference frame.
func (r RelativeTo) Unwrap(onText bool) RelativeTo {
	if r != Auto {
		return r
	}
	if onText {
		return Parent
	}
	return Self
}

// Stop is a color stop of a gradient.
type Stop struct {
	Color color.Color

	// Offset is the position of the stop along the gradient, from 0 to 1.
	Offset float64
}

// EvenStops distributes the given colors evenly over the interval [0, 1].
func EvenStops(colors ...color.Color) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i].Color = c
		if len(colors) > 1 {
			stops[i].Offset = float64(i) / float64(len(colors)-1)
		}
	}
	return stops
}

// Gradient is one of [*Linear], [*Radial] or [*Conic].
type Gradient interface {
	// Kind returns the type of the gradient.
	Kind() Kind

	// Common returns the parameters shared by all gradient kinds.
	Common() *Base

	// Key returns a canonical encoding of all parameters of the gradient.
	// Two gradients have the same key if and only if they are equal.
	Key() string

	// Sample returns the color at position t in [0, 1].
	Sample(t float64) color.Color

	// IsTransparent reports whether any stop is not fully opaque.
	IsTransparent() bool

	isGradient()
}

// Base holds the parameters common to all gradient kinds.
type Base struct {
	// Stops is the list of color stops, with offsets in increasing order.
	// The first offset is 0 and the last offset is 1.
	Stops []Stop

	// Space is the color space used for interpolation between stops.
	Space color.Space

	// Relative selects the reference frame.
	Relative RelativeTo

	// AntiAlias requests smoothing of the gradient in PDF viewers.
	AntiAlias bool
}

// Common returns b.
// This implements the [Gradient] interface.
func (b *Base) Common() *Base {
	return b
}

func (b *Base) isGradient() {}

// IsTransparent reports whether any stop is not fully opaque.
func (b *Base) IsTransparent() bool {
	for _, s := range b.Stops {
		if !s.Color.IsOpaque() {
			return true
		}
	}
	return false
}

// Sample returns the color at position t, interpolated in the gradient's
// color space.  Values of t outside [0, 1] are clamped.  At a hard stop,
// the color after the stop is returned.
func (b *Base) Sample(t float64) color.Color {
	stops := b.Stops
	if t <= stops[0].Offset {
		return stops[0].Color.To(b.Space)
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color.To(b.Space)
	}

	i := 1
	for i < len(stops)-1 && stops[i].Offset <= t {
		i++
	}
	s0, s1 := stops[i-1], stops[i]
	local := 0.0
	if s1.Offset > s0.Offset {
		local = (t - s0.Offset) / (s1.Offset - s0.Offset)
	}
	return color.Lerp(s0.Color, s1.Color, local, b.Space)
}

func newBase(stops []Stop, space color.Space) (Base, error) {
	if len(stops) < 2 {
		return Base{}, newInvalidGradientError("Stops", "need at least two stops, got %d", len(stops))
	}
	prev := 0.0
	for i, s := range stops {
		if math.IsNaN(s.Offset) || s.Offset < prev || s.Offset > 1 {
			return Base{}, newInvalidGradientError("Stops", "offset %d (%g) out of order", i, s.Offset)
		}
		if !(s.Color.Alpha >= 0 && s.Color.Alpha <= 1) {
			return Base{}, newInvalidGradientError("Stops", "stop %d has invalid alpha %g", i, s.Color.Alpha)
		}
		prev = s.Offset
	}
	if stops[0].Offset != 0 || stops[len(stops)-1].Offset != 1 {
		return Base{}, newInvalidGradientError("Stops", "offsets must start at 0 and end at 1")
	}
	if space >= color.Space(len(color.AllSpaces)) {
		return Base{}, newInvalidGradientError("Space", "unknown color space %s", space)
	}

	return Base{
		Stops:     append([]Stop(nil), stops...),
		Space:     space,
		AntiAlias: true,
	}, nil
}

// Linear is a gradient which varies along a straight line.
type Linear struct {
	Base

	// Angle is the direction of the gradient, in radians.
	// An angle of 0 points to the right and angles increase
	// counter-clockwise, so that an angle of π/2 points up in the
	// y-up coordinate system of the reference frame.
	Angle float64
}

// NewLinear returns a new linear gradient.
func NewLinear(stops []Stop, space color.Space, angle float64) (*Linear, error) {
	base, err := newBase(stops, space)
	if err != nil {
		return nil, err
	}
	if !isFinite(angle) {
		return nil, newInvalidGradientError("Angle", "must be finite")
	}
	return &Linear{Base: base, Angle: angle}, nil
}

// Kind returns [KindLinear].
func (g *Linear) Kind() Kind { return KindLinear }

// Radial is a gradient which varies between two circles.  All lengths are
// relative to the reference frame, i.e. the frame is the unit square.
type Radial struct {
	Base

	// Center and Radius describe the end circle.
	Center vec.Vec2
	Radius float64

	// FocalCenter and FocalRadius describe the start circle.
	FocalCenter vec.Vec2
	FocalRadius float64
}

// NewRadial returns a new radial gradient.  The focal circle starts at
// the center, with radius zero.
func NewRadial(stops []Stop, space color.Space, center vec.Vec2, radius float64) (*Radial, error) {
	base, err := newBase(stops, space)
	if err != nil {
		return nil, err
	}
	g := &Radial{
		Base:        base,
		Center:      center,
		Radius:      radius,
		FocalCenter: center,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// WithFocus returns a copy of g with a different start circle.
func (g *Radial) WithFocus(center vec.Vec2, radius float64) (*Radial, error) {
	res := *g
	res.FocalCenter = center
	res.FocalRadius = radius
	if err := res.validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Radial) validate() error {
	if !(g.Radius > 0) || !isFinite(g.Radius) {
		return newInvalidGradientError("Radius", "must be positive, got %g", g.Radius)
	}
	if !(g.FocalRadius >= 0) || g.FocalRadius > g.Radius {
		return newInvalidGradientError("FocalRadius", "must be between 0 and %g, got %g",
			g.Radius, g.FocalRadius)
	}
	if !isFinite(g.Center.X) || !isFinite(g.Center.Y) ||
		!isFinite(g.FocalCenter.X) || !isFinite(g.FocalCenter.Y) {
		return newInvalidGradientError("Center", "must be finite")
	}
	return nil
}

// Kind returns [KindRadial].
func (g *Radial) Kind() Kind { return KindRadial }

// Conic is a gradient which varies with the angle around a center point.
type Conic struct {
	Base

	// Center is the center of the gradient, relative to the reference frame.
	Center vec.Vec2

	// Angle is the rotation of the gradient, in radians.
	Angle float64
}

// NewConic returns a new conic gradient.
func NewConic(stops []Stop, space color.Space, center vec.Vec2, angle float64) (*Conic, error) {
	base, err := newBase(stops, space)
	if err != nil {
		return nil, err
	}
	if !isFinite(angle) {
		return nil, newInvalidGradientError("Angle", "must be finite")
	}
	if !isFinite(center.X) || !isFinite(center.Y) {
		return nil, newInvalidGradientError("Center", "must be finite")
	}
	return &Conic{Base: base, Center: center, Angle: angle}, nil
}

// Kind returns [KindConic].
func (g *Conic) Kind() Kind { return KindConic }

// Angle returns the rotation angle of a gradient.  Radial gradients have
// no rotation, and 0 is returned.
func Angle(g Gradient) float64 {
	switch g := g.(type) {
	case *Linear:
		return g.Angle
	case *Conic:
		return g.Angle
	case *Radial:
		return 0
	default:
		panic(fmt.Sprintf("unexpected gradient type %T", g))
	}
}

// InvalidGradientError is returned by the constructors, if the parameters
// do not describe a valid gradient.
type InvalidGradientError struct {
	Field   string
	Message string
}

func (e *InvalidGradientError) Error() string {
	return fmt.Sprintf("invalid gradient, field %s: %s", e.Field, e.Message)
}

// Is makes all InvalidGradientError values match in [errors.Is].
func (e *InvalidGradientError) Is(target error) bool {
	_, ok := target.(*InvalidGradientError)
	return ok
}

func newInvalidGradientError(field, format string, args ...any) error {
	return &InvalidGradientError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrInvalid matches every [InvalidGradientError] in [errors.Is].
var ErrInvalid error = &InvalidGradientError{}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
