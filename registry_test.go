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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
)

var pageSize = vec.Vec2{X: 595, Y: 842}

func mustLinear(t *testing.T, space color.Space, angle float64, colors ...color.Color) *gradient.Linear {
	t.Helper()
	g, err := gradient.NewLinear(gradient.EvenStops(colors...), space, angle)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustConic(t *testing.T, space color.Space, colors ...color.Color) *gradient.Conic {
	t.Helper()
	g, err := gradient.NewConic(gradient.EvenStops(colors...), space, vec.Vec2{X: 0.5, Y: 0.5}, 0)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGradientDedup(t *testing.T) {
	res := &Resources{}
	frame := RectFrame(10, 20, 100, 50)

	a := res.RegisterGradient(mustLinear(t, color.SRGB, 1, color.RGB(1, 0, 0), color.RGB(0, 0, 1)), frame, false, pageSize)
	b := res.RegisterGradient(mustLinear(t, color.SRGB, 1, color.RGB(1, 0, 0), color.RGB(0, 0, 1)), frame, false, pageSize)
	if a != b {
		t.Errorf("equal gradients registered as %d and %d", a, b)
	}

	c := res.RegisterGradient(mustLinear(t, color.SRGB, 1, color.RGB(1, 0, 0), color.RGB(0, 1, 0)), frame, false, pageSize)
	d := res.RegisterGradient(mustLinear(t, color.SRGB, 1, color.RGB(1, 0, 0), color.RGB(0, 0, 1)), RectFrame(10, 20, 100, 60), false, pageSize)
	e := res.RegisterGradient(mustLinear(t, color.SRGB, 1, color.RGB(1, 0, 0), color.RGB(0, 0, 1)), frame, false, vec.Vec2{X: 100, Y: 100})
	if len(map[int]bool{a: true, c: true, d: true, e: true}) != 4 {
		t.Errorf("different gradients share an index: %d %d %d %d", a, c, d, e)
	}
	if res.Gradients.Len() != 4 {
		t.Errorf("registry has %d entries", res.Gradients.Len())
	}
}

func TestExtGStateDedup(t *testing.T) {
	res := &Resources{}
	g := mustLinear(t, color.SRGB, 0, color.RGB(0, 0, 0), color.RGB(1, 1, 1))
	mask := func(thickness float64) *SoftMask {
		return &SoftMask{
			StrokeThickness: thickness,
			Transform:       matrix.Scale(10, 10),
			Gradient:        NewGradientDescriptor(g, RectFrame(0, 0, 10, 10), false, pageSize),
		}
	}

	a := res.RegisterExtGState(ExtGState{StrokeOpacity: 255, FillOpacity: 128})
	b := res.RegisterExtGState(ExtGState{StrokeOpacity: 255, FillOpacity: 128})
	c := res.RegisterExtGState(ExtGState{StrokeOpacity: 128, FillOpacity: 255})
	d := res.RegisterExtGState(ExtGState{StrokeOpacity: 255, FillOpacity: 255, SoftMask: mask(2)})
	e := res.RegisterExtGState(ExtGState{StrokeOpacity: 255, FillOpacity: 255, SoftMask: mask(2)})
	f := res.RegisterExtGState(ExtGState{StrokeOpacity: 255, FillOpacity: 255, SoftMask: mask(3)})
	if a != b || d != e {
		t.Errorf("equal graphics states were not merged: %d %d %d %d", a, b, d, e)
	}
	if a == c || c == d || d == f {
		t.Errorf("different graphics states were merged: %d %d %d %d", a, c, d, f)
	}
	if !res.Colors().Has(color.D65Gray) {
		t.Error("soft mask did not mark the gray color space")
	}
}

func TestRegistryConcurrent(t *testing.T) {
	var r Registry[ExtGState]
	idx := make([]int, 16)
	var wg sync.WaitGroup
	for i := range idx {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx[i] = r.Insert(ExtGState{StrokeOpacity: uint8(i % 2), FillOpacity: 255})
		}(i)
	}
	wg.Wait()

	if r.Len() != 2 {
		t.Fatalf("registry has %d entries, want 2", r.Len())
	}
	for i := range idx {
		if idx[i] != idx[i%2] {
			t.Errorf("goroutine %d got index %d, want %d", i, idx[i], idx[i%2])
		}
	}
}

func TestColorUsage(t *testing.T) {
	res := &Resources{}
	opaque := mustLinear(t, color.Oklch, 0, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	res.RegisterGradient(opaque, RectFrame(0, 0, 1, 1), false, pageSize)
	want := []color.Space{color.Oklab}
	if d := cmp.Diff(want, res.Colors().Spaces()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	transparent := mustLinear(t, color.SRGB, 0, color.RGB(1, 0, 0), color.RGBA(0, 0, 1, 0.5))
	res.RegisterGradient(transparent, RectFrame(0, 0, 1, 1), false, pageSize)
	want = []color.Space{color.Oklab, color.SRGB, color.D65Gray}
	if d := cmp.Diff(want, res.Colors().Spaces()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestZeroSizeFrame(t *testing.T) {
	for _, g := range []gradient.Gradient{
		mustLinear(t, color.SRGB, 0.5, color.RGB(1, 0, 0), color.RGB(0, 0, 1)),
		mustConic(t, color.SRGB, color.RGB(1, 0, 0), color.RGB(0, 0, 1)),
	} {
		d := NewGradientDescriptor(g, Frame{}, false, pageSize)
		for i, x := range d.Transform {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				t.Errorf("%s: transform[%d] = %g", g.Kind(), i, x)
			}
		}
		if d.AspectRatio != 1 {
			t.Errorf("%s: aspect ratio %g", g.Kind(), d.AspectRatio)
		}
		if math.IsNaN(d.Angle) {
			t.Errorf("%s: angle is NaN", g.Kind())
		}
	}
}

func TestConicTransform(t *testing.T) {
	g := mustConic(t, color.SRGB, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	d := NewGradientDescriptor(g, RectFrame(0, 0, 100, 50), false, pageSize)

	// offset (-100·0.75/2, -50·0.75/2), scaled by 4
	want := matrix.Matrix{400, 0, 0, 200, -150, -75}
	if d.Transform != want {
		t.Errorf("got %v, want %v", d.Transform, want)
	}
	if d.AspectRatio != 2 {
		t.Errorf("aspect ratio %g", d.AspectRatio)
	}
}

func TestRelativeFrame(t *testing.T) {
	g := mustLinear(t, color.SRGB, 0, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	frame := Frame{
		Size:               vec.Vec2{X: 10, Y: 10},
		Transform:          matrix.Translate(5, 5),
		ContainerSize:      vec.Vec2{X: 200, Y: 100},
		ContainerTransform: matrix.Translate(1, 2),
	}

	self := NewGradientDescriptor(g, frame, false, pageSize)
	if want := (matrix.Matrix{10, 0, 0, 10, 5, 5}); self.Transform != want {
		t.Errorf("self: got %v, want %v", self.Transform, want)
	}
	text := NewGradientDescriptor(g, frame, true, pageSize)
	if want := (matrix.Matrix{200, 0, 0, 100, 1, 2}); text.Transform != want {
		t.Errorf("text: got %v, want %v", text.Transform, want)
	}
	if text.AspectRatio != 2 {
		t.Errorf("text: aspect ratio %g", text.AspectRatio)
	}
}
