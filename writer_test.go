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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/function"
	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/pdf"
)

type resourceList []*Resources

func (l resourceList) Traverse(yield func(*Resources)) {
	for _, r := range l {
		yield(r)
	}
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	w, err := pdf.NewWriter(&bytes.Buffer{}, pdf.V1_7, &pdf.WriterOptions{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}
	colors, err := color.NewFunctions()
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := NewContext(pdf.NewResourceManager(w), colors, nil)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestStitchingBounds(t *testing.T) {
	stops := []gradient.Stop{
		{Color: color.RGB(1, 0, 0), Offset: 0},
		{Color: color.RGB(0, 1, 0), Offset: 0.3},
		{Color: color.RGB(0, 0, 1), Offset: 0.7},
		{Color: color.RGB(1, 1, 1), Offset: 1},
	}
	g, err := gradient.NewLinear(stops, color.SRGB, 0)
	if err != nil {
		t.Fatal(err)
	}

	f, ok := shadingFunction(g.Common(), color.SRGB).(*function.Type3)
	if !ok {
		t.Fatal("expected a stitching function")
	}
	if d := cmp.Diff([]float64{0.3, 0.7}, f.Bounds); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0, 1, 0, 1, 0, 1}, f.Encode); d != "" {
		t.Errorf("encode (-want +got):\n%s", d)
	}
	if len(f.Functions) != 3 {
		t.Errorf("got %d functions", len(f.Functions))
	}
	seg := f.Functions[1].(*function.Type2)
	if d := cmp.Diff([]float64{0, 1, 0}, seg.C0); d != "" {
		t.Errorf("C0 of second segment (-want +got):\n%s", d)
	}
	if seg.N != 1 || seg.XMin != 0 || seg.XMax != 1 {
		t.Errorf("unexpected segment %v", seg)
	}
}

func TestSingleSegment(t *testing.T) {
	g := mustLinear(t, color.SRGB, 0, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	f, ok := shadingFunction(g.Common(), color.SRGB).(*function.Type2)
	if !ok {
		t.Fatal("expected an exponential function")
	}
	if d := cmp.Diff(color.SRGB.Range(), f.Range); d != "" {
		t.Errorf("range (-want +got):\n%s", d)
	}
}

func TestHueSegments(t *testing.T) {
	g := mustLinear(t, color.Oklch, 0, color.RGB(1, 0, 0), color.RGB(0, 1, 0), color.RGB(0, 0, 1))
	f, ok := shadingFunction(g.Common(), color.Oklab).(*function.Type3)
	if !ok {
		t.Fatal("expected a stitching function")
	}
	if len(f.Functions) != 2*hueSegments {
		t.Errorf("got %d functions, want %d", len(f.Functions), 2*hueSegments)
	}
	if len(f.Bounds) != 2*hueSegments-1 {
		t.Errorf("got %d bounds", len(f.Bounds))
	}
	if f.Bounds[hueSegments-1] != 0.5 {
		t.Errorf("stop not at a segment boundary: %g", f.Bounds[hueSegments-1])
	}
	for i := 1; i < len(f.Bounds); i++ {
		if f.Bounds[i] <= f.Bounds[i-1] {
			t.Errorf("bounds not increasing at %d", i)
		}
	}

	// adjacent segments are continuous
	for i := 1; i < len(f.Functions); i++ {
		prev := f.Functions[i-1].(*function.Type2)
		next := f.Functions[i].(*function.Type2)
		if d := cmp.Diff(prev.C1, next.C0, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("jump at segment %d:\n%s", i, d)
		}
	}
}

func TestHardStopFunction(t *testing.T) {
	stops := []gradient.Stop{
		{Color: color.RGB(1, 0, 0), Offset: 0},
		{Color: color.RGB(1, 0, 0), Offset: 0.5},
		{Color: color.RGB(0, 0, 1), Offset: 0.5},
		{Color: color.RGB(0, 0, 1), Offset: 1},
	}
	for _, space := range []color.Space{color.SRGB, color.Oklch} {
		g, _ := gradient.NewLinear(stops, space, 0)
		f := shadingFunction(g.Common(), space.Output()).(*function.Type3)
		want := 2*hueSegments + 1
		if !space.HasHue() {
			want = 3
		}
		if len(f.Functions) != want {
			t.Errorf("%s: got %d functions, want %d", space, len(f.Functions), want)
		}
	}
}

func TestLinearAxis(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	cases := []struct {
		deg    float64
		p0, p1 vec.Vec2
	}{
		{0, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}},
		{45, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}},
		{60, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.25 + math.Sqrt(3)/4, Y: 0.75 + math.Sqrt(3)/4}}, // up and to the right
		{135, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{225, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 0}},
		{315, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 0}},
	}
	for _, c := range cases {
		p0, p1 := linearAxis(c.deg * math.Pi / 180)
		if d := cmp.Diff(c.p0, p0, approx); d != "" {
			t.Errorf("%g°: start (-want +got):\n%s", c.deg, d)
		}
		if d := cmp.Diff(c.p1, p1, approx); d != "" {
			t.Errorf("%g°: end (-want +got):\n%s", c.deg, d)
		}
	}
}

func TestWriteGradients(t *testing.T) {
	ctx := newTestContext(t)
	w := ctx.RM.Out

	page1 := &Resources{}
	page2 := &Resources{}
	linear := mustLinear(t, color.SRGB, 0.3, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	frame := RectFrame(0, 0, 100, 100)
	page1.RegisterGradient(linear, frame, false, pageSize)
	page2.RegisterGradient(linear, frame, false, pageSize)
	col := resourceList{page1, page2}

	err := ctx.WriteGradients(col)
	if err != nil {
		t.Fatal(err)
	}
	n := w.NumObjects()

	// writing again is a no-op
	err = ctx.WriteGradients(col)
	if err != nil {
		t.Fatal(err)
	}
	if w.NumObjects() != n {
		t.Errorf("second pass wrote %d new objects", w.NumObjects()-n)
	}

	d := page1.Gradients.Items()[0]
	ref, ok := ctx.GradientRef(d)
	if !ok {
		t.Fatal("gradient not written")
	}
	pat, err := w.GetDict(ref)
	if err != nil {
		t.Fatal(err)
	}
	if pat["PatternType"] != pdf.Integer(2) {
		t.Errorf("unexpected pattern %s", pdf.Format(pat))
	}
	if got := pdf.Format(pat["Matrix"]); got != "[100 0 0 100 0 0]" {
		t.Errorf("pattern matrix %s", got)
	}
	sh, err := w.GetDict(pat["Shading"].(pdf.Reference))
	if err != nil {
		t.Fatal(err)
	}
	if sh["ShadingType"] != pdf.Integer(2) {
		t.Errorf("unexpected shading %s", pdf.Format(sh))
	}
	if got := pdf.Format(sh["Extend"]); got != "[true true]" {
		t.Errorf("extend %s", got)
	}
	if sh["AntiAlias"] != pdf.Boolean(true) {
		t.Error("anti-aliasing not set")
	}

	res, err := ctx.ResourceDict(page2)
	if err != nil {
		t.Fatal(err)
	}
	patterns := res["Pattern"].(pdf.Dict)
	if patterns["Gr0"] != ref {
		t.Errorf("page 2 uses %s, want %s", pdf.Format(patterns["Gr0"]), pdf.Format(ref))
	}
}

func TestRadialCoords(t *testing.T) {
	ctx := newTestContext(t)
	g, err := gradient.NewRadial(gradient.EvenStops(color.RGB(1, 1, 1), color.RGB(0, 0, 0)),
		color.SRGB, vec.Vec2{X: 0.5, Y: 0.5}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	g, err = g.WithFocus(vec.Vec2{X: 0.25, Y: 0.5}, 0.125)
	if err != nil {
		t.Fatal(err)
	}
	d := NewGradientDescriptor(g, RectFrame(0, 0, 10, 10), false, pageSize)
	ref, err := ctx.writeShading(&d)
	if err != nil {
		t.Fatal(err)
	}
	sh, _ := ctx.RM.Out.GetDict(ref)
	if got := pdf.Format(sh["Coords"]); got != "[0.25 0.5 0.125 0.5 0.5 0.5]" {
		t.Errorf("coords %s", got)
	}
	if sh["ShadingType"] != pdf.Integer(3) {
		t.Errorf("shading type %s", pdf.Format(sh["ShadingType"]))
	}
}

func TestConicShading(t *testing.T) {
	ctx := newTestContext(t)
	g := mustConic(t, color.Oklch, color.RGB(1, 0, 0), color.RGB(0, 0, 1))
	d := NewGradientDescriptor(g, RectFrame(0, 0, 50, 50), false, pageSize)
	ref, err := ctx.writeShading(&d)
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := ctx.RM.Out.Get(ref)
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected a stream, got %T", obj)
	}
	for key, want := range map[pdf.Name]string{
		"ShadingType":       "6",
		"BitsPerCoordinate": "16",
		"BitsPerComponent":  "16",
		"BitsPerFlag":       "8",
		"Filter":            "/FlateDecode",
		"Decode":            "[0 1 0 1 0 1 -0.4 0.4 -0.4 0.4]",
	} {
		if got := pdf.Format(stm.Dict[key]); got != want {
			t.Errorf("%s: got %s, want %s", key, got, want)
		}
	}
	if ctx.Meshes.Len() != 1 {
		t.Errorf("mesh cache has %d entries", ctx.Meshes.Len())
	}

	// a second shading for the same gradient reuses the mesh
	d2 := NewGradientDescriptor(g, RectFrame(100, 100, 50, 50), false, pageSize)
	if _, err := ctx.writeShading(&d2); err != nil {
		t.Fatal(err)
	}
	if ctx.Meshes.Len() != 1 {
		t.Errorf("mesh cache has %d entries", ctx.Meshes.Len())
	}
}

func TestTransparentGradient(t *testing.T) {
	ctx := newTestContext(t)
	w := ctx.RM.Out

	res := &Resources{}
	g := mustLinear(t, color.SRGB, 0, color.RGB(1, 0, 0), color.RGBA(0, 0, 1, 0))
	res.RegisterGradient(g, RectFrame(0, 0, 100, 100), false, pageSize)
	if err := ctx.WriteGradients(resourceList{res}); err != nil {
		t.Fatal(err)
	}

	ref, _ := ctx.GradientRef(res.Gradients.Items()[0])
	obj, err := w.Get(ref)
	if err != nil {
		t.Fatal(err)
	}
	tile, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected a tiling pattern, got %T", obj)
	}
	for key, want := range map[pdf.Name]string{
		"PatternType": "1",
		"PaintType":   "1",
		"TilingType":  "2",
		"BBox":        "[0 0 595 842]",
		"XStep":       "595",
		"YStep":       "842",
	} {
		if got := pdf.Format(tile.Dict[key]); got != want {
			t.Errorf("%s: got %s, want %s", key, got, want)
		}
	}
	body := string(tile.Data)
	for _, op := range []string{"/Gs gs", "/Pattern cs /Gr scn", "0 0 595 842 re", "f"} {
		if !strings.Contains(body, op) {
			t.Errorf("tile content %q lacks %q", body, op)
		}
	}

	tileRes := tile.Dict["Resources"].(pdf.Dict)
	gs := tileRes["ExtGState"].(pdf.Dict)["Gs"].(pdf.Dict)
	mask := gs["SMask"].(pdf.Dict)
	if mask["S"] != pdf.Name("Luminosity") {
		t.Errorf("soft mask %s", pdf.Format(mask))
	}
	form, err := w.Get(mask["G"].(pdf.Reference))
	if err != nil {
		t.Fatal(err)
	}
	formRes := form.(*pdf.Stream).Dict["Resources"].(pdf.Dict)
	alphaRef := formRes["Pattern"].(pdf.Dict)["Gr"].(pdf.Reference)
	alphaPat, _ := w.GetDict(alphaRef)
	alphaSh, _ := w.GetDict(alphaPat["Shading"].(pdf.Reference))
	if !strings.HasPrefix(pdf.Format(alphaSh["ColorSpace"]), "[/CalGray") {
		t.Errorf("alpha shading uses color space %s", pdf.Format(alphaSh["ColorSpace"]))
	}
	colorRef := tileRes["Pattern"].(pdf.Dict)["Gr"].(pdf.Reference)
	if colorRef == alphaRef {
		t.Error("tile paints the alpha pattern")
	}
}

func TestTransparentWithoutPage(t *testing.T) {
	ctx := newTestContext(t)
	res := &Resources{}
	g := mustLinear(t, color.SRGB, 0, color.RGBA(1, 0, 0, 0.5), color.RGB(0, 0, 1))
	res.RegisterGradient(g, RectFrame(0, 0, 100, 100), false, vec.Vec2{})
	if err := ctx.WriteGradients(resourceList{res}); err == nil {
		t.Error("missing page size not detected")
	}
}

func TestWriteGraphicStates(t *testing.T) {
	ctx := newTestContext(t)
	w := ctx.RM.Out

	res := &Resources{}
	g := mustLinear(t, color.SRGB, 0, color.RGB(1, 1, 1), color.RGB(0, 0, 0))
	plain := ExtGState{StrokeOpacity: 255, FillOpacity: 51}
	masked := ExtGState{
		StrokeOpacity: 255,
		FillOpacity:   255,
		SoftMask: &SoftMask{
			StrokeThickness: 4,
			Transform:       matrix.Matrix{100, 0, 0, 50, 10, 10},
			Gradient:        NewGradientDescriptor(g, RectFrame(10, 10, 100, 50), false, pageSize),
		},
	}
	res.RegisterExtGState(plain)
	res.RegisterExtGState(masked)
	col := resourceList{res}

	if err := ctx.WriteGraphicStates(col); err != nil {
		t.Fatal(err)
	}
	n := w.NumObjects()
	if err := ctx.WriteGraphicStates(col); err != nil {
		t.Fatal(err)
	}
	if w.NumObjects() != n {
		t.Error("graphics states written twice")
	}

	ref, _ := ctx.ExtGStateRef(plain)
	dict, _ := w.GetDict(ref)
	if got := pdf.Format(dict["ca"]); got != "0.2" {
		t.Errorf("ca = %s", got)
	}
	if got := pdf.Format(dict["CA"]); got != "1" {
		t.Errorf("CA = %s", got)
	}
	if dict["SMask"] != pdf.Name("None") {
		t.Errorf("SMask = %s", pdf.Format(dict["SMask"]))
	}

	ref, _ = ctx.ExtGStateRef(masked)
	dict, _ = w.GetDict(ref)
	mask := dict["SMask"].(pdf.Dict)
	if mask["S"] != pdf.Name("Luminosity") {
		t.Errorf("soft mask %s", pdf.Format(mask))
	}
	form, _ := w.Get(mask["G"].(pdf.Reference))
	formDict := form.(*pdf.Stream).Dict
	if got := pdf.Format(formDict["BBox"]); got != "[-0.02 -0.04 1.02 1.04]" {
		t.Errorf("bbox %s", got)
	}
	if got := pdf.Format(formDict["Matrix"]); got != "[100 0 0 50 10 10]" {
		t.Errorf("matrix %s", got)
	}
	if !strings.Contains(string(form.(*pdf.Stream).Data), "/ShX sh") {
		t.Errorf("unexpected mask content %q", form.(*pdf.Stream).Data)
	}
}

func TestSoftMaskBBox(t *testing.T) {
	cases := []struct {
		m    SoftMask
		want rect.Rect
	}{
		{SoftMask{}, rect.Rect{URx: 1, URy: 1}},
		{SoftMask{StrokeThickness: 2, Transform: matrix.Scale(10, 20)},
			rect.Rect{LLx: -0.1, LLy: -0.05, URx: 1.1, URy: 1.05}},
		{SoftMask{StrokeThickness: 2, Transform: matrix.Matrix{0, 10, -10, 0, 0, 0}},
			rect.Rect{LLx: -0.1, LLy: -0.1, URx: 1.1, URy: 1.1}},
	}
	for _, c := range cases {
		got := softMaskBBox(&c.m)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("(-want +got):\n%s", d)
		}
	}
}
