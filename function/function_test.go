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

package function

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdfpaint/pdf"
)

func newTestRM(t *testing.T, ver pdf.Version) *pdf.ResourceManager {
	t.Helper()
	w, err := pdf.NewWriter(&bytes.Buffer{}, ver, &pdf.WriterOptions{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}
	return pdf.NewResourceManager(w)
}

func TestType2Apply(t *testing.T) {
	f := &Type2{
		XMin: 0,
		XMax: 1,
		C0:   []float64{0, 1, 0.5},
		C1:   []float64{1, 0, 0.5},
		N:    1,
	}
	cases := []struct {
		x    float64
		want []float64
	}{
		{0, []float64{0, 1, 0.5}},
		{0.25, []float64{0.25, 0.75, 0.5}},
		{1, []float64{1, 0, 0.5}},
		{-1, []float64{0, 1, 0.5}},
		{2, []float64{1, 0, 0.5}},
	}
	for _, c := range cases {
		got := f.Apply(c.x)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("Apply(%g) (-want +got):\n%s", c.x, d)
		}
	}
}

func TestType2Embed(t *testing.T) {
	rm := newTestRM(t, pdf.V1_7)
	f := &Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	obj, err := rm.Embed(f)
	if err != nil {
		t.Fatal(err)
	}
	ref, ok := obj.(pdf.Reference)
	if !ok {
		t.Fatalf("expected reference, got %T", obj)
	}
	dict, err := rm.Out.GetDict(ref)
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n/C0 [0]\n/C1 [1]\n/Domain [0 1]\n/FunctionType 2\n/N 1\n>>"
	if got := pdf.Format(dict); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestType2Invalid(t *testing.T) {
	cases := []*Type2{
		{XMin: 1, XMax: 0, C0: []float64{0}, C1: []float64{1}, N: 1},
		{XMin: 0, XMax: 1, C0: []float64{0, 0}, C1: []float64{1}, N: 1},
		{XMin: 0, XMax: 1, N: 1},
		{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: math.NaN()},
		{XMin: -1, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 0.5},
		{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1, Range: []float64{0}},
	}
	for i, f := range cases {
		rm := newTestRM(t, pdf.V1_7)
		_, err := rm.Embed(f)
		if !errors.Is(err, &InvalidFunctionError{}) {
			t.Errorf("%d: expected InvalidFunctionError, got %v", i, err)
		}
	}
}

func TestType2Version(t *testing.T) {
	rm := newTestRM(t, pdf.V1_2)
	f := &Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	_, err := rm.Embed(f)
	var verErr *pdf.VersionError
	if !errors.As(err, &verErr) {
		t.Errorf("expected version error, got %v", err)
	}
}

func lin(c0, c1 float64) *Type2 {
	return &Type2{XMin: 0, XMax: 1, C0: []float64{c0}, C1: []float64{c1}, N: 1}
}

func TestType3Subdomains(t *testing.T) {
	f := &Type3{
		XMin:      0,
		XMax:      3,
		Functions: []Func{lin(0, 1), lin(1, 0), lin(5, 6)},
		Bounds:    []float64{1, 2},
		Encode:    []float64{0, 1, 0, 1, 0, 1},
	}
	cases := []struct {
		x       float64
		wantIdx int
		wantY   float64
	}{
		{0, 0, 0},
		{0.5, 0, 0.5},
		{1, 1, 1},
		{1.5, 1, 0.5},
		{2, 2, 5},
		{3, 2, 6},
		{4, 2, 6},
	}
	for _, c := range cases {
		idx, _, _ := f.findSubdomain(clip(c.x, f.XMin, f.XMax))
		if idx != c.wantIdx {
			t.Errorf("x=%g: subdomain %d, want %d", c.x, idx, c.wantIdx)
		}
		y := f.Apply(c.x)
		if math.Abs(y[0]-c.wantY) > 1e-12 {
			t.Errorf("x=%g: got %g, want %g", c.x, y[0], c.wantY)
		}
	}
}

func TestType3HardStop(t *testing.T) {
	// Two segments meeting at a zero-length subdomain: [0,0.5), [0.5,0.5), [0.5,1]
	f := &Type3{
		XMin:      0,
		XMax:      1,
		Functions: []Func{lin(0, 0), lin(0, 1), lin(1, 1)},
		Bounds:    []float64{0.5, 0.5},
		Encode:    []float64{0, 1, 0, 1, 0, 1},
	}
	if y := f.Apply(0.499)[0]; y != 0 {
		t.Errorf("left of hard stop: got %g", y)
	}
	if y := f.Apply(0.5)[0]; y != 1 {
		t.Errorf("at hard stop: got %g", y)
	}

	rm := newTestRM(t, pdf.V1_7)
	if _, err := rm.Embed(f); err != nil {
		t.Error(err)
	}
}

func TestType3LeadingBound(t *testing.T) {
	f := &Type3{
		XMin:      0,
		XMax:      1,
		Functions: []Func{lin(7, 7), lin(0, 1)},
		Bounds:    []float64{0},
		Encode:    []float64{0, 1, 0, 1},
	}
	if y := f.Apply(0)[0]; y != 7 {
		t.Errorf("Apply(0) = %g, want 7", y)
	}
	if y := f.Apply(0.5)[0]; y != 0.5 {
		t.Errorf("Apply(0.5) = %g, want 0.5", y)
	}
}

func TestType3Embed(t *testing.T) {
	rm := newTestRM(t, pdf.V1_7)
	shared := lin(0, 1)
	f := &Type3{
		XMin:      0,
		XMax:      1,
		Functions: []Func{shared, shared},
		Bounds:    []float64{0.5},
		Encode:    []float64{0, 1, 0, 1},
	}
	obj, err := rm.Embed(f)
	if err != nil {
		t.Fatal(err)
	}
	dict, err := rm.Out.GetDict(obj.(pdf.Reference))
	if err != nil {
		t.Fatal(err)
	}
	fns := dict["Functions"].(pdf.Array)
	if len(fns) != 2 || fns[0] != fns[1] {
		t.Errorf("shared sub-function embedded twice: %v", fns)
	}
	if rm.Out.NumObjects() != 2 {
		t.Errorf("wrong number of objects: %d", rm.Out.NumObjects())
	}
}

func TestType3Invalid(t *testing.T) {
	cases := []*Type3{
		{XMin: 0, XMax: 1},
		{XMin: 0, XMax: 1, Functions: []Func{lin(0, 1), lin(0, 1)}, Bounds: []float64{0.7, 0.2}, Encode: []float64{0, 1, 0, 1}},
		{XMin: 0, XMax: 1, Functions: []Func{lin(0, 1), lin(0, 1)}, Bounds: []float64{0.5}, Encode: []float64{0, 1}},
		{XMin: 0, XMax: 1, Functions: []Func{lin(0, 1), lin(0, 1)}, Bounds: []float64{1.5}, Encode: []float64{0, 1, 0, 1}},
		{XMin: 0, XMax: 1, Functions: []Func{lin(0, 1), &Type2{XMin: 0, XMax: 1, C0: []float64{0, 0}, C1: []float64{1, 1}, N: 1}}, Bounds: []float64{0.5}, Encode: []float64{0, 1, 0, 1}},
	}
	for i, f := range cases {
		rm := newTestRM(t, pdf.V1_7)
		_, err := rm.Embed(f)
		if !errors.Is(err, &InvalidFunctionError{}) {
			t.Errorf("%d: expected InvalidFunctionError, got %v", i, err)
		}
	}
}

func TestType4Embed(t *testing.T) {
	rm := newTestRM(t, pdf.V1_7)
	f := &Type4{
		Domain:  []float64{0, 1},
		Range:   []float64{0, 1, 0, 1},
		Program: "dup",
	}
	obj, err := rm.Embed(f)
	if err != nil {
		t.Fatal(err)
	}
	stm, err := rm.Out.Get(obj.(pdf.Reference))
	if err != nil {
		t.Fatal(err)
	}
	s := stm.(*pdf.Stream)
	if string(s.Data) != "{dup}" {
		t.Errorf("wrong program %q", s.Data)
	}
	if !strings.Contains(pdf.Format(s.Dict), "/FunctionType 4") {
		t.Error("missing function type")
	}

	_, err = rm.Embed(&Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: "{"})
	if !errors.Is(err, &InvalidFunctionError{}) {
		t.Errorf("expected InvalidFunctionError, got %v", err)
	}
}

func TestType4Apply(t *testing.T) {
	cases := []struct {
		prog string
		in   []float64
		want []float64
	}{
		{"dup", []float64{0.25}, []float64{0.25, 0.25}},
		{"2 mul exch 1 exch sub", []float64{0.25, 0.1}, []float64{0.2, 0.75}},
		{"3 1 roll", []float64{0.1, 0.2, 0.3}, []float64{0.3, 0.1, 0.2}},
		{"3 -1 roll", []float64{0.1, 0.2, 0.3}, []float64{0.2, 0.3, 0.1}},
		{"1 index", []float64{0.1, 0.2}, []float64{0.1, 0.2, 0.1}},
		{"2 copy add", []float64{0.1, 0.2}, []float64{0.1, 0.2, 0.3}},
		{"0.5 gt {1} {0} ifelse", []float64{0.7}, []float64{1}},
		{"0.5 gt {1} {0} ifelse", []float64{0.3}, []float64{0}},
		{"dup 0.5 lt {pop 0} if", []float64{0.3}, []float64{0}},
		{"2 exp", []float64{0.5}, []float64{0.25}},
		{"4 mul", []float64{0.5}, []float64{1}},    // clipped to range
		{"", []float64{2}, []float64{1}},           // input clipped to domain
		{"0 div", []float64{0.5}, []float64{0}},    // error gives zeros
		{"true", []float64{0.5}, []float64{0}},     // booleans are not outputs
		{"2 3 idiv", []float64{0.5}, []float64{0}}, // integer result
	}
	for i, c := range cases {
		f := &Type4{
			Domain:  []float64{0, 1, 0, 1, 0, 1}[:2*len(c.in)],
			Range:   []float64{0, 1, 0, 1, 0, 1}[:2*len(c.want)],
			Program: c.prog,
		}
		got := f.Apply(c.in...)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%d: %q (-want +got):\n%s", i, c.prog, d)
		}
	}
}

func TestType4Errors(t *testing.T) {
	for _, prog := range []string{"pop", "1 0 div", "foo", "{1} if", "1 {2} {3}", "}"} {
		f := &Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: prog}
		_, err := f.Eval(0.5)
		if err == nil {
			t.Errorf("%q: missing error", prog)
		}
	}
}
