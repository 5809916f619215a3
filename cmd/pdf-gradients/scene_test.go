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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfpaint"
	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"red", color.RGB(1, 0, 0)},
		{" White ", color.RGB(1, 1, 1)},
		{"#00f", color.RGB(0, 0, 1)},
		{"#ff8000", color.RGB(1, 128.0/255, 0)},
		{"#00000080", color.RGBA(0, 0, 0, 128.0/255)},
		{"transparent", color.RGBA(0, 0, 0, 0)},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-3)); d != "" {
			t.Errorf("%q (-want +got):\n%s", c.in, d)
		}
	}

	for _, bad := range []string{"", "nocolor", "#12", "#gggggg", "#1234567"} {
		if _, err := parseColor(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestGradientSpec(t *testing.T) {
	spec := &gradientSpec{
		Kind:     "Radial",
		Space:    "oklch",
		Focus:    &[2]float64{0.25, 0.5},
		FocusR:   0.1,
		Relative: "parent",
		Smooth:   new(bool),
		Stops:    []stopSpec{{Color: "red"}, {Color: "blue"}},
	}
	g, err := spec.build()
	if err != nil {
		t.Fatal(err)
	}
	r, ok := g.(*gradient.Radial)
	if !ok {
		t.Fatalf("got %T", g)
	}
	if r.Radius != 0.5 || r.FocalRadius != 0.1 || r.FocalCenter.X != 0.25 {
		t.Errorf("unexpected geometry %v", r)
	}
	if r.Relative != gradient.Parent || r.AntiAlias || r.Space != color.Oklch {
		t.Errorf("unexpected settings %v", r.Base)
	}

	bad := []*gradientSpec{
		{Kind: "diamond", Stops: []stopSpec{{Color: "red"}, {Color: "blue"}}},
		{Kind: "linear", Space: "xyz", Stops: []stopSpec{{Color: "red"}, {Color: "blue"}}},
		{Kind: "linear", Stops: []stopSpec{{Color: "red"}}},
		{Kind: "linear", Relative: "page", Stops: []stopSpec{{Color: "red"}, {Color: "blue"}}},
		{Kind: "linear", Stops: []stopSpec{{Color: "red", Offset: new(float64)}, {Color: "blue"}}},
	}
	for i, spec := range bad {
		if _, err := spec.build(); err == nil {
			t.Errorf("%d: invalid gradient accepted", i)
		}
	}
}

func TestParseScene(t *testing.T) {
	_, err := parseScene(strings.NewReader(`{"pages": []}`))
	if err == nil {
		t.Error("empty scene accepted")
	}
	_, err = parseScene(strings.NewReader(`{"pages": [{"width": 100}]}`))
	if err == nil {
		t.Error("page without height accepted")
	}
	_, err = parseScene(strings.NewReader(`{"pages": [{"width": 100, "height": 100, "colour": "red"}]}`))
	if err == nil {
		t.Error("unknown field accepted")
	}
}

func TestParseYAMLScene(t *testing.T) {
	const src = `
pages:
  - width: 200
    height: 100
    items:
      - rect: [10, 10, 180, 80]
        gradient:
          kind: conic
          angle: 90
          center: [0.5, 0.5]
          stops:
            - color: "#ff0000"
            - color: gold
              offset: 0.75
      - rect: [0, 0, 200, 100]
        color: "#00000080"
`
	s, err := parseScene(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	off := 0.75
	want := &scene{
		Pages: []*pageSpec{{
			Width:  200,
			Height: 100,
			Items: []*itemSpec{
				{
					Rect: [4]float64{10, 10, 180, 80},
					Gradient: &gradientSpec{
						Kind:   "conic",
						Angle:  90,
						Center: &[2]float64{0.5, 0.5},
						Stops:  []stopSpec{{Color: "#ff0000"}, {Color: "gold", Offset: &off}},
					},
				},
				{Rect: [4]float64{0, 0, 200, 100}, Color: "#00000080"},
			},
		}},
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("scene (-want +got):\n%s", d)
	}

	_, err = parseScene(strings.NewReader("pages:\n  - width: 10\n    height: 10\n    colour: red\n"))
	if err == nil {
		t.Error("unknown field accepted")
	}
}

func TestRenderDemo(t *testing.T) {
	s, err := parseScene(bytes.NewReader(demoScene))
	if err != nil {
		t.Fatal(err)
	}
	meta, err := newMetadata("Demo", language.English, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	doc, err := pdfpaint.NewDocument(buf, &pdfpaint.Options{
		HumanReadable: true,
		Lang:          language.English,
		Metadata:      meta,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.render(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Close()
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"/ShadingType 2",
		"/ShadingType 3",
		"/ShadingType 6",
		"/PatternType 1",
		"/S /Luminosity",
		"/Lang (en)",
		"seehuhn.de/go/pdfpaint/cmd/pdf-gradients",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestMetadata(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	meta, err := newMetadata("Gradients", language.German, now)
	if err != nil {
		t.Fatal(err)
	}

	want := xmp.DublinCore{}
	want.Title.Default = xmp.NewText("Gradients")
	want.Title.Set(language.German, "Gradients")

	var got xmp.DublinCore
	meta.Get(&got)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Dublin Core (-want +got):\n%s", d)
	}
}
