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
	"bytes"
	"math"
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/graphics/shading"
	"seehuhn.de/go/pdfpaint/pdf"
)

var center = vec.Vec2{X: 0.5, Y: 0.5}

func decodeMesh(t *testing.T, g *Conic, aspect float64) []shading.Patch {
	t.Helper()
	data, err := pdf.Inflate(Tessellate(g, aspect))
	if err != nil {
		t.Fatal(err)
	}
	channels := MeshSpace(g).Channels()
	if len(data)%shading.PatchSize(channels) != 0 {
		t.Fatalf("mesh length %d is not a multiple of the patch size", len(data))
	}
	patches, err := shading.DecodePatches(data, channels)
	if err != nil {
		t.Fatal(err)
	}
	return patches
}

func TestPatchCount(t *testing.T) {
	cases := []struct {
		name   string
		stops  []Stop
		space  color.Space
		expect int
	}{
		{"constant", EvenStops(red, red), color.SRGB, 4},
		{"constant hue", EvenStops(red, red), color.Oklch, 4},
		{"hue", EvenStops(red, blue), color.Oklch, 200},
		{"hsl", EvenStops(red, blue), color.HSL, 200},
		{"rgb", EvenStops(red, blue), color.SRGB, 20},
		{"three stops", EvenStops(red, green, blue), color.Oklab, 20},
		{"hard stop", []Stop{{red, 0}, {red, 0.5}, {blue, 0.5}, {blue, 1}}, color.SRGB, 5},
		{"hard stop hue", []Stop{{red, 0}, {red, 0.5}, {blue, 0.5}, {blue, 1}}, color.Oklch, 5},
		{"only hard stop", []Stop{{red, 0}, {blue, 0}, {blue, 1}}, color.SRGB, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewConic(c.stops, c.space, center, 0)
			if err != nil {
				t.Fatal(err)
			}
			patches := decodeMesh(t, g, 1)
			if len(patches) != c.expect {
				t.Errorf("got %d patches, want %d", len(patches), c.expect)
			}
		})
	}
}

func TestHardStopColors(t *testing.T) {
	stops := []Stop{{red, 0}, {red, 0.5}, {blue, 0.5}, {blue, 1}}
	g, err := NewConic(stops, color.SRGB, center, 0)
	if err != nil {
		t.Fatal(err)
	}
	patches := decodeMesh(t, g, 1)

	hard := patches[2]
	if hard.Points[2] != hard.Points[6] {
		t.Errorf("hard stop patch has non-zero width: %v", hard.Points)
	}
	wantRed := []uint16{65535, 0, 0}
	wantBlue := []uint16{0, 0, 65535}
	for i, want := range [][]uint16{wantRed, wantRed, wantBlue, wantBlue} {
		for j := range want {
			if hard.Colors[i][j] != want[j] {
				t.Errorf("corner %d: got %v, want %v", i, hard.Colors[i], want)
				break
			}
		}
	}
}

func TestPatchGeometry(t *testing.T) {
	g, err := NewConic(EvenStops(red, red), color.SRGB, center, 0)
	if err != nil {
		t.Fatal(err)
	}
	patches := decodeMesh(t, g, 1)

	mid := shading.Quantize(0.5, 0, 1)
	if mid != 32768 {
		t.Fatalf("center quantized to %d", mid)
	}
	for i, p := range patches {
		for _, k := range []int{0, 1, 8, 9, 10, 11} {
			if p.Points[k] != [2]uint16{mid, mid} {
				t.Errorf("patch %d: point %d is %v, not the center", i, k, p.Points[k])
			}
		}
		if p.Points[2] != p.Points[3] || p.Points[6] != p.Points[7] {
			t.Errorf("patch %d: arc end points not repeated", i)
		}
	}

	// The first patch starts at θ = π, i.e. at the left edge.
	first := patches[0].Points[2]
	if first[0] != 0 || first[1] != mid {
		t.Errorf("first arc point %v", first)
	}
	// Consecutive patches share their arc end points.
	for i := 1; i < len(patches); i++ {
		if patches[i].Points[2] != patches[i-1].Points[6] {
			t.Errorf("gap between patch %d and %d", i-1, i)
		}
	}
}

func TestArcControlPoints(t *testing.T) {
	// a quarter circle from angle 0 to π/2
	p1, p2 := arcControlPoints(0, 0, 1, 0, math.Pi/2)
	k := 4.0 / 3 * math.Tan(math.Pi/8)
	if math.Abs(p1[0]-1) > 1e-12 || math.Abs(p1[1]-k) > 1e-12 {
		t.Errorf("p1 = %v", p1)
	}
	if math.Abs(p2[0]-k) > 1e-12 || math.Abs(p2[1]-1) > 1e-12 {
		t.Errorf("p2 = %v", p2)
	}

	// zero width arcs collapse onto the arc point
	p1, p2 = arcControlPoints(0.5, 0.5, 0.5, 1, 1)
	if p1 != p2 {
		t.Errorf("degenerate arc: %v != %v", p1, p2)
	}
}

func TestTessellateWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for linear gradient")
		}
	}()
	g, _ := NewLinear(EvenStops(red, blue), color.SRGB, 0)
	Tessellate(g, 1)
}

func TestMeshCache(t *testing.T) {
	g1, _ := NewConic(EvenStops(red, blue), color.Oklch, center, 1)
	g2, _ := NewConic(EvenStops(red, blue), color.Oklch, center, 1)
	g3, _ := NewConic(EvenStops(red, green), color.Oklch, center, 1)

	var cache MeshCache
	a := cache.Get(g1, 1.5)
	b := cache.Get(g2, 1.5)
	if &a[0] != &b[0] {
		t.Error("equal gradients were tessellated twice")
	}
	if cache.Len() != 1 {
		t.Errorf("cache has %d entries", cache.Len())
	}
	cache.Get(g1, 2)
	cache.Get(g3, 1.5)
	if cache.Len() != 3 {
		t.Errorf("cache has %d entries, want 3", cache.Len())
	}
	if !bytes.Equal(a, Tessellate(g1, 1.5)) {
		t.Error("cached mesh differs from a fresh one")
	}
}

func TestMeshCacheConcurrent(t *testing.T) {
	g, _ := NewConic(EvenStops(red, green, blue), color.HSV, center, 0.3)

	var cache MeshCache
	results := make([][]byte, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Get(g, 1)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if !bytes.Equal(results[0], results[i]) {
			t.Fatalf("result %d differs", i)
		}
	}
	if cache.Len() != 1 {
		t.Errorf("cache has %d entries", cache.Len())
	}
}
