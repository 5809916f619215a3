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

package color

import (
	"errors"
	"math"
)

// Weighted is a color together with a mixing weight.
type Weighted struct {
	Color  Color
	Weight float64
}

// Mix computes the weighted average of the given colors in the color
// space s.  The components are averaged in s, except for the hue
// component which is averaged on the circle.  Alpha values are averaged
// linearly.
//
// An error is returned if the sum of the weights is not positive.
func Mix(colors []Weighted, s Space) (Color, error) {
	var total float64
	for _, wc := range colors {
		if wc.Weight < 0 || !isFinite(wc.Weight) {
			return Color{}, errInvalidWeight
		}
		total += wc.Weight
	}
	if total <= 0 {
		return Color{}, errInvalidWeight
	}

	hueIdx, hasHue := s.HueIndex()
	n := s.Channels()

	res := Color{Space: s}
	var hx, hy float64
	for _, wc := range colors {
		if wc.Weight == 0 {
			continue
		}
		w := wc.Weight / total
		c := wc.Color.To(s)
		for i := 0; i < n; i++ {
			if hasHue && i == hueIdx {
				rad := c.Values[i] * math.Pi / 180
				hx += w * math.Cos(rad)
				hy += w * math.Sin(rad)
				continue
			}
			res.Values[i] += w * c.Values[i]
		}
		res.Alpha += w * wc.Color.Alpha
	}
	if hasHue {
		res.Values[hueIdx] = wrapHue(math.Atan2(hy, hx) * 180 / math.Pi)
	}
	return res, nil
}

// Lerp mixes c0 and c1 in the color space s, with weights 1-t and t.
func Lerp(c0, c1 Color, t float64, s Space) Color {
	t = clamp(t, 0, 1)
	res, err := Mix([]Weighted{{c0, 1 - t}, {c1, t}}, s)
	if err != nil {
		// unreachable, since the weights sum to 1
		panic(err)
	}
	return res
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

var errInvalidWeight = errors.New("color mix weights must be non-negative with positive sum")
