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

import "math"

// Quadrant identifies one quarter of the full circle.
type Quadrant uint8

// The four quadrants, in counter-clockwise order starting at angle 0.
const (
	First Quadrant = iota + 1
	Second
	Third
	Fourth
)

// QuadrantOf returns the quadrant which contains the angle a, given in
// radians.  Angles are reduced modulo 2π first.
func QuadrantOf(a float64) Quadrant {
	deg := math.Mod(a*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg < 90:
		return First
	case deg < 180:
		return Second
	case deg < 270:
		return Third
	default:
		return Fourth
	}
}

// CorrectAspectRatio adjusts an angle for drawing into a frame with the
// given aspect ratio (width/height).  The gradient is described in the
// unit square, which is stretched to the frame afterwards; this function
// returns the angle in the unit square which appears as angle a after
// stretching.  The result is in the range [0, 2π).
func CorrectAspectRatio(a, aspect float64) float64 {
	if !(aspect > 0) || !isFinite(aspect) {
		aspect = 1
	}
	res := math.Atan2(math.Sin(a), math.Cos(a)*aspect)
	if res < 0 {
		res += 2 * math.Pi
	}
	if res >= 2*math.Pi {
		res = 0
	}
	return res
}
