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

// Usage records which color spaces are used by a content stream.
// The zero value is an empty set.
type Usage uint16

// Mark adds s to the set.
func (u *Usage) Mark(s Space) {
	*u |= 1 << s
}

// Has reports whether s is in the set.
func (u Usage) Has(s Space) bool {
	return u&(1<<s) != 0
}

// Merge adds all spaces of other to the set.
func (u *Usage) Merge(other Usage) {
	*u |= other
}

// Spaces returns the spaces in the set, in the order of [AllSpaces].
func (u Usage) Spaces() []Space {
	var res []Space
	for _, s := range AllSpaces {
		if u.Has(s) {
			res = append(res, s)
		}
	}
	return res
}
