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
	"sync"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
)

// Keyer is implemented by values which can be deduplicated.
// Values with the same key are considered equal.
type Keyer interface {
	Key() string
}

// Registry deduplicates values by their keys, and assigns each distinct
// value a small integer.  Registry is safe for concurrent use.
// The zero value is an empty registry, ready to use.
type Registry[T Keyer] struct {
	mu    sync.Mutex
	index map[string]int
	items []T
}

// Insert adds item to the registry, unless an equal item is already
// present.  The index of the item is returned.
func (r *Registry[T]) Insert(item T) int {
	key := item.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.index[key]; ok {
		return idx
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	idx := len(r.items)
	r.index[key] = idx
	r.items = append(r.items, item)
	return idx
}

// Items returns the registered values, in the order of their indices.
func (r *Registry[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

// Len returns the number of distinct values in the registry.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Resources collects the gradients, graphics states and color spaces
// used by one content stream.
type Resources struct {
	Gradients  Registry[GradientDescriptor]
	ExtGStates Registry[ExtGState]

	mu     sync.Mutex
	colors color.Usage
}

// Collector gives access to all resource sets of a document.
type Collector interface {
	// Traverse calls yield for every resource set.
	Traverse(yield func(*Resources))
}

// MarkColor records that the color space s is used.  Spaces with a hue
// component are recorded as the space they are written in.
func (r *Resources) MarkColor(s color.Space) {
	r.mu.Lock()
	r.colors.Mark(s.Output())
	r.mu.Unlock()
}

// Colors returns the set of color spaces used.
func (r *Resources) Colors() color.Usage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.colors
}

// RegisterGradient records the use of g in the given frame, and returns
// the index used for the resource name "Gr<n>".
func (r *Resources) RegisterGradient(g gradient.Gradient, frame Frame, onText bool, pageSize vec.Vec2) int {
	d := NewGradientDescriptor(g, frame, onText, pageSize)
	r.markGradient(d)
	return r.Gradients.Insert(d)
}

// RegisterExtGState records the use of gs, and returns the index used for
// the resource name "Gs<n>".
func (r *Resources) RegisterExtGState(gs ExtGState) int {
	if gs.SoftMask != nil {
		r.MarkColor(color.D65Gray)
		r.markGradient(gs.SoftMask.Gradient)
	}
	return r.ExtGStates.Insert(gs)
}

func (r *Resources) markGradient(d GradientDescriptor) {
	r.MarkColor(d.Gradient.Common().Space)
	if d.IsTransparent() {
		r.MarkColor(color.D65Gray)
	}
}
