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

package pdf

import (
	"errors"
	"fmt"
)

// Embedder represents a PDF resource (a function, a color space, a shading,
// etc.) which has not yet been associated with a specific PDF file.
//
// Types used as an Embedder must be comparable, so that the value can be
// used as a key in a map.  Pointer types are compared by identity.
type Embedder interface {
	// Embed converts the Go representation of the object into a PDF object.
	// If the object is written as an indirect object, the returned value
	// is the reference.
	Embed(rm *ResourceManager) (Object, error)
}

// ResourceManager helps to avoid duplicate resources in a PDF file.
// Each [Embedder] value is embedded only once; embedding an equal value
// again returns the PDF object from the first call.
type ResourceManager struct {
	Out *Writer

	embedded map[any]Object
	isClosed bool
}

// NewResourceManager creates a new ResourceManager which writes to w.
func NewResourceManager(w *Writer) *ResourceManager {
	return &ResourceManager{
		Out:      w,
		embedded: make(map[any]Object),
	}
}

// Embed embeds a resource in the PDF file.
//
// If the resource is already present in the file, the existing PDF object is
// returned.
func (rm *ResourceManager) Embed(r Embedder) (Object, error) {
	if existing, ok := rm.embedded[r]; ok {
		return existing, nil
	}
	if rm.isClosed {
		return nil, errRMClosed
	}

	val, err := r.Embed(rm)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resource: %w", err)
	}
	rm.embedded[r] = val
	return val, nil
}

// Close marks the resource manager as closed.
// After Close has been called, no new resources can be embedded.
func (rm *ResourceManager) Close() error {
	rm.isClosed = true
	return nil
}

var errRMClosed = errors.New("resource manager is already closed")
