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
	"math"
	"sync"

	"seehuhn.de/go/pdfpaint/logging"
)

// MeshCache stores tessellated conic gradients.
// A MeshCache is safe for concurrent use.  The zero value is an empty
// cache, ready to use.
type MeshCache struct {
	mu sync.Mutex
	m  map[meshKey][]byte
}

type meshKey struct {
	gradient string
	aspect   uint64
}

// Get returns the result of [Tessellate] for g and aspect.  The mesh is
// computed on the first request and reused afterwards.  The returned
// slice must not be modified.
//
// Concurrent requests for the same mesh may compute it more than once;
// all callers then receive the first stored result.
func (c *MeshCache) Get(g *Conic, aspect float64) []byte {
	key := meshKey{gradient: g.Key(), aspect: math.Float64bits(aspect)}
	if aspect == 0 {
		key.aspect = 0
	}

	c.mu.Lock()
	data, ok := c.m[key]
	c.mu.Unlock()
	if ok {
		logging.Logger().Debug("mesh cache hit", "bytes", len(data))
		return data
	}

	data = Tessellate(g, aspect)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.m[key]; ok {
		return prev
	}
	if c.m == nil {
		c.m = make(map[meshKey][]byte)
	}
	c.m[key] = data
	logging.Logger().Debug("mesh cache miss",
		"stops", len(g.Stops),
		"space", g.Space.String(),
		"bytes", len(data))
	return data
}

// Len returns the number of cached meshes.
func (c *MeshCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
