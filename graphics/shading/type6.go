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

package shading

import (
	"encoding/binary"
	"errors"
	"fmt"

	"seehuhn.de/go/pdfpaint/pdf"
)

// The Coons patch meshes written by this package use a fixed layout.
const (
	BitsPerCoordinate = 16
	BitsPerComponent  = 16
	BitsPerFlag       = 8
)

// Type6 represents a type 6 (Coons patch mesh) shading.
//
// The mesh data is stored in encoded form: a sequence of patches as
// written by [AppendPatch], compressed with [pdf.Deflate].
type Type6 struct {
	// ColorSpace is the PDF representation of the color space.
	ColorSpace pdf.Object

	// Ranges gives the range of each color component, in the form
	// [min0, max0, min1, max1, ...].  Quantized color values are mapped
	// to these ranges.
	Ranges []float64

	// Data is the deflate-compressed patch data.
	Data []byte

	AntiAlias bool
}

// ShadingType returns 6.
// This implements the [Shading] interface.
func (s *Type6) ShadingType() int {
	return 6
}

// Decode returns the decode array of the shading: coordinates are
// mapped to the unit square, color values to the color ranges.
func (s *Type6) Decode() []float64 {
	res := make([]float64, 0, 4+len(s.Ranges))
	res = append(res, 0, 1, 0, 1)
	return append(res, s.Ranges...)
}

// Embed writes the shading stream to a PDF file.
// This implements the [Shading] interface.
func (s *Type6) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	if err := pdf.CheckVersion(rm.Out, "Type 6 shadings", pdf.V1_3); err != nil {
		return nil, err
	}
	if s.ColorSpace == nil {
		return nil, errors.New("missing ColorSpace")
	}
	if len(s.Ranges) == 0 || len(s.Ranges)%2 != 0 {
		return nil, fmt.Errorf("invalid color ranges %v", s.Ranges)
	}

	dict := pdf.Dict{
		"ShadingType":       pdf.Integer(6),
		"ColorSpace":        s.ColorSpace,
		"BitsPerCoordinate": pdf.Integer(BitsPerCoordinate),
		"BitsPerComponent":  pdf.Integer(BitsPerComponent),
		"BitsPerFlag":       pdf.Integer(BitsPerFlag),
		"Decode":            pdf.ArrayFromFloats(s.Decode()),
		"Filter":            pdf.Name("FlateDecode"),
	}
	if s.AntiAlias {
		dict["AntiAlias"] = pdf.Boolean(true)
	}

	ref := rm.Out.Alloc()
	err := rm.Out.Put(ref, &pdf.Stream{Dict: dict, Data: s.Data})
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// Patch is a Coons patch with quantized coordinates and colors.
type Patch struct {
	// Points holds the 12 control points of the boundary curves,
	// as quantized (x, y) pairs.
	Points [12][2]uint16

	// Colors holds the quantized color values at the four corners.
	Colors [4][]uint16
}

// PatchSize returns the number of bytes used for one patch with the given
// number of color components.
func PatchSize(channels int) int {
	return 1 + 12*2*2 + 4*channels*2
}

// AppendPatch appends the encoding of a free-standing patch (edge flag 0)
// to buf.  All values are written as big-endian 16-bit integers.
func AppendPatch(buf []byte, p *Patch) []byte {
	buf = append(buf, 0)
	for _, pt := range p.Points {
		buf = binary.BigEndian.AppendUint16(buf, pt[0])
		buf = binary.BigEndian.AppendUint16(buf, pt[1])
	}
	for _, c := range p.Colors {
		for _, v := range c {
			buf = binary.BigEndian.AppendUint16(buf, v)
		}
	}
	return buf
}

// DecodePatches splits uncompressed mesh data into patches.
// Only free-standing patches (edge flag 0) are supported.
func DecodePatches(data []byte, channels int) ([]Patch, error) {
	size := PatchSize(channels)
	if len(data)%size != 0 {
		return nil, fmt.Errorf("mesh data length %d is not a multiple of %d",
			len(data), size)
	}

	res := make([]Patch, 0, len(data)/size)
	for len(data) > 0 {
		if flag := data[0]; flag != 0 {
			return nil, fmt.Errorf("patch %d: unsupported edge flag %d", len(res), flag)
		}
		pos := 1
		var p Patch
		for i := range p.Points {
			p.Points[i][0] = binary.BigEndian.Uint16(data[pos:])
			p.Points[i][1] = binary.BigEndian.Uint16(data[pos+2:])
			pos += 4
		}
		for i := range p.Colors {
			p.Colors[i] = make([]uint16, channels)
			for j := range p.Colors[i] {
				p.Colors[i][j] = binary.BigEndian.Uint16(data[pos:])
				pos += 2
			}
		}
		res = append(res, p)
		data = data[size:]
	}
	return res, nil
}
