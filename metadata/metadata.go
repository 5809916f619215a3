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

// Package metadata implements XMP metadata streams.
package metadata

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfpaint/pdf"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream for the document catalog.
type Stream struct {
	Data *xmp.Packet

	// Pretty selects indented XML output.
	Pretty bool
}

// Extract reads the metadata stream stored at ref in w.
func Extract(w *pdf.Writer, ref pdf.Reference) (*Stream, error) {
	obj, err := w.Get(ref)
	if err != nil {
		return nil, err
	}
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		return nil, fmt.Errorf("%s: expected stream but got %T", ref, obj)
	}

	body := stm.Data
	if stm.Dict["Filter"] == pdf.Name("FlateDecode") {
		body, err = pdf.Inflate(body)
		if err != nil {
			return nil, err
		}
	}

	packet, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Embed adds the XMP metadata stream to the PDF file.
// This implements the [pdf.Embedder] interface.
func (s *Stream) Embed(rm *pdf.ResourceManager) (pdf.Object, error) {
	w := rm.Out
	if err := pdf.CheckVersion(w, "XMP metadata stream", pdf.V1_4); err != nil {
		return nil, err
	}
	ref := w.Alloc()

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	body, err := w.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return nil, err
	}

	err = s.Data.Write(body, &xmp.PacketOptions{Pretty: s.Pretty})
	if err != nil {
		return nil, err
	}

	err = body.Close()
	if err != nil {
		return nil, err
	}

	return ref, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Data.Equal(other.Data)
}
