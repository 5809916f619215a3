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
	"bytes"
	"compress/zlib"
	"io"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Info returns the filter name and the decode parameters, if any, for
	// use in a stream dictionary.
	Info() (Name, Dict)

	// Encode returns a writer which encodes data written to it and writes
	// the result to w.  Closing the returned writer must also close w.
	Encode(w io.WriteCloser) (io.WriteCloser, error)
}

// FilterFlate is the FlateDecode filter.
type FilterFlate struct{}

// Info implements the [Filter] interface.
func (FilterFlate) Info() (Name, Dict) {
	return "FlateDecode", nil
}

// Encode implements the [Filter] interface.
func (FilterFlate) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	return &zlibWriter{Writer: zw, w: w}, nil
}

// FilterCompress is replaced by [FilterFlate], unless the writer was
// created with the HumanReadable option, in which case the stream data is
// stored uncompressed.
type FilterCompress struct{}

// Info implements the [Filter] interface.
func (FilterCompress) Info() (Name, Dict) {
	return FilterFlate{}.Info()
}

// Encode implements the [Filter] interface.
func (FilterCompress) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	return FilterFlate{}.Encode(w)
}

type zlibWriter struct {
	*zlib.Writer
	w io.WriteCloser
}

func (w *zlibWriter) Close() error {
	err := w.Writer.Close()
	if err != nil {
		return err
	}
	return w.w.Close()
}

// Deflate compresses data using the zlib format expected by the FlateDecode
// filter.
func Deflate(data []byte) []byte {
	buf := &bytes.Buffer{}
	zw, _ := zlib.NewWriterLevel(buf, zlib.BestCompression)
	// Writing to a bytes.Buffer cannot fail.
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

// Inflate reverses [Deflate].
func Inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
