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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// HumanReadable makes [FilterCompress] a no-op, so that content streams
	// can be inspected with a text editor.
	HumanReadable bool
}

// Writer collects the objects of a PDF file in memory and writes the
// complete file, including the cross-reference table, when [Writer.Close]
// is called.
type Writer struct {
	// Version is the PDF version of the output file.
	Version Version

	opt     WriterOptions
	out     io.Writer
	objects map[Reference]Object
	nextRef Reference
	closed  bool
}

// NewWriter prepares a PDF file for writing to w.
// If opt is nil, default options are used.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	if ver < V1_0 || ver > V2_0 {
		return nil, errVersion
	}
	if opt == nil {
		opt = &WriterOptions{}
	}
	return &Writer{
		Version: ver,
		opt:     *opt,
		out:     w,
		objects: make(map[Reference]Object),
		nextRef: 1,
	}, nil
}

// HumanReadable reports whether the HumanReadable option was set.
func (w *Writer) HumanReadable() bool {
	return w.opt.HumanReadable
}

// Alloc allocates an object number for an indirect object.
func (w *Writer) Alloc() Reference {
	ref := w.nextRef
	w.nextRef++
	return ref
}

// Put stores obj as the value of the indirect object ref.
// Every reference can be used only once.
func (w *Writer) Put(ref Reference, obj Object) error {
	if w.closed {
		return errClosed
	}
	if ref == 0 || ref >= w.nextRef {
		return fmt.Errorf("%s: %w", ref, errInvalidReference)
	}
	if obj == nil {
		return fmt.Errorf("%s: missing object", ref)
	}
	if _, seen := w.objects[ref]; seen {
		return fmt.Errorf("%s: %w", ref, errDuplicate)
	}
	w.objects[ref] = obj
	return nil
}

// OpenStream adds a PDF stream object with the given dictionary.
// The stream data, before encoding, is written to the returned
// io.WriteCloser.  The object is stored when the writer is closed.
//
// The filters are listed in the stream dictionary in the given order, i.e.
// filters[0] is the first filter a reader needs to apply when decoding.
func (w *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if w.closed {
		return nil, errClosed
	}

	stmDict := make(Dict, len(dict)+2)
	for key, val := range dict {
		stmDict[key] = val
	}

	var names, parms Array
	var active []Filter
	for _, f := range filters {
		if _, isCompress := f.(FilterCompress); isCompress && w.opt.HumanReadable {
			continue
		}
		name, parm := f.Info()
		names = append(names, name)
		if parm != nil {
			parms = append(parms, parm)
		} else {
			parms = append(parms, nil)
		}
		active = append(active, f)
	}
	switch len(names) {
	case 0:
		// no filters
	case 1:
		stmDict["Filter"] = names[0]
		if parms[0] != nil {
			stmDict["DecodeParms"] = parms[0]
		}
	default:
		stmDict["Filter"] = names
		if hasNonNil(parms) {
			stmDict["DecodeParms"] = parms
		}
	}

	sw := &streamWriter{
		w:    w,
		ref:  ref,
		dict: stmDict,
	}
	var res io.WriteCloser = sw
	for _, f := range active {
		var err error
		res, err = f.Encode(res)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func hasNonNil(a Array) bool {
	for _, obj := range a {
		if obj != nil {
			return true
		}
	}
	return false
}

type streamWriter struct {
	w    *Writer
	ref  Reference
	dict Dict
	buf  bytes.Buffer
}

func (sw *streamWriter) Write(p []byte) (int, error) {
	return sw.buf.Write(p)
}

func (sw *streamWriter) Close() error {
	return sw.w.Put(sw.ref, &Stream{Dict: sw.dict, Data: sw.buf.Bytes()})
}

// Get returns the object stored for ref.  This is used to inspect the
// objects of a file before it is closed.
func (w *Writer) Get(ref Reference) (Object, error) {
	obj, ok := w.objects[ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, errMissing)
	}
	return obj, nil
}

// GetDict is like [Writer.Get], but only returns dictionaries.
// For stream objects, the stream dictionary is returned.
func (w *Writer) GetDict(ref Reference) (Dict, error) {
	obj, err := w.Get(ref)
	if err != nil {
		return nil, err
	}
	switch obj := obj.(type) {
	case Dict:
		return obj, nil
	case *Stream:
		return obj.Dict, nil
	default:
		return nil, fmt.Errorf("%s: expected Dict but got %T", ref, obj)
	}
}

// NumObjects returns the number of objects stored so far.
func (w *Writer) NumObjects() int {
	return len(w.objects)
}

// Close writes the PDF file to the underlying io.Writer, using root as the
// document catalog.  If the underlying io.Writer implements io.Closer, it is
// closed as well.
func (w *Writer) Close(root Reference) error {
	if w.closed {
		return errClosed
	}
	if _, ok := w.objects[root]; !ok {
		return errors.New("missing document catalog")
	}
	w.closed = true

	out := &posWriter{w: bufio.NewWriter(w.out)}
	_, err := fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", w.Version)
	if err != nil {
		return err
	}

	offsets := make([]int64, w.nextRef)
	for ref := Reference(1); ref < w.nextRef; ref++ {
		obj, ok := w.objects[ref]
		if !ok {
			// allocated but never written
			continue
		}
		offsets[ref] = out.pos
		_, err = fmt.Fprintf(out, "%d 0 obj\n", uint32(ref))
		if err != nil {
			return err
		}
		err = obj.PDF(out)
		if err != nil {
			return fmt.Errorf("%s: %w", ref, err)
		}
		_, err = io.WriteString(out, "\nendobj\n")
		if err != nil {
			return err
		}
	}

	xrefPos := out.pos
	_, err = fmt.Fprintf(out, "xref\n0 %d\n0000000000 65535 f\r\n", w.nextRef)
	if err != nil {
		return err
	}
	for ref := Reference(1); ref < w.nextRef; ref++ {
		if _, ok := w.objects[ref]; ok {
			_, err = fmt.Fprintf(out, "%010d 00000 n\r\n", offsets[ref])
		} else {
			_, err = io.WriteString(out, "0000000000 00000 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(w.nextRef),
		"Root": root,
	}
	_, err = io.WriteString(out, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return err
	}

	err = out.w.Flush()
	if err != nil {
		return err
	}
	if closer, ok := w.out.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type posWriter struct {
	w   *bufio.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

var (
	errClosed    = errors.New("PDF writer is already closed")
	errDuplicate = errors.New("object already written")
	errMissing   = errors.New("object not found")
)
