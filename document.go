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
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfpaint/gradient"
	"seehuhn.de/go/pdfpaint/graphics/color"
	"seehuhn.de/go/pdfpaint/logging"
	"seehuhn.de/go/pdfpaint/metadata"
	"seehuhn.de/go/pdfpaint/pdf"
)

// Options control the generation of a PDF document.
// The zero value gives a PDF 1.7 file with compressed streams.
type Options struct {
	// Version is the PDF version of the output.  Gradients with
	// transparency need at least PDF 1.4.
	Version pdf.Version

	// HumanReadable disables compression of content streams.
	HumanReadable bool

	// Lang (optional) is the natural language of the document.
	Lang language.Tag

	// Metadata (optional) is stored as the document's XMP metadata.
	Metadata *xmp.Packet

	// Colors (optional) is the color space data to use.  This allows to
	// share the data between documents.
	Colors *color.Functions

	// Meshes (optional) caches tessellated conic gradients.  This allows
	// to share the cache between documents.
	Meshes *gradient.MeshCache
}

// Document is a PDF document under construction.
type Document struct {
	Out *pdf.Writer

	ctx    *Context
	opt    Options
	pages  []*Page
	closed bool
}

// NewDocument starts a new PDF document, which is written to w when the
// document is closed.  If opt is nil, default options are used.
func NewDocument(w io.Writer, opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}
	o := *opt
	if o.Version == 0 {
		o.Version = pdf.V1_7
	}

	out, err := pdf.NewWriter(w, o.Version, &pdf.WriterOptions{
		HumanReadable: o.HumanReadable,
	})
	if err != nil {
		return nil, err
	}

	if o.Colors == nil {
		o.Colors, err = color.NewFunctions()
		if err != nil {
			return nil, err
		}
	}

	ctx, err := NewContext(pdf.NewResourceManager(out), o.Colors, o.Meshes)
	if err != nil {
		return nil, err
	}

	return &Document{
		Out: out,
		ctx: ctx,
		opt: o,
	}, nil
}

// AddPage appends a new page with the given size to the document.
func (doc *Document) AddPage(width, height float64) *Page {
	p := newPage(width, height)
	doc.pages = append(doc.pages, p)
	return p
}

// Traverse calls yield for the resources of every page.
// This implements the [Collector] interface.
func (doc *Document) Traverse(yield func(*Resources)) {
	for _, p := range doc.pages {
		yield(p.Resources)
	}
}

// Context returns the context used to write the document's resources.
func (doc *Document) Context() *Context {
	return doc.ctx
}

// Close writes all resources and pages, and completes the PDF file.
func (doc *Document) Close() error {
	if doc.closed {
		return errClosed
	}
	doc.closed = true

	if len(doc.pages) == 0 {
		return errors.New("document has no pages")
	}

	err := doc.ctx.WriteGradients(doc)
	if err != nil {
		return fmt.Errorf("gradients: %w", err)
	}
	err = doc.ctx.WriteGraphicStates(doc)
	if err != nil {
		return fmt.Errorf("graphics states: %w", err)
	}

	out := doc.Out
	rm := doc.ctx.RM
	pagesRef := out.Alloc()
	kids := make(pdf.Array, 0, len(doc.pages))
	for i, p := range doc.pages {
		ref, err := doc.writePage(p, pagesRef)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		kids = append(kids, ref)
	}
	err = out.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if doc.opt.Lang != language.Und {
		if err := pdf.CheckVersion(out, "document language", pdf.V1_4); err != nil {
			return err
		}
		catalog["Lang"] = pdf.String(doc.opt.Lang.String())
	}
	if doc.opt.Metadata != nil {
		s := &metadata.Stream{Data: doc.opt.Metadata, Pretty: doc.opt.HumanReadable}
		ref, err := rm.Embed(s)
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}
	catalogRef := out.Alloc()
	err = out.Put(catalogRef, catalog)
	if err != nil {
		return err
	}

	err = rm.Close()
	if err != nil {
		return err
	}
	logging.Logger().Debug("closing document",
		"pages", len(doc.pages),
		"objects", out.NumObjects(),
		"version", out.Version.String())
	return out.Close(catalogRef)
}

func (doc *Document) writePage(p *Page, parent pdf.Reference) (pdf.Reference, error) {
	out := doc.Out

	body, err := p.Content.Bytes()
	if err != nil {
		return 0, err
	}
	contentRef := out.Alloc()
	stm, err := out.OpenStream(contentRef, nil, pdf.FilterCompress{})
	if err != nil {
		return 0, err
	}
	_, err = stm.Write(body)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}

	res, err := doc.ctx.ResourceDict(p.Resources)
	if err != nil {
		return 0, err
	}

	pageRef := out.Alloc()
	err = out.Put(pageRef, pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    parent,
		"MediaBox":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Number(p.Size.X), pdf.Number(p.Size.Y)},
		"Resources": res,
		"Contents":  contentRef,
	})
	if err != nil {
		return 0, err
	}
	return pageRef, nil
}

var errClosed = errors.New("document is already closed")
