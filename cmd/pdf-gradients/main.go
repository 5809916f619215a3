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

// Pdf-gradients renders a scene of gradient-filled rectangles into a PDF
// file.
//
// Usage:
//
//	pdf-gradients [flags] [-o out.pdf]
//
// The scene is read from the YAML or JSON file given by -scene.  Without -scene, a
// built-in demo scene is used which shows every kind of gradient.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfpaint"
	"seehuhn.de/go/pdfpaint/logging"
	"seehuhn.de/go/pdfpaint/pdf"
)

//go:embed demo.json
var demoScene []byte

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdf-gradients:", err)
		os.Exit(1)
	}
}

func run() error {
	outName := flag.String("o", "-", "output file (\"-\" for stdout)")
	sceneName := flag.String("scene", "", "YAML or JSON scene description")
	versionArg := flag.String("pdf-version", "1.7", "PDF version of the output")
	langArg := flag.String("lang", "", "document language, e.g. \"en-GB\"")
	title := flag.String("title", "", "document title")
	humanReadable := flag.Bool("human", false, "write uncompressed content streams")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logging.SetLogger(slog.New(handler))

	version, err := pdf.ParseVersion(*versionArg)
	if err != nil {
		return err
	}
	lang := language.Und
	if *langArg != "" {
		lang, err = language.Parse(*langArg)
		if err != nil {
			return fmt.Errorf("invalid language %q: %w", *langArg, err)
		}
	}

	sceneData := demoScene
	if *sceneName != "" {
		sceneData, err = os.ReadFile(*sceneName)
		if err != nil {
			return err
		}
	}
	s, err := parseScene(bytes.NewReader(sceneData))
	if err != nil {
		return err
	}

	var out io.Writer
	if *outName == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
		out = os.Stdout
	} else {
		fd, err := os.Create(*outName)
		if err != nil {
			return err
		}
		out = fd
	}

	meta, err := newMetadata(*title, lang, time.Now())
	if err != nil {
		return err
	}
	opt := &pdfpaint.Options{
		Version:       version,
		HumanReadable: *humanReadable,
		Lang:          lang,
		Metadata:      meta,
	}
	if version < pdf.V1_4 {
		// XMP metadata and the document language need PDF 1.4
		opt.Lang = language.Und
		opt.Metadata = nil
	}
	doc, err := pdfpaint.NewDocument(out, opt)
	if err != nil {
		return err
	}
	err = s.render(doc)
	if err != nil {
		return err
	}
	return doc.Close()
}

// producerInfo is the XMP namespace for PDF specific metadata.
type producerInfo struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

func newMetadata(title string, lang language.Tag, now time.Time) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if title != "" {
		dc.Title.Default = xmp.NewText(title)
		if lang != language.Und {
			dc.Title.Set(lang, title)
		}
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)
	info := &producerInfo{
		Producer: xmp.NewAgentName("seehuhn.de/go/pdfpaint/cmd/pdf-gradients"),
	}

	meta := xmp.NewPacket()
	err := meta.Set(dc, basic, info)
	if err != nil {
		return nil, err
	}
	return meta, nil
}
