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

// Package logging holds the package-level logger used by pdfpaint.
//
// By default, all log output is discarded.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger sets the logger used for debug output.
// Pass nil to disable logging.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output to stderr:
//
//	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, opts)))
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		sl = newDiscardLogger()
	}
	logger.Store(sl)
}

// Logger returns the package-level logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.CompareAndSwap(nil, l)
		l = logger.Load()
	}
	return l
}
