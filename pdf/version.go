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
	"strconv"
)

// Version represents a version of PDF standard.
type Version int

// PDF versions supported by this library.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// ParseVersion parses a PDF version string like "1.7".
func ParseVersion(verString string) (Version, error) {
	switch verString {
	case "1.0":
		return V1_0, nil
	case "1.1":
		return V1_1, nil
	case "1.2":
		return V1_2, nil
	case "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "2.0":
		return V2_0, nil
	}
	return 0, errVersion
}

func (ver Version) String() string {
	if ver >= V1_0 && ver <= V1_7 {
		return "1." + strconv.Itoa(int(ver-V1_0))
	}
	if ver == V2_0 {
		return "2.0"
	}
	return "pdf.Version(" + strconv.Itoa(int(ver)) + ")"
}

// VersionError is returned when trying to use a feature in a PDF file which
// is not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("%s requires PDF version %s or newer", err.Operation, err.Earliest)
}

// CheckVersion checks whether the PDF file being written has version
// minVersion or later.  If the version is new enough, nil is returned.
// Otherwise a [VersionError] for the given operation is returned.
func CheckVersion(w *Writer, operation string, minVersion Version) error {
	if w.Version >= minVersion {
		return nil
	}
	return &VersionError{Operation: operation, Earliest: minVersion}
}

var (
	errVersion          = errors.New("unsupported PDF version")
	errInvalidReference = errors.New("invalid reference")
)
