// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"errors"
	"fmt"
	"strings"
)

// Causes of a *FormatError, for use with errors.Is.
var (
	// ErrBadHeader is a FASTA header that is not a bare decimal number.
	ErrBadHeader = errors.New("fasta header is not a read number")

	// ErrNoReadID is a query name without the digit run required by
	// the read naming.
	ErrNoReadID = errors.New("no read number in query name")

	// ErrNoReference is a query line with no preceding reference line.
	ErrNoReference = errors.New("query line before any reference line")

	// ErrUnknownLine is a MAF line other than an a, s or # line.
	ErrUnknownLine = errors.New("unsupported line type")

	// ErrNotBGZF is gzip compressed input not written by bgzip.
	ErrNotBGZF = errors.New("gzip input is not BGZF")
)

// ArgumentError is returned when a run is requested with missing or
// invalid parameters.
type ArgumentError struct {
	// Missing holds the names of required parameters that were
	// not provided.
	Missing []string
	Err     error
}

func (e *ArgumentError) Error() string {
	switch {
	case len(e.Missing) != 0 && e.Err != nil:
		return fmt.Sprintf("invalid argument: missing %s: %v", strings.Join(e.Missing, ", "), e.Err)
	case len(e.Missing) != 0:
		return fmt.Sprintf("invalid argument: missing %s", strings.Join(e.Missing, ", "))
	case e.Err != nil:
		return fmt.Sprintf("invalid argument: %v", e.Err)
	default:
		return "invalid argument"
	}
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// IOError is returned when a file cannot be opened, created, read,
// written or closed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError is returned when a FASTA or MAF record cannot be
// interpreted. Line is zero when the position is not known.
type FormatError struct {
	Path string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "input"
	}
	if e.Line == 0 {
		return fmt.Sprintf("malformed %s: %v", path, e.Err)
	}
	return fmt.Sprintf("malformed %s line %d: %v", path, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
