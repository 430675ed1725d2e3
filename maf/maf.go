// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maf provides line-oriented reading of MAF alignment files as
// written by long read simulators and aligners that pair a reference
// sequence line with a query sequence line.
package maf

import (
	"bufio"
	"bytes"
	"io"
)

// Kind is the class of a MAF line.
type Kind int

const (
	Blank     Kind = iota // empty or whitespace only
	Comment               // header or comment line starting with '#'
	Separator             // alignment block line, 'a', or any single token line
	Reference             // 's' line with the source name "ref"
	Query                 // 's' line with any other source name
	Other                 // any other multi-token line, e.g. 'i', 'e' or 'q'
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Separator:
		return "separator"
	case Reference:
		return "reference"
	case Query:
		return "query"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// RefName is the source name that marks a reference sequence line.
const RefName = "ref"

// Line is a single line of a MAF stream.
type Line struct {
	Kind Kind

	// Number is the 1-based line number in the stream.
	Number int

	// Src is the second whitespace delimited token of the line,
	// the source name for 's' lines. It is empty for lines with
	// fewer than two tokens.
	Src string

	// Bytes holds the verbatim line including its terminator. A
	// final line without a terminator has "\n" appended. Bytes is
	// only valid until the next call to Read.
	Bytes []byte
}

// Reader reads classified lines from a MAF stream.
type Reader struct {
	r    *bufio.Reader
	line int
	buf  []byte
}

// NewReader returns a new Reader reading from r. Lines may be of
// any length.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next line in the stream. At the end of the
// stream Read returns io.EOF.
func (r *Reader) Read() (Line, error) {
	r.buf = r.buf[:0]
	for {
		b, err := r.r.ReadSlice('\n')
		r.buf = append(r.buf, b...)
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			if err != io.EOF || len(r.buf) == 0 {
				return Line{}, err
			}
			r.buf = append(r.buf, '\n')
		}
		break
	}
	r.line++
	kind, src := classify(r.buf)
	return Line{Kind: kind, Number: r.line, Src: src, Bytes: r.buf}, nil
}

// classify returns the kind of the line b and its second token.
func classify(b []byte) (Kind, string) {
	t := bytes.TrimSpace(b)
	if len(t) == 0 {
		return Blank, ""
	}
	if t[0] == '#' {
		return Comment, ""
	}
	fields := bytes.Fields(t)
	if len(fields) < 2 {
		return Separator, ""
	}
	src := string(fields[1])
	switch string(fields[0]) {
	case "a":
		return Separator, src
	case "s":
		if src == RefName {
			return Reference, src
		}
		return Query, src
	default:
		return Other, src
	}
}
