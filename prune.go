// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prunemaf filters MAF alignments of long reads to those
// reads that survived correction.
//
// The set of surviving reads is taken from the headers of the
// corrected read FASTA file. Each MAF alignment block pairs a
// reference line with a query line. Blocks whose query read is in
// the set are written to the kept output and all others are written
// to the junk output.
package prunemaf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kortschak/prunemaf/maf"
)

// separator is written at the start of each emitted block.
var separator = []byte("a\n")

// Counts holds the number of alignment blocks written by Prune.
type Counts struct {
	Kept int
	Junk int

	// References is the number of reference lines read.
	References int
}

type state int

const (
	idle state = iota
	haveReference
)

// pruner is the block reconstruction state for a MAF pass.
type pruner struct {
	kept, junk io.Writer

	whitelist Whitelist
	naming    Naming

	state state
	ref   []byte // valid when state is haveReference
	block []byte

	counts Counts
}

// Prune reads MAF alignments from r and writes each block to kept if
// its query read number, as found by the naming rule n, is in wl, and
// to junk otherwise. Each query line is written with the reference
// line most recently preceding it, after an "a" separator line. Input
// lines are written unaltered.
//
// A query line before any reference line, a query name without a read
// number and an unsupported line type are reported as a *FormatError.
func Prune(kept, junk io.Writer, r io.Reader, wl Whitelist, n Naming) (Counts, error) {
	if !n.valid() {
		return Counts{}, &ArgumentError{Err: fmt.Errorf("unknown read naming: %v", n)}
	}
	p := pruner{kept: kept, junk: junk, whitelist: wl, naming: n}
	mr := maf.NewReader(r)
	for {
		l, err := mr.Read()
		if err != nil {
			if err == io.EOF {
				return p.counts, nil
			}
			return p.counts, err
		}
		err = p.handle(l)
		if err != nil {
			return p.counts, err
		}
	}
}

func (p *pruner) handle(l maf.Line) error {
	switch l.Kind {
	case maf.Blank, maf.Comment, maf.Separator:
		return nil
	case maf.Reference:
		p.ref = append(p.ref[:0], l.Bytes...)
		p.state = haveReference
		p.counts.References++
		return nil
	case maf.Query:
		if p.state != haveReference {
			return &FormatError{Line: l.Number, Err: ErrNoReference}
		}
		id, err := p.naming.ReadID(l.Src)
		if err != nil {
			return &FormatError{Line: l.Number, Err: err}
		}
		return p.emit(id, l.Bytes)
	default:
		return &FormatError{Line: l.Number, Err: fmt.Errorf("%w: %q", ErrUnknownLine, bytes.Fields(l.Bytes)[0])}
	}
}

// emit writes a complete block for the query line to the destination
// for id in a single write.
func (p *pruner) emit(id ID, query []byte) error {
	p.block = append(p.block[:0], separator...)
	p.block = append(p.block, p.ref...)
	p.block = append(p.block, query...)

	keep := p.whitelist.Has(id)
	dst := p.junk
	if keep {
		dst = p.kept
	}
	_, err := dst.Write(p.block)
	if err != nil {
		return err
	}
	if keep {
		p.counts.Kept++
	} else {
		p.counts.Junk++
	}
	return nil
}
