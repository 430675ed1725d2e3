// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ID is a read number.
type ID int

// Whitelist is a set of retained read numbers.
type Whitelist map[ID]struct{}

// Has returns whether id is in the whitelist.
func (w Whitelist) Has(id ID) bool {
	_, ok := w[id]
	return ok
}

// Len returns the number of reads in the whitelist.
func (w Whitelist) Len() int { return len(w) }

// ReadWhitelist returns the set of read numbers named by the FASTA
// headers in r. Each header must be a bare decimal read number, as
// written by the correction step, e.g. ">42". Sequence data and any
// lines before the first header are ignored.
func ReadWhitelist(r io.Reader) (Whitelist, error) {
	w := make(Whitelist)
	er := &errReader{r: r}
	br := bufio.NewReader(er)
	err := skipToHeader(br)
	if err != nil {
		return nil, err
	}
	sc := seqio.NewScanner(fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNAgapped)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		id, err := headerID(s)
		if err != nil {
			return nil, &FormatError{Err: err}
		}
		w[id] = struct{}{}
	}
	if err := sc.Error(); err != nil {
		if er.err != nil {
			return nil, er.err
		}
		return nil, &FormatError{Err: err}
	}
	return w, nil
}

// skipToHeader discards lines from r until the next line starts
// with '>' or the input is exhausted.
func skipToHeader(r *bufio.Reader) error {
	for {
		b, err := r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if b[0] == '>' {
			return nil
		}
		for {
			_, err = r.ReadSlice('\n')
			if err != bufio.ErrBufferFull {
				break
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// errReader records the first non-EOF error from its underlying
// reader so that read failures can be distinguished from parse
// failures reported by the FASTA reader.
type errReader struct {
	r   io.Reader
	err error
}

func (r *errReader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

func headerID(s *linear.Seq) (ID, error) {
	if s.Desc != "" {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, s.ID+" "+s.Desc)
	}
	if s.ID == "" || s.ID[0] < '0' || '9' < s.ID[0] {
		// Atoi accepts a leading sign.
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, s.ID)
	}
	id, err := strconv.Atoi(s.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	return ID(id), nil
}
