// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Open opens the named file for reading. Files compressed with
// bgzip are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	br := bufio.NewReader(f)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		f.Close()
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if !bytes.Equal(magic, gzipMagic) {
		return &file{Reader: br, f: f}, nil
	}

	// A single decompressor keeps the pass single threaded.
	bg, err := bgzf.NewReader(br, 1)
	if err != nil {
		f.Close()
		return nil, &FormatError{Path: path, Err: fmt.Errorf("%w: %v", ErrNotBGZF, err)}
	}
	return &file{Reader: bg, f: f, bg: bg}, nil
}

type file struct {
	io.Reader
	f  *os.File
	bg *bgzf.Reader
}

func (f *file) Close() error {
	if f.bg != nil {
		f.bg.Close()
	}
	return f.f.Close()
}

// pathReader labels read failures with the path being read.
type pathReader struct {
	r    io.Reader
	path string
}

func (r pathReader) Read(b []byte) (int, error) {
	n, err := r.r.Read(b)
	if err != nil && err != io.EOF {
		err = &IOError{Op: "read", Path: r.path, Err: err}
	}
	return n, err
}

// pathWriter labels write failures with the path being written.
type pathWriter struct {
	w    io.Writer
	path string
}

func (w pathWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil {
		err = &IOError{Op: "write", Path: w.path, Err: err}
	}
	return n, err
}
