// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Config holds the parameters for a pruning run.
type Config struct {
	FASTA  string // corrected read FASTA file
	MAF    string // alignment file to prune
	Prefix string // output path prefix
	Naming Naming
}

// KeptPath returns the path of the output for retained alignments.
func (c Config) KeptPath() string { return c.Prefix + ".maf" }

// JunkPath returns the path of the output for discarded alignments.
func (c Config) JunkPath() string { return c.Prefix + "_junk.maf" }

// Validate returns an *ArgumentError if c is not a complete and
// usable configuration.
func (c Config) Validate() error {
	var missing []string
	if c.FASTA == "" {
		missing = append(missing, "FASTA file")
	}
	if c.MAF == "" {
		missing = append(missing, "MAF file")
	}
	if c.Prefix == "" {
		missing = append(missing, "output prefix")
	}
	var err error
	switch {
	case !c.Naming.valid():
		err = fmt.Errorf("unknown read naming: %v", c.Naming)
	case c.MAF != "" && c.Prefix != "" && (samePath(c.MAF, c.KeptPath()) || samePath(c.MAF, c.JunkPath())):
		err = fmt.Errorf("output prefix %q would overwrite MAF input %q", c.Prefix, c.MAF)
	}
	if missing != nil || err != nil {
		return &ArgumentError{Missing: missing, Err: err}
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// Run builds the read whitelist from cfg.FASTA and prunes cfg.MAF into
// the kept and junk outputs named by cfg. Existing outputs are
// overwritten. Outputs are not removed if the run fails. Progress is
// logged to logger if it is not nil.
func Run(cfg Config, logger *log.Logger) (c Counts, err error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	err = cfg.Validate()
	if err != nil {
		return c, err
	}

	logger.Info("building read whitelist", "fasta", cfg.FASTA)
	wl, err := whitelistFrom(cfg.FASTA)
	if err != nil {
		return c, err
	}
	logger.Info("built read whitelist", "reads", wl.Len())

	in, err := Open(cfg.MAF)
	if err != nil {
		return c, err
	}
	defer in.Close()

	kept, err := create(cfg.KeptPath())
	if err != nil {
		return c, err
	}
	defer closeOutput(kept, &err)
	junk, err := create(cfg.JunkPath())
	if err != nil {
		return c, err
	}
	defer closeOutput(junk, &err)

	logger.Info("pruning alignments", "maf", cfg.MAF, "naming", cfg.Naming)
	c, err = Prune(kept, junk, pathReader{r: in, path: cfg.MAF}, wl, cfg.Naming)
	if err != nil {
		setPath(err, cfg.MAF)
		return c, err
	}
	logger.Debug("wrote alignments", "kept", kept.path, "junk", junk.path)
	logger.Info("pruned alignments", "kept", c.Kept, "junk", c.Junk, "references", c.References)
	return c, nil
}

func whitelistFrom(path string) (Whitelist, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	wl, err := ReadWhitelist(pathReader{r: f, path: path})
	if err != nil {
		setPath(err, path)
		return nil, err
	}
	return wl, nil
}

// setPath records the path in a *FormatError lacking one.
func setPath(err error, path string) {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
}

// output is a buffered output file.
type output struct {
	*bufio.Writer
	f    *os.File
	path string
}

func create(path string) (*output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	return &output{Writer: bufio.NewWriter(pathWriter{w: f, path: path}), f: f, path: path}, nil
}

// Close flushes and closes the output file.
func (o *output) Close() error {
	err := o.Flush()
	cerr := o.f.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return &IOError{Op: "close", Path: o.path, Err: cerr}
	}
	return nil
}

// closeOutput closes o, setting *err to any error if it is nil.
func closeOutput(o *output, err *error) {
	cerr := o.Close()
	if *err == nil {
		*err = cerr
	}
}
