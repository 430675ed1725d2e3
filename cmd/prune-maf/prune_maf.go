// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prune-maf outputs a MAF file containing only the alignments of the
// corrected long reads present in a FASTA file. Alignments of reads
// absent from the FASTA file are written to a separate junk file.
//
// The FASTA headers must be bare read numbers, e.g. ">42". The read
// number of a MAF query is taken from the first run of digits in its
// name, or the second run if -p is given for pbsim reads, e.g. S1_42.
//
// Each flag must be given separately, with its value as the next
// argument, e.g. -p -f clr.fa. Joined values such as -fclr.fa and
// grouped flags such as -pf clr.fa are not accepted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kortschak/prunemaf"
)

const (
	help  = "Outputs MAF file such that it contains only the corrected long reads (cLR) reads present in the inputted FASTA file."
	usage = "Usage: %s [-h help and usage] [-f cLR FASTA file path] [-m maf file path] [-o output prefix] [-p Pbsim reads]\n"
)

// Exit statuses.
const (
	success = 0
	failure = 1
	badArgs = 2
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

func run(name string, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stdout, usage, name)
		return badArgs
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	var (
		fasta   = fs.String("f", "", "cLR FASTA file path (required)")
		maf     = fs.String("m", "", "MAF file path (required)")
		prefix  = fs.String("o", "", "output path prefix (required)")
		pbsim   = fs.Bool("p", false, "reads are named by pbsim")
		errFile = fs.String("err", "", "log file name (default to stderr)")
		verbose = fs.Bool("v", false, "log debug messages")
	)
	err := fs.Parse(args)
	if err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(stdout, help)
			fmt.Fprintf(stdout, usage, name)
			fs.SetOutput(stdout)
			fs.PrintDefaults()
			return success
		}
		fmt.Fprintln(stdout, "Error: unable to read command line arguments.")
		return badArgs
	}

	cfg := prunemaf.Config{FASTA: *fasta, MAF: *maf, Prefix: *prefix}
	if *pbsim {
		cfg.Naming = prunemaf.PBSIM
	}
	incomplete := false
	if cfg.FASTA == "" {
		fmt.Fprintln(stdout, "Please provide the path for the FASTA file.")
		incomplete = true
	}
	if cfg.MAF == "" {
		fmt.Fprintln(stdout, "Please provide the path for the MAF file.")
		incomplete = true
	}
	if cfg.Prefix == "" {
		fmt.Fprintln(stdout, "Please provide the output path prefix.")
		incomplete = true
	}
	if incomplete {
		fmt.Fprintf(stdout, usage, name)
		return badArgs
	}

	logOut := stderr
	if *errFile != "" {
		f, err := os.Create(*errFile)
		if err != nil {
			fmt.Fprintf(stderr, "failed to create log file: %v\n", err)
			return failure
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		Prefix:          "prune-maf",
		ReportTimestamp: true,
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if fs.NArg() != 0 {
		logger.Warn("ignoring extra arguments", "args", fs.Args())
	}

	_, err = prunemaf.Run(cfg, logger)
	if err != nil {
		var argErr *prunemaf.ArgumentError
		if errors.As(err, &argErr) {
			logger.Error("invalid argument", "err", err)
			fmt.Fprintf(stdout, usage, name)
			return badArgs
		}
		logger.Error("failed to prune alignments", "err", err)
		return failure
	}
	return success
}
