// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/check.v1"
)

func (s *S) TestReadWhitelist(c *check.C) {
	for _, t := range []struct {
		fasta string
		want  Whitelist
	}{
		{
			fasta: "",
			want:  Whitelist{},
		},
		{
			fasta: ">5\n>7\n",
			want:  Whitelist{5: {}, 7: {}},
		},
		{
			fasta: ">5\nACGT\nACGT\n>7\nTTGA\n>5\nAC\n",
			want:  Whitelist{5: {}, 7: {}},
		},
		{
			fasta: ">0\nNNNN\n\n>12\n",
			want:  Whitelist{0: {}, 12: {}},
		},
	} {
		got, err := ReadWhitelist(strings.NewReader(t.fasta))
		c.Check(err, check.Equals, nil, check.Commentf("fasta %q", t.fasta))
		c.Check(got, check.DeepEquals, t.want, check.Commentf("fasta %q", t.fasta))
	}
}

func (s *S) TestWhitelistHas(c *check.C) {
	w, err := ReadWhitelist(strings.NewReader(">5\n>7\n>5\n"))
	c.Assert(err, check.Equals, nil)
	c.Check(w.Len(), check.Equals, 2)
	c.Check(w.Has(5), check.Equals, true)
	c.Check(w.Has(7), check.Equals, true)
	c.Check(w.Has(6), check.Equals, false)
}

func (s *S) TestReadWhitelistBadHeader(c *check.C) {
	for _, fasta := range []string{
		">read_5\nACGT\n",
		">5 corrected\nACGT\n",
		">-5\n",
		">+5\n",
		">\nACGT\n",
		">5\n>x\n",
	} {
		_, err := ReadWhitelist(strings.NewReader(fasta))
		var fe *FormatError
		c.Check(errors.As(err, &fe), check.Equals, true, check.Commentf("fasta %q: %v", fasta, err))
		c.Check(errors.Is(err, ErrBadHeader), check.Equals, true, check.Commentf("fasta %q: %v", fasta, err))
	}
}

func (s *S) TestReadWhitelistLeadingLines(c *check.C) {
	long := strings.Repeat("ACGT", 1<<14)
	for _, fasta := range []string{
		"ACGT\n>5\n",
		";comment\n>5\nACGT\n",
		"\n\n" + long + "\n>5\n",
		"ACGT\n\n;comment\n>5",
	} {
		got, err := ReadWhitelist(strings.NewReader(fasta))
		c.Check(err, check.Equals, nil, check.Commentf("fasta %.20q", fasta))
		c.Check(got, check.DeepEquals, Whitelist{5: {}}, check.Commentf("fasta %.20q", fasta))
	}

	got, err := ReadWhitelist(strings.NewReader("ACGT\nACGT"))
	c.Check(err, check.Equals, nil)
	c.Check(got, check.DeepEquals, Whitelist{})
}

func (s *S) TestReadWhitelistReadErrorBeforeHeader(c *check.C) {
	_, err := ReadWhitelist(io.MultiReader(strings.NewReader("ACGT"), failReader{}))
	c.Check(err, check.Equals, errFail)
}

type failReader struct{}

var errFail = errors.New("device on fire")

func (failReader) Read([]byte) (int, error) { return 0, errFail }

func (s *S) TestReadWhitelistReadError(c *check.C) {
	_, err := ReadWhitelist(io.MultiReader(strings.NewReader(">5\nAC"), failReader{}))
	c.Check(err, check.Equals, errFail)
}
