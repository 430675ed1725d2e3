// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"errors"

	"gopkg.in/check.v1"
)

func (s *S) TestReadID(c *check.C) {
	for _, t := range []struct {
		name   string
		naming Naming
		want   ID
	}{
		{name: "read_5", naming: Standard, want: 5},
		{name: "42", naming: Standard, want: 42},
		{name: "m1/2/ccs", naming: Standard, want: 1},
		{name: "sim_12_3", naming: Standard, want: 12},
		{name: "sim_12_3", naming: PBSIM, want: 3},
		{name: "S1_42", naming: PBSIM, want: 42},
		{name: "S10_007", naming: PBSIM, want: 7},
	} {
		got, err := t.naming.ReadID(t.name)
		c.Check(err, check.Equals, nil, check.Commentf("%v %q", t.naming, t.name))
		c.Check(got, check.Equals, t.want, check.Commentf("%v %q", t.naming, t.name))
	}
}

func (s *S) TestReadIDError(c *check.C) {
	for _, t := range []struct {
		name   string
		naming Naming
	}{
		{name: "read", naming: Standard},
		{name: "", naming: Standard},
		{name: "read_5", naming: PBSIM},
		{name: "read_99999999999999999999999", naming: Standard},
	} {
		_, err := t.naming.ReadID(t.name)
		c.Check(errors.Is(err, ErrNoReadID), check.Equals, true, check.Commentf("%v %q: %v", t.naming, t.name, err))
	}

	_, err := Naming(2).ReadID("read_5")
	c.Check(err, check.ErrorMatches, `unknown read naming: Naming\(2\)`)
}

func (s *S) TestNamingString(c *check.C) {
	c.Check(Standard.String(), check.Equals, "standard")
	c.Check(PBSIM.String(), check.Equals, "pbsim")
	c.Check(Naming(-1).String(), check.Equals, "Naming(-1)")
}
