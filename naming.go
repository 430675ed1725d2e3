// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prunemaf

import (
	"fmt"
	"regexp"
	"strconv"
)

// Naming specifies how a read number is found in a MAF query name.
type Naming int

const (
	// Standard takes the read number from the first run of
	// digits in the query name, e.g. read_5 is read 5.
	Standard Naming = iota

	// PBSIM takes the read number from the second run of
	// digits, matching pbsim names where the first run is the
	// reference index, e.g. S1_42 is read 42.
	PBSIM
)

func (n Naming) String() string {
	switch n {
	case Standard:
		return "standard"
	case PBSIM:
		return "pbsim"
	default:
		return fmt.Sprintf("Naming(%d)", int(n))
	}
}

func (n Naming) valid() bool { return n == Standard || n == PBSIM }

// index returns the digit run holding the read number.
func (n Naming) index() int {
	if n == PBSIM {
		return 1
	}
	return 0
}

var digits = regexp.MustCompile(`[0-9]+`)

// ReadID returns the read number encoded in the query name.
// The returned error wraps ErrNoReadID if the name does not have
// enough runs of digits.
func (n Naming) ReadID(name string) (ID, error) {
	if !n.valid() {
		return 0, fmt.Errorf("unknown read naming: %v", n)
	}
	i := n.index()
	runs := digits.FindAllString(name, i+1)
	if len(runs) <= i {
		return 0, fmt.Errorf("%w: %q has %d digit runs, need %d for %v naming", ErrNoReadID, name, len(runs), i+1, n)
	}
	id, err := strconv.Atoi(runs[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrNoReadID, name, err)
	}
	return ID(id), nil
}
