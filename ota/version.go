/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ota compares firmware versions and stages remote images.
package ota

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a dotted three-field firmware version, totally ordered by
// major, then minor, then micro.
type Version struct {
	Major int
	Minor int
	Micro int
}

// ParseVersion accepts exactly "MAJOR.MINOR.MICRO" with non-negative decimal
// fields. Any other field count or content is rejected.
func ParseVersion(s string) (Version, error) {
	fields := strings.Split(strings.TrimSpace(s), ".")
	if len(fields) != 3 {
		return Version{}, errors.Errorf("malformed version %q: expected 3 dotted fields, got %d", s, len(fields))
	}

	var v [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Version{}, errors.Errorf("malformed version %q: field %q is not a non-negative integer", s, field)
		}
		v[i] = n
	}

	return Version{Major: v[0], Minor: v[1], Micro: v[2]}, nil
}

// MustParseVersion is for the compiled-in current version, where a malformed
// string is a build mistake.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return v.Major - o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor - o.Minor
	}
	return v.Micro - o.Micro
}

func (v Version) NewerThan(o Version) bool {
	return v.Compare(o) > 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}
