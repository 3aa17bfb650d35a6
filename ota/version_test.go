/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.2.3")
	assert.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 2, Micro: 3}, v)

	v, err = ParseVersion(" 0.0.7\n")
	assert.NoError(t, err)
	assert.Equal(t, Version{Micro: 7}, v)
}

func TestParseVersionRejectsMalformedStrings(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"TwoFields", "1.2"},
		{"FourFields", "1.2.3.4"},
		{"NonNumeric", "1.2.x"},
		{"NegativeField", "1.-2.3"},
		{"TrailingDot", "1.2."},
		{"Garbage", "latest"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVersion(tc.in)
			assert.Error(t, err)
		})
	}
}

func TestVersionOrdering(t *testing.T) {
	assert.True(t, Version{1, 0, 0}.NewerThan(Version{0, 9, 9}))
	assert.True(t, Version{0, 2, 0}.NewerThan(Version{0, 1, 9}))
	assert.True(t, Version{0, 0, 1}.NewerThan(Version{0, 0, 0}))

	assert.False(t, Version{0, 9, 9}.NewerThan(Version{1, 0, 0}))
	assert.False(t, Version{1, 2, 3}.NewerThan(Version{1, 2, 3}))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "2.10.0", Version{Major: 2, Minor: 10}.String())
}
