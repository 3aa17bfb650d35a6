/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestMarkerWakeDetectorCause(t *testing.T) {
	testCases := []struct {
		name     string
		marker   []byte
		expected WakeCause
	}{
		{
			"MissingMarkerIsPowerOn",
			nil,
			WakePowerOn,
		},

		{
			"ArmedMarkerIsTimer",
			[]byte("armed"),
			WakeTimer,
		},

		{
			"GarbledMarkerIsOther",
			[]byte("garbled"),
			WakeOther,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			if tc.marker != nil {
				err := afero.WriteFile(fs, "/wake.marker", tc.marker, 0600)
				assert.NoError(t, err)
			}

			d := &MarkerWakeDetector{Fs: fs, Path: "/wake.marker"}
			assert.Equal(t, tc.expected, d.Cause())
		})
	}
}

func TestMarkerWakeDetectorArm(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := &MarkerWakeDetector{Fs: fs, Path: "/wake.marker"}

	assert.Equal(t, WakePowerOn, d.Cause())

	assert.NoError(t, d.Arm())
	assert.Equal(t, WakeTimer, d.Cause())
}
