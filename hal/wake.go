/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	"github.com/spf13/afero"
)

// MarkerWakeDetector distinguishes wake causes with a marker file on the
// retained storage area. The sleep path arms the marker right before
// suspending; a wake that finds it armed is timer-driven. A missing marker
// means the retained area was wiped, which is the first power-up. Anything
// unreadable in between is reported as an unexpected wake.
type MarkerWakeDetector struct {
	Fs   afero.Fs
	Path string
}

const markerArmed = "armed"

func (d *MarkerWakeDetector) Cause() WakeCause {
	data, err := afero.ReadFile(d.Fs, d.Path)
	if err != nil {
		return WakePowerOn
	}

	if string(data) == markerArmed {
		return WakeTimer
	}

	return WakeOther
}

// Arm marks the upcoming suspension as intentional so the next wake is
// classified as timer-driven.
func (d *MarkerWakeDetector) Arm() error {
	return afero.WriteFile(d.Fs, d.Path, []byte(markerArmed), 0600)
}
