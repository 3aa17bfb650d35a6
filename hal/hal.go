/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package hal is the hardware boundary of the agent. Everything the firmware
// touches outside its own process, sensor, pump, network link, suspend and
// restart primitives and the firmware flash area, is reached through the
// interfaces here so the control logic stays testable off-device.
package hal

import (
	"io"
	"time"
)

// SensorActuator is the moisture probe plus the two digital outputs.
type SensorActuator interface {
	// SensorPower drives the probe supply rail.
	SensorPower(on bool)

	// PumpPower drives the pump relay.
	PumpPower(on bool)

	// ReadMoisture returns the raw ADC value. Out-of-range values are not
	// an error, they are data the thresholds evaluate normally.
	ReadMoisture() int

	// Release drives both outputs to their safe (off) state and isolates
	// them before suspension, so nothing holds a leakage path while the
	// device sleeps.
	Release() error
}

// Network brings the network link up. One call is one attempt; the connect
// state owns the bounded retry loop.
type Network interface {
	Connect(ssid, password string) error
}

// Suspender puts the device into deep sleep for the given duration and
// returns when execution resumes.
type Suspender interface {
	Suspend(d time.Duration) error
}

type Rebooter interface {
	Reboot() error
}

// FirmwareWriter is the staged fetch-and-flash primitive. Begin sizes the
// staging area to the declared image length and fails if it cannot hold it.
// Only a Commit after exactly the declared number of bytes were written
// installs the image.
type FirmwareWriter interface {
	Begin(size int64) (io.Writer, error)
	Commit() error
	Abort()
}

// WakeCause tells why the device came out of sleep.
type WakeCause int

const (
	// WakeTimer is the regular timer-driven wake.
	WakeTimer WakeCause = iota
	// WakePowerOn is the very first boot after flashing or a full reset.
	WakePowerOn
	// WakeOther is any unexpected cause and treated as a possible fault.
	WakeOther
)

// WakeDetector classifies the current wake and arms the marker for the next
// one right before suspension.
type WakeDetector interface {
	Cause() WakeCause
	Arm() error
}
