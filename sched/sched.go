/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package sched computes how long the device sleeps after a cycle.
package sched

import (
	"time"

	"github.com/soilwatch/irrigatord/timesync"
)

const (
	// QuietStartHour opens the night window during which regular wakes are
	// suppressed.
	QuietStartHour = 20

	// QuietEndHour closes it the next morning.
	QuietEndHour = 8

	// RetrySleep is the short nap after a failed telemetry push so
	// connectivity is retried soon instead of a full period later.
	RetrySleep = 60 * time.Second
)

// SleepDuration evaluates the policy in order: quiet hours (only with valid
// time), the regular wake period after a successful push, and the short
// retry interval otherwise.
func SleepDuration(ts timesync.Sample, pushOK bool, wakePeriod time.Duration) time.Duration {
	if ts.Valid && inQuietWindow(ts.Hour) {
		return untilQuietEnd(ts.Hour, ts.Minute)
	}

	if pushOK {
		return wakePeriod
	}

	return RetrySleep
}

func inQuietWindow(hour int) bool {
	return hour >= QuietStartHour || hour < QuietEndHour
}

// untilQuietEnd computes the seconds remaining until the top of the quiet
// window's end hour, spanning midnight when needed. Minutes already elapsed
// in the current hour are subtracted so the wake lands exactly on the hour.
func untilQuietEnd(hour, minute int) time.Duration {
	target := QuietEndHour
	if hour >= QuietStartHour {
		target += 24
	}

	secs := (target-hour)*3600 - minute*60

	return time.Duration(secs) * time.Second
}
