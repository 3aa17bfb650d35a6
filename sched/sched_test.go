/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soilwatch/irrigatord/timesync"
)

func TestQuietHoursSleepDuration(t *testing.T) {
	testCases := []struct {
		name     string
		hour     int
		minute   int
		expected time.Duration
	}{
		{
			"EveningSpansMidnight",
			22, 15,
			35100 * time.Second,
		},

		{
			"EarlyMorning",
			3, 30,
			16200 * time.Second,
		},

		{
			"QuietWindowOpens",
			20, 0,
			12 * time.Hour,
		},

		{
			"LastQuietMinute",
			7, 59,
			60 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := timesync.Sample{Valid: true, Hour: tc.hour, Minute: tc.minute}

			d := SleepDuration(ts, true, time.Hour)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestDaytimeUsesWakePeriod(t *testing.T) {
	ts := timesync.Sample{Valid: true, Hour: 12, Minute: 30}

	d := SleepDuration(ts, true, 90*time.Minute)
	assert.Equal(t, 90*time.Minute, d)
}

func TestFailedPushUsesRetrySleep(t *testing.T) {
	ts := timesync.Sample{Valid: true, Hour: 12, Minute: 30}

	d := SleepDuration(ts, false, time.Hour)
	assert.Equal(t, RetrySleep, d)
}

func TestInvalidTimeDisablesQuietHours(t *testing.T) {
	// 22:15 would be deep inside the quiet window, but stale time must
	// never drive quiet-hours math.
	ts := timesync.Sample{Valid: false, Hour: 22, Minute: 15}

	assert.Equal(t, time.Hour, SleepDuration(ts, true, time.Hour))
	assert.Equal(t, RetrySleep, SleepDuration(ts, false, time.Hour))
}
