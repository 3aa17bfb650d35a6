/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package timesync obtains wall-clock time over the network, best effort,
// once per wake cycle.
package timesync

import (
	"time"

	"github.com/OSSystems/pkg/log"
	"github.com/beevik/ntp"
)

// Sample is one cycle's view of wall-clock time. Valid is false until a
// network sync succeeded this cycle; the remaining fields then carry either
// fresh values or the stale ones from the last successful sync.
type Sample struct {
	Valid  bool
	Hour   int
	Minute int
	Day    int
	Epoch  int64
}

// Source produces the current UTC time.
type Source interface {
	Now() (time.Time, error)
}

// NTPSource queries an NTP server with a bounded timeout.
type NTPSource struct {
	Server  string
	Timeout time.Duration
}

func (s *NTPSource) Now() (time.Time, error) {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	resp, err := ntp.QueryWithOptions(s.Server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return time.Time{}, err
	}

	if err = resp.Validate(); err != nil {
		return time.Time{}, err
	}

	return time.Now().Add(resp.ClockOffset).UTC(), nil
}

// Sync fetches the time and converts it to local fields using the configured
// UTC offset. On failure the previous sample's fields are returned unchanged
// with Valid forced to false, so stale day-of-month comparisons stay possible
// while quiet-hours math stays disabled.
func Sync(src Source, utcOffset time.Duration, prev Sample) Sample {
	t, err := src.Now()
	if err != nil {
		log.Warn("time sync failed: ", err)
		prev.Valid = false
		return prev
	}

	local := t.Add(utcOffset)

	return Sample{
		Valid:  true,
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Day:    local.Day(),
		Epoch:  t.Unix(),
	}
}
