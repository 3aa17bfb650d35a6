/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/soilwatch/irrigatord/timesync"
)

// TimeSyncState is the State interface implementation for the AgentStateTimeSync
type TimeSyncState struct {
	BaseState
}

// Handle for TimeSyncState fetches wall-clock time, best effort. Failure
// keeps the stale persisted fields with Valid=false, which disables
// quiet-hours math and the daily reconciliation gate for this cycle only.
func (state *TimeSyncState) Handle(a *Agent) State {
	a.timeSample = timesync.Sync(a.TimeSource, a.UTCOffset, a.staleSample())

	if a.timeSample.Valid {
		a.Cycle.LastDay = a.timeSample.Day
		a.Cycle.LastHour = a.timeSample.Hour
		a.Cycle.LastMinute = a.timeSample.Minute
	}

	return NewTelemetryState()
}

// NewTimeSyncState creates a new TimeSyncState
func NewTimeSyncState() *TimeSyncState {
	return &TimeSyncState{
		BaseState: BaseState{id: AgentStateTimeSync},
	}
}
