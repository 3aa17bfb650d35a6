/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/journal"
	"github.com/soilwatch/irrigatord/sched"
)

// ScheduleSleepState is the State interface implementation for the AgentStateScheduleSleep
type ScheduleSleepState struct {
	BaseState
}

// Handle for ScheduleSleepState computes the next sleep duration from the
// time-of-day policy and the cycle outcome, and journals the cycle.
func (state *ScheduleSleepState) Handle(a *Agent) State {
	a.sleepFor = sched.SleepDuration(a.timeSample, a.pushOK, a.wakePeriod())

	cyclesTotal.Inc()

	if a.Journal != nil {
		err := a.Journal.RecordCycle(journal.CycleEntry{
			At:           a.Now(),
			Moisture:     a.reading.Moisture,
			PumpSeconds:  a.reading.PumpOnSeconds,
			TimedOut:     a.reading.TimedOut,
			Pushed:       a.pushOK,
			SleepSeconds: int(a.sleepFor.Seconds()),
		})
		if err != nil {
			log.Warn("failed to journal cycle: ", err)
		}
	}

	return NewSleepState(a.sleepFor)
}

// NewScheduleSleepState creates a new ScheduleSleepState
func NewScheduleSleepState() *ScheduleSleepState {
	return &ScheduleSleepState{
		BaseState: BaseState{id: AgentStateScheduleSleep},
	}
}
