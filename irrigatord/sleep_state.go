/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"time"

	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/config"
)

// SleepState is the State interface implementation for the AgentStateSleep
type SleepState struct {
	BaseState

	duration time.Duration
}

// Handle for SleepState is the suspension boundary: persist the cycle state,
// drive the outputs to their safe state, arm the wake marker and suspend.
// Execution resumes here on wake and re-enters boot, which reloads
// everything from persisted storage.
func (state *SleepState) Handle(a *Agent) State {
	if err := config.SaveCycleState(a.Store, a.StatePath, a.Cycle); err != nil {
		log.Error("failed to persist cycle state, updates of this cycle may be lost: ", err)
	}

	if err := a.IO.Release(); err != nil {
		log.Error("failed to release outputs: ", err)
	}

	if err := a.Wake.Arm(); err != nil {
		log.Warn("failed to arm wake marker: ", err)
	}

	log.Info("suspending for ", state.duration)

	if err := a.Suspender.Suspend(state.duration); err != nil {
		// Exiting is the only way to guarantee the device does not stay
		// awake; the init system owns what happens next.
		log.Error("suspend failed: ", err)
		return NewExitState(1)
	}

	return NewBootState()
}

// ToMap is for the State interface implementation
func (state *SleepState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["sleep-seconds"] = int(state.duration.Seconds())
	return m
}

// SleepDuration exposes the scheduled duration for tests and the debug
// server.
func (state *SleepState) SleepDuration() time.Duration {
	return state.duration
}

// NewSleepState creates a new SleepState
func NewSleepState(duration time.Duration) *SleepState {
	return &SleepState{
		BaseState: BaseState{id: AgentStateSleep},
		duration:  duration,
	}
}
