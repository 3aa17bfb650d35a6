/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/config"
	"github.com/soilwatch/irrigatord/hal"
)

// BootState is the State interface implementation for the AgentStateBoot
type BootState struct {
	BaseState
}

// Handle for BootState loads the persisted cycle state and classifies the
// wake cause. A wake that is neither timer-driven nor the first boot is
// treated as a possible fault: the device goes straight back to sleep for a
// full wake period without running the cycle.
func (state *BootState) Handle(a *Agent) State {
	a.resetCycle()

	a.Cycle = config.LoadCycleState(a.Store, a.StatePath)

	cause := a.Wake.Cause()

	if a.Cycle.FirstBoot {
		log.Info("first boot after provisioning or full reset")
		a.Cycle.FirstBoot = false
		return NewSenseState()
	}

	if cause != hal.WakeTimer {
		log.Warn("unexpected wake cause, re-entering sleep without running the cycle")
		return NewSleepState(a.wakePeriod())
	}

	return NewSenseState()
}

// NewBootState creates a new BootState
func NewBootState() *BootState {
	return &BootState{
		BaseState: BaseState{id: AgentStateBoot},
	}
}
