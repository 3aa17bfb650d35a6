/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/config"
)

// RebootState is the State interface implementation for the AgentStateReboot
type RebootState struct {
	BaseState
}

// Handle for RebootState is the immediate-restart path after a verified
// firmware flash: persist state, release the outputs and restart without
// scheduling sleep.
func (state *RebootState) Handle(a *Agent) State {
	if err := config.SaveCycleState(a.Store, a.StatePath, a.Cycle); err != nil {
		log.Error("failed to persist cycle state before restart: ", err)
	}

	if err := a.IO.Release(); err != nil {
		log.Error("failed to release outputs: ", err)
	}

	if err := a.Rebooter.Reboot(); err != nil {
		return NewErrorState(NewTransientError(err))
	}

	return NewExitState(0)
}

// NewRebootState creates a new RebootState
func NewRebootState() *RebootState {
	return &RebootState{
		BaseState: BaseState{id: AgentStateReboot},
	}
}
