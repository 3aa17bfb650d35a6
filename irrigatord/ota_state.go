/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"
)

// OtaCheckState is the State interface implementation for the AgentStateOtaCheck
type OtaCheckState struct {
	BaseState
}

// Handle for OtaCheckState runs the firmware update check inside the
// once-daily window. Any failure is logged and the cycle proceeds to sleep
// on schedule; only a fully verified image takes the immediate-restart path.
func (state *OtaCheckState) Handle(a *Agent) State {
	applied, err := a.Updater.CheckAndApply(a.Api.Request(), a.Config.ModelID)
	if err != nil {
		log.Warn("firmware update skipped: ", err)
	}

	if applied {
		otaAppliedTotal.Inc()
		return NewRebootState()
	}

	return NewScheduleSleepState()
}

// NewOtaCheckState creates a new OtaCheckState
func NewOtaCheckState() *OtaCheckState {
	return &OtaCheckState{
		BaseState: BaseState{id: AgentStateOtaCheck},
	}
}
