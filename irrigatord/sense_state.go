/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

// SenseState is the State interface implementation for the AgentStateSense
type SenseState struct {
	BaseState
}

// Handle for SenseState takes the moisture reading and decides whether the
// soil is dry enough to water. The probe stays powered only if the watering
// loop follows immediately.
func (state *SenseState) Handle(a *Agent) State {
	value := a.Irrigation.Sense()

	a.reading.Moisture = value

	if value > a.Config.DryThreshold {
		return NewActuateState()
	}

	a.Irrigation.PowerDown()

	return NewConnectState()
}

// NewSenseState creates a new SenseState
func NewSenseState() *SenseState {
	return &SenseState{
		BaseState: BaseState{id: AgentStateSense},
	}
}
