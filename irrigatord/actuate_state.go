/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

// ActuateState is the State interface implementation for the AgentStateActuate
type ActuateState struct {
	BaseState
}

// Handle for ActuateState runs the bounded watering loop and records the
// pump-on time into the persisted pending counter before any push is
// attempted, so a failed push cannot lose it. Probe power is removed no
// matter how the loop exits.
func (state *ActuateState) Handle(a *Agent) State {
	defer a.Irrigation.PowerDown()

	a.reading = a.Irrigation.Irrigate(a.reading.Moisture, a.Config.WetThreshold)

	if a.reading.PumpOnSeconds > 0 {
		// Unreported time from earlier failed pushes accumulates.
		a.Cycle.PendingPumpSeconds += a.reading.PumpOnSeconds
		pumpSecondsTotal.Add(float64(a.reading.PumpOnSeconds))
	}

	return NewConnectState()
}

// NewActuateState creates a new ActuateState
func NewActuateState() *ActuateState {
	return &ActuateState{
		BaseState: BaseState{id: AgentStateActuate},
	}
}
