/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

// AgentState holds the possible states of one wake cycle
type AgentState int

const (
	// AgentDummyState is a dummy state
	AgentDummyState = iota
	// AgentStateBoot loads persisted state and classifies the wake cause
	AgentStateBoot
	// AgentStateSense powers the probe and takes the moisture reading
	AgentStateSense
	// AgentStateActuate runs the bounded watering loop
	AgentStateActuate
	// AgentStateConnect brings the network link up with bounded retries
	AgentStateConnect
	// AgentStateTimeSync fetches wall-clock time, best effort
	AgentStateTimeSync
	// AgentStateTelemetry signs in and pushes the cycle's telemetry record
	AgentStateTelemetry
	// AgentStateReconcile runs the once-daily config reconciliation
	AgentStateReconcile
	// AgentStateOtaCheck runs the once-daily firmware update check
	AgentStateOtaCheck
	// AgentStateScheduleSleep computes the next sleep duration
	AgentStateScheduleSleep
	// AgentStateSleep persists state, releases outputs and suspends
	AgentStateSleep
	// AgentStateReboot restarts immediately after a verified flash
	AgentStateReboot
	// AgentStateError is set when an error occurred in the cycle
	AgentStateError
	// AgentStateExit is set when the process is about to quit
	AgentStateExit
)

var statusNames = map[AgentState]string{
	AgentDummyState:         "dummy",
	AgentStateBoot:          "boot",
	AgentStateSense:         "sense",
	AgentStateActuate:       "actuate",
	AgentStateConnect:       "connect",
	AgentStateTimeSync:      "time-sync",
	AgentStateTelemetry:     "telemetry",
	AgentStateReconcile:     "reconcile",
	AgentStateOtaCheck:      "ota-check",
	AgentStateScheduleSleep: "schedule-sleep",
	AgentStateSleep:         "sleep",
	AgentStateReboot:        "reboot",
	AgentStateError:         "error",
	AgentStateExit:          "exit",
}

// State interface describes the necessary operations for a State
type State interface {
	ID() AgentState
	Handle(*Agent) State // Handle implements the behavior when the State is set
	ToMap() map[string]interface{}
}

// BaseState is the state from which all others must do composition
type BaseState struct {
	id AgentState
}

// ID returns the state id
func (b *BaseState) ID() AgentState {
	return b.id
}

// ToMap is for the State interface implementation
func (b *BaseState) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	m["status"] = StateToString(b.ID())
	return m
}

// StateToString converts an "AgentState" to string
func StateToString(status AgentState) string {
	return statusNames[status]
}
