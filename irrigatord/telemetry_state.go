/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/client"
)

// TelemetryState is the State interface implementation for the AgentStateTelemetry
type TelemetryState struct {
	BaseState
}

// Handle for TelemetryState signs in to the remote store and pushes the
// cycle's record. A failed sign-in short-circuits the rest of the remote
// sync. The pending pump-seconds counter is cleared only on an explicit
// success acknowledgment, making the push at-least-once: a record may be
// duplicated, never dropped.
func (state *TelemetryState) Handle(a *Agent) State {
	session, err := a.Auth.SignIn(a.Api.Request(), a.Config.AccountEmail, a.Config.AccountPassword)
	if err != nil {
		log.Warn("sign-in failed, skipping remote sync: ", err)
		return NewScheduleSleepState()
	}

	a.session = session

	timestamp := a.timeSample.Epoch
	if !a.timeSample.Valid {
		timestamp = a.Now().Unix()
	}

	record := client.TelemetryRecord{
		Moisture:      a.reading.Moisture,
		PumpOnSeconds: a.Cycle.PendingPumpSeconds,
		TimedOut:      a.reading.TimedOut,
		Timestamp:     timestamp,
	}

	err = a.Reporter.PushTelemetry(a.Api.Request(), session, a.Config.DeviceID, record)
	if err != nil {
		log.Warn("telemetry push failed, pump-on seconds stay pending: ", err)
		telemetryFailuresTotal.Inc()
		return NewReconcileState()
	}

	a.Cycle.PendingPumpSeconds = 0
	a.pushOK = true
	telemetryPushedTotal.Inc()

	if a.Mirror != nil {
		if err = a.Mirror.Publish(a.Config.DeviceID, record); err != nil {
			log.Warn("telemetry mirror publish failed: ", err)
		}
	}

	return NewReconcileState()
}

// NewTelemetryState creates a new TelemetryState
func NewTelemetryState() *TelemetryState {
	return &TelemetryState{
		BaseState: BaseState{id: AgentStateTelemetry},
	}
}
