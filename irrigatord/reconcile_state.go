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

// Remote keys for the three reconciled tunables.
const (
	remoteKeyDryThreshold = "threshold_max"
	remoteKeyWetThreshold = "threshold_min"
	remoteKeyWakePeriod   = "wake_period"
	remoteKeyVersion      = "version"
)

// ReconcileState is the State interface implementation for the AgentStateReconcile
type ReconcileState struct {
	BaseState
}

// Handle for ReconcileState runs the once-daily one-way-wins reconciliation
// of the tunables: a differing remote value overwrites the local one, an
// absent remote value is created from the local one. The sync day advances
// only when this logic actually executes, so a cycle without valid time
// leaves the retry open for a later wake the same day.
func (state *ReconcileState) Handle(a *Agent) State {
	if a.session == nil {
		return NewScheduleSleepState()
	}

	if !a.timeSample.Valid || a.timeSample.Day == a.Cycle.PreviousSyncDay {
		return NewScheduleSleepState()
	}

	tunables := []struct {
		key   string
		local *int
	}{
		{remoteKeyDryThreshold, &a.Config.DryThreshold},
		{remoteKeyWetThreshold, &a.Config.WetThreshold},
		{remoteKeyWakePeriod, &a.Config.WakePeriod},
	}

	previous := *a.Config
	dirty := false

	for _, t := range tunables {
		remote, present, err := a.RemoteConfig.GetInt(a.Api.Request(), a.session, a.Config.DeviceID, t.key)
		if err != nil {
			log.Warn("reconciliation read failed: ", err)
			continue
		}

		if !present {
			err = a.RemoteConfig.PutInt(a.Api.Request(), a.session, a.Config.DeviceID, t.key, *t.local)
			if err != nil {
				log.Warn("reconciliation publish failed: ", err)
			}
			continue
		}

		if remote != *t.local {
			log.Info("remote wins for ", t.key, ": ", *t.local, " -> ", remote)
			*t.local = remote
			dirty = true
		}
	}

	if dirty {
		if err := a.Config.Validate(); err != nil {
			log.Error("remote tunables violate invariants, reverting: ", err)
			*a.Config = previous
		} else if err := config.SaveDeviceConfig(a.Store, a.ConfigPath, a.Config); err != nil {
			log.Error("failed to persist reconciled config: ", err)
		}
	}

	// Let the backend see which firmware the device actually runs.
	err := a.RemoteConfig.PutString(a.Api.Request(), a.session, a.Config.DeviceID, remoteKeyVersion, a.Version.String())
	if err != nil {
		log.Warn("failed to publish running firmware version: ", err)
	}

	a.Cycle.PreviousSyncDay = a.timeSample.Day

	return NewOtaCheckState()
}

// NewReconcileState creates a new ReconcileState
func NewReconcileState() *ReconcileState {
	return &ReconcileState{
		BaseState: BaseState{id: AgentStateReconcile},
	}
}
