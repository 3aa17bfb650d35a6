/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"bytes"

	"github.com/OSSystems/pkg/log"
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// CycleState is the small piece of state that survives deep sleep. It lives
// in a file on the retained storage area and is rewritten exactly once per
// wake cycle, at the sleep boundary. A full power loss destroys it, which
// simply reinitializes it to defaults on the next boot.
type CycleState struct {
	FirstBoot          bool `ini:"first_boot"`
	PreviousSyncDay    int  `ini:"previous_sync_day"`
	PendingPumpSeconds int  `ini:"pending_pump_seconds"`

	// Last wall-clock sample obtained from a successful time sync. Stale
	// values are kept so a cycle without network can still compare the day
	// of month, but they are never trusted for quiet-hours math.
	LastDay    int `ini:"last_day"`
	LastHour   int `ini:"last_hour"`
	LastMinute int `ini:"last_minute"`
}

func defaultCycleState() *CycleState {
	return &CycleState{
		FirstBoot:          true,
		PreviousSyncDay:    0,
		PendingPumpSeconds: 0,
	}
}

// LoadCycleState reads the persisted cycle state. A missing or unreadable
// file is not an error: it means the retained area was wiped (first power-up
// or full reset) and the state starts over from defaults.
func LoadCycleState(fs afero.Fs, path string) *CycleState {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return defaultCycleState()
	}

	cfg, err := ini.Load(data)
	if err != nil {
		log.Warn("corrupt cycle state, starting over: ", err)
		return defaultCycleState()
	}

	cs := defaultCycleState()

	err = cfg.MapTo(cs)
	if err != nil {
		log.Warn("unreadable cycle state, starting over: ", err)
		return defaultCycleState()
	}

	return cs
}

// SaveCycleState persists the cycle state. This must complete before the
// device suspends or the updates of the whole cycle are lost.
func SaveCycleState(fs afero.Fs, path string, cs *CycleState) error {
	cfg := ini.Empty()

	err := ini.ReflectFrom(cfg, cs)
	if err != nil {
		return errors.Wrap(err, "failed to serialize cycle state")
	}

	var buf bytes.Buffer
	if _, err = cfg.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "failed to write cycle state")
	}

	return afero.WriteFile(fs, path, buf.Bytes(), 0600)
}
