/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/OSSystems/pkg/log"
)

// ConnectState is the State interface implementation for the AgentStateConnect
type ConnectState struct {
	BaseState
}

// Handle for ConnectState brings the network link up with a bounded retry
// spin. Exhausting the retries skips every network-dependent step and goes
// straight to sleep scheduling, which falls back to the short retry nap.
func (state *ConnectState) Handle(a *Agent) State {
	var err error

	for i := 0; i < a.ConnectRetries; i++ {
		err = a.Net.Connect(a.Config.WifiSSID, a.Config.WifiPassword)
		if err == nil {
			return NewTimeSyncState()
		}

		a.Sleep(a.ConnectRetryDelay)
	}

	log.Warn("network unavailable, skipping remote sync: ", err)

	a.timeSample = a.staleSample()

	return NewScheduleSleepState()
}

// NewConnectState creates a new ConnectState
func NewConnectState() *ConnectState {
	return &ConnectState{
		BaseState: BaseState{id: AgentStateConnect},
	}
}
