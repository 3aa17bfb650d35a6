/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

type Daemon struct {
	agent *Agent
	stop  bool
}

func NewDaemon(agent *Agent) *Daemon {
	return &Daemon{
		agent: agent,
	}
}

func (d *Daemon) Stop() {
	d.stop = true
}

// Run drives the state machine. In hardware mode each suspension blocks
// inside the sleep state and execution resumes here on wake; the loop only
// ends on the exit state (after a reboot request or a stop).
func (d *Daemon) Run() int {
	for {
		nextState := d.agent.ProcessCurrentState()

		d.agent.SetState(nextState)

		if d.stop || nextState.ID() == AgentStateExit {
			if finalState, _ := nextState.(*ExitState); finalState != nil {
				return finalState.exitCode
			}

			return 0
		}
	}
}
