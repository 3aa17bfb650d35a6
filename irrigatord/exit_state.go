/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

// ExitState is the State interface implementation for the AgentStateExit
type ExitState struct {
	BaseState

	exitCode int
}

// Handle for ExitState
func (state *ExitState) Handle(a *Agent) State {
	return state
}

// NewExitState creates a new ExitState
func NewExitState(exitCode int) *ExitState {
	return &ExitState{
		BaseState: BaseState{id: AgentStateExit},
		exitCode:  exitCode,
	}
}
