/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"errors"

	"github.com/OSSystems/pkg/log"
)

// ErrorState is the State interface implementation for the AgentStateError
type ErrorState struct {
	BaseState

	cause AgentErrorReporter
}

// Handle for ErrorState exits on a fatal error and falls back to
// conservative sleep scheduling otherwise, so a failed step never keeps the
// device awake.
func (state *ErrorState) Handle(a *Agent) State {
	log.Warn(state.cause)

	if state.cause.IsFatal() {
		return NewExitState(1)
	}

	return NewScheduleSleepState()
}

// ToMap is for the State interface implementation
func (state *ErrorState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["error"] = state.cause.Error()
	return m
}

// NewErrorState creates a new ErrorState from an AgentErrorReporter
func NewErrorState(err AgentErrorReporter) State {
	if err == nil {
		err = NewFatalError(errors.New("generic error"))
	}

	return &ErrorState{
		BaseState: BaseState{id: AgentStateError},
		cause:     err,
	}
}
