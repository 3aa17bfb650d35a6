/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorStateWithFatalError(t *testing.T) {
	a := newTestAgent(t, NewErrorState(NewFatalError(errors.New("persistent storage gone"))))

	next := a.ProcessCurrentState()

	assert.IsType(t, &ExitState{}, next)
	assert.Equal(t, 1, next.(*ExitState).exitCode)
}

func TestErrorStateWithTransientError(t *testing.T) {
	a := newTestAgent(t, NewErrorState(NewTransientError(errors.New("reboot command failed"))))

	// A transient failure still ends in sleep, never in a busy device.
	next := a.ProcessCurrentState()

	assert.IsType(t, &ScheduleSleepState{}, next)
}

func TestNewErrorStateWithNilCause(t *testing.T) {
	state := NewErrorState(nil).(*ErrorState)

	assert.True(t, state.cause.IsFatal())
	assert.Equal(t, "fatal error: generic error", state.cause.Error())
}

func TestErrorStateToMap(t *testing.T) {
	state := NewErrorState(NewTransientError(errors.New("reboot command failed"))).(*ErrorState)

	m := state.ToMap()

	assert.Equal(t, "error", m["status"])
	assert.Equal(t, "transient error: reboot command failed", m["error"])
}

func TestAgentError(t *testing.T) {
	cause := errors.New("the cause")

	fatal := NewFatalError(cause)
	assert.True(t, fatal.IsFatal())
	assert.Equal(t, cause, fatal.Cause())
	assert.Equal(t, "fatal error: the cause", fatal.Error())

	transient := NewTransientError(cause)
	assert.False(t, transient.IsFatal())
	assert.Equal(t, "transient error: the cause", transient.Error())
}
