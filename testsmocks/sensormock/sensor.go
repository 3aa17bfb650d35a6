/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sensormock

import (
	"github.com/stretchr/testify/mock"
)

type SensorActuatorMock struct {
	mock.Mock
}

func (sm *SensorActuatorMock) SensorPower(on bool) {
	sm.Called(on)
}

func (sm *SensorActuatorMock) PumpPower(on bool) {
	sm.Called(on)
}

func (sm *SensorActuatorMock) ReadMoisture() int {
	args := sm.Called()
	return args.Int(0)
}

func (sm *SensorActuatorMock) Release() error {
	args := sm.Called()
	return args.Error(0)
}
