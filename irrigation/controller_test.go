/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/soilwatch/irrigatord/testsmocks/sensormock"
)

func newTestController(sm *sensormock.SensorActuatorMock) *Controller {
	c := NewController(sm)
	c.Sleep = func(time.Duration) {}
	return c
}

func TestRunCycleWithWetSoilNeverDrivesPump(t *testing.T) {
	sm := &sensormock.SensorActuatorMock{}

	sm.On("SensorPower", true).Return()
	sm.On("ReadMoisture").Return(3000).Once()
	sm.On("SensorPower", false).Return()

	c := newTestController(sm)

	reading := c.RunCycle(5500, 4000)

	assert.Equal(t, Reading{Moisture: 3000}, reading)

	sm.AssertNotCalled(t, "PumpPower", true)
	sm.AssertExpectations(t)
}

func TestRunCycleBoundaryReadingDoesNotWater(t *testing.T) {
	sm := &sensormock.SensorActuatorMock{}

	sm.On("SensorPower", true).Return()
	sm.On("ReadMoisture").Return(5500).Once()
	sm.On("SensorPower", false).Return()

	c := newTestController(sm)

	reading := c.RunCycle(5500, 4000)

	assert.Equal(t, 0, reading.PumpOnSeconds)
	sm.AssertNotCalled(t, "PumpPower", true)
	sm.AssertExpectations(t)
}

func TestRunCycleWatersUntilWet(t *testing.T) {
	sm := &sensormock.SensorActuatorMock{}

	sm.On("SensorPower", true).Return()
	sm.On("PumpPower", true).Return()
	sm.On("PumpPower", false).Return()
	sm.On("SensorPower", false).Return()

	// Initial dry read, then 11 still-dry polls, then one wet poll.
	sm.On("ReadMoisture").Return(5600).Once()
	for i := 0; i < 11; i++ {
		sm.On("ReadMoisture").Return(5000).Once()
	}
	sm.On("ReadMoisture").Return(4000).Once()

	c := newTestController(sm)

	reading := c.RunCycle(5500, 4000)

	assert.Equal(t, 12, reading.PumpOnSeconds)
	assert.Equal(t, 4000, reading.Moisture)
	assert.False(t, reading.TimedOut)

	sm.AssertExpectations(t)
}

func TestRunCycleStopsAtTimeCap(t *testing.T) {
	sm := &sensormock.SensorActuatorMock{}

	sm.On("SensorPower", true).Return()
	sm.On("PumpPower", true).Return()
	sm.On("PumpPower", false).Return()
	sm.On("SensorPower", false).Return()

	// The probe never reads wet.
	sm.On("ReadMoisture").Return(6000)

	slept := 0
	c := NewController(sm)
	c.Sleep = func(d time.Duration) {
		if d == PollInterval {
			slept++
		}
	}

	reading := c.RunCycle(5500, 4000)

	assert.Equal(t, MaxPumpSeconds, reading.PumpOnSeconds)
	assert.Equal(t, MaxPumpSeconds, slept)
	assert.True(t, reading.TimedOut)

	sm.AssertExpectations(t)
}

func TestSenseWaitsForSettleDelay(t *testing.T) {
	sm := &sensormock.SensorActuatorMock{}

	sm.On("SensorPower", true).Return()
	sm.On("ReadMoisture").Return(1234).Once()

	var waited time.Duration
	c := NewController(sm)
	c.Sleep = func(d time.Duration) { waited += d }

	v := c.Sense()

	assert.Equal(t, 1234, v)
	assert.Equal(t, SettleDelay, waited)

	sm.AssertExpectations(t)
}
