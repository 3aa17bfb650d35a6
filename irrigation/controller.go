/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package irrigation drives the moisture probe and the pump for one wake
// cycle: a single sense, then an optional bounded watering loop.
package irrigation

import (
	"time"

	"github.com/OSSystems/pkg/log"

	"github.com/soilwatch/irrigatord/hal"
)

const (
	// SettleDelay is how long the probe is powered before it is read.
	SettleDelay = 3 * time.Millisecond

	// PollInterval is the pump-loop re-read cadence.
	PollInterval = time.Second

	// MaxPumpSeconds caps a single watering loop regardless of what the
	// probe reports.
	MaxPumpSeconds = 120
)

// Reading is the outcome of one cycle's sensing and actuation.
type Reading struct {
	Moisture      int
	PumpOnSeconds int
	TimedOut      bool
}

type Controller struct {
	IO hal.SensorActuator

	// Sleep is injected so tests run without real delays.
	Sleep func(time.Duration)
}

func NewController(io hal.SensorActuator) *Controller {
	return &Controller{
		IO:    io,
		Sleep: time.Sleep,
	}
}

// Sense powers the probe, waits the settle delay and reads it. The probe is
// left powered so an immediately following watering loop can re-read it;
// PowerDown must run before the cycle moves on.
func (c *Controller) Sense() int {
	c.IO.SensorPower(true)
	c.Sleep(SettleDelay)

	v := c.IO.ReadMoisture()
	log.Info("moisture reading: ", v)

	return v
}

// Irrigate runs the bounded watering loop: pump on, re-read once per poll
// interval, stop as soon as the soil reads wet or the time cap is reached.
// The two exit reasons report the same elapsed seconds; only TimedOut tells
// them apart.
func (c *Controller) Irrigate(value, wetThreshold int) (final Reading) {
	c.IO.PumpPower(true)
	defer c.IO.PumpPower(false)

	elapsed := 0
	for value > wetThreshold && elapsed < MaxPumpSeconds {
		c.Sleep(PollInterval)
		elapsed++
		value = c.IO.ReadMoisture()
	}

	final = Reading{
		Moisture:      value,
		PumpOnSeconds: elapsed,
		TimedOut:      value > wetThreshold,
	}

	if final.TimedOut {
		log.Warn("watering stopped at time cap, soil still reads dry: ", value)
	} else {
		log.Info("watering stopped, soil reads wet after ", elapsed, "s")
	}

	return final
}

// PowerDown removes probe power. It must run once per cycle no matter how
// sensing or actuation went.
func (c *Controller) PowerDown() {
	c.IO.SensorPower(false)
}

// RunCycle is the whole per-wake measurement: sense, water if the soil reads
// dry, and unconditionally power the probe back down.
func (c *Controller) RunCycle(dryThreshold, wetThreshold int) Reading {
	defer c.PowerDown()

	value := c.Sense()
	if value <= dryThreshold {
		return Reading{Moisture: value}
	}

	return c.Irrigate(value, wetThreshold)
}
