/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	rpio "github.com/stianeikeland/go-rpio/v4"
)

// RPiBoard drives the probe and pump through memory-mapped GPIO and reads
// moisture from an MCP3008 ADC on SPI0 channel 0.
type RPiBoard struct {
	SensorPowerPin rpio.Pin
	PumpPin        rpio.Pin
	adcChannel     byte
}

func NewRPiBoard(sensorPowerPin, pumpPin int, adcChannel byte) (*RPiBoard, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}

	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return nil, err
	}

	b := &RPiBoard{
		SensorPowerPin: rpio.Pin(sensorPowerPin),
		PumpPin:        rpio.Pin(pumpPin),
		adcChannel:     adcChannel,
	}

	b.SensorPowerPin.Output()
	b.PumpPin.Output()
	b.SensorPowerPin.Low()
	b.PumpPin.Low()

	return b, nil
}

func (b *RPiBoard) SensorPower(on bool) {
	if on {
		b.SensorPowerPin.High()
	} else {
		b.SensorPowerPin.Low()
	}
}

func (b *RPiBoard) PumpPower(on bool) {
	if on {
		b.PumpPin.High()
	} else {
		b.PumpPin.Low()
	}
}

func (b *RPiBoard) ReadMoisture() int {
	rpio.SpiChipSelect(0)

	// MCP3008 single-ended conversion: start bit, SGL|channel, clocks for
	// the 10-bit result.
	buf := []byte{0x01, (0x08 | b.adcChannel) << 4, 0x00}
	rpio.SpiExchange(buf)

	return int(buf[1]&0x03)<<8 | int(buf[2])
}

func (b *RPiBoard) Release() error {
	b.PumpPin.Low()
	b.SensorPowerPin.Low()

	// Back to inputs so nothing sources current while suspended.
	b.PumpPin.Input()
	b.SensorPowerPin.Input()

	rpio.SpiEnd(rpio.Spi0)

	return rpio.Close()
}
