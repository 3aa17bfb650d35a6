/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	"strconv"
	"strings"
	"time"

	"github.com/OSSystems/pkg/log"
	"github.com/spf13/afero"
)

// SimBoard is the foreground-mode stand-in for real hardware. Moisture is
// read from a plain text file so a value can be echoed into it while the
// agent runs; outputs and suspension just log.
type SimBoard struct {
	Fs           afero.Fs
	MoisturePath string
	Sleep        func(time.Duration)
}

func NewSimBoard(fs afero.Fs, moisturePath string) *SimBoard {
	return &SimBoard{
		Fs:           fs,
		MoisturePath: moisturePath,
		Sleep:        time.Sleep,
	}
}

func (b *SimBoard) SensorPower(on bool) {
	log.Debug("sim: sensor power ", on)
}

func (b *SimBoard) PumpPower(on bool) {
	log.Info("sim: pump ", on)
}

func (b *SimBoard) ReadMoisture() int {
	data, err := afero.ReadFile(b.Fs, b.MoisturePath)
	if err != nil {
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}

	return v
}

func (b *SimBoard) Release() error {
	log.Debug("sim: outputs released")
	return nil
}

func (b *SimBoard) Connect(ssid, password string) error {
	log.Debug("sim: network connect to ", ssid)
	return nil
}

func (b *SimBoard) Suspend(d time.Duration) error {
	log.Info("sim: sleeping for ", d)
	b.Sleep(d)
	return nil
}

func (b *SimBoard) Reboot() error {
	log.Warn("sim: reboot requested, ignoring")
	return nil
}
