/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package hal

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/OSSystems/pkg/log"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

type CmdLineExecuter interface {
	Execute(cmdline string) ([]byte, error)
}

type CmdLine struct {
}

func (cl *CmdLine) Execute(cmdline string) ([]byte, error) {
	p := shellwords.NewParser()
	list, err := p.Parse(cmdline)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(list[0], list[1:]...)
	ret, err := cmd.CombinedOutput()

	if exitErr, ok := err.(*exec.ExitError); ok {
		if !exitErr.Success() {
			return ret, fmt.Errorf("Error executing command '%s': %s", cmdline, string(ret))
		}
	}

	return ret, err
}

// SystemRebooter restarts the device through the init system.
type SystemRebooter struct {
	CmdLineExecuter
}

func (r *SystemRebooter) Reboot() error {
	output, err := r.Execute("reboot")
	if err != nil {
		return errors.Wrapf(err, "reboot failed: %s", string(output))
	}

	log.Warn("rebooting")

	return nil
}

// RTCSuspender suspends to RAM with an RTC alarm set to the wake time.
type RTCSuspender struct {
	CmdLineExecuter
}

func (s *RTCSuspender) Suspend(d time.Duration) error {
	secs := int64(d.Seconds())
	if secs < 1 {
		secs = 1
	}

	output, err := s.Execute(fmt.Sprintf("rtcwake -m mem -s %d", secs))
	if err != nil {
		return errors.Wrapf(err, "suspend failed: %s", string(output))
	}

	return nil
}

// WifiNetwork joins the configured access point through NetworkManager.
type WifiNetwork struct {
	CmdLineExecuter
}

func (n *WifiNetwork) Connect(ssid, password string) error {
	output, err := n.Execute(fmt.Sprintf("nmcli device wifi connect %q password %q", ssid, password))
	if err != nil {
		return errors.Wrapf(err, "wifi connect failed: %s", string(output))
	}

	return nil
}
