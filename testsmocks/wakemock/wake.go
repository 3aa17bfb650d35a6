/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package wakemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/hal"
)

type WakeDetectorMock struct {
	mock.Mock
}

func (wm *WakeDetectorMock) Cause() hal.WakeCause {
	args := wm.Called()
	return args.Get(0).(hal.WakeCause)
}

func (wm *WakeDetectorMock) Arm() error {
	args := wm.Called()
	return args.Error(0)
}
