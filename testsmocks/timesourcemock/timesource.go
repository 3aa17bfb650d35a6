/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package timesourcemock

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type TimeSourceMock struct {
	mock.Mock
}

func (tm *TimeSourceMock) Now() (time.Time, error) {
	args := tm.Called()
	return args.Get(0).(time.Time), args.Error(1)
}
