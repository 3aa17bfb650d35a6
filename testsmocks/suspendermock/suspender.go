/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package suspendermock

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type SuspenderMock struct {
	mock.Mock
}

func (sm *SuspenderMock) Suspend(d time.Duration) error {
	args := sm.Called(d)
	return args.Error(0)
}
