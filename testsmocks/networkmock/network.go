/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package networkmock

import (
	"github.com/stretchr/testify/mock"
)

type NetworkMock struct {
	mock.Mock
}

func (nm *NetworkMock) Connect(ssid, password string) error {
	args := nm.Called(ssid, password)
	return args.Error(0)
}
