/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package mirrormock

import (
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
)

type MirrorMock struct {
	mock.Mock
}

func (mm *MirrorMock) Publish(deviceID string, record client.TelemetryRecord) error {
	args := mm.Called(deviceID, record)
	return args.Error(0)
}
