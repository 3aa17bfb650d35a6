/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package reportermock

import (
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
)

type ReporterMock struct {
	mock.Mock
}

func (rm *ReporterMock) PushTelemetry(api client.ApiRequester, session *client.Session, deviceID string, record client.TelemetryRecord) error {
	args := rm.Called(api, session, deviceID, record)
	return args.Error(0)
}
