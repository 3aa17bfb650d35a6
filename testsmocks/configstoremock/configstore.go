/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package configstoremock

import (
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
)

type ConfigStoreMock struct {
	mock.Mock
}

func (cm *ConfigStoreMock) GetInt(api client.ApiRequester, session *client.Session, deviceID, key string) (int, bool, error) {
	args := cm.Called(api, session, deviceID, key)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (cm *ConfigStoreMock) PutInt(api client.ApiRequester, session *client.Session, deviceID, key string, value int) error {
	args := cm.Called(api, session, deviceID, key, value)
	return args.Error(0)
}

func (cm *ConfigStoreMock) PutString(api client.ApiRequester, session *client.Session, deviceID, key, value string) error {
	args := cm.Called(api, session, deviceID, key, value)
	return args.Error(0)
}
