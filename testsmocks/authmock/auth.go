/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package authmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
)

type AuthenticatorMock struct {
	mock.Mock
}

func (am *AuthenticatorMock) SignIn(api client.ApiRequester, email, password string) (*client.Session, error) {
	args := am.Called(api, email, password)

	s := args.Get(0)
	if s == nil {
		return nil, args.Error(1)
	}

	return s.(*client.Session), args.Error(1)
}
