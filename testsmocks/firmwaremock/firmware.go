/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package firmwaremock

import (
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
)

type FirmwareFetcherMock struct {
	mock.Mock
}

func (fm *FirmwareFetcherMock) LatestVersion(api client.ApiRequester, modelID string) (string, error) {
	args := fm.Called(api, modelID)
	return args.String(0), args.Error(1)
}

func (fm *FirmwareFetcherMock) DownloadURL(api client.ApiRequester, modelID string) (string, error) {
	args := fm.Called(api, modelID)
	return args.String(0), args.Error(1)
}

func (fm *FirmwareFetcherMock) Download(api client.ApiRequester, url string, offset int64) (io.ReadCloser, int64, error) {
	args := fm.Called(api, url, offset)

	rd := args.Get(0)
	if rd == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return rd.(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}
