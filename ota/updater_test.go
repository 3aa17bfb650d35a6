/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ota

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/soilwatch/irrigatord/client"
	"github.com/soilwatch/irrigatord/testsmocks/firmwaremock"
	"github.com/soilwatch/irrigatord/testsmocks/flashmock"
)

func testApi() client.ApiRequester {
	return client.NewApiClient("http://localhost", "key").Request()
}

func TestCheckAndApplyWithUpToDateFirmware(t *testing.T) {
	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("1.0.0", nil)

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.NoError(t, err)
	assert.False(t, applied)

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}

func TestCheckAndApplyRejectsMalformedRemoteVersion(t *testing.T) {
	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("2.0", nil)

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.Error(t, err)
	assert.False(t, applied)

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}

func TestCheckAndApplySuccess(t *testing.T) {
	image := []byte("new firmware image")

	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("1.1.0", nil)
	fm.On("DownloadURL", mock.Anything, "model-1").Return("http://cdn/fw.bin", nil)
	fm.On("Download", mock.Anything, "http://cdn/fw.bin", int64(0)).
		Return(ioutil.NopCloser(bytes.NewReader(image)), int64(len(image)), nil)

	staged := &bytes.Buffer{}
	flm.On("Begin", int64(len(image))).Return(staged, nil)
	flm.On("Commit").Return(nil)

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, image, staged.Bytes())

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}

func TestCheckAndApplyWithTruncatedStream(t *testing.T) {
	image := []byte("new firmware image")

	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("1.1.0", nil)
	fm.On("DownloadURL", mock.Anything, "model-1").Return("http://cdn/fw.bin", nil)

	// Stream ends with fewer bytes than declared.
	fm.On("Download", mock.Anything, "http://cdn/fw.bin", int64(0)).
		Return(ioutil.NopCloser(bytes.NewReader(image[:5])), int64(len(image)), nil)

	flm.On("Begin", int64(len(image))).Return(&bytes.Buffer{}, nil)
	flm.On("Abort").Return()

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.Error(t, err)
	assert.False(t, applied)

	flm.AssertNotCalled(t, "Commit")

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}

func TestCheckAndApplyWithUnknownContentLength(t *testing.T) {
	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("1.1.0", nil)
	fm.On("DownloadURL", mock.Anything, "model-1").Return("http://cdn/fw.bin", nil)
	fm.On("Download", mock.Anything, "http://cdn/fw.bin", int64(0)).
		Return(ioutil.NopCloser(bytes.NewReader(nil)), int64(-1), nil)

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.Error(t, err)
	assert.False(t, applied)

	flm.AssertNotCalled(t, "Begin", mock.Anything)

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}

func TestCheckAndApplyWithStagingRejection(t *testing.T) {
	image := []byte("new firmware image")

	fm := &firmwaremock.FirmwareFetcherMock{}
	flm := &flashmock.FirmwareWriterMock{}

	fm.On("LatestVersion", mock.Anything, "model-1").Return("1.1.0", nil)
	fm.On("DownloadURL", mock.Anything, "model-1").Return("http://cdn/fw.bin", nil)
	fm.On("Download", mock.Anything, "http://cdn/fw.bin", int64(0)).
		Return(ioutil.NopCloser(bytes.NewReader(image)), int64(len(image)), nil)

	flm.On("Begin", int64(len(image))).Return(nil, fmt.Errorf("image size exceeds staging capacity"))

	u := NewUpdater(fm, flm, Version{1, 0, 0})

	applied, err := u.CheckAndApply(testApi(), "model-1")
	assert.Error(t, err)
	assert.False(t, applied)

	fm.AssertExpectations(t)
	flm.AssertExpectations(t)
}
