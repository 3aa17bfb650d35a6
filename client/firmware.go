/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"path"
	"strings"

	"github.com/OSSystems/pkg/log"
	"github.com/anacrolix/missinggo/httptoo"
)

// FirmwareFetcher reads the firmware service metadata and streams the
// binary. Download reports the declared total length alongside the stream so
// the staging area can be sized before any byte is written.
type FirmwareFetcher interface {
	LatestVersion(api ApiRequester, modelID string) (string, error)
	DownloadURL(api ApiRequester, modelID string) (string, error)
	Download(api ApiRequester, url string, offset int64) (io.ReadCloser, int64, error)
}

type FirmwareClient struct {
}

func (u *FirmwareClient) LatestVersion(api ApiRequester, modelID string) (string, error) {
	return u.metadata(api, modelID, "latest")
}

func (u *FirmwareClient) DownloadURL(api ApiRequester, modelID string) (string, error) {
	return u.metadata(api, modelID, "url")
}

func (u *FirmwareClient) metadata(api ApiRequester, modelID, leaf string) (string, error) {
	url := serverURL(api.Client(), path.Join(FirmwareEndpoint, modelID, leaf))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create firmware metadata request: %s", err)
	}

	res, err := api.Do(req)
	if err != nil {
		return "", fmt.Errorf("firmware metadata request failed: %s", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("firmware metadata fetch failed. HTTP code: %d", res.StatusCode)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read firmware metadata: %s", err)
	}

	return strings.Trim(strings.TrimSpace(string(body)), `"`), nil
}

// Download opens the image stream. A positive offset asks the server to
// resume with a Range request; the returned length is always the full image
// size as declared by the server.
func (u *FirmwareClient) Download(api ApiRequester, url string, offset int64) (io.ReadCloser, int64, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, -1, fmt.Errorf("failed to create firmware download request: %s", err)
	}

	if offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	res, err := api.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("firmware download request failed: %s", err)
	}

	switch res.StatusCode {
	case http.StatusOK:
		return res.Body, res.ContentLength, nil
	case http.StatusPartialContent:
		cr, ok := httptoo.ParseBytesContentRange(res.Header.Get("Content-Range"))
		if !ok {
			res.Body.Close()
			return nil, -1, fmt.Errorf("unparsable Content-Range in firmware download response")
		}

		log.Debug(fmt.Sprintf("resuming firmware download: first=%d last=%d length=%d",
			cr.First, cr.Last, cr.Length))

		return res.Body, cr.Length, nil
	}

	res.Body.Close()
	return nil, -1, fmt.Errorf("firmware download failed. HTTP code: %d", res.StatusCode)
}

func NewFirmwareClient() *FirmwareClient {
	return &FirmwareClient{}
}
