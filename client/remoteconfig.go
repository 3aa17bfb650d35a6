/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/OSSystems/pkg/log"
)

// ConfigStore reads and writes the per-device tunables on the remote store.
// GetInt reports absence separately from failure so the daily reconciliation
// can publish a missing parameter instead of treating it as an error.
type ConfigStore interface {
	GetInt(api ApiRequester, session *Session, deviceID, key string) (value int, present bool, err error)
	PutInt(api ApiRequester, session *Session, deviceID, key string, value int) error
	PutString(api ApiRequester, session *Session, deviceID, key, value string) error
}

type ConfigClient struct {
}

func (u *ConfigClient) GetInt(api ApiRequester, session *Session, deviceID, key string) (int, bool, error) {
	url := authURL(api.Client(), session, DevicePath(session, deviceID, key))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create config read request: %s", err)
	}

	res, err := api.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("config read failed for %q: %s", key, err)
	}

	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var v int
		if err = json.NewDecoder(res.Body).Decode(&v); err != nil {
			return 0, false, fmt.Errorf("unparsable remote value for %q: %s", key, err)
		}
		return v, true, nil
	case http.StatusNotFound:
		// Absent on the remote store, the local value will be published.
		return 0, false, nil
	}

	return 0, false, fmt.Errorf("config read for %q failed. HTTP code: %d", key, res.StatusCode)
}

func (u *ConfigClient) PutInt(api ApiRequester, session *Session, deviceID, key string, value int) error {
	return u.put(api, session, deviceID, key, value)
}

func (u *ConfigClient) PutString(api ApiRequester, session *Session, deviceID, key, value string) error {
	return u.put(api, session, deviceID, key, value)
}

func (u *ConfigClient) put(api ApiRequester, session *Session, deviceID, key string, value interface{}) error {
	url := authURL(api.Client(), session, DevicePath(session, deviceID, key))

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %s", key, err)
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create config write request: %s", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := api.Do(req)
	if err != nil {
		return fmt.Errorf("config write failed for %q: %s", key, err)
	}

	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		log.Info("remote config ", key, " written")
		return nil
	}

	return fmt.Errorf("config write for %q failed. HTTP code: %d", key, res.StatusCode)
}

func NewConfigClient() *ConfigClient {
	return &ConfigClient{}
}
