/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package client talks to the remote telemetry/config store and to the
// firmware service. One authenticated session is established per wake cycle;
// every other call carries that session's token.
package client

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	AuthEndpoint     = "/auth"
	FirmwareEndpoint = "/firmware"
)

type ApiClient struct {
	http.Client

	baseURL string
	apiKey  string
}

func NewApiClient(baseURL, apiKey string) *ApiClient {
	return &ApiClient{
		Client:  http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (client *ApiClient) Request() *ApiRequest {
	return &ApiRequest{
		client: client,
	}
}

type ApiRequest struct {
	client *ApiClient
}

type ApiRequester interface {
	Client() *ApiClient
	Do(req *http.Request) (*http.Response, error)
}

func (r *ApiRequest) Client() *ApiClient {
	return r.client
}

func (r *ApiRequest) Do(req *http.Request) (*http.Response, error) {
	return r.client.Do(req)
}

// Session is the result of a successful sign-in. The uid roots every device
// path on the remote store.
type Session struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

func serverURL(c *ApiClient, path string) string {
	return c.baseURL + path
}

func authURL(c *ApiClient, s *Session, path string) string {
	return fmt.Sprintf("%s%s?auth=%s", c.baseURL, path, s.Token)
}

// DevicePath builds the per-device path under the authenticated user.
func DevicePath(s *Session, deviceID, leaf string) string {
	return fmt.Sprintf("/users/%s/devices/%s/%s", s.UID, deviceID, leaf)
}
