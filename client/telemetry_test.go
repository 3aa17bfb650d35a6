/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushTelemetry(t *testing.T) {
	var receivedPath string
	var receivedToken string
	var receivedRecord TelemetryRecord

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		receivedPath = r.URL.Path
		receivedToken = r.URL.Query().Get("auth")

		err := json.NewDecoder(r.Body).Decode(&receivedRecord)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	api := NewApiClient(ts.URL, "the-api-key").Request()
	session := &Session{UID: "uid-1", Token: "tok-1"}

	record := TelemetryRecord{
		Moisture:      5600,
		PumpOnSeconds: 12,
		TimedOut:      false,
		Timestamp:     1756512000,
	}

	err := NewReportClient().PushTelemetry(api, session, "device-1", record)
	assert.NoError(t, err)

	assert.Equal(t, "/users/uid-1/devices/device-1/data", receivedPath)
	assert.Equal(t, "tok-1", receivedToken)
	assert.Equal(t, record, receivedRecord)
}

func TestPushTelemetryWithInvalidApiRequester(t *testing.T) {
	err := NewReportClient().PushTelemetry(nil, &Session{}, "device-1", TelemetryRecord{})
	assert.EqualError(t, err, "invalid api requester")
}

func TestPushTelemetryWithServerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	api := NewApiClient(ts.URL, "the-api-key").Request()
	session := &Session{UID: "uid-1", Token: "tok-1"}

	err := NewReportClient().PushTelemetry(api, session, "device-1", TelemetryRecord{})
	assert.EqualError(t, err, "failed to push telemetry. HTTP code: 500")
}
