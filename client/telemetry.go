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

// TelemetryRecord is one append-only entry in the device's data log.
// PumpOnSeconds carries the effective (possibly carried-over) pump-on time,
// so a record is never lost even when the push that should have reported it
// failed in an earlier cycle.
type TelemetryRecord struct {
	Moisture      int   `json:"moisture"`
	PumpOnSeconds int   `json:"pump_on_seconds"`
	TimedOut      bool  `json:"timed_out"`
	Timestamp     int64 `json:"ts"`
}

type ReportClient struct {
}

type Reporter interface {
	PushTelemetry(api ApiRequester, session *Session, deviceID string, record TelemetryRecord) error
}

func (u *ReportClient) PushTelemetry(api ApiRequester, session *Session, deviceID string, record TelemetryRecord) error {
	if api == nil {
		finalErr := fmt.Errorf("invalid api requester")
		log.Error(finalErr)
		return finalErr
	}

	url := authURL(api.Client(), session, DevicePath(session, deviceID, "data"))

	body, err := json.Marshal(record)
	if err != nil {
		finalErr := fmt.Errorf("failed to marshal telemetry record: %s", err)
		log.Error(finalErr)
		return finalErr
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		finalErr := fmt.Errorf("failed to create telemetry request: %s", err)
		log.Error(finalErr)
		return finalErr
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := api.Do(req)
	if err != nil {
		finalErr := fmt.Errorf("telemetry request failed: %s", err)
		log.Error(finalErr)
		return finalErr
	}

	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated:
		log.Info("telemetry record pushed: moisture=", record.Moisture,
			" pump_on_seconds=", record.PumpOnSeconds)
		return nil
	}

	finalErr := fmt.Errorf("failed to push telemetry. HTTP code: %d", res.StatusCode)
	log.Error(finalErr)
	return finalErr
}

func NewReportClient() *ReportClient {
	return &ReportClient{}
}
