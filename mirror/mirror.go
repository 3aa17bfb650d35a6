/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package mirror republishes telemetry records to a local MQTT broker so
// home-automation setups can consume readings without touching the remote
// store. It is strictly secondary: publish failures are reported and
// forgotten.
package mirror

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"

	"github.com/soilwatch/irrigatord/client"
)

const publishTimeout = 5 * time.Second

type Mirror struct {
	client mqtt.Client
}

func New(broker, clientID string) (*Mirror, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(false)

	c := mqtt.NewClient(opts)

	token := c.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		return nil, errors.Errorf("mqtt connect to %s failed: %v", broker, token.Error())
	}

	return &Mirror{client: c}, nil
}

func (m *Mirror) Publish(deviceID string, record client.TelemetryRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to marshal telemetry record")
	}

	topic := fmt.Sprintf("irrigatord/%s/telemetry", deviceID)

	token := m.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errors.Errorf("mqtt publish to %s timed out", topic)
	}

	return token.Error()
}

func (m *Mirror) Close() {
	m.client.Disconnect(250)
}
