/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"bytes"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	DefaultWakePeriod   = 3600 // seconds
	DefaultDryThreshold = 5500 // raw ADC units
	DefaultWetThreshold = 4000
)

func init() {
	ini.PrettyFormat = false
}

// DeviceConfig holds the provisioned identity and tunables of the device.
// It is loaded once at the start of a wake cycle and treated as immutable
// for the rest of the cycle, except for the daily reconciliation step which
// may rewrite the tunables and persist them.
type DeviceConfig struct {
	DeviceID        string `ini:"id"`
	WifiSSID        string `ini:"wifi_ssid"`
	WifiPassword    string `ini:"wifi_password"`
	APIKey          string `ini:"api_key"`
	DatabaseURL     string `ini:"rtdb_url"`
	AccountEmail    string `ini:"fb_email"`
	AccountPassword string `ini:"fb_password"`
	DryThreshold    int    `ini:"moist_dry"`
	WetThreshold    int    `ini:"moist_wet"`
	WakePeriod      int    `ini:"wake_period"`
	ModelID         string `ini:"model"`

	// Optional. When set, telemetry records are mirrored to this MQTT broker.
	MQTTBroker string `ini:"mqtt_broker"`
}

func defaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		DryThreshold: DefaultDryThreshold,
		WetThreshold: DefaultWetThreshold,
		WakePeriod:   DefaultWakePeriod,
		ModelID:      "soilwatch-a1",
	}
}

// Validate checks the invariants the rest of the agent relies on.
func (c *DeviceConfig) Validate() error {
	if c.DeviceID == "" {
		return errors.New("device id must not be empty")
	}

	if c.DatabaseURL == "" {
		return errors.New("database url must not be empty")
	}

	if c.DryThreshold <= c.WetThreshold {
		return errors.Errorf("dry threshold (%d) must be greater than wet threshold (%d)",
			c.DryThreshold, c.WetThreshold)
	}

	if c.WakePeriod <= 0 {
		return errors.Errorf("wake period (%d) must be positive", c.WakePeriod)
	}

	return nil
}

// LoadDeviceConfig reads the provisioned config file. The file is created
// out-of-band by the setup tool; a missing or invalid file is an error since
// the device cannot do anything useful without its identity.
func LoadDeviceConfig(fs afero.Fs, path string) (*DeviceConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read device config")
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse device config")
	}

	c := defaultDeviceConfig()

	err = cfg.MapTo(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map device config")
	}

	if err = c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// SaveDeviceConfig persists the config. Used by the setup tool and by the
// daily reconciliation step when a remote tunable wins over the local one.
func SaveDeviceConfig(fs afero.Fs, path string, c *DeviceConfig) error {
	cfg := ini.Empty()

	err := ini.ReflectFrom(cfg, c)
	if err != nil {
		return errors.Wrap(err, "failed to serialize device config")
	}

	var buf bytes.Buffer
	if _, err = cfg.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "failed to write device config")
	}

	return afero.WriteFile(fs, path, buf.Bytes(), 0600)
}
