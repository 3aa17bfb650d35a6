/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// irrigatord-setup writes the provisioned device config file. Provisioning
// happens once, out-of-band, before the device is deployed.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/soilwatch/irrigatord/config"
)

func main() {
	cfg := &config.DeviceConfig{}
	var configPath string

	cmd := &cobra.Command{
		Use:   "irrigatord-setup",
		Short: "Provision the irrigatord device config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DeviceID == "" {
				cfg.DeviceID = uuid.New().String()
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			fs := afero.NewOsFs()

			if err := fs.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}

			if err := config.SaveDeviceConfig(fs, configPath, cfg); err != nil {
				return err
			}

			fmt.Printf("wrote %s (device id %s)\n", configPath, cfg.DeviceID)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "/etc/irrigatord/device.conf", "where to write the config file")
	flags.StringVar(&cfg.DeviceID, "id", "", "device id (generated when empty)")
	flags.StringVar(&cfg.WifiSSID, "wifi-ssid", "", "WiFi SSID")
	flags.StringVar(&cfg.WifiPassword, "wifi-password", "", "WiFi password")
	flags.StringVar(&cfg.APIKey, "api-key", "", "remote store API key")
	flags.StringVar(&cfg.DatabaseURL, "database-url", "", "remote store base URL")
	flags.StringVar(&cfg.AccountEmail, "email", "", "remote store account email")
	flags.StringVar(&cfg.AccountPassword, "password", "", "remote store account password")
	flags.IntVar(&cfg.DryThreshold, "dry-threshold", config.DefaultDryThreshold, "ADC value above which the soil is dry")
	flags.IntVar(&cfg.WetThreshold, "wet-threshold", config.DefaultWetThreshold, "ADC value below which the soil is wet")
	flags.IntVar(&cfg.WakePeriod, "wake-period", config.DefaultWakePeriod, "regular wake period in seconds")
	flags.StringVar(&cfg.ModelID, "model", "soilwatch-a1", "firmware model id")
	flags.StringVar(&cfg.MQTTBroker, "mqtt-broker", "", "optional MQTT broker for the telemetry mirror")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
