/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/OSSystems/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/soilwatch/irrigatord/client"
	"github.com/soilwatch/irrigatord/config"
	"github.com/soilwatch/irrigatord/hal"
	"github.com/soilwatch/irrigatord/irrigatord"
	"github.com/soilwatch/irrigatord/journal"
	"github.com/soilwatch/irrigatord/mirror"
	"github.com/soilwatch/irrigatord/ota"
	"github.com/soilwatch/irrigatord/server"
	"github.com/soilwatch/irrigatord/timesync"
)

// Set at build time: -ldflags "-X main.version=..."
var version = "0.1.0"

const stagingCapacity = 16 << 20

func main() {
	configPath := flag.String("config", "/etc/irrigatord/device.conf", "device config file")
	stateDir := flag.String("state-dir", "/var/lib/irrigatord", "retained state directory")
	logLevel := flag.String("log-level", "info", "log level")
	foreground := flag.Bool("foreground", false, "run on simulated hardware with in-process sleep")
	listen := flag.String("listen", "localhost:8313", "debug server address (foreground mode)")
	ntpServer := flag.String("ntp-server", "pool.ntp.org", "NTP server")
	utcOffset := flag.Int("utc-offset", 0, "UTC offset in seconds")
	sensorPin := flag.Int("sensor-pin", 17, "sensor power GPIO pin")
	pumpPin := flag.Int("pump-pin", 27, "pump GPIO pin")
	adcChannel := flag.Int("adc-channel", 0, "moisture ADC channel")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	osFs := afero.NewOsFs()

	cfg, err := config.LoadDeviceConfig(osFs, *configPath)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}

	current := ota.MustParseVersion(version)

	var io hal.SensorActuator
	var net hal.Network
	var suspender hal.Suspender
	var rebooter hal.Rebooter

	if *foreground {
		sim := hal.NewSimBoard(osFs, filepath.Join(*stateDir, "moisture"))
		io, net, suspender, rebooter = sim, sim, sim, sim
	} else {
		board, err := hal.NewRPiBoard(*sensorPin, *pumpPin, byte(*adcChannel))
		if err != nil {
			log.Fatal(err)
			os.Exit(1)
		}

		cmdline := &hal.CmdLine{}
		io = board
		net = &hal.WifiNetwork{CmdLineExecuter: cmdline}
		suspender = &hal.RTCSuspender{CmdLineExecuter: cmdline}
		rebooter = &hal.SystemRebooter{CmdLineExecuter: cmdline}
	}

	wake := &hal.MarkerWakeDetector{Fs: osFs, Path: filepath.Join(*stateDir, "wake.marker")}

	api := client.NewApiClient(cfg.DatabaseURL, cfg.APIKey)

	flash := &hal.StagedFlash{
		Fs:          osFs,
		StagingPath: filepath.Join(*stateDir, "firmware.staged"),
		InstallPath: filepath.Join(*stateDir, "firmware.img"),
		Capacity:    stagingCapacity,
	}

	updater := ota.NewUpdater(client.NewFirmwareClient(), flash, current)

	timeSource := &timesync.NTPSource{Server: *ntpServer, Timeout: 5 * time.Second}

	agent := irrigatord.NewAgent(
		current,
		cfg,
		osFs,
		*configPath,
		filepath.Join(*stateDir, "cycle.state"),
		io,
		net,
		suspender,
		rebooter,
		wake,
		timeSource,
		time.Duration(*utcOffset)*time.Second,
		api,
		updater)

	jdb, err := journal.Open(filepath.Join(*stateDir, "journal.db"))
	if err != nil {
		log.Warn("cycle journal disabled: ", err)
	} else {
		agent.Journal = jdb
		defer jdb.Close()
	}

	if cfg.MQTTBroker != "" {
		m, err := mirror.New(cfg.MQTTBroker, "irrigatord-"+cfg.DeviceID)
		if err != nil {
			log.Warn("telemetry mirror disabled: ", err)
		} else {
			agent.Mirror = m
			defer m.Close()
		}
	}

	if *foreground {
		go func() {
			router := server.NewBackendRouter(server.NewAgentBackend(agent, jdb))
			if err := http.ListenAndServe(*listen, router.HTTPRouter); err != nil {
				log.Error(err)
			}
		}()
	}

	d := irrigatord.NewDaemon(agent)

	os.Exit(d.Run())
}
