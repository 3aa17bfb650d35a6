/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package irrigatord sequences one wake cycle of the watering device as a
// state machine: boot, sense, actuate, connect, sync, report, reconcile,
// update check, then sleep. Every path ends in suspension (or in the
// immediate restart after a verified firmware flash), so the device never
// stays awake or leaves an actuator powered.
package irrigatord

import (
	"sync"
	"time"

	"github.com/OSSystems/pkg/log"
	"github.com/spf13/afero"

	"github.com/soilwatch/irrigatord/client"
	"github.com/soilwatch/irrigatord/config"
	"github.com/soilwatch/irrigatord/hal"
	"github.com/soilwatch/irrigatord/irrigation"
	"github.com/soilwatch/irrigatord/journal"
	"github.com/soilwatch/irrigatord/ota"
	"github.com/soilwatch/irrigatord/timesync"
)

const (
	// DefaultConnectRetries bounds the network connect loop.
	DefaultConnectRetries = 20

	// DefaultConnectRetryDelay is the wait between connect attempts.
	DefaultConnectRetryDelay = 500 * time.Millisecond
)

// TelemetryMirror is an optional secondary sink for telemetry records.
// Failures are logged and never retried; the remote store stays the
// at-least-once channel of record.
type TelemetryMirror interface {
	Publish(deviceID string, record client.TelemetryRecord) error
}

// Agent owns everything one wake cycle touches. It is built once in main and
// driven by the Daemon; all mutation happens on the single state-machine
// flow.
type Agent struct {
	Version ota.Version

	Config    *config.DeviceConfig
	Cycle     *config.CycleState
	Store     afero.Fs
	StatePath string

	// ConfigPath is where reconciliation rewrites the tunables.
	ConfigPath string

	IO        hal.SensorActuator
	Net       hal.Network
	Suspender hal.Suspender
	Rebooter  hal.Rebooter
	Wake      hal.WakeDetector

	Irrigation *irrigation.Controller
	TimeSource timesync.Source
	UTCOffset  time.Duration

	Api          *client.ApiClient
	Auth         client.Authenticator
	Reporter     client.Reporter
	RemoteConfig client.ConfigStore
	Updater      *ota.Updater

	Journal *journal.DB
	Mirror  TelemetryMirror

	ConnectRetries    int
	ConnectRetryDelay time.Duration

	// Sleep and Now are injected so tests run without real delays and with
	// a fixed clock.
	Sleep func(time.Duration)
	Now   func() time.Time

	// Per-cycle scratch, reset at boot. Deep sleep wipes RAM, so nothing
	// here survives a cycle except through CycleState.
	session    *client.Session
	reading    irrigation.Reading
	timeSample timesync.Sample
	pushOK     bool
	sleepFor   time.Duration

	state         State
	previousState State
	stateMutex    sync.Mutex
}

func NewAgent(
	version ota.Version,
	cfg *config.DeviceConfig,
	fs afero.Fs,
	configPath string,
	statePath string,
	io hal.SensorActuator,
	net hal.Network,
	suspender hal.Suspender,
	rebooter hal.Rebooter,
	wake hal.WakeDetector,
	timeSource timesync.Source,
	utcOffset time.Duration,
	api *client.ApiClient,
	updater *ota.Updater) *Agent {

	a := &Agent{
		Version:           version,
		Config:            cfg,
		Store:             fs,
		ConfigPath:        configPath,
		StatePath:         statePath,
		IO:                io,
		Net:               net,
		Suspender:         suspender,
		Rebooter:          rebooter,
		Wake:              wake,
		Irrigation:        irrigation.NewController(io),
		TimeSource:        timeSource,
		UTCOffset:         utcOffset,
		Api:               api,
		Auth:              client.NewAuthClient(),
		Reporter:          client.NewReportClient(),
		RemoteConfig:      client.NewConfigClient(),
		Updater:           updater,
		ConnectRetries:    DefaultConnectRetries,
		ConnectRetryDelay: DefaultConnectRetryDelay,
		Sleep:             time.Sleep,
		Now:               time.Now,
		state:             NewBootState(),
	}

	return a
}

func (a *Agent) GetState() State {
	a.stateMutex.Lock()
	defer a.stateMutex.Unlock()

	return a.state
}

func (a *Agent) SetState(state State) {
	a.stateMutex.Lock()
	defer a.stateMutex.Unlock()

	a.state = state
}

// ProcessCurrentState runs the current state's behavior and returns the next
// state.
func (a *Agent) ProcessCurrentState() State {
	next := a.state.Handle(a)

	log.Debug("state transition: ", StateToString(a.state.ID()), " -> ", StateToString(next.ID()))

	a.previousState = a.state

	return next
}

// resetCycle clears the per-cycle scratch. Run at boot to honor the "RAM is
// gone" contract even in foreground mode, where the process survives across
// cycles.
func (a *Agent) resetCycle() {
	a.session = nil
	a.reading = irrigation.Reading{}
	a.timeSample = timesync.Sample{}
	a.pushOK = false
	a.sleepFor = 0
}

// staleSample rebuilds the last persisted time fields as an invalid sample,
// usable for day-of-month comparison but never for quiet-hours math.
func (a *Agent) staleSample() timesync.Sample {
	return timesync.Sample{
		Valid:  false,
		Hour:   a.Cycle.LastHour,
		Minute: a.Cycle.LastMinute,
		Day:    a.Cycle.LastDay,
	}
}

func (a *Agent) wakePeriod() time.Duration {
	return time.Duration(a.Config.WakePeriod) * time.Second
}

// LastReading exposes the cycle's reading for the debug server.
func (a *Agent) LastReading() irrigation.Reading {
	return a.reading
}
