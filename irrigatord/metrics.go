/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package irrigatord

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle counters for the foreground-mode metrics endpoint. On real hardware
// the process restarts every wake, so these only accumulate while developing.
var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "irrigatord_cycles_total",
		Help: "Total number of wake cycles completed.",
	})
	pumpSecondsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "irrigatord_pump_seconds_total",
		Help: "Total seconds the pump was driven on.",
	})
	telemetryPushedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "irrigatord_telemetry_pushed_total",
		Help: "Total number of telemetry records acknowledged by the remote store.",
	})
	telemetryFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "irrigatord_telemetry_failures_total",
		Help: "Total number of telemetry pushes that failed and were left pending.",
	})
	otaAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "irrigatord_ota_applied_total",
		Help: "Total number of firmware images staged and verified.",
	})
)
