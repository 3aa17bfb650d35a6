/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package server is the foreground-mode debug surface: a small HTTP API
// exposing the agent's state, recent history and metrics on localhost.
package server

import "github.com/julienschmidt/httprouter"

type Route struct {
	Method string
	Path   string
	Handle httprouter.Handle
}

type Backend interface {
	Routes() []Route
}
