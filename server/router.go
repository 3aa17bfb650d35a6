/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"github.com/julienschmidt/httprouter"
)

type BackendRouter struct {
	backend    Backend
	HTTPRouter *httprouter.Router
}

func NewBackendRouter(b Backend) *BackendRouter {
	br := &BackendRouter{
		backend:    b,
		HTTPRouter: httprouter.New(),
	}

	for _, route := range br.backend.Routes() {
		br.HTTPRouter.Handle(route.Method, route.Path, route.Handle)
	}

	return br
}
