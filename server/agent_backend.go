/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soilwatch/irrigatord/irrigatord"
	"github.com/soilwatch/irrigatord/journal"
)

type AgentBackend struct {
	agent   *irrigatord.Agent
	journal *journal.DB
}

func NewAgentBackend(agent *irrigatord.Agent, journal *journal.DB) *AgentBackend {
	return &AgentBackend{agent: agent, journal: journal}
}

func (ab *AgentBackend) Routes() []Route {
	metrics := promhttp.Handler()

	return []Route{
		{Method: "GET", Path: "/info", Handle: ab.info},
		{Method: "GET", Path: "/status", Handle: ab.status},
		{Method: "GET", Path: "/history", Handle: ab.history},
		{Method: "GET", Path: "/metrics", Handle: func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			metrics.ServeHTTP(w, r)
		}},
	}
}

func (ab *AgentBackend) info(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	cfg := *ab.agent.Config
	cfg.WifiPassword = "<redacted>"
	cfg.AccountPassword = "<redacted>"
	cfg.APIKey = "<redacted>"

	out := map[string]interface{}{}
	out["version"] = ab.agent.Version.String()
	out["config"] = cfg

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (ab *AgentBackend) status(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := ab.agent.GetState().ToMap()
	out["last-reading"] = ab.agent.LastReading()

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (ab *AgentBackend) history(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if ab.journal == nil {
		w.WriteHeader(404)
		fmt.Fprint(w, `{ "error": "journal disabled" }`)
		return
	}

	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n <= 0 {
		n = 20
	}

	entries, err := ab.journal.Recent(n)
	if err != nil {
		w.WriteHeader(500)

		out := map[string]interface{}{"error": err.Error()}
		outputJSON, _ := json.MarshalIndent(out, "", "    ")
		fmt.Fprint(w, string(outputJSON))
		return
	}

	outputJSON, _ := json.MarshalIndent(entries, "", "    ")

	w.WriteHeader(200)
	fmt.Fprint(w, string(outputJSON))
}
