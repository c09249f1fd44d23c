// File: route.go
// Role: the POST /route handler — decode a request, run
// negotiate.Router, encode the response.
package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wiregraph/gridroute/metrics"
	"github.com/wiregraph/gridroute/negotiate"
	"github.com/wiregraph/gridroute/planio"
)

// routeRequest is the POST /route body: a textual graph (planio's
// NODE/EDGE format) plus a plan in planio's JSON wire form, with
// optional solver tuning knobs.
type routeRequest struct {
	Graph         string          `json:"graph"`
	Plan          json.RawMessage `json:"plan"`
	Solver        string          `json:"solver"`
	HistFactor    float64         `json:"hist_factor"`
	PresentFactor float64         `json:"present_factor"`
	MaxIterations int             `json:"max_iterations"`
}

// routeResponse is the POST /route response: the terminal outcome, the
// routed plan (planio JSON wire form), and the per-iteration metrics.
type routeResponse struct {
	Outcome    string          `json:"outcome"`
	Iterations int             `json:"iterations"`
	Conflicts  int             `json:"conflicts"`
	Plan       json.RawMessage `json:"plan"`
	Metrics    []metrics.Row   `json:"metrics"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "route: method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "route: "+err.Error(), http.StatusBadRequest)
		return
	}

	g, err := planio.ParseGraph(strings.NewReader(req.Graph))
	if err != nil {
		http.Error(w, "route: "+err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := planio.ReadPlan(bytes.NewReader(req.Plan), g)
	if err != nil {
		http.Error(w, "route: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := negotiate.DefaultOptions()
	if req.Solver != "" {
		cfg.Solver = negotiate.Solver(req.Solver)
	}
	if req.HistFactor != 0 {
		cfg.HistFactor = req.HistFactor
	}
	if req.PresentFactor != 0 {
		cfg.PresentFactor = req.PresentFactor
	}
	if req.MaxIterations != 0 {
		cfg.MaxIterations = req.MaxIterations
	}

	router := negotiate.NewRouter(g, cfg, s.logger)
	result, err := router.Route(r.Context(), plan)
	if err != nil {
		s.logger.Error().Err(err).Msg("route: router returned an error")
		http.Error(w, "route: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var planBuf bytes.Buffer
	if err := planio.WritePlan(&planBuf, g, result.Plan); err != nil {
		s.logger.Error().Err(err).Msg("route: failed to encode routed plan")
		http.Error(w, "route: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := routeResponse{
		Outcome:    result.Outcome.Kind.String(),
		Iterations: result.Outcome.Iterations,
		Conflicts:  result.Outcome.Conflicts,
		Plan:       json.RawMessage(planBuf.Bytes()),
		Metrics:    result.Metrics,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("route: failed to write response")
	}
}
