// Package api exposes the orchestrator's observable state to the rendering
// layer over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"InflationPulse/internal/model"
	"InflationPulse/internal/orchestrator"

	"github.com/gorilla/mux"
)

// Server serves the LoadState, DerivedMetrics, and chart-row projections and
// accepts the two externally invocable mutations: refresh and start-year
// change. Cycles started from a request are bound to the server-lifetime
// context, not the request context, so they outlive the response.
type Server struct {
	ctx context.Context
	orc *orchestrator.Orchestrator
}

// NewServer creates a Server bound to the given lifetime context.
func NewServer(ctx context.Context, orc *orchestrator.Orchestrator) *Server {
	return &Server{ctx: ctx, orc: orc}
}

// Router builds the /api/v1 route set.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/state", s.getState).Methods(http.MethodGet)
	api.HandleFunc("/metrics", s.getMetrics).Methods(http.MethodGet)
	api.HandleFunc("/chart", s.getChart).Methods(http.MethodGet)
	api.HandleFunc("/refresh", s.postRefresh).Methods(http.MethodPost)
	api.HandleFunc("/startyear", s.putStartYear).Methods(http.MethodPut)
	return r
}

func (s *Server) getState(w http.ResponseWriter, _ *http.Request) {
	state, _, _ := s.orc.Snapshot()
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) getMetrics(w http.ResponseWriter, _ *http.Request) {
	state, metrics, _ := s.orc.Snapshot()
	if state.Status != model.StatusReady {
		writeJSON(w, http.StatusServiceUnavailable, state)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) getChart(w http.ResponseWriter, _ *http.Request) {
	state, _, rows := s.orc.Snapshot()
	if state.Status != model.StatusReady {
		writeJSON(w, http.StatusServiceUnavailable, state)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) postRefresh(w http.ResponseWriter, _ *http.Request) {
	s.orc.Reload(s.ctx)
	state, _, _ := s.orc.Snapshot()
	writeJSON(w, http.StatusAccepted, state)
}

func (s *Server) putStartYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1913 || year > time.Now().Year() {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	s.orc.SetStartYear(s.ctx, year)
	state, _, _ := s.orc.Snapshot()
	writeJSON(w, http.StatusAccepted, state)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
