package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/medfleet/internal/core/report"
	"github.com/example/medfleet/internal/ports/primary"
)

type dashboardPage struct {
	Title   string
	Flash   Flash
	Summary report.Summary
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	summary, err := s.svc.Dashboard.Summary(r.Context())
	if err != nil {
		s.log.Error("failed to build dashboard summary", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load dashboard data."}
		summary = report.Summary{}
	}

	s.render(w, "dashboard.gohtml", dashboardPage{Title: "Dashboard", Flash: flash, Summary: summary})
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	primary.StatusCounts
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	counts, err := s.svc.Status.Counts(r.Context())
	if err != nil {
		s.log.Error("health check failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(healthResponse{Status: "error", Error: err.Error()})
		return
	}
	json.NewEncoder(w).Encode(healthResponse{Status: "ok", StatusCounts: counts})
}
