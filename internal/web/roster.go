package web

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/example/medfleet/internal/core/roster"
	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type rosterPage struct {
	Title   string
	Flash   Flash
	Month   string
	Grid    *roster.Grid
	Periods []string
}

func (s *Server) handleRosterPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	month := r.URL.Query().Get("month")
	if month == "" {
		month = s.now().Format(roster.MonthLayout)
	}

	grid, err := s.svc.Roster.Grid(r.Context(), month)
	if err != nil {
		s.log.Error("failed to build roster grid", zap.String("month", month), zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load the roster for " + month + "."}
		grid = &roster.Grid{Month: month}
	}

	s.render(w, "roster.gohtml", rosterPage{
		Title:   "Roster",
		Flash:   flash,
		Month:   month,
		Grid:    grid,
		Periods: []string{models.PeriodDay, models.PeriodNight, models.PeriodFull, models.PeriodOff},
	})
}

func (s *Server) handleRosterUpdate(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateCellRequest{
		Month:        strings.TrimSpace(r.FormValue("month")),
		EmployeeCode: strings.TrimSpace(r.FormValue("employee_code")),
		Date:         strings.TrimSpace(r.FormValue("date")),
		Period:       strings.TrimSpace(r.FormValue("period")),
	}
	if err := s.svc.Roster.UpdateCell(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Roster updated.")
	}

	target := "/roster"
	if req.Month != "" {
		target += "?month=" + req.Month
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
