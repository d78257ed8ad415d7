package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type teamsPage struct {
	Title string
	Flash Flash
	Date  string
	Teams []models.TeamDay
}

func (s *Server) handleTeamsPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)
	date := r.URL.Query().Get("date")

	teams, err := s.svc.Teams.ListTeamDays(r.Context(), date)
	if err != nil {
		s.log.Error("failed to list team days", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load team entries."}
		teams = nil
	}

	s.render(w, "teams.gohtml", teamsPage{Title: "Teams", Flash: flash, Date: date, Teams: teams})
}

// formCount parses a team count field. Missing or malformed values count
// as zero; negatives are left to the service to reject.
func formCount(r *http.Request, field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) handleTeamAdd(w http.ResponseWriter, r *http.Request) {
	req := primary.SaveTeamDayRequest{
		Date:         strings.TrimSpace(r.FormValue("date")),
		MorningTeams: formCount(r, "morning_teams"),
		EveningTeams: formCount(r, "evening_teams"),
		FullTeams:    formCount(r, "full_teams"),
		Notes:        strings.TrimSpace(r.FormValue("notes")),
	}
	created, err := s.svc.Teams.SaveTeamDay(r.Context(), req)
	switch {
	case err != nil:
		setFlash(w, flashError, err.Error())
	case created:
		setFlash(w, flashSuccess, "Team entry added.")
	default:
		setFlash(w, flashSuccess, "Team entry for "+req.Date+" updated.")
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

func (s *Server) handleTeamEdit(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateTeamDayRequest{
		ID:           chi.URLParam(r, "id"),
		Date:         strings.TrimSpace(r.FormValue("date")),
		MorningTeams: formCount(r, "morning_teams"),
		EveningTeams: formCount(r, "evening_teams"),
		FullTeams:    formCount(r, "full_teams"),
		Notes:        strings.TrimSpace(r.FormValue("notes")),
	}
	if err := s.svc.Teams.UpdateTeamDay(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Team entry updated.")
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}

func (s *Server) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Teams.DeleteTeamDay(r.Context(), chi.URLParam(r, "id")); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Team entry deleted.")
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}
