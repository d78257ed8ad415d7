package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type shiftsPage struct {
	Title     string
	Flash     Flash
	Month     string
	Shifts    []models.Shift
	Employees []models.Employee
}

func (s *Server) handleShiftsPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)
	month := r.URL.Query().Get("month")

	shifts, err := s.svc.Shifts.ListShifts(r.Context(), month)
	if err != nil {
		s.log.Error("failed to list shifts", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load shifts."}
		shifts = nil
	}
	// Employees feed the assignment dropdown; a load failure there leaves
	// the table usable.
	employees, err := s.svc.Employees.ListEmployees(r.Context())
	if err != nil {
		s.log.Error("failed to list employees", zap.Error(err))
		employees = nil
	}

	s.render(w, "shifts.gohtml", shiftsPage{Title: "Shifts", Flash: flash, Month: month, Shifts: shifts, Employees: employees})
}

func shiftRedirect(month string) string {
	if month == "" {
		return "/shifts"
	}
	return "/shifts?month=" + month
}

func (s *Server) handleShiftAdd(w http.ResponseWriter, r *http.Request) {
	req := primary.AddShiftRequest{
		Date:         strings.TrimSpace(r.FormValue("date")),
		Period:       strings.TrimSpace(r.FormValue("period")),
		EmployeeCode: strings.TrimSpace(r.FormValue("employee_code")),
		Sector:       strings.TrimSpace(r.FormValue("sector")),
		ChiefName:    strings.TrimSpace(r.FormValue("chief_name")),
	}
	if err := s.svc.Shifts.AddShift(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Shift added.")
	}
	http.Redirect(w, r, shiftRedirect(r.FormValue("month")), http.StatusSeeOther)
}

func (s *Server) handleShiftEdit(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateShiftRequest{
		ID:           chi.URLParam(r, "id"),
		Date:         strings.TrimSpace(r.FormValue("date")),
		Period:       strings.TrimSpace(r.FormValue("period")),
		EmployeeCode: strings.TrimSpace(r.FormValue("employee_code")),
		Sector:       strings.TrimSpace(r.FormValue("sector")),
		ChiefName:    strings.TrimSpace(r.FormValue("chief_name")),
	}
	if err := s.svc.Shifts.UpdateShift(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Shift updated.")
	}
	http.Redirect(w, r, shiftRedirect(r.FormValue("month")), http.StatusSeeOther)
}

func (s *Server) handleShiftDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Shifts.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Shift deleted.")
	}
	http.Redirect(w, r, shiftRedirect(r.FormValue("month")), http.StatusSeeOther)
}
