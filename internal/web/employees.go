package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type employeesPage struct {
	Title     string
	Flash     Flash
	Employees []models.Employee
}

func (s *Server) handleEmployeesPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	employees, err := s.svc.Employees.ListEmployees(r.Context())
	if err != nil {
		s.log.Error("failed to list employees", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load employees."}
		employees = nil
	}

	s.render(w, "employees.gohtml", employeesPage{Title: "Employees", Flash: flash, Employees: employees})
}

func (s *Server) handleEmployeeAdd(w http.ResponseWriter, r *http.Request) {
	req := primary.AddEmployeeRequest{
		Code:  strings.TrimSpace(r.FormValue("code")),
		Name:  strings.TrimSpace(r.FormValue("name")),
		Phone: strings.TrimSpace(r.FormValue("phone")),
		Role:  strings.TrimSpace(r.FormValue("role")),
	}
	if err := s.svc.Employees.AddEmployee(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Employee added.")
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

func (s *Server) handleEmployeeEdit(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateEmployeeRequest{
		Code:  chi.URLParam(r, "code"),
		Name:  strings.TrimSpace(r.FormValue("name")),
		Phone: strings.TrimSpace(r.FormValue("phone")),
		Role:  strings.TrimSpace(r.FormValue("role")),
	}
	if err := s.svc.Employees.UpdateEmployee(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Employee updated.")
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

func (s *Server) handleEmployeeDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Employees.DeleteEmployee(r.Context(), chi.URLParam(r, "code")); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Employee deleted.")
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
