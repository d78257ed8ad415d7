package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
)

type vehiclesPage struct {
	Title    string
	Flash    Flash
	Vehicles []models.Vehicle
}

func (s *Server) handleVehiclesPage(w http.ResponseWriter, r *http.Request) {
	flash := popFlash(w, r)

	vehicles, err := s.svc.Vehicles.ListVehicles(r.Context())
	if err != nil {
		s.log.Error("failed to list vehicles", zap.Error(err))
		flash = Flash{Kind: flashError, Message: "Failed to load vehicles."}
		vehicles = nil
	}

	s.render(w, "vehicles.gohtml", vehiclesPage{Title: "Vehicles", Flash: flash, Vehicles: vehicles})
}

func (s *Server) handleVehicleAdd(w http.ResponseWriter, r *http.Request) {
	req := primary.AddVehicleRequest{
		Plate:       strings.TrimSpace(r.FormValue("plate")),
		Model:       strings.TrimSpace(r.FormValue("model")),
		Status:      strings.TrimSpace(r.FormValue("status")),
		LastService: strings.TrimSpace(r.FormValue("last_service")),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
	if err := s.svc.Vehicles.AddVehicle(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Vehicle added.")
	}
	http.Redirect(w, r, "/vehicles", http.StatusSeeOther)
}

func (s *Server) handleVehicleEdit(w http.ResponseWriter, r *http.Request) {
	req := primary.UpdateVehicleRequest{
		Plate:       chi.URLParam(r, "plate"),
		Model:       strings.TrimSpace(r.FormValue("model")),
		Status:      strings.TrimSpace(r.FormValue("status")),
		LastService: strings.TrimSpace(r.FormValue("last_service")),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
	if err := s.svc.Vehicles.UpdateVehicle(r.Context(), req); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Vehicle updated.")
	}
	http.Redirect(w, r, "/vehicles", http.StatusSeeOther)
}

func (s *Server) handleVehicleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Vehicles.DeleteVehicle(r.Context(), chi.URLParam(r, "plate")); err != nil {
		setFlash(w, flashError, err.Error())
	} else {
		setFlash(w, flashSuccess, "Vehicle deleted.")
	}
	http.Redirect(w, r, "/vehicles", http.StatusSeeOther)
}
