// Package app implements the primary ports: validation, CRUD
// orchestration and the aggregation services behind the dashboard,
// roster and exports.
package app

import (
	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/secondary"
)

func recordToEmployee(rec *secondary.EmployeeRecord) models.Employee {
	return models.Employee{Code: rec.Code, Name: rec.Name, Phone: rec.Phone, Role: rec.Role}
}

func recordsToEmployees(recs []*secondary.EmployeeRecord) []models.Employee {
	employees := make([]models.Employee, 0, len(recs))
	for _, rec := range recs {
		employees = append(employees, recordToEmployee(rec))
	}
	return employees
}

func recordToVehicle(rec *secondary.VehicleRecord) models.Vehicle {
	return models.Vehicle{
		Plate:       rec.Plate,
		Model:       rec.Model,
		Status:      rec.Status,
		LastService: rec.LastService,
		Notes:       rec.Notes,
	}
}

func recordsToVehicles(recs []*secondary.VehicleRecord) []models.Vehicle {
	vehicles := make([]models.Vehicle, 0, len(recs))
	for _, rec := range recs {
		vehicles = append(vehicles, recordToVehicle(rec))
	}
	return vehicles
}

func recordToShift(rec *secondary.ShiftRecord) models.Shift {
	return models.Shift{
		ID:           rec.ID,
		Date:         rec.Date,
		Period:       rec.Period,
		EmployeeCode: rec.EmployeeCode,
		Sector:       rec.Sector,
		ChiefName:    rec.ChiefName,
	}
}

func recordsToShifts(recs []*secondary.ShiftRecord) []models.Shift {
	shifts := make([]models.Shift, 0, len(recs))
	for _, rec := range recs {
		shifts = append(shifts, recordToShift(rec))
	}
	return shifts
}

func recordToTeamDay(rec *secondary.TeamDayRecord) models.TeamDay {
	return models.TeamDay{
		ID:           rec.ID,
		Date:         rec.Date,
		MorningTeams: rec.MorningTeams,
		EveningTeams: rec.EveningTeams,
		FullTeams:    rec.FullTeams,
		Notes:        rec.Notes,
	}
}

func recordsToTeamDays(recs []*secondary.TeamDayRecord) []models.TeamDay {
	teams := make([]models.TeamDay, 0, len(recs))
	for _, rec := range recs {
		teams = append(teams, recordToTeamDay(rec))
	}
	return teams
}

func recordToTask(rec *secondary.TaskRecord) models.Task {
	return models.Task{
		ID:             rec.ID,
		EmployeeName:   rec.EmployeeName,
		Description:    rec.Description,
		SupervisorName: rec.SupervisorName,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func recordsToTasks(recs []*secondary.TaskRecord) []models.Task {
	tasks := make([]models.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, recordToTask(rec))
	}
	return tasks
}
