package app

import (
	"context"
	"testing"

	"github.com/example/medfleet/internal/ports/secondary"
)

func TestDashboardSummary(t *testing.T) {
	employees := &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E1", Name: "Ana", Phone: "1", Role: "Paramedic"},
		{Code: "E2", Name: "Bea", Phone: "2", Role: "Driver"},
	}}
	vehicles := &mockVehicleRepo{vehicles: []*secondary.VehicleRecord{
		{Plate: "AB-123", Model: "Sprinter", Status: "ready"},
		{Plate: "CD-456", Model: "Transit", Status: "maintenance"},
	}}
	shifts := &mockShiftRepo{shifts: []*secondary.ShiftRecord{
		{ID: "SHIFT-001", Date: "2024-03-15", Period: "D", EmployeeCode: "E1", Sector: "North"},
		{ID: "SHIFT-002", Date: "2024-03-14", Period: "N", EmployeeCode: "E2", Sector: "South"},
	}}
	teams := &mockTeamRepo{teams: []*secondary.TeamDayRecord{
		{ID: "TEAM-001", Date: "2024-03-15", MorningTeams: 3, EveningTeams: 2, FullTeams: 1},
	}}
	tasks := &mockTaskRepo{tasks: []*secondary.TaskRecord{
		{ID: "TASK-001", EmployeeName: "Ana", Description: "Restock", SupervisorName: "Sam"},
	}}

	svc := NewDashboardService(employees, vehicles, shifts, teams, tasks)
	svc.now = fixedClock("2024-03-15 12:00:00")

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalEmployees != 2 || summary.TotalVehicles != 2 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if summary.ReadyVehicles != 1 {
		t.Errorf("expected 1 ready vehicle, got %d", summary.ReadyVehicles)
	}
	if len(summary.TodayShifts) != 1 || summary.TodayShifts[0].ID != "SHIFT-001" {
		t.Errorf("unexpected today shifts: %+v", summary.TodayShifts)
	}
	if summary.TotalTeamsToday != 6 {
		t.Errorf("expected 6 teams today, got %d", summary.TotalTeamsToday)
	}
	if len(summary.ShiftSeries) != 30 {
		t.Fatalf("expected 30 series points, got %d", len(summary.ShiftSeries))
	}
	last := summary.ShiftSeries[len(summary.ShiftSeries)-1]
	if last.Date != "2024-03-15" || last.Count != 1 {
		t.Errorf("series must end on today: %+v", last)
	}
}

func TestStatusCounts(t *testing.T) {
	employees := &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E1", Name: "Ana", Phone: "1", Role: "Paramedic"},
	}}
	svc := NewDashboardService(employees, &mockVehicleRepo{}, &mockShiftRepo{}, &mockTeamRepo{}, &mockTaskRepo{})

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts.Employees != 1 || counts.Vehicles != 0 || counts.Shifts != 0 || counts.Teams != 0 || counts.Tasks != 0 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}
