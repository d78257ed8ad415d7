package app

import (
	"context"
	"testing"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

func TestRosterGrid(t *testing.T) {
	employees := knownEmployees()
	shifts := &mockShiftRepo{shifts: []*secondary.ShiftRecord{
		{ID: "SHIFT-001", Date: "2024-03-01", Period: models.PeriodDay, EmployeeCode: "E1", Sector: "North"},
		{ID: "SHIFT-002", Date: "2024-04-01", Period: models.PeriodNight, EmployeeCode: "E1", Sector: "North"},
	}}
	svc := NewRosterService(shifts, employees)

	grid, err := svc.Grid(context.Background(), "2024-03")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if len(grid.Days) != 31 {
		t.Fatalf("expected 31 days for March, got %d", len(grid.Days))
	}
	if len(grid.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.Rows))
	}
	row := grid.Rows[0]
	if row.Cells["2024-03-01"] != models.PeriodDay {
		t.Errorf("expected D on 2024-03-01, got %q", row.Cells["2024-03-01"])
	}
	if row.TotalHours != 12 {
		t.Errorf("April shift leaked into March total: %d hours", row.TotalHours)
	}
}

func TestRosterGridInvalidMonth(t *testing.T) {
	svc := NewRosterService(&mockShiftRepo{}, knownEmployees())

	if _, err := svc.Grid(context.Background(), "03-2024"); err == nil {
		t.Fatal("expected invalid month error")
	}
}

func TestUpdateCellAssign(t *testing.T) {
	shifts := &mockShiftRepo{}
	svc := NewRosterService(shifts, knownEmployees())

	err := svc.UpdateCell(context.Background(), primary.UpdateCellRequest{
		Month: "2024-03", EmployeeCode: "E1", Date: "2024-03-05", Period: models.PeriodNight,
	})
	if err != nil {
		t.Fatalf("UpdateCell failed: %v", err)
	}
	if len(shifts.shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts.shifts))
	}
	got := shifts.shifts[0]
	if got.Period != models.PeriodNight || got.Sector != models.DefaultSector || got.ChiefName != "" {
		t.Errorf("unexpected assigned shift: %+v", got)
	}
}

func TestUpdateCellReplaceKeepsID(t *testing.T) {
	shifts := &mockShiftRepo{shifts: []*secondary.ShiftRecord{
		{ID: "SHIFT-007", Date: "2024-03-05", Period: models.PeriodDay, EmployeeCode: "E1", Sector: "North"},
	}, nextID: 7}
	svc := NewRosterService(shifts, knownEmployees())

	err := svc.UpdateCell(context.Background(), primary.UpdateCellRequest{
		Month: "2024-03", EmployeeCode: "E1", Date: "2024-03-05", Period: models.PeriodFull,
	})
	if err != nil {
		t.Fatalf("UpdateCell failed: %v", err)
	}
	if len(shifts.shifts) != 1 {
		t.Fatalf("replace must not create a second shift, got %d", len(shifts.shifts))
	}
	if shifts.shifts[0].ID != "SHIFT-007" {
		t.Errorf("replace changed the shift ID: %s", shifts.shifts[0].ID)
	}
	if shifts.shifts[0].Period != models.PeriodFull {
		t.Errorf("period not replaced: %s", shifts.shifts[0].Period)
	}
}

func TestUpdateCellOffMarkerClears(t *testing.T) {
	shifts := &mockShiftRepo{shifts: []*secondary.ShiftRecord{
		{ID: "SHIFT-001", Date: "2024-03-05", Period: models.PeriodDay, EmployeeCode: "E1", Sector: "North"},
	}, nextID: 1}
	svc := NewRosterService(shifts, knownEmployees())
	ctx := context.Background()

	req := primary.UpdateCellRequest{
		Month: "2024-03", EmployeeCode: "E1", Date: "2024-03-05", Period: models.PeriodOff,
	}
	if err := svc.UpdateCell(ctx, req); err != nil {
		t.Fatalf("UpdateCell failed: %v", err)
	}
	if len(shifts.shifts) != 0 {
		t.Fatalf("off marker did not clear the cell: %+v", shifts.shifts)
	}

	// Clearing an already empty cell is a no-op
	if err := svc.UpdateCell(ctx, req); err != nil {
		t.Fatalf("clearing an empty cell must not fail: %v", err)
	}
}

func TestUpdateCellUnknownEmployee(t *testing.T) {
	svc := NewRosterService(&mockShiftRepo{}, knownEmployees())

	err := svc.UpdateCell(context.Background(), primary.UpdateCellRequest{
		Month: "2024-03", EmployeeCode: "E9", Date: "2024-03-05", Period: models.PeriodDay,
	})
	if err == nil {
		t.Fatal("expected unknown employee error")
	}
}
