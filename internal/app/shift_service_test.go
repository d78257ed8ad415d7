package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

func knownEmployees() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E1", Name: "Ana", Phone: "555-0100", Role: "Paramedic"},
	}}
}

func TestAddShift(t *testing.T) {
	shifts := &mockShiftRepo{}
	svc := NewShiftService(shifts, knownEmployees())

	err := svc.AddShift(context.Background(), primary.AddShiftRequest{
		Date: "2024-03-01", Period: models.PeriodDay, EmployeeCode: "E1", Sector: "North",
	})
	if err != nil {
		t.Fatalf("AddShift failed: %v", err)
	}
	if len(shifts.shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts.shifts))
	}
	if shifts.shifts[0].ID != "SHIFT-001" {
		t.Errorf("expected generated ID SHIFT-001, got %s", shifts.shifts[0].ID)
	}
}

func TestAddShiftRejectsUnknownEmployee(t *testing.T) {
	shifts := &mockShiftRepo{}
	svc := NewShiftService(shifts, knownEmployees())

	err := svc.AddShift(context.Background(), primary.AddShiftRequest{
		Date: "2024-03-01", Period: models.PeriodDay, EmployeeCode: "E9", Sector: "North",
	})
	if err == nil {
		t.Fatal("expected unknown employee error")
	}
	if !strings.Contains(err.Error(), "E9") {
		t.Errorf("error should name the missing code: %v", err)
	}
	if len(shifts.shifts) != 0 {
		t.Errorf("shift stored despite failed validation")
	}
}

func TestUpdateShiftNotFound(t *testing.T) {
	svc := NewShiftService(&mockShiftRepo{}, knownEmployees())

	err := svc.UpdateShift(context.Background(), primary.UpdateShiftRequest{
		ID: "SHIFT-042", Date: "2024-03-01", Period: models.PeriodDay, EmployeeCode: "E1", Sector: "North",
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
}

func TestDeleteShiftUnknownIDIsNoOp(t *testing.T) {
	svc := NewShiftService(&mockShiftRepo{}, knownEmployees())

	if err := svc.DeleteShift(context.Background(), "SHIFT-042"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestListShiftsFiltersByMonth(t *testing.T) {
	shifts := &mockShiftRepo{shifts: []*secondary.ShiftRecord{
		{ID: "SHIFT-001", Date: "2024-03-01", Period: "D", EmployeeCode: "E1", Sector: "North"},
		{ID: "SHIFT-002", Date: "2024-04-01", Period: "N", EmployeeCode: "E1", Sector: "North"},
	}}
	svc := NewShiftService(shifts, knownEmployees())

	got, err := svc.ListShifts(context.Background(), "2024-03")
	if err != nil {
		t.Fatalf("ListShifts failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "SHIFT-001" {
		t.Errorf("unexpected filtered result: %+v", got)
	}
}
