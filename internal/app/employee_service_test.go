package app

import (
	"context"
	"testing"

	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

func TestAddEmployee(t *testing.T) {
	repo := &mockEmployeeRepo{}
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	err := svc.AddEmployee(ctx, primary.AddEmployeeRequest{
		Code: "E1", Name: "Ana", Phone: "555-0100", Role: "Paramedic",
	})
	if err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}
	if len(repo.employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(repo.employees))
	}
	if repo.employees[0].Name != "Ana" {
		t.Errorf("unexpected employee: %+v", repo.employees[0])
	}
}

func TestAddEmployeeRequiresAllFields(t *testing.T) {
	svc := NewEmployeeService(&mockEmployeeRepo{})

	err := svc.AddEmployee(context.Background(), primary.AddEmployeeRequest{
		Code: "E1", Name: "Ana", Role: "Paramedic",
	})
	if err == nil {
		t.Fatal("expected validation error for missing phone")
	}
}

func TestAddEmployeeRejectsDuplicateCode(t *testing.T) {
	repo := &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E1", Name: "Ana", Phone: "555-0100", Role: "Paramedic"},
	}}
	svc := NewEmployeeService(repo)

	err := svc.AddEmployee(context.Background(), primary.AddEmployeeRequest{
		Code: "E1", Name: "Bea", Phone: "555-0101", Role: "Driver",
	})
	if err == nil {
		t.Fatal("expected duplicate code error")
	}
	// The collection must be unchanged
	if len(repo.employees) != 1 || repo.employees[0].Name != "Ana" {
		t.Errorf("collection changed on rejected add: %+v", repo.employees)
	}
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(&mockEmployeeRepo{})

	err := svc.UpdateEmployee(context.Background(), primary.UpdateEmployeeRequest{
		Code: "E9", Name: "Ana", Phone: "555-0100", Role: "Paramedic",
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
}

func TestDeleteEmployeeUnknownCodeIsNoOp(t *testing.T) {
	repo := &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E1", Name: "Ana", Phone: "555-0100", Role: "Paramedic"},
	}}
	svc := NewEmployeeService(repo)

	if err := svc.DeleteEmployee(context.Background(), "E9"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(repo.employees) != 1 {
		t.Errorf("collection changed on unknown delete")
	}
}

func TestListEmployeesPreservesOrder(t *testing.T) {
	repo := &mockEmployeeRepo{employees: []*secondary.EmployeeRecord{
		{Code: "E2", Name: "Bea", Phone: "1", Role: "Driver"},
		{Code: "E1", Name: "Ana", Phone: "2", Role: "Paramedic"},
	}}
	svc := NewEmployeeService(repo)

	employees, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(employees) != 2 || employees[0].Code != "E2" || employees[1].Code != "E1" {
		t.Errorf("insertion order not preserved: %+v", employees)
	}
}
