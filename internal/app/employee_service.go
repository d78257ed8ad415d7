package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// EmployeeServiceImpl implements the EmployeeService interface.
type EmployeeServiceImpl struct {
	employeeRepo secondary.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService with injected dependencies.
func NewEmployeeService(employeeRepo secondary.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees lists all employees in insertion order.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return recordsToEmployees(records), nil
}

// AddEmployee creates a new employee after validating the request.
func (s *EmployeeServiceImpl) AddEmployee(ctx context.Context, req primary.AddEmployeeRequest) error {
	if req.Code == "" || req.Name == "" || req.Phone == "" || req.Role == "" {
		return errors.New("all fields are required")
	}

	// Duplicate natural key check
	_, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err == nil {
		return fmt.Errorf("employee code %s already exists", req.Code)
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("failed to check employee code: %w", err)
	}

	record := &secondary.EmployeeRecord{
		Code:  req.Code,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if err := s.employeeRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// UpdateEmployee replaces the employee with the matching code.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req primary.UpdateEmployeeRequest) error {
	if req.Name == "" || req.Phone == "" || req.Role == "" {
		return errors.New("all fields are required")
	}

	record := &secondary.EmployeeRecord{
		Code:  req.Code,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	}
	err := s.employeeRepo.Update(ctx, record)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("employee %s not found", req.Code)
	}
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes an employee. Unknown codes are a silent no-op.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, code string) error {
	err := s.employeeRepo.Delete(ctx, code)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
