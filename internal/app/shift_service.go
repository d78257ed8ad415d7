package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// ShiftServiceImpl implements the ShiftService interface.
type ShiftServiceImpl struct {
	shiftRepo    secondary.ShiftRepository
	employeeRepo secondary.EmployeeRepository
}

// NewShiftService creates a new ShiftService with injected dependencies.
func NewShiftService(shiftRepo secondary.ShiftRepository, employeeRepo secondary.EmployeeRepository) *ShiftServiceImpl {
	return &ShiftServiceImpl{shiftRepo: shiftRepo, employeeRepo: employeeRepo}
}

// ListShifts lists shifts, optionally restricted to a YYYY-MM month.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, month string) ([]models.Shift, error) {
	records, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{Month: month})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return recordsToShifts(records), nil
}

// validateShiftFields checks required fields and the employee reference.
func (s *ShiftServiceImpl) validateShiftFields(ctx context.Context, date, period, employeeCode, sector string) error {
	if date == "" || period == "" || employeeCode == "" || sector == "" {
		return errors.New("date, period, employee code and sector are required")
	}
	_, err := s.employeeRepo.GetByCode(ctx, employeeCode)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("employee code %s not found", employeeCode)
	}
	if err != nil {
		return fmt.Errorf("failed to validate employee code: %w", err)
	}
	return nil
}

// AddShift creates a new shift after validating the request.
func (s *ShiftServiceImpl) AddShift(ctx context.Context, req primary.AddShiftRequest) error {
	if err := s.validateShiftFields(ctx, req.Date, req.Period, req.EmployeeCode, req.Sector); err != nil {
		return err
	}

	nextID, err := s.shiftRepo.GetNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate shift ID: %w", err)
	}

	record := &secondary.ShiftRecord{
		ID:           nextID,
		Date:         req.Date,
		Period:       req.Period,
		EmployeeCode: req.EmployeeCode,
		Sector:       req.Sector,
		ChiefName:    req.ChiefName,
	}
	if err := s.shiftRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

// UpdateShift replaces the shift with the matching ID.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req primary.UpdateShiftRequest) error {
	if err := s.validateShiftFields(ctx, req.Date, req.Period, req.EmployeeCode, req.Sector); err != nil {
		return err
	}

	record := &secondary.ShiftRecord{
		ID:           req.ID,
		Date:         req.Date,
		Period:       req.Period,
		EmployeeCode: req.EmployeeCode,
		Sector:       req.Sector,
		ChiefName:    req.ChiefName,
	}
	err := s.shiftRepo.Update(ctx, record)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("shift %s not found", req.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// DeleteShift removes a shift. Unknown IDs are a silent no-op.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	err := s.shiftRepo.Delete(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}
