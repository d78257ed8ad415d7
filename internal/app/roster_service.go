package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/core/roster"
	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	shiftRepo    secondary.ShiftRepository
	employeeRepo secondary.EmployeeRepository
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(shiftRepo secondary.ShiftRepository, employeeRepo secondary.EmployeeRepository) *RosterServiceImpl {
	return &RosterServiceImpl{shiftRepo: shiftRepo, employeeRepo: employeeRepo}
}

// Grid builds the roster grid for a YYYY-MM month.
func (s *RosterServiceImpl) Grid(ctx context.Context, month string) (*roster.Grid, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	shifts, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{Month: month})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return roster.BuildGrid(month, recordsToEmployees(employees), recordsToShifts(shifts))
}

// UpdateCell applies a single grid cell change. Assignments through the
// grid carry the default sector and no chief; sector details are edited
// on the shifts page.
func (s *RosterServiceImpl) UpdateCell(ctx context.Context, req primary.UpdateCellRequest) error {
	if req.Date == "" || req.EmployeeCode == "" {
		return errors.New("date and employee code are required")
	}
	_, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("employee code %s not found", req.EmployeeCode)
	}
	if err != nil {
		return fmt.Errorf("failed to validate employee code: %w", err)
	}

	existing, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{
		Date:         req.Date,
		EmployeeCode: req.EmployeeCode,
	})
	if err != nil {
		return fmt.Errorf("failed to look up shift: %w", err)
	}
	existingID := ""
	if len(existing) > 0 {
		existingID = existing[0].ID
	}

	switch roster.PlanUpsert(existingID, req.Period) {
	case roster.ActionNone:
		return nil

	case roster.ActionRemove:
		if err := s.shiftRepo.Delete(ctx, existingID); err != nil && !errors.Is(err, secondary.ErrNotFound) {
			return fmt.Errorf("failed to clear roster cell: %w", err)
		}
		return nil

	case roster.ActionReplace:
		record := &secondary.ShiftRecord{
			ID:           existingID,
			Date:         req.Date,
			Period:       req.Period,
			EmployeeCode: req.EmployeeCode,
			Sector:       models.DefaultSector,
		}
		if err := s.shiftRepo.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update roster cell: %w", err)
		}
		return nil

	case roster.ActionAppend:
		nextID, err := s.shiftRepo.GetNextID(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate shift ID: %w", err)
		}
		record := &secondary.ShiftRecord{
			ID:           nextID,
			Date:         req.Date,
			Period:       req.Period,
			EmployeeCode: req.EmployeeCode,
			Sector:       models.DefaultSector,
		}
		if err := s.shiftRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to create roster cell: %w", err)
		}
		return nil
	}
	return nil
}
