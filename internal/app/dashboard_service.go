package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/medfleet/internal/core/report"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// DashboardServiceImpl implements the DashboardService and StatusService
// interfaces on top of the five repositories.
type DashboardServiceImpl struct {
	employeeRepo secondary.EmployeeRepository
	vehicleRepo  secondary.VehicleRepository
	shiftRepo    secondary.ShiftRepository
	teamRepo     secondary.TeamDayRepository
	taskRepo     secondary.TaskRepository
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(
	employeeRepo secondary.EmployeeRepository,
	vehicleRepo secondary.VehicleRepository,
	shiftRepo secondary.ShiftRepository,
	teamRepo secondary.TeamDayRepository,
	taskRepo secondary.TaskRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		vehicleRepo:  vehicleRepo,
		shiftRepo:    shiftRepo,
		teamRepo:     teamRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

// Summary computes the dashboard counts and the shift series as of today.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (report.Summary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list employees: %w", err)
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list vehicles: %w", err)
	}
	shifts, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{})
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list shifts: %w", err)
	}
	teams, err := s.teamRepo.List(ctx, secondary.TeamDayFilters{})
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list team days: %w", err)
	}
	tasks, err := s.taskRepo.List(ctx, secondary.TaskFilters{})
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return report.BuildSummary(
		s.now(),
		recordsToEmployees(employees),
		recordsToVehicles(vehicles),
		recordsToShifts(shifts),
		recordsToTeamDays(teams),
		recordsToTasks(tasks),
	), nil
}

// Counts returns per-entity record counts for the liveness endpoint.
func (s *DashboardServiceImpl) Counts(ctx context.Context) (primary.StatusCounts, error) {
	var counts primary.StatusCounts

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to count employees: %w", err)
	}
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return counts, fmt.Errorf("failed to count vehicles: %w", err)
	}
	shifts, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{})
	if err != nil {
		return counts, fmt.Errorf("failed to count shifts: %w", err)
	}
	teams, err := s.teamRepo.List(ctx, secondary.TeamDayFilters{})
	if err != nil {
		return counts, fmt.Errorf("failed to count team days: %w", err)
	}
	tasks, err := s.taskRepo.List(ctx, secondary.TaskFilters{})
	if err != nil {
		return counts, fmt.Errorf("failed to count tasks: %w", err)
	}

	counts.Employees = len(employees)
	counts.Vehicles = len(vehicles)
	counts.Shifts = len(shifts)
	counts.Teams = len(teams)
	counts.Tasks = len(tasks)
	return counts, nil
}
