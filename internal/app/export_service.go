package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	employeeRepo secondary.EmployeeRepository
	vehicleRepo  secondary.VehicleRepository
	shiftRepo    secondary.ShiftRepository
	teamRepo     secondary.TeamDayRepository
	taskRepo     secondary.TaskRepository
	now          func() time.Time
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(
	employeeRepo secondary.EmployeeRepository,
	vehicleRepo secondary.VehicleRepository,
	shiftRepo secondary.ShiftRepository,
	teamRepo secondary.TeamDayRepository,
	taskRepo secondary.TaskRepository,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		employeeRepo: employeeRepo,
		vehicleRepo:  vehicleRepo,
		shiftRepo:    shiftRepo,
		teamRepo:     teamRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

const exportStampLayout = "20060102"

// exportFilename assembles "<entity>_[parts_]YYYYMMDD.csv".
func exportFilename(entity string, parts []string, stamp time.Time) string {
	pieces := append([]string{entity}, parts...)
	pieces = append(pieces, stamp.Format(exportStampLayout))
	return strings.Join(pieces, "_") + ".csv"
}

// Export assembles the header and rows for one entity type. The result may
// carry zero rows; the caller decides how to present an empty export.
func (s *ExportServiceImpl) Export(ctx context.Context, req primary.ExportRequest) (*primary.ExportResult, error) {
	switch req.Entity {
	case primary.ExportEmployees:
		return s.exportEmployees(ctx)
	case primary.ExportVehicles:
		return s.exportVehicles(ctx)
	case primary.ExportShifts:
		return s.exportShifts(ctx, req.Month)
	case primary.ExportTeams:
		return s.exportTeams(ctx, req.Date)
	case primary.ExportTasks:
		return s.exportTasks(ctx, req.Employee, req.Supervisor)
	default:
		return nil, fmt.Errorf("unknown export entity %q", req.Entity)
	}
}

func (s *ExportServiceImpl) exportEmployees(ctx context.Context) (*primary.ExportResult, error) {
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Code, rec.Name, rec.Phone, rec.Role})
	}
	return &primary.ExportResult{
		Filename: exportFilename(primary.ExportEmployees, nil, s.now()),
		Headers:  []string{"Employee Code", "Name", "Phone", "Role"},
		Rows:     rows,
	}, nil
}

func (s *ExportServiceImpl) exportVehicles(ctx context.Context) (*primary.ExportResult, error) {
	records, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Plate, rec.Model, rec.Status, rec.LastService, rec.Notes})
	}
	return &primary.ExportResult{
		Filename: exportFilename(primary.ExportVehicles, nil, s.now()),
		Headers:  []string{"Plate Number", "Model", "Status", "Last Service", "Notes"},
		Rows:     rows,
	}, nil
}

func (s *ExportServiceImpl) exportShifts(ctx context.Context, month string) (*primary.ExportResult, error) {
	records, err := s.shiftRepo.List(ctx, secondary.ShiftFilters{Month: month})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Date, rec.Period, rec.EmployeeCode, rec.Sector, rec.ChiefName})
	}
	var parts []string
	if month != "" {
		parts = append(parts, month)
	}
	return &primary.ExportResult{
		Filename: exportFilename(primary.ExportShifts, parts, s.now()),
		Headers:  []string{"Date", "Period", "Employee Code", "Sector", "Chief Name"},
		Rows:     rows,
	}, nil
}

func (s *ExportServiceImpl) exportTeams(ctx context.Context, date string) (*primary.ExportResult, error) {
	records, err := s.teamRepo.List(ctx, secondary.TeamDayFilters{Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to list team days: %w", err)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Date,
			strconv.Itoa(rec.MorningTeams),
			strconv.Itoa(rec.EveningTeams),
			strconv.Itoa(rec.FullTeams),
			rec.Notes,
		})
	}
	var parts []string
	if date != "" {
		parts = append(parts, date)
	}
	return &primary.ExportResult{
		Filename: exportFilename(primary.ExportTeams, parts, s.now()),
		Headers:  []string{"Date", "Morning Teams", "Evening Teams", "24h Teams", "Notes"},
		Rows:     rows,
	}, nil
}

func (s *ExportServiceImpl) exportTasks(ctx context.Context, employee, supervisor string) (*primary.ExportResult, error) {
	records, err := s.taskRepo.List(ctx, secondary.TaskFilters{Employee: employee, Supervisor: supervisor})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.EmployeeName, rec.Description, rec.SupervisorName, rec.CreatedAt, rec.UpdatedAt})
	}
	var parts []string
	if employee != "" {
		parts = append(parts, "employee_"+employee)
	}
	if supervisor != "" {
		parts = append(parts, "supervisor_"+supervisor)
	}
	return &primary.ExportResult{
		Filename: exportFilename(primary.ExportTasks, parts, s.now()),
		Headers:  []string{"Employee Name", "Task Description", "Supervisor Name", "Created At", "Updated At"},
		Rows:     rows,
	}, nil
}
