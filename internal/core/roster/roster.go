// Package roster contains the pure business logic for the monthly duty grid.
// Functions here take full collections and compute view structures without
// side effects; storage decisions are returned as actions for the caller.
package roster

import (
	"fmt"
	"time"

	"github.com/example/medfleet/internal/models"
)

// MonthLayout is the wire format for roster month parameters.
const MonthLayout = "2006-01"

// PeriodHours returns the scheduled hours for a period code.
// Unrecognized codes count as zero hours.
func PeriodHours(period string) int {
	switch period {
	case models.PeriodDay, models.PeriodNight:
		return 12
	case models.PeriodFull:
		return 24
	default:
		return 0
	}
}

// ParseMonth parses a YYYY-MM month string.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

// MonthDays enumerates every calendar date of the given month as
// YYYY-MM-DD strings, respecting the actual days in the month.
func MonthDays(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	days := make([]string, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, int(month), d))
	}
	return days
}

// Row is one employee's line in the grid.
type Row struct {
	Code       string
	Name       string
	Cells      map[string]string // date -> period code, "" when off
	TotalHours int
}

// Grid is the computed monthly roster: one row per employee, one cell per
// calendar day.
type Grid struct {
	Month string
	Days  []string
	Rows  []Row
}

// BuildGrid constructs the roster grid for a month. Every employee gets a
// cell for every day, empty unless a shift exists. Shifts referencing
// unknown employees or dates outside the month are skipped. Duplicate
// shifts for the same employee and date resolve last-write-wins in
// collection order.
func BuildGrid(month string, employees []models.Employee, shifts []models.Shift) (*Grid, error) {
	t, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	days := MonthDays(t.Year(), t.Month())

	grid := &Grid{Month: month, Days: days}
	rowIdx := make(map[string]int, len(employees))
	for _, emp := range employees {
		cells := make(map[string]string, len(days))
		for _, day := range days {
			cells[day] = ""
		}
		rowIdx[emp.Code] = len(grid.Rows)
		grid.Rows = append(grid.Rows, Row{Code: emp.Code, Name: emp.Name, Cells: cells})
	}

	for _, shift := range shifts {
		i, ok := rowIdx[shift.EmployeeCode]
		if !ok {
			continue
		}
		row := &grid.Rows[i]
		prev, ok := row.Cells[shift.Date]
		if !ok {
			continue
		}
		row.Cells[shift.Date] = shift.Period
		row.TotalHours += PeriodHours(shift.Period) - PeriodHours(prev)
	}

	return grid, nil
}

// Action describes what a roster cell update must do to storage.
type Action int

const (
	// ActionNone leaves storage untouched.
	ActionNone Action = iota
	// ActionRemove deletes the existing shift for the cell.
	ActionRemove
	// ActionReplace overwrites the existing shift for the cell.
	ActionReplace
	// ActionAppend creates a new shift for the cell.
	ActionAppend
)

// PlanUpsert decides the storage action for a requested period code,
// given the ID of any existing shift on that employee+date ("" when
// none). Empty and off-marker periods clear the cell.
func PlanUpsert(existingID, period string) Action {
	if period == "" || period == models.PeriodOff {
		if existingID == "" {
			return ActionNone
		}
		return ActionRemove
	}
	if existingID == "" {
		return ActionAppend
	}
	return ActionReplace
}

// FindShiftForDay returns the first shift in collection order matching
// the employee and date.
func FindShiftForDay(shifts []models.Shift, employeeCode, date string) (models.Shift, bool) {
	for _, s := range shifts {
		if s.EmployeeCode == employeeCode && s.Date == date {
			return s, true
		}
	}
	return models.Shift{}, false
}
