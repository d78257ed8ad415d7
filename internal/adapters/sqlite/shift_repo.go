package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// ShiftRepository implements secondary.ShiftRepository with SQLite.
type ShiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a new SQLite shift repository.
func NewShiftRepository(db *sql.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

const shiftSelectCols = "id, date, period, employee_code, sector, chief_name"

// scanShift scans a shift row into a ShiftRecord.
func scanShift(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ShiftRecord, error) {
	record := &secondary.ShiftRecord{}
	err := scanner.Scan(&record.ID, &record.Date, &record.Period,
		&record.EmployeeCode, &record.Sector, &record.ChiefName)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new shift.
func (r *ShiftRepository) Create(ctx context.Context, shift *secondary.ShiftRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO shifts (id, date, period, employee_code, sector, chief_name) VALUES (?, ?, ?, ?, ?, ?)",
		shift.ID, shift.Date, shift.Period, shift.EmployeeCode, shift.Sector, shift.ChiefName,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

// GetByID retrieves a shift by ID.
func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*secondary.ShiftRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+shiftSelectCols+" FROM shifts WHERE id = ?", id)
	record, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return record, nil
}

// List retrieves shifts matching the given filters in insertion order.
func (r *ShiftRepository) List(ctx context.Context, filters secondary.ShiftFilters) ([]*secondary.ShiftRecord, error) {
	query := "SELECT " + shiftSelectCols + " FROM shifts WHERE 1=1"
	var args []any

	if filters.Month != "" {
		query += " AND date LIKE ?"
		args = append(args, filters.Month+"%")
	}
	if filters.Date != "" {
		query += " AND date = ?"
		args = append(args, filters.Date)
	}
	if filters.EmployeeCode != "" {
		query += " AND employee_code = ?"
		args = append(args, filters.EmployeeCode)
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*secondary.ShiftRecord
	for rows.Next() {
		record, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, record)
	}
	return shifts, rows.Err()
}

// Update replaces the shift with the matching ID.
func (r *ShiftRepository) Update(ctx context.Context, shift *secondary.ShiftRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE shifts SET date = ?, period = ?, employee_code = ?, sector = ?, chief_name = ? WHERE id = ?",
		shift.Date, shift.Period, shift.EmployeeCode, shift.Sector, shift.ChiefName, shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Delete removes the shift with the given ID.
func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// GetNextID returns the next available shift ID.
func (r *ShiftRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 7) AS INTEGER)), 0) FROM shifts",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next shift ID: %w", err)
	}
	return fmt.Sprintf("SHIFT-%03d", maxID+1), nil
}
