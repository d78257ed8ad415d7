// Package sqlite contains SQLite implementations of the repository
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeSelectCols = "code, name, phone, role"

// scanEmployee scans an employee row into an EmployeeRecord.
func scanEmployee(scanner interface {
	Scan(dest ...any) error
}) (*secondary.EmployeeRecord, error) {
	record := &secondary.EmployeeRecord{}
	err := scanner.Scan(&record.Code, &record.Name, &record.Phone, &record.Role)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, employee *secondary.EmployeeRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (code, name, phone, role) VALUES (?, ?, ?, ?)",
		employee.Code, employee.Name, employee.Phone, employee.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByCode retrieves an employee by code.
func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (*secondary.EmployeeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+employeeSelectCols+" FROM employees WHERE code = ?", code)
	record, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return record, nil
}

// List retrieves all employees in insertion order.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+employeeSelectCols+" FROM employees ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*secondary.EmployeeRecord
	for rows.Next() {
		record, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, record)
	}
	return employees, rows.Err()
}

// Update replaces the employee with the matching code.
func (r *EmployeeRepository) Update(ctx context.Context, employee *secondary.EmployeeRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE employees SET name = ?, phone = ?, role = ? WHERE code = ?",
		employee.Name, employee.Phone, employee.Role, employee.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Delete removes the employee with the given code.
func (r *EmployeeRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}
