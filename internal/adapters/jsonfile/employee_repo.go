package jsonfile

import (
	"context"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// employeeJSON is the on-disk shape of an employee record.
type employeeJSON struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// EmployeeRepository implements secondary.EmployeeRepository over a JSON file.
type EmployeeRepository struct {
	store *Store
}

// NewEmployeeRepository creates a file-backed employee repository.
func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) loadAll() ([]employeeJSON, error) {
	var employees []employeeJSON
	if err := r.store.load(employeesFile, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func employeeToRecord(e employeeJSON) *secondary.EmployeeRecord {
	return &secondary.EmployeeRecord{Code: e.Code, Name: e.Name, Phone: e.Phone, Role: e.Role}
}

func employeeFromRecord(rec *secondary.EmployeeRecord) employeeJSON {
	return employeeJSON{Code: rec.Code, Name: rec.Name, Phone: rec.Phone, Role: rec.Role}
}

// Create persists a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, employee *secondary.EmployeeRecord) error {
	employees, err := r.loadAll()
	if err != nil {
		return err
	}
	for _, e := range employees {
		if e.Code == employee.Code {
			return fmt.Errorf("employee %s already exists", employee.Code)
		}
	}
	employees = append(employees, employeeFromRecord(employee))
	return r.store.save(employeesFile, employees)
}

// GetByCode retrieves an employee by code.
func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (*secondary.EmployeeRecord, error) {
	employees, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if e.Code == code {
			return employeeToRecord(e), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// List retrieves all employees in file order.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	employees, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	records := make([]*secondary.EmployeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, employeeToRecord(e))
	}
	return records, nil
}

// Update replaces the employee with the matching code.
func (r *EmployeeRepository) Update(ctx context.Context, employee *secondary.EmployeeRecord) error {
	employees, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, e := range employees {
		if e.Code == employee.Code {
			employees[i] = employeeFromRecord(employee)
			return r.store.save(employeesFile, employees)
		}
	}
	return secondary.ErrNotFound
}

// Delete removes the employee with the given code.
func (r *EmployeeRepository) Delete(ctx context.Context, code string) error {
	employees, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, e := range employees {
		if e.Code == code {
			employees = append(employees[:i], employees[i+1:]...)
			return r.store.save(employeesFile, employees)
		}
	}
	return secondary.ErrNotFound
}
