// Package primary defines the primary ports (driving interfaces) for the
// application: the service contracts the web and CLI layers call into.
package primary

import (
	"context"

	"github.com/example/medfleet/internal/models"
)

// EmployeeService defines the primary port for employee operations.
type EmployeeService interface {
	// ListEmployees lists all employees in insertion order.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// AddEmployee creates a new employee. All fields are required and
	// the code must be unique.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) error

	// UpdateEmployee replaces the employee with the matching code.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error

	// DeleteEmployee removes an employee. Unknown codes are a no-op.
	DeleteEmployee(ctx context.Context, code string) error
}

// AddEmployeeRequest contains parameters for creating an employee.
type AddEmployeeRequest struct {
	Code  string
	Name  string
	Phone string
	Role  string
}

// UpdateEmployeeRequest contains parameters for editing an employee.
type UpdateEmployeeRequest struct {
	Code  string
	Name  string
	Phone string
	Role  string
}
