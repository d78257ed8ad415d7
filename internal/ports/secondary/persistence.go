// Package secondary defines the secondary ports (driven adapters) for the
// application: the repository interfaces through which services reach
// durable storage. One repository exists per entity type; each holds an
// ordered, independently persisted collection.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record lookup misses. Callers that need
// silent no-op semantics (delete by unknown ID) check for it explicitly.
var ErrNotFound = errors.New("record not found")

// EmployeeRepository defines the secondary port for employee persistence.
// Employees are keyed by their unique code.
type EmployeeRepository interface {
	// Create persists a new employee.
	Create(ctx context.Context, employee *EmployeeRecord) error

	// GetByCode retrieves an employee by code, ErrNotFound if absent.
	GetByCode(ctx context.Context, code string) (*EmployeeRecord, error)

	// List retrieves all employees in insertion order.
	List(ctx context.Context) ([]*EmployeeRecord, error)

	// Update replaces the employee with the matching code.
	Update(ctx context.Context, employee *EmployeeRecord) error

	// Delete removes the employee with the given code.
	Delete(ctx context.Context, code string) error
}

// EmployeeRecord represents an employee as stored in persistence.
type EmployeeRecord struct {
	Code  string
	Name  string
	Phone string
	Role  string
}

// VehicleRepository defines the secondary port for vehicle persistence.
// Vehicles are keyed by their unique plate.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *VehicleRecord) error

	// GetByPlate retrieves a vehicle by plate, ErrNotFound if absent.
	GetByPlate(ctx context.Context, plate string) (*VehicleRecord, error)

	// List retrieves all vehicles in insertion order.
	List(ctx context.Context) ([]*VehicleRecord, error)

	// Update replaces the vehicle with the matching plate.
	Update(ctx context.Context, vehicle *VehicleRecord) error

	// Delete removes the vehicle with the given plate.
	Delete(ctx context.Context, plate string) error
}

// VehicleRecord represents a vehicle as stored in persistence.
type VehicleRecord struct {
	Plate       string
	Model       string
	Status      string
	LastService string
	Notes       string
}

// ShiftRepository defines the secondary port for shift persistence.
type ShiftRepository interface {
	// Create persists a new shift.
	Create(ctx context.Context, shift *ShiftRecord) error

	// GetByID retrieves a shift by ID, ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*ShiftRecord, error)

	// List retrieves shifts matching the given filters, in insertion order.
	List(ctx context.Context, filters ShiftFilters) ([]*ShiftRecord, error)

	// Update replaces the shift with the matching ID.
	Update(ctx context.Context, shift *ShiftRecord) error

	// Delete removes the shift with the given ID, ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available shift ID.
	GetNextID(ctx context.Context) (string, error)
}

// ShiftRecord represents a shift as stored in persistence.
type ShiftRecord struct {
	ID           string
	Date         string
	Period       string
	EmployeeCode string
	Sector       string
	ChiefName    string
}

// ShiftFilters contains filter options for querying shifts.
type ShiftFilters struct {
	Month        string // YYYY-MM prefix match on date
	Date         string // exact date match
	EmployeeCode string
}

// TeamDayRepository defines the secondary port for daily team count persistence.
type TeamDayRepository interface {
	// Create persists a new team day entry.
	Create(ctx context.Context, team *TeamDayRecord) error

	// GetByID retrieves a team day entry by ID, ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*TeamDayRecord, error)

	// FindByDate retrieves the first entry for a date, ErrNotFound if none.
	FindByDate(ctx context.Context, date string) (*TeamDayRecord, error)

	// List retrieves entries matching the given filters, in insertion order.
	List(ctx context.Context, filters TeamDayFilters) ([]*TeamDayRecord, error)

	// Update replaces the entry with the matching ID.
	Update(ctx context.Context, team *TeamDayRecord) error

	// Delete removes the entry with the given ID, ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available team day ID.
	GetNextID(ctx context.Context) (string, error)
}

// TeamDayRecord represents a daily team count as stored in persistence.
type TeamDayRecord struct {
	ID           string
	Date         string
	MorningTeams int
	EveningTeams int
	FullTeams    int
	Notes        string
}

// TeamDayFilters contains filter options for querying team day entries.
type TeamDayFilters struct {
	Date string // exact date match
}

// TaskRepository defines the secondary port for logistics task persistence.
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *TaskRecord) error

	// GetByID retrieves a task by ID, ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*TaskRecord, error)

	// List retrieves tasks matching the given filters, in insertion order.
	List(ctx context.Context, filters TaskFilters) ([]*TaskRecord, error)

	// Update replaces the task with the matching ID.
	Update(ctx context.Context, task *TaskRecord) error

	// Delete removes the task with the given ID, ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available task ID.
	GetNextID(ctx context.Context) (string, error)
}

// TaskRecord represents a logistics task as stored in persistence.
type TaskRecord struct {
	ID             string
	EmployeeName   string
	Description    string
	SupervisorName string
	CreatedAt      string
	UpdatedAt      string
}

// TaskFilters contains filter options for querying tasks. Name filters
// match case-insensitively on substrings.
type TaskFilters struct {
	Employee   string
	Supervisor string
}
