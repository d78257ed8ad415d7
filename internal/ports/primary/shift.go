package primary

import (
	"context"

	"github.com/example/medfleet/internal/models"
)

// ShiftService defines the primary port for shift operations.
type ShiftService interface {
	// ListShifts lists shifts, optionally restricted to a YYYY-MM month.
	// An empty month means no filter.
	ListShifts(ctx context.Context, month string) ([]models.Shift, error)

	// AddShift creates a new shift. Date, period, employee code and
	// sector are required; the employee code must exist.
	AddShift(ctx context.Context, req AddShiftRequest) error

	// UpdateShift replaces the shift with the matching ID.
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error

	// DeleteShift removes a shift. Unknown IDs are a no-op.
	DeleteShift(ctx context.Context, id string) error
}

// AddShiftRequest contains parameters for creating a shift.
type AddShiftRequest struct {
	Date         string
	Period       string
	EmployeeCode string
	Sector       string
	ChiefName    string // optional
}

// UpdateShiftRequest contains parameters for editing a shift.
type UpdateShiftRequest struct {
	ID           string
	Date         string
	Period       string
	EmployeeCode string
	Sector       string
	ChiefName    string
}
