package primary

import (
	"context"

	"github.com/example/medfleet/internal/core/roster"
)

// RosterService defines the primary port for the monthly duty grid.
type RosterService interface {
	// Grid builds the roster grid for a YYYY-MM month.
	Grid(ctx context.Context, month string) (*roster.Grid, error)

	// UpdateCell applies a single grid cell change: assign a period,
	// change it, or clear it with the off marker. Clearing an already
	// empty cell is a no-op.
	UpdateCell(ctx context.Context, req UpdateCellRequest) error
}

// UpdateCellRequest contains parameters for a roster cell change.
type UpdateCellRequest struct {
	Month        string
	EmployeeCode string
	Date         string
	Period       string // empty or off marker clears the cell
}
