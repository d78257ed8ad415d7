package primary

import (
	"context"

	"github.com/example/medfleet/internal/core/report"
)

// DashboardService defines the primary port for the dashboard summary.
type DashboardService interface {
	// Summary computes the dashboard counts and the 30-day shift series
	// as of the current day.
	Summary(ctx context.Context) (report.Summary, error)
}

// StatusCounts is the liveness payload: one record count per entity type.
type StatusCounts struct {
	Employees int `json:"employees"`
	Vehicles  int `json:"vehicles"`
	Shifts    int `json:"shifts"`
	Teams     int `json:"teams"`
	Tasks     int `json:"tasks"`
}

// StatusService defines the primary port for the liveness endpoint.
type StatusService interface {
	// Counts returns per-entity record counts.
	Counts(ctx context.Context) (StatusCounts, error)
}
