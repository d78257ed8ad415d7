package primary

import "context"

// Export entity names accepted by ExportService.
const (
	ExportEmployees = "employees"
	ExportVehicles  = "vehicles"
	ExportShifts    = "shifts"
	ExportTeams     = "teams"
	ExportTasks     = "tasks"
)

// ExportService defines the primary port for delimited-text exports.
type ExportService interface {
	// Export assembles the rows for one entity type, honoring the same
	// filters as that entity's list page.
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// ExportRequest selects the entity and optional filters.
type ExportRequest struct {
	Entity     string
	Month      string // shifts only
	Date       string // teams only
	Employee   string // tasks only
	Supervisor string // tasks only
}

// ExportResult carries the header row, data rows and the download
// filename, stamped with the current date and any active filters.
type ExportResult struct {
	Filename string
	Headers  []string
	Rows     [][]string
}
