package primary

import (
	"context"

	"github.com/example/medfleet/internal/models"
)

// TeamService defines the primary port for daily team count operations.
type TeamService interface {
	// ListTeamDays lists entries, optionally restricted to an exact
	// date. An empty date means no filter.
	ListTeamDays(ctx context.Context, date string) ([]models.TeamDay, error)

	// SaveTeamDay upserts the entry for a date: an existing entry for
	// the same date is updated in place, otherwise a new one is created.
	// Returns true when a new entry was created.
	SaveTeamDay(ctx context.Context, req SaveTeamDayRequest) (bool, error)

	// UpdateTeamDay replaces the entry with the matching ID.
	UpdateTeamDay(ctx context.Context, req UpdateTeamDayRequest) error

	// DeleteTeamDay removes an entry. Unknown IDs are a no-op.
	DeleteTeamDay(ctx context.Context, id string) error
}

// SaveTeamDayRequest contains parameters for upserting a team day entry.
type SaveTeamDayRequest struct {
	Date         string
	MorningTeams int
	EveningTeams int
	FullTeams    int
	Notes        string
}

// UpdateTeamDayRequest contains parameters for editing a team day entry.
type UpdateTeamDayRequest struct {
	ID           string
	Date         string
	MorningTeams int
	EveningTeams int
	FullTeams    int
	Notes        string
}
