package jsonfile

import (
	"context"

	"github.com/example/medfleet/internal/ports/secondary"
)

// teamDayJSON is the on-disk shape of a daily team count record.
type teamDayJSON struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	MorningTeams int    `json:"morning_teams"`
	EveningTeams int    `json:"evening_teams"`
	FullTeams    int    `json:"full_teams"`
	Notes        string `json:"notes"`
}

// TeamDayRepository implements secondary.TeamDayRepository over a JSON file.
type TeamDayRepository struct {
	store *Store
}

// NewTeamDayRepository creates a file-backed team day repository.
func NewTeamDayRepository(store *Store) *TeamDayRepository {
	return &TeamDayRepository{store: store}
}

func (r *TeamDayRepository) loadAll() ([]teamDayJSON, error) {
	var teams []teamDayJSON
	if err := r.store.load(teamsFile, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func teamDayToRecord(t teamDayJSON) *secondary.TeamDayRecord {
	return &secondary.TeamDayRecord{
		ID:           t.ID,
		Date:         t.Date,
		MorningTeams: t.MorningTeams,
		EveningTeams: t.EveningTeams,
		FullTeams:    t.FullTeams,
		Notes:        t.Notes,
	}
}

func teamDayFromRecord(rec *secondary.TeamDayRecord) teamDayJSON {
	return teamDayJSON{
		ID:           rec.ID,
		Date:         rec.Date,
		MorningTeams: rec.MorningTeams,
		EveningTeams: rec.EveningTeams,
		FullTeams:    rec.FullTeams,
		Notes:        rec.Notes,
	}
}

// Create persists a new team day entry.
func (r *TeamDayRepository) Create(ctx context.Context, team *secondary.TeamDayRecord) error {
	teams, err := r.loadAll()
	if err != nil {
		return err
	}
	teams = append(teams, teamDayFromRecord(team))
	return r.store.save(teamsFile, teams)
}

// GetByID retrieves a team day entry by ID.
func (r *TeamDayRepository) GetByID(ctx context.Context, id string) (*secondary.TeamDayRecord, error) {
	teams, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if t.ID == id {
			return teamDayToRecord(t), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// FindByDate retrieves the first entry for a date in file order.
func (r *TeamDayRepository) FindByDate(ctx context.Context, date string) (*secondary.TeamDayRecord, error) {
	teams, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if t.Date == date {
			return teamDayToRecord(t), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// List retrieves entries matching the given filters in file order.
func (r *TeamDayRepository) List(ctx context.Context, filters secondary.TeamDayFilters) ([]*secondary.TeamDayRecord, error) {
	teams, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	var records []*secondary.TeamDayRecord
	for _, t := range teams {
		if filters.Date != "" && t.Date != filters.Date {
			continue
		}
		records = append(records, teamDayToRecord(t))
	}
	return records, nil
}

// Update replaces the entry with the matching ID.
func (r *TeamDayRepository) Update(ctx context.Context, team *secondary.TeamDayRecord) error {
	teams, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, t := range teams {
		if t.ID == team.ID {
			teams[i] = teamDayFromRecord(team)
			return r.store.save(teamsFile, teams)
		}
	}
	return secondary.ErrNotFound
}

// Delete removes the entry with the given ID.
func (r *TeamDayRepository) Delete(ctx context.Context, id string) error {
	teams, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, t := range teams {
		if t.ID == id {
			teams = append(teams[:i], teams[i+1:]...)
			return r.store.save(teamsFile, teams)
		}
	}
	return secondary.ErrNotFound
}

// GetNextID returns the next available team day ID.
func (r *TeamDayRepository) GetNextID(ctx context.Context) (string, error) {
	teams, err := r.loadAll()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return nextSequenceID("TEAM", ids), nil
}
