package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// TeamDayRepository implements secondary.TeamDayRepository with SQLite.
type TeamDayRepository struct {
	db *sql.DB
}

// NewTeamDayRepository creates a new SQLite team day repository.
func NewTeamDayRepository(db *sql.DB) *TeamDayRepository {
	return &TeamDayRepository{db: db}
}

const teamDaySelectCols = "id, date, morning_teams, evening_teams, full_teams, notes"

// scanTeamDay scans a team day row into a TeamDayRecord.
func scanTeamDay(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TeamDayRecord, error) {
	record := &secondary.TeamDayRecord{}
	err := scanner.Scan(&record.ID, &record.Date, &record.MorningTeams,
		&record.EveningTeams, &record.FullTeams, &record.Notes)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new team day entry.
func (r *TeamDayRepository) Create(ctx context.Context, team *secondary.TeamDayRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO team_days (id, date, morning_teams, evening_teams, full_teams, notes) VALUES (?, ?, ?, ?, ?, ?)",
		team.ID, team.Date, team.MorningTeams, team.EveningTeams, team.FullTeams, team.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create team day: %w", err)
	}
	return nil
}

// GetByID retrieves a team day entry by ID.
func (r *TeamDayRepository) GetByID(ctx context.Context, id string) (*secondary.TeamDayRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+teamDaySelectCols+" FROM team_days WHERE id = ?", id)
	record, err := scanTeamDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team day: %w", err)
	}
	return record, nil
}

// FindByDate retrieves the first entry for a date in insertion order.
func (r *TeamDayRepository) FindByDate(ctx context.Context, date string) (*secondary.TeamDayRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+teamDaySelectCols+" FROM team_days WHERE date = ? ORDER BY rowid LIMIT 1", date)
	record, err := scanTeamDay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find team day: %w", err)
	}
	return record, nil
}

// List retrieves entries matching the given filters in insertion order.
func (r *TeamDayRepository) List(ctx context.Context, filters secondary.TeamDayFilters) ([]*secondary.TeamDayRecord, error) {
	query := "SELECT " + teamDaySelectCols + " FROM team_days WHERE 1=1"
	var args []any

	if filters.Date != "" {
		query += " AND date = ?"
		args = append(args, filters.Date)
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team days: %w", err)
	}
	defer rows.Close()

	var teams []*secondary.TeamDayRecord
	for rows.Next() {
		record, err := scanTeamDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team day: %w", err)
		}
		teams = append(teams, record)
	}
	return teams, rows.Err()
}

// Update replaces the entry with the matching ID.
func (r *TeamDayRepository) Update(ctx context.Context, team *secondary.TeamDayRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE team_days SET date = ?, morning_teams = ?, evening_teams = ?, full_teams = ?, notes = ? WHERE id = ?",
		team.Date, team.MorningTeams, team.EveningTeams, team.FullTeams, team.Notes, team.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team day: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Delete removes the entry with the given ID.
func (r *TeamDayRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM team_days WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team day: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// GetNextID returns the next available team day ID.
func (r *TeamDayRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM team_days",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next team day ID: %w", err)
	}
	return fmt.Sprintf("TEAM-%03d", maxID+1), nil
}
