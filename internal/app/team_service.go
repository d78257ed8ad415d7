package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// TeamServiceImpl implements the TeamService interface.
type TeamServiceImpl struct {
	teamRepo secondary.TeamDayRepository
}

// NewTeamService creates a new TeamService with injected dependencies.
func NewTeamService(teamRepo secondary.TeamDayRepository) *TeamServiceImpl {
	return &TeamServiceImpl{teamRepo: teamRepo}
}

// ListTeamDays lists entries, optionally restricted to an exact date.
func (s *TeamServiceImpl) ListTeamDays(ctx context.Context, date string) ([]models.TeamDay, error) {
	records, err := s.teamRepo.List(ctx, secondary.TeamDayFilters{Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to list team days: %w", err)
	}
	return recordsToTeamDays(records), nil
}

// SaveTeamDay upserts the entry for a date. One logical entry exists per
// date, so an existing entry is updated in place under its original ID.
func (s *TeamServiceImpl) SaveTeamDay(ctx context.Context, req primary.SaveTeamDayRequest) (bool, error) {
	if req.Date == "" {
		return false, errors.New("date is required")
	}
	if req.MorningTeams < 0 || req.EveningTeams < 0 || req.FullTeams < 0 {
		return false, errors.New("team counts must not be negative")
	}

	existing, err := s.teamRepo.FindByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, secondary.ErrNotFound) {
		return false, fmt.Errorf("failed to look up team day: %w", err)
	}

	if existing != nil {
		record := &secondary.TeamDayRecord{
			ID:           existing.ID,
			Date:         req.Date,
			MorningTeams: req.MorningTeams,
			EveningTeams: req.EveningTeams,
			FullTeams:    req.FullTeams,
			Notes:        req.Notes,
		}
		if err := s.teamRepo.Update(ctx, record); err != nil {
			return false, fmt.Errorf("failed to update team day: %w", err)
		}
		return false, nil
	}

	nextID, err := s.teamRepo.GetNextID(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to generate team day ID: %w", err)
	}
	record := &secondary.TeamDayRecord{
		ID:           nextID,
		Date:         req.Date,
		MorningTeams: req.MorningTeams,
		EveningTeams: req.EveningTeams,
		FullTeams:    req.FullTeams,
		Notes:        req.Notes,
	}
	if err := s.teamRepo.Create(ctx, record); err != nil {
		return false, fmt.Errorf("failed to create team day: %w", err)
	}
	return true, nil
}

// UpdateTeamDay replaces the entry with the matching ID.
func (s *TeamServiceImpl) UpdateTeamDay(ctx context.Context, req primary.UpdateTeamDayRequest) error {
	if req.Date == "" {
		return errors.New("date is required")
	}
	if req.MorningTeams < 0 || req.EveningTeams < 0 || req.FullTeams < 0 {
		return errors.New("team counts must not be negative")
	}

	record := &secondary.TeamDayRecord{
		ID:           req.ID,
		Date:         req.Date,
		MorningTeams: req.MorningTeams,
		EveningTeams: req.EveningTeams,
		FullTeams:    req.FullTeams,
		Notes:        req.Notes,
	}
	err := s.teamRepo.Update(ctx, record)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("team day %s not found", req.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update team day: %w", err)
	}
	return nil
}

// DeleteTeamDay removes an entry. Unknown IDs are a silent no-op.
func (s *TeamServiceImpl) DeleteTeamDay(ctx context.Context, id string) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete team day: %w", err)
	}
	return nil
}
