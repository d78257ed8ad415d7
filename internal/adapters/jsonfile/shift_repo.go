package jsonfile

import (
	"context"
	"strings"

	"github.com/example/medfleet/internal/ports/secondary"
)

// shiftJSON is the on-disk shape of a shift record.
type shiftJSON struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	EmployeeCode string `json:"employee_code"`
	Sector       string `json:"sector"`
	ChiefName    string `json:"chief_name"`
}

// ShiftRepository implements secondary.ShiftRepository over a JSON file.
type ShiftRepository struct {
	store *Store
}

// NewShiftRepository creates a file-backed shift repository.
func NewShiftRepository(store *Store) *ShiftRepository {
	return &ShiftRepository{store: store}
}

func (r *ShiftRepository) loadAll() ([]shiftJSON, error) {
	var shifts []shiftJSON
	if err := r.store.load(shiftsFile, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func shiftToRecord(s shiftJSON) *secondary.ShiftRecord {
	return &secondary.ShiftRecord{
		ID:           s.ID,
		Date:         s.Date,
		Period:       s.Period,
		EmployeeCode: s.EmployeeCode,
		Sector:       s.Sector,
		ChiefName:    s.ChiefName,
	}
}

func shiftFromRecord(rec *secondary.ShiftRecord) shiftJSON {
	return shiftJSON{
		ID:           rec.ID,
		Date:         rec.Date,
		Period:       rec.Period,
		EmployeeCode: rec.EmployeeCode,
		Sector:       rec.Sector,
		ChiefName:    rec.ChiefName,
	}
}

// Create persists a new shift.
func (r *ShiftRepository) Create(ctx context.Context, shift *secondary.ShiftRecord) error {
	shifts, err := r.loadAll()
	if err != nil {
		return err
	}
	shifts = append(shifts, shiftFromRecord(shift))
	return r.store.save(shiftsFile, shifts)
}

// GetByID retrieves a shift by ID.
func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*secondary.ShiftRecord, error) {
	shifts, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, s := range shifts {
		if s.ID == id {
			return shiftToRecord(s), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// List retrieves shifts matching the given filters in file order.
func (r *ShiftRepository) List(ctx context.Context, filters secondary.ShiftFilters) ([]*secondary.ShiftRecord, error) {
	shifts, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	var records []*secondary.ShiftRecord
	for _, s := range shifts {
		if filters.Month != "" && !strings.HasPrefix(s.Date, filters.Month) {
			continue
		}
		if filters.Date != "" && s.Date != filters.Date {
			continue
		}
		if filters.EmployeeCode != "" && s.EmployeeCode != filters.EmployeeCode {
			continue
		}
		records = append(records, shiftToRecord(s))
	}
	return records, nil
}

// Update replaces the shift with the matching ID.
func (r *ShiftRepository) Update(ctx context.Context, shift *secondary.ShiftRecord) error {
	shifts, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, s := range shifts {
		if s.ID == shift.ID {
			shifts[i] = shiftFromRecord(shift)
			return r.store.save(shiftsFile, shifts)
		}
	}
	return secondary.ErrNotFound
}

// Delete removes the shift with the given ID.
func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	shifts, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, s := range shifts {
		if s.ID == id {
			shifts = append(shifts[:i], shifts[i+1:]...)
			return r.store.save(shiftsFile, shifts)
		}
	}
	return secondary.ErrNotFound
}

// GetNextID returns the next available shift ID.
func (r *ShiftRepository) GetNextID(ctx context.Context) (string, error) {
	shifts, err := r.loadAll()
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.ID)
	}
	return nextSequenceID("SHIFT", ids), nil
}
