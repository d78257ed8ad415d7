package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new SQLite vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleSelectCols = "plate, model, status, last_service, notes"

// scanVehicle scans a vehicle row into a VehicleRecord.
func scanVehicle(scanner interface {
	Scan(dest ...any) error
}) (*secondary.VehicleRecord, error) {
	record := &secondary.VehicleRecord{}
	err := scanner.Scan(&record.Plate, &record.Model, &record.Status,
		&record.LastService, &record.Notes)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles (plate, model, status, last_service, notes) VALUES (?, ?, ?, ?, ?)",
		vehicle.Plate, vehicle.Model, vehicle.Status, vehicle.LastService, vehicle.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByPlate retrieves a vehicle by plate.
func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*secondary.VehicleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+vehicleSelectCols+" FROM vehicles WHERE plate = ?", plate)
	record, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// List retrieves all vehicles in insertion order.
func (r *VehicleRepository) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+vehicleSelectCols+" FROM vehicles ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*secondary.VehicleRecord
	for rows.Next() {
		record, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, record)
	}
	return vehicles, rows.Err()
}

// Update replaces the vehicle with the matching plate.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE vehicles SET model = ?, status = ?, last_service = ?, notes = ? WHERE plate = ?",
		vehicle.Model, vehicle.Status, vehicle.LastService, vehicle.Notes, vehicle.Plate,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Delete removes the vehicle with the given plate.
func (r *VehicleRepository) Delete(ctx context.Context, plate string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE plate = ?", plate)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}
