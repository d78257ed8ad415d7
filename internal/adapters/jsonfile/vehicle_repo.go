package jsonfile

import (
	"context"
	"fmt"

	"github.com/example/medfleet/internal/ports/secondary"
)

// vehicleJSON is the on-disk shape of a vehicle record.
type vehicleJSON struct {
	Plate       string `json:"plate"`
	Model       string `json:"model"`
	Status      string `json:"status"`
	LastService string `json:"last_service"`
	Notes       string `json:"notes"`
}

// VehicleRepository implements secondary.VehicleRepository over a JSON file.
type VehicleRepository struct {
	store *Store
}

// NewVehicleRepository creates a file-backed vehicle repository.
func NewVehicleRepository(store *Store) *VehicleRepository {
	return &VehicleRepository{store: store}
}

func (r *VehicleRepository) loadAll() ([]vehicleJSON, error) {
	var vehicles []vehicleJSON
	if err := r.store.load(vehiclesFile, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func vehicleToRecord(v vehicleJSON) *secondary.VehicleRecord {
	return &secondary.VehicleRecord{
		Plate:       v.Plate,
		Model:       v.Model,
		Status:      v.Status,
		LastService: v.LastService,
		Notes:       v.Notes,
	}
}

func vehicleFromRecord(rec *secondary.VehicleRecord) vehicleJSON {
	return vehicleJSON{
		Plate:       rec.Plate,
		Model:       rec.Model,
		Status:      rec.Status,
		LastService: rec.LastService,
		Notes:       rec.Notes,
	}
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	vehicles, err := r.loadAll()
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		if v.Plate == vehicle.Plate {
			return fmt.Errorf("vehicle %s already exists", vehicle.Plate)
		}
	}
	vehicles = append(vehicles, vehicleFromRecord(vehicle))
	return r.store.save(vehiclesFile, vehicles)
}

// GetByPlate retrieves a vehicle by plate.
func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*secondary.VehicleRecord, error) {
	vehicles, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.Plate == plate {
			return vehicleToRecord(v), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// List retrieves all vehicles in file order.
func (r *VehicleRepository) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	vehicles, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	records := make([]*secondary.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		records = append(records, vehicleToRecord(v))
	}
	return records, nil
}

// Update replaces the vehicle with the matching plate.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	vehicles, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, v := range vehicles {
		if v.Plate == vehicle.Plate {
			vehicles[i] = vehicleFromRecord(vehicle)
			return r.store.save(vehiclesFile, vehicles)
		}
	}
	return secondary.ErrNotFound
}

// Delete removes the vehicle with the given plate.
func (r *VehicleRepository) Delete(ctx context.Context, plate string) error {
	vehicles, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, v := range vehicles {
		if v.Plate == plate {
			vehicles = append(vehicles[:i], vehicles[i+1:]...)
			return r.store.save(vehiclesFile, vehicles)
		}
	}
	return secondary.ErrNotFound
}
