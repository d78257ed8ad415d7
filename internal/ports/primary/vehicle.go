package primary

import (
	"context"

	"github.com/example/medfleet/internal/models"
)

// VehicleService defines the primary port for vehicle operations.
type VehicleService interface {
	// ListVehicles lists all vehicles in insertion order.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)

	// AddVehicle creates a new vehicle. Plate, model and status are
	// required and the plate must be unique.
	AddVehicle(ctx context.Context, req AddVehicleRequest) error

	// UpdateVehicle replaces the vehicle with the matching plate.
	UpdateVehicle(ctx context.Context, req UpdateVehicleRequest) error

	// DeleteVehicle removes a vehicle. Unknown plates are a no-op.
	DeleteVehicle(ctx context.Context, plate string) error
}

// AddVehicleRequest contains parameters for creating a vehicle.
type AddVehicleRequest struct {
	Plate       string
	Model       string
	Status      string
	LastService string // optional
	Notes       string // optional
}

// UpdateVehicleRequest contains parameters for editing a vehicle.
type UpdateVehicleRequest struct {
	Plate       string
	Model       string
	Status      string
	LastService string
	Notes       string
}
