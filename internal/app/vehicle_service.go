package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/medfleet/internal/models"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

// VehicleServiceImpl implements the VehicleService interface.
type VehicleServiceImpl struct {
	vehicleRepo secondary.VehicleRepository
}

// NewVehicleService creates a new VehicleService with injected dependencies.
func NewVehicleService(vehicleRepo secondary.VehicleRepository) *VehicleServiceImpl {
	return &VehicleServiceImpl{vehicleRepo: vehicleRepo}
}

// ListVehicles lists all vehicles in insertion order.
func (s *VehicleServiceImpl) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	records, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return recordsToVehicles(records), nil
}

// AddVehicle creates a new vehicle after validating the request.
func (s *VehicleServiceImpl) AddVehicle(ctx context.Context, req primary.AddVehicleRequest) error {
	if req.Plate == "" || req.Model == "" || req.Status == "" {
		return errors.New("plate, model and status are required")
	}

	// Duplicate natural key check
	_, err := s.vehicleRepo.GetByPlate(ctx, req.Plate)
	if err == nil {
		return fmt.Errorf("plate number %s already exists", req.Plate)
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("failed to check plate number: %w", err)
	}

	record := &secondary.VehicleRecord{
		Plate:       req.Plate,
		Model:       req.Model,
		Status:      req.Status,
		LastService: req.LastService,
		Notes:       req.Notes,
	}
	if err := s.vehicleRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// UpdateVehicle replaces the vehicle with the matching plate.
func (s *VehicleServiceImpl) UpdateVehicle(ctx context.Context, req primary.UpdateVehicleRequest) error {
	if req.Model == "" || req.Status == "" {
		return errors.New("model and status are required")
	}

	record := &secondary.VehicleRecord{
		Plate:       req.Plate,
		Model:       req.Model,
		Status:      req.Status,
		LastService: req.LastService,
		Notes:       req.Notes,
	}
	err := s.vehicleRepo.Update(ctx, record)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("vehicle %s not found", req.Plate)
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle. Unknown plates are a silent no-op.
func (s *VehicleServiceImpl) DeleteVehicle(ctx context.Context, plate string) error {
	err := s.vehicleRepo.Delete(ctx, plate)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
