package models

// Vehicle represents an ambulance in the fleet.
// The plate is the natural key and must be unique across the fleet.
type Vehicle struct {
	Plate       string
	Model       string
	Status      string
	LastService string // YYYY-MM-DD, empty if never serviced
	Notes       string
}

// Vehicle status constants. Status is free text apart from the ready
// value, which the dashboard counts against literally.
const (
	VehicleStatusReady       = "ready"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusOutOfOrder  = "out_of_order"
)
