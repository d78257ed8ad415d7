// Package models contains domain types for medfleet entities.
// Persistence lives behind the repository interfaces in ports/secondary.
package models

// Employee represents a staff member of the ambulance service.
// The code is the natural key and must be unique across the roster.
type Employee struct {
	Code  string
	Name  string
	Phone string
	Role  string
}
