package models

// Shift represents a single duty assignment: one employee covering one
// period on one date. IDs are assigned at insert time and never reused.
type Shift struct {
	ID           string
	Date         string // YYYY-MM-DD
	Period       string // one of the Period* constants
	EmployeeCode string
	Sector       string
	ChiefName    string
}

// Period codes for shifts. PeriodOff is never persisted; it is the
// roster marker for clearing an assignment.
const (
	PeriodDay   = "D"
	PeriodNight = "N"
	PeriodFull  = "F"
	PeriodOff   = "O"
)

// DefaultSector is assigned to shifts created through the roster grid,
// which has no sector input.
const DefaultSector = "General"
