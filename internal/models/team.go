package models

// TeamDay records how many teams were staffed on a given date, split by
// coverage window. At most one entry exists per date; adding a second
// entry for the same date updates the existing one.
type TeamDay struct {
	ID           string
	Date         string // YYYY-MM-DD
	MorningTeams int
	EveningTeams int
	FullTeams    int
	Notes        string
}

// Total returns the combined team count across all coverage windows.
func (t TeamDay) Total() int {
	return t.MorningTeams + t.EveningTeams + t.FullTeams
}
