// Package report contains the pure aggregation logic behind the dashboard.
package report

import (
	"time"

	"github.com/example/medfleet/internal/models"
)

// SeriesDays is the length of the dashboard shift-count series.
const SeriesDays = 30

// DateLayout is the wire format for entity dates.
const DateLayout = "2006-01-02"

// SeriesPoint is one day's shift count in the dashboard series.
type SeriesPoint struct {
	Date  string
	Count int
}

// Summary holds the dashboard counts for a single day.
type Summary struct {
	TotalEmployees  int
	TotalVehicles   int
	ReadyVehicles   int
	TodayShifts     []models.Shift
	TeamsMorning    int
	TeamsEvening    int
	TeamsFull       int
	TotalTeamsToday int
	ActiveTasks     int
	ShiftSeries     []SeriesPoint
}

// BuildSummary computes the dashboard summary as of the given day.
// The shift series covers the SeriesDays calendar days ending on today
// inclusive, oldest first, one point per day.
func BuildSummary(today time.Time, employees []models.Employee, vehicles []models.Vehicle, shifts []models.Shift, teams []models.TeamDay, tasks []models.Task) Summary {
	s := Summary{
		TotalEmployees: len(employees),
		TotalVehicles:  len(vehicles),
		ActiveTasks:    len(tasks),
	}

	for _, v := range vehicles {
		if v.Status == models.VehicleStatusReady {
			s.ReadyVehicles++
		}
	}

	todayStr := today.Format(DateLayout)
	countByDate := make(map[string]int)
	for _, sh := range shifts {
		countByDate[sh.Date]++
		if sh.Date == todayStr {
			s.TodayShifts = append(s.TodayShifts, sh)
		}
	}

	for _, t := range teams {
		if t.Date != todayStr {
			continue
		}
		s.TeamsMorning += t.MorningTeams
		s.TeamsEvening += t.EveningTeams
		s.TeamsFull += t.FullTeams
	}
	s.TotalTeamsToday = s.TeamsMorning + s.TeamsEvening + s.TeamsFull

	s.ShiftSeries = make([]SeriesPoint, 0, SeriesDays)
	for i := SeriesDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(DateLayout)
		s.ShiftSeries = append(s.ShiftSeries, SeriesPoint{Date: date, Count: countByDate[date]})
	}

	return s
}
