// Package wire provides dependency injection for the medfleet application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/example/medfleet/internal/adapters/jsonfile"
	"github.com/example/medfleet/internal/adapters/sqlite"
	"github.com/example/medfleet/internal/app"
	"github.com/example/medfleet/internal/config"
	"github.com/example/medfleet/internal/db"
	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/ports/secondary"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	employeeService  primary.EmployeeService
	vehicleService   primary.VehicleService
	shiftService     primary.ShiftService
	teamService      primary.TeamService
	taskService      primary.TaskService
	dashboardService primary.DashboardService
	statusService    primary.StatusService
	rosterService    primary.RosterService
	exportService    primary.ExportService

	once sync.Once
)

// Configure sets the configuration and logger used to build the service
// graph. Must be called before the first service accessor.
func Configure(c *config.Config, l *zap.Logger) {
	cfg = c
	logger = l
}

// EmployeeService returns the singleton EmployeeService instance.
func EmployeeService() primary.EmployeeService {
	once.Do(initServices)
	return employeeService
}

// VehicleService returns the singleton VehicleService instance.
func VehicleService() primary.VehicleService {
	once.Do(initServices)
	return vehicleService
}

// ShiftService returns the singleton ShiftService instance.
func ShiftService() primary.ShiftService {
	once.Do(initServices)
	return shiftService
}

// TeamService returns the singleton TeamService instance.
func TeamService() primary.TeamService {
	once.Do(initServices)
	return teamService
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// StatusService returns the singleton StatusService instance.
func StatusService() primary.StatusService {
	once.Do(initServices)
	return statusService
}

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// ExportService returns the singleton ExportService instance.
func ExportService() primary.ExportService {
	once.Do(initServices)
	return exportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		employeeRepo secondary.EmployeeRepository
		vehicleRepo  secondary.VehicleRepository
		shiftRepo    secondary.ShiftRepository
		teamRepo     secondary.TeamDayRepository
		taskRepo     secondary.TaskRepository
	)

	switch cfg.Backend {
	case config.BackendJSON:
		store := jsonfile.NewStore(cfg.DataDir, logger)
		if err := store.Init(); err != nil {
			log.Fatalf("failed to initialize data directory: %v", err)
		}
		employeeRepo = jsonfile.NewEmployeeRepository(store)
		vehicleRepo = jsonfile.NewVehicleRepository(store)
		shiftRepo = jsonfile.NewShiftRepository(store)
		teamRepo = jsonfile.NewTeamDayRepository(store)
		taskRepo = jsonfile.NewTaskRepository(store)

	default:
		database, err := db.Open(filepath.Join(cfg.DataDir, db.FileName))
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		employeeRepo = sqlite.NewEmployeeRepository(database)
		vehicleRepo = sqlite.NewVehicleRepository(database)
		shiftRepo = sqlite.NewShiftRepository(database)
		teamRepo = sqlite.NewTeamDayRepository(database)
		taskRepo = sqlite.NewTaskRepository(database)
	}

	employeeService = app.NewEmployeeService(employeeRepo)
	vehicleService = app.NewVehicleService(vehicleRepo)
	shiftService = app.NewShiftService(shiftRepo, employeeRepo)
	teamService = app.NewTeamService(teamRepo)
	taskService = app.NewTaskService(taskRepo)

	dashboard := app.NewDashboardService(employeeRepo, vehicleRepo, shiftRepo, teamRepo, taskRepo)
	dashboardService = dashboard
	statusService = dashboard

	rosterService = app.NewRosterService(shiftRepo, employeeRepo)
	exportService = app.NewExportService(employeeRepo, vehicleRepo, shiftRepo, teamRepo, taskRepo)
}
