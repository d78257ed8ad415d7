package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/adapters/jsonfile"
	"github.com/example/medfleet/internal/adapters/sqlite"
	"github.com/example/medfleet/internal/config"
	"github.com/example/medfleet/internal/db"
	"github.com/example/medfleet/internal/ports/secondary"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	OK      bool
	Details string
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the medfleet configuration and storage backend",
		Long: `Health check for a medfleet installation.

Validates:
- Config file parses and names a known backend
- Data directory exists
- Storage backend opens
- Per-entity record counts

Examples:
  medfleet doctor           # Run full health check
  medfleet doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, counts := runChecks()

			hasErrors := false
			for _, r := range results {
				if !r.OK {
					hasErrors = true
					break
				}
			}

			if !quiet {
				ok := color.New(color.FgGreen).Sprint("✓")
				bad := color.New(color.FgRed).Sprint("✗")
				fmt.Println()
				for _, r := range results {
					mark := ok
					if !r.OK {
						mark = bad
					}
					fmt.Printf("%s %-16s %s\n", mark, r.Name, r.Details)
				}
				if counts != nil {
					fmt.Println()
					fmt.Printf("Records: %d employees, %d vehicles, %d shifts, %d team days, %d tasks\n",
						counts[0], counts[1], counts[2], counts[3], counts[4])
				}
				fmt.Println()
				if hasErrors {
					fmt.Println("Issues found. Run 'medfleet init' to create a fresh installation.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// runChecks validates config, data directory and backend. Counts are nil
// when the backend is unreachable.
func runChecks() ([]CheckResult, []int) {
	results := []CheckResult{}

	cfg, err := config.Load(".")
	if err != nil {
		results = append(results, CheckResult{Name: "Config", Details: err.Error()})
		return results, nil
	}
	results = append(results, CheckResult{Name: "Config", OK: true, Details: fmt.Sprintf("backend=%s listen=%s", cfg.Backend, cfg.Listen)})

	if _, err := os.Stat(cfg.DataDir); err != nil {
		results = append(results, CheckResult{Name: "Data directory", Details: cfg.DataDir + " missing"})
		return results, nil
	}
	results = append(results, CheckResult{Name: "Data directory", OK: true, Details: cfg.DataDir})

	var (
		employeeRepo secondary.EmployeeRepository
		vehicleRepo  secondary.VehicleRepository
		shiftRepo    secondary.ShiftRepository
		teamRepo     secondary.TeamDayRepository
		taskRepo     secondary.TaskRepository
	)
	switch cfg.Backend {
	case config.BackendJSON:
		store := jsonfile.NewStore(cfg.DataDir, zap.NewNop())
		employeeRepo = jsonfile.NewEmployeeRepository(store)
		vehicleRepo = jsonfile.NewVehicleRepository(store)
		shiftRepo = jsonfile.NewShiftRepository(store)
		teamRepo = jsonfile.NewTeamDayRepository(store)
		taskRepo = jsonfile.NewTaskRepository(store)
	default:
		conn, err := db.Open(filepath.Join(cfg.DataDir, db.FileName))
		if err != nil {
			results = append(results, CheckResult{Name: "Backend", Details: err.Error()})
			return results, nil
		}
		employeeRepo = sqlite.NewEmployeeRepository(conn)
		vehicleRepo = sqlite.NewVehicleRepository(conn)
		shiftRepo = sqlite.NewShiftRepository(conn)
		teamRepo = sqlite.NewTeamDayRepository(conn)
		taskRepo = sqlite.NewTaskRepository(conn)
	}

	ctx := context.Background()
	employees, err := employeeRepo.List(ctx)
	if err != nil {
		results = append(results, CheckResult{Name: "Backend", Details: err.Error()})
		return results, nil
	}
	vehicles, _ := vehicleRepo.List(ctx)
	shifts, _ := shiftRepo.List(ctx, secondary.ShiftFilters{})
	teams, _ := teamRepo.List(ctx, secondary.TeamDayFilters{})
	tasks, _ := taskRepo.List(ctx, secondary.TaskFilters{})

	results = append(results, CheckResult{Name: "Backend", OK: true, Details: cfg.Backend})
	return results, []int{len(employees), len(vehicles), len(shifts), len(teams), len(tasks)}
}
