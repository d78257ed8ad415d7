package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/ports/primary"
	"github.com/example/medfleet/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var out, month, date, employee, supervisor string
	var dataDir, storage string

	cmd := &cobra.Command{
		Use:   "export <employees|vehicles|shifts|teams|tasks>",
		Short: "Write an entity's records as CSV",
		Long: `Write one entity's records as CSV to a file or stdout.

Uses the same headers and filters as the web export endpoints.

Examples:
  medfleet export employees
  medfleet export shifts --month 2024-03 --out shifts.csv
  medfleet export tasks --employee ana`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("", dataDir, storage)
			if err != nil {
				return err
			}
			wire.Configure(cfg, zap.NewNop())

			res, err := wire.ExportService().Export(context.Background(), primary.ExportRequest{
				Entity:     args[0],
				Month:      month,
				Date:       date,
				Employee:   employee,
				Supervisor: supervisor,
			})
			if err != nil {
				return err
			}

			dest := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				dest = f
			}

			w := csv.NewWriter(dest)
			if err := w.Write(res.Headers); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			if err := w.WriteAll(res.Rows); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}

			if out != "" {
				fmt.Printf("%s Wrote %d rows to %s\n", checkMark(), len(res.Rows), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&month, "month", "", "Shift month filter (YYYY-MM)")
	cmd.Flags().StringVar(&date, "date", "", "Team date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&employee, "employee", "", "Task employee name filter")
	cmd.Flags().StringVar(&supervisor, "supervisor", "", "Task supervisor name filter")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	cmd.Flags().StringVar(&storage, "storage", "", "Storage backend (overrides config)")

	return cmd
}
