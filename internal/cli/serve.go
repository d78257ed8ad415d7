// Package cli implements the medfleet subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/config"
	"github.com/example/medfleet/internal/web"
	"github.com/example/medfleet/internal/wire"
)

// loadConfig reads the config from the working directory and applies any
// flag overrides.
func loadConfig(addr, dataDir, storage string) (*config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Listen = addr
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if storage != "" {
		if storage != config.BackendSQLite && storage != config.BackendJSON {
			return nil, fmt.Errorf("unknown storage backend %q", storage)
		}
		cfg.Backend = storage
	}
	return cfg, nil
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr, dataDir, storage string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the medfleet web server",
		Long: `Run the medfleet web server.

Serves the dashboard, record pages, roster grid, CSV exports and the
/health endpoint. Shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(addr, dataDir, storage)
			if err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			wire.Configure(cfg, logger)
			server, err := web.NewServer(web.Services{
				Employees: wire.EmployeeService(),
				Vehicles:  wire.VehicleService(),
				Shifts:    wire.ShiftService(),
				Teams:     wire.TeamService(),
				Tasks:     wire.TaskService(),
				Dashboard: wire.DashboardService(),
				Status:    wire.StatusService(),
				Roster:    wire.RosterService(),
				Exports:   wire.ExportService(),
			}, logger)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:    cfg.Listen,
				Handler: server.Router(),
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening",
					zap.String("addr", cfg.Listen),
					zap.String("backend", cfg.Backend),
					zap.String("data_dir", cfg.DataDir),
				)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory (overrides config)")
	cmd.Flags().StringVar(&storage, "storage", "", "Storage backend: sqlite or json (overrides config)")

	return cmd
}
