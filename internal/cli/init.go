package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/medfleet/internal/adapters/jsonfile"
	"github.com/example/medfleet/internal/config"
	"github.com/example/medfleet/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var dataDir, storage string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the medfleet data directory",
		Long: `Initialize the medfleet configuration and storage backend.

Writes medfleet.json to the working directory and creates the data
directory with an empty database schema or empty JSON collections.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("", dataDir, storage)
			if err != nil {
				return err
			}

			if err := config.Save(".", cfg); err != nil {
				return err
			}
			fmt.Printf("%s Config written to ./%s\n", checkMark(), config.FileName)

			switch cfg.Backend {
			case config.BackendJSON:
				store := jsonfile.NewStore(cfg.DataDir, zap.NewNop())
				if err := store.Init(); err != nil {
					return fmt.Errorf("failed to initialize JSON collections: %w", err)
				}
				fmt.Printf("%s Empty collections created in %s\n", checkMark(), cfg.DataDir)
			default:
				path := filepath.Join(cfg.DataDir, db.FileName)
				conn, err := db.Open(path)
				if err != nil {
					return fmt.Errorf("failed to initialize database: %w", err)
				}
				conn.Close()
				fmt.Printf("%s Database created at %s\n", checkMark(), path)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  medfleet serve")
			fmt.Println("  medfleet doctor")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Data directory (default \"data\")")
	cmd.Flags().StringVar(&storage, "storage", "", "Storage backend: sqlite or json")

	return cmd
}

func checkMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}
