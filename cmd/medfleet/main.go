package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/medfleet/internal/cli"
	"github.com/example/medfleet/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "medfleet",
		Short:   "medfleet - ambulance service operations records",
		Version: version.String(),
		Long: `medfleet keeps the operational records of an ambulance service:
employees, vehicles, shifts, daily team counts and logistics tasks,
with a monthly duty roster and CSV exports, served as a web application.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
