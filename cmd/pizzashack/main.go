package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morehouse/pizzashack/app/routes"
	"github.com/morehouse/pizzashack/config"
	"github.com/morehouse/pizzashack/database/migrations"
	"github.com/morehouse/pizzashack/database/seeders"
	"github.com/morehouse/pizzashack/pkg/app"
	"github.com/morehouse/pizzashack/pkg/database"
	"github.com/morehouse/pizzashack/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "pizzashack",
	Short:         "Morehouse Pizza Shack backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}

// bootApp opens the configured store and wires the application.
func bootApp() (*app.Application, error) {
	db, err := database.Connect(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "driver", config.DatabaseDriver())

	return app.New(db).
		Routes(routes.RegisterAPI).
		Migrations(migrations.All()...).
		Seeders(seeders.RunAll), nil
}
