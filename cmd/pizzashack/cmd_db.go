package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/morehouse/pizzashack/pkg/app"
)

// withApp boots the application, runs fn and closes the store.
func withApp(fn func(a *app.Application) error) error {
	a, err := bootApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// pizzashack migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.Application) error {
			return a.Migrator().Run(cmd.Context())
		})
	},
}

// pizzashack migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.Application) error {
			return a.Migrator().Rollback(cmd.Context())
		})
	},
}

// pizzashack migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.Application) error {
			return a.Migrator().Status(cmd.Context(), os.Stdout)
		})
	},
}

// pizzashack seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.Application) error {
			return a.Seed(cmd.Context())
		})
	},
}
