// Package app wires the store, schema history, seeders and routes into a
// runnable application.
//
//	db, err := database.Connect(config.DatabaseDriver(), config.DatabaseDSN())
//	...
//	application := app.New(db).
//	    Routes(routes.RegisterAPI).
//	    Migrations(migrations.All()...).
//	    Seeders(seeders.RunAll)
//
//	application.Boot(ctx)
//	err = application.Serve(ctx)
package app

import (
	"context"
	"net"
	"net/http"
	"sync"

	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/config"
	"github.com/morehouse/pizzashack/internal/server"
	"github.com/morehouse/pizzashack/pkg/database"
	"github.com/morehouse/pizzashack/pkg/logger"
	"github.com/morehouse/pizzashack/pkg/migration"
	"github.com/morehouse/pizzashack/pkg/router"
)

// SeedFunc fills the store with demo data.
type SeedFunc func(ctx context.Context, db *gorm.DB) error

// RoutesFunc registers endpoints backed by db.
type RoutesFunc func(r *router.Router, db *gorm.DB)

// Application owns the store handle for the life of the process.
type Application struct {
	db         *gorm.DB
	routesFns  []RoutesFunc
	migrations []migration.Entry
	seeders    []SeedFunc

	once    sync.Once
	router  *router.Router
	handler http.Handler
}

func New(db *gorm.DB) *Application {
	return &Application{db: db}
}

// Routes adds a route-registration callback. Callbacks run in order when the
// handler is first built.
func (a *Application) Routes(fn RoutesFunc) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

func (a *Application) Migrations(entries ...migration.Entry) *Application {
	a.migrations = append(a.migrations, entries...)
	return a
}

func (a *Application) Seeders(fns ...SeedFunc) *Application {
	a.seeders = append(a.seeders, fns...)
	return a
}

func (a *Application) DB() *gorm.DB { return a.db }

// Migrator returns a runner over the registered migrations.
func (a *Application) Migrator() *migration.Runner {
	return migration.New(a.db, a.migrations)
}

// Seed runs every seeder. All of them run even when one fails.
func (a *Application) Seed(ctx context.Context) error {
	var first error
	for _, fn := range a.seeders {
		if err := fn(ctx, a.db); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Boot applies pending migrations and, when SEED_ON_BOOT is set, seeds the
// store. Failures are logged and the application keeps going half
// initialized.
func (a *Application) Boot(ctx context.Context) {
	if err := a.Migrator().Run(ctx); err != nil {
		logger.Error("boot: migrate failed", "error", err)
	}
	if !config.SeedOnBoot() {
		return
	}
	if err := a.Seed(ctx); err != nil {
		logger.Warn("boot: seed finished with errors", "error", err)
	}
}

// RouteList returns every mounted route.
func (a *Application) RouteList() []router.RouteInfo {
	a.build()
	return a.router.Routes()
}

// Serve listens on APP_PORT until ctx is cancelled, then closes the store.
func (a *Application) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("", config.AppPort())
	err := server.Start(ctx, addr, a.Handler(), config.ShutdownTimeout())
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *Application) Close() error {
	return database.Close(a.db)
}
