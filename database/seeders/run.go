// Package seeders provides a registry of database seed functions.
//
//	func init() {
//	    seeders.Register("users", SeedUsers)
//	}
//
// Run them with `pizzashack seed`, or on boot when SEED_ON_BOOT is set.
package seeders

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/pkg/logger"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, db *gorm.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry. Call it from init().
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order. A failing
// seeder does not stop the ones after it; all failures are joined.
func RunAll(ctx context.Context, db *gorm.DB) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		logger.Info("seed: no seeders registered")
		return nil
	}

	var errs []error
	for _, e := range current {
		logger.Info("seed: running", "seeder", e.name)
		if err := e.fn(ctx, db); err != nil {
			logger.Warn("seed: finished with errors", "seeder", e.name, "error", err)
			errs = append(errs, fmt.Errorf("seeder %q: %w", e.name, err))
			continue
		}
		logger.Info("seed: done", "seeder", e.name)
	}
	return errors.Join(errs...)
}
