package migration_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/pkg/database"
	"github.com/morehouse/pizzashack/pkg/migration"
)

type tableMigration struct {
	table string
	fail  bool
}

func (m tableMigration) Up(db *gorm.DB) error {
	if m.fail {
		return errors.New("boom")
	}
	return db.Exec("CREATE TABLE IF NOT EXISTS " + m.table + " (id INTEGER PRIMARY KEY)").Error
}

func (m tableMigration) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.table)
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRunIsIdempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	entries := []migration.Entry{
		{Name: "0002_b", Migration: tableMigration{table: "b"}},
		{Name: "0001_a", Migration: tableMigration{table: "a"}},
	}

	runner := migration.New(db, entries)
	require.NoError(t, runner.Run(ctx))
	require.NoError(t, runner.Run(ctx))

	assert.True(t, db.Migrator().HasTable("a"))
	assert.True(t, db.Migrator().HasTable("b"))

	pending, err := runner.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRollbackLastBatch(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, migration.New(db, []migration.Entry{
		{Name: "0001_a", Migration: tableMigration{table: "a"}},
	}).Run(ctx))

	runner := migration.New(db, []migration.Entry{
		{Name: "0001_a", Migration: tableMigration{table: "a"}},
		{Name: "0002_b", Migration: tableMigration{table: "b"}},
	})
	require.NoError(t, runner.Run(ctx))
	require.NoError(t, runner.Rollback(ctx))

	assert.True(t, db.Migrator().HasTable("a"))
	assert.False(t, db.Migrator().HasTable("b"))

	var out bytes.Buffer
	require.NoError(t, runner.Status(ctx, &out))
	assert.Regexp(t, `0001_a\s+Ran\s+1`, out.String())
	assert.Regexp(t, `0002_b\s+Pending`, out.String())
}

func TestRunStopsAtFailure(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	runner := migration.New(db, []migration.Entry{
		{Name: "0001_a", Migration: tableMigration{table: "a"}},
		{Name: "0002_broken", Migration: tableMigration{fail: true}},
	})
	err := runner.Run(ctx)
	assert.ErrorContains(t, err, "0002_broken up: boom")

	pending, err := runner.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "0002_broken", pending[0].Name)
}
