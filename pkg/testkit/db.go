package testkit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/database/migrations"
	"github.com/morehouse/pizzashack/pkg/database"
	"github.com/morehouse/pizzashack/pkg/migration"
)

// NewDB opens a SQLite store under t.TempDir() with every migration applied.
// The handle is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, migration.New(db, migrations.All()).Run(context.Background()))
	return db
}
