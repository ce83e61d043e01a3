// Package dbtest opens a migrated in-memory SQLite database for repository tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/ghuser/orderdesk/migrations"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/migrator"
)

// New returns a fresh database with every migration applied. It is closed
// automatically when the test ends.
func New(t testing.TB) *database.Database {
	t.Helper()

	ctx := context.Background()
	log := logger.New(&config.Config{LogLevel: "error"})

	db, err := database.New(ctx, config.DriverSQLite, ":memory:", log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialect := string(db.Dialect())
	if err := migrator.Up(ctx, db.DB(), dialect, migrations.FS, migrations.Dir(dialect)); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
