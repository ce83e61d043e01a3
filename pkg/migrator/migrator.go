package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Up runs all pending goose migrations found in dir of files against db.
// dialect is a goose dialect name ("postgres" or "sqlite3").
func Up(ctx context.Context, db *sql.DB, dialect string, files fs.FS, dir string) error {
	if err := setup(dialect, files); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// Status logs the applied/pending state of every migration in dir.
func Status(ctx context.Context, db *sql.DB, dialect string, files fs.FS, dir string) error {
	if err := setup(dialect, files); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	return nil
}

// Version returns the current schema version of db.
func Version(ctx context.Context, db *sql.DB, dialect string, files fs.FS) (int64, error) {
	if err := setup(dialect, files); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

func setup(dialect string, files fs.FS) error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}
