package database

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// dialectMap maps database drivers to goose dialect names.
var dialectMap = map[string]string{
	"sqlite":   "sqlite3",
	"postgres": "postgres",
}

// RunMigrations applies all embedded migrations for the driver. Replaces the
// ad-hoc create-everything-at-startup bootstrap with versioned DDL.
func RunMigrations(db *sql.DB, driver string) error {
	dialect, ok := dialectMap[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	// Each dialect keeps its own DDL (serial columns differ).
	migrationsDir, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("migrations directory: %w", err)
	}
	goose.SetBaseFS(migrationsDir)
	defer goose.SetBaseFS(nil)

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("database migrations applied", "driver", driver)
	return nil
}
