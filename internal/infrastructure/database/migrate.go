package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Atlas00000/sharevoices/migrations"
)

// MigrateUp applies every pending embedded migration to the database at url.
func MigrateUp(url string) error {
	return runMigrations(url, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(url string, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return runMigrations(url, func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

func runMigrations(url string, apply func(*migrate.Migrate) error) error {
	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", sourceDriver, url)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := apply(migrator); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
