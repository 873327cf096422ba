package migrations

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/uptrace/bun"
)

// Runner applies the SQL migrations under MigrationsDir against the
// database behind the bun connection.
type Runner struct {
	bunDB    *bun.DB
	dir      string
	migrator *migrate.Migrate
}

// NewRunner creates a new migration runner.
func NewRunner(bunDB *bun.DB, migrationsDir string) *Runner {
	return &Runner{bunDB: bunDB, dir: migrationsDir}
}

// Initialize prepares the migration system.
func (r *Runner) Initialize() error {
	driver, err := postgres.WithInstance(r.bunDB.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres migration driver: %w", err)
	}

	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory does not exist: %s", r.dir)
	}

	migrator, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.dir),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	r.migrator = migrator
	return nil
}

// Up runs all pending migrations.
func (r *Runner) Up() error {
	if r.migrator == nil {
		if err := r.Initialize(); err != nil {
			return err
		}
	}
	if err := r.migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Down rolls back all migrations.
func (r *Runner) Down() error {
	if r.migrator == nil {
		if err := r.Initialize(); err != nil {
			return err
		}
	}
	if err := r.migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Version reports the current schema version.
func (r *Runner) Version() (uint, bool, error) {
	if r.migrator == nil {
		if err := r.Initialize(); err != nil {
			return 0, false, err
		}
	}
	version, dirty, err := r.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close frees resources associated with the migrator.
func (r *Runner) Close() error {
	if r.migrator == nil {
		return nil
	}
	sourceErr, databaseErr := r.migrator.Close()
	if sourceErr != nil {
		return fmt.Errorf("error closing migrator source: %w", sourceErr)
	}
	if databaseErr != nil {
		return fmt.Errorf("error closing migrator database: %w", databaseErr)
	}
	return nil
}
