// Package migration applies the embedded SQL migrations with golang-migrate.
package migration

import (
	"database/sql"
	"io/fs"
	"log/slog"

	"marketplace/internal/errors"
	"marketplace/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator wraps a golang-migrate instance bound to the embedded migrations.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// New creates a Migrator that reads migrations from the embedded filesystem.
func New(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	return NewWithSource(db, migrations.FS, logger)
}

// NewWithSource creates a Migrator reading migrations from source.
func NewWithSource(db *sql.DB, source fs.FS, logger *slog.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create postgres migration driver")
	}

	sourceDriver, err := iofs.New(source, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open migration source")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up runs all pending migrations.
func (m *Migrator) Up() error {
	m.logger.Info("Running migrations up")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration up failed")
	}

	return m.logVersion("Migrations completed")
}

// Down rolls back all migrations.
func (m *Migrator) Down() error {
	m.logger.Warn("Running migrations down")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration down failed")
	}

	m.logger.Info("All migrations rolled back")

	return nil
}

// Steps applies n migrations (positive = up, negative = down).
func (m *Migrator) Steps(n int) error {
	m.logger.Info("Running migration steps", slog.Int("steps", n))

	err := m.migrate.Steps(n)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "migration steps failed")
	}

	return m.logVersion("Migration steps completed")
}

// Version returns the current migration version; zero when nothing was applied.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to get migration version")
	}

	return version, dirty, nil
}

// Force sets the migration version without running migrations.
// It is meant for repairing a dirty database state.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", slog.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return errors.Wrapf(err, "failed to force version %d", version)
	}

	return nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return errors.Wrap(sourceErr, "failed to close migration source")
	}
	if dbErr != nil {
		return errors.Wrap(dbErr, "failed to close migration database")
	}

	return nil
}

func (m *Migrator) logVersion(msg string) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	m.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
