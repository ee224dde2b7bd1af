package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/errors"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/migration"

	_ "github.com/lib/pq"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
)

const databaseURLEnv = "DATABASE_URL"

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the marketplace database schema",
	Long: `Applies the SQL migrations embedded in the binary.

The database is taken from --database-url, then the DATABASE_URL
environment variable, then the postgres section of the config file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withMigrator opens the database, runs fn and closes everything afterwards.
func withMigrator(fn func(m *migration.Migrator, logger *slog.Logger) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	m, err := migration.New(db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", closeErr))
		}
	}()

	return fn(m, logger)
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	url := databaseURL
	if url == "" {
		url = os.Getenv(databaseURLEnv)
	}
	if url != "" {
		db, err := sql.Open("postgres", url)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open database")
		}

		return db, nil
	}

	if cfg.Postgres == nil {
		return nil, errors.New("no database configured: set --database-url, DATABASE_URL or the postgres config section")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return db, nil
}
