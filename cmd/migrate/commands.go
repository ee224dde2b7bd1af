package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/migration"

	"github.com/spf13/cobra"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return withMigrator(func(m *migration.Migrator, _ *slog.Logger) error {
			return m.Up()
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return withMigrator(func(m *migration.Migrator, _ *slog.Logger) error {
			return m.Down()
		})
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps N",
	Short: "Apply N migrations, or roll back when N is negative",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n == 0 {
			return errors.Errorf("invalid step count %q", args[0])
		}

		return withMigrator(func(m *migration.Migrator, _ *slog.Logger) error {
			return m.Steps(n)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(func(m *migration.Migrator, _ *slog.Logger) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)

			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force VERSION",
	Short: "Set the schema version without running migrations",
	Long:  "Marks VERSION as applied and clears the dirty flag. Use it to recover from a failed migration.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid version %q", args[0])
		}

		return withMigrator(func(m *migration.Migrator, _ *slog.Logger) error {
			return m.Force(version)
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, stepsCmd, versionCmd, forceCmd)
}
