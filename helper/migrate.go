// Package helper holds operational helpers used by the auxiliary commands.
package helper

import (
	"errors"
	"fmt"
	"net"

	"pawsit/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsPath = "file://migrations/postgres"

// Migrate applies all pending migrations against the write database.
func Migrate(cfg *config.Config) error {
	pg := cfg.DB.Postgres

	dbName := pg.Write.Name
	if pg.Prefix != "" {
		dbName = pg.Prefix + dbName
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		pg.Write.Username,
		pg.Write.Password,
		net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		dbName,
		pg.Write.SSLMode,
		pg.MigrationTable,
	)

	m, err := migrate.New(migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			log.Error().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("No pending migrations")

			return nil
		}

		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().Msg("Migrations applied")

	return nil
}
