package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hrops_backend/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratemongo "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migration directions accepted by RunMigrations.
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// RunMigrations applies the embedded index migrations against dbName.
// "down" rolls back a single step.
func RunMigrations(client *mongo.Client, dbName, direction string, logger *slog.Logger) error {
	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	driver, err := migratemongo.WithInstance(client, &migratemongo.Config{DatabaseName: dbName})
	if err != nil {
		return fmt.Errorf("could not create mongodb driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("direction", direction))
	}

	// Closing the source is enough; the client is owned by the caller.
	if sourceErr := source.Close(); sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
	}
	return nil
}
