package main

import (
	"fmt"

	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/pkg/database"
	"github.com/spf13/cobra"
)

// migrateCmd applies or rolls back the index migrations.
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply (up) or roll back one step of (down) database migrations",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{database.MigrateUp, database.MigrateDown},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := args[0]
	if direction != database.MigrateUp && direction != database.MigrateDown {
		return fmt.Errorf("unknown migration direction %q, want %q or %q", direction, database.MigrateUp, database.MigrateDown)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	client, err := database.NewMongoClient(cmd.Context(), cfg.MongoURI, true)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer database.CloseMongoClient(client)

	return database.RunMigrations(client, cfg.MongoDatabase, direction, logger)
}
