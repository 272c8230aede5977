package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// @title HR Ops Backend API
// @version 1.0
// @description Attendance, projects, performance and payroll for HR operations.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth

var logger *slog.Logger

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "hrops",
	Short: "HR operations backend",
	Long: `hrops serves the HR operations API: attendance, projects and tasks,
performance reviews and payroll.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize structured logger
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.Error("Command failed", slog.String("error", err.Error()))
		}
		stop()
		os.Exit(1)
	}
}
