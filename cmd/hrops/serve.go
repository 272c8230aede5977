package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/services"
	"github.com/SscSPs/hrops_backend/internal/handlers"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/SscSPs/hrops_backend/internal/notification"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/internal/repositories/database/mongodb"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/SscSPs/hrops_backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	appName         = "HR Ops"
	shutdownTimeout = 15 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer database.CloseMongoClient(client)
	logger.Info("Database connection established.", slog.String("database", cfg.MongoDatabase))

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(client, cfg.MongoDatabase, database.MigrateUp, logger); err != nil {
			return err
		}
	}

	repos := mongodb.NewRepositoryProvider(client.Database(cfg.MongoDatabase))

	var mailer notification.Mailer = notification.NoopMailer{Logger: logger}
	if cfg.SMTPConfigured() {
		mailer = notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	}
	dispatcher := notification.NewDispatcher(mailer, notification.DispatcherConfig{
		Workers:      cfg.MailWorkers,
		MaxRetries:   cfg.MailMaxRetries,
		RetryBackoff: cfg.MailRetryBackoff,
	}, logger)
	// Runs after the server has stopped accepting requests so queued mail is delivered.
	defer dispatcher.Close()

	notifier := notification.NewNotifier(dispatcher, appName, cfg.OneTimeTokenTTL)
	container := services.NewServiceContainer(cfg, repos, notifier)

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer analytics.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, analytics); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
