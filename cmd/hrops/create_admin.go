package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
	"github.com/SscSPs/hrops_backend/internal/repositories/database/mongodb"
	"github.com/SscSPs/hrops_backend/internal/utils"
	"github.com/SscSPs/hrops_backend/pkg/database"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

// createAdminCmd bootstraps the first administrator, since only admins can create accounts with roles.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an activated admin account, or promote an existing one",
	Long: `Creates an activated admin account. If an account with the email already
exists it is promoted to admin and activated; its password is left unchanged.

Example:
  hrops create-admin --email admin@example.com --password s3cret! --name "Site Admin"`,
	RunE: runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password, at least 6 characters (required)")
	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "admin full name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	email := strings.ToLower(strings.TrimSpace(adminEmail))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", adminEmail)
	}
	if len(adminPassword) < 6 || len(adminPassword) > 72 {
		return errors.New("password must be between 6 and 72 characters")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := cmd.Context()
	client, err := database.NewMongoClient(ctx, cfg.MongoURI, true)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer database.CloseMongoClient(client)

	users := mongodb.NewRepositoryProvider(client.Database(cfg.MongoDatabase)).UserRepo
	now := time.Now().UTC()

	existing, err := users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Role = domain.RoleAdmin
		existing.IsActivated = true
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = existing.UserID
		if err := users.UpdateUser(ctx, *existing); err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}
		logger.Info("Existing user promoted to admin", slog.String("user_id", existing.UserID), slog.String("email", email))
		return nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &domain.User{
		FullName:     strings.TrimSpace(adminName),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActivated:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := users.SaveUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	logger.Info("Admin created", slog.String("user_id", admin.UserID), slog.String("email", email))
	return nil
}
