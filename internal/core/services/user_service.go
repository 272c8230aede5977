package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	notifier portssvc.NotificationSvc
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, notifier portssvc.NotificationSvc) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, notifier: notifier}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	if !actor.IsAdmin() && actor.UserID != userID {
		return nil, apperrors.New(apperrors.ErrForbidden, "You can only view your own account")
	}
	return s.GetUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error) {
	result, err := s.userRepo.ListUsers(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return domain.Page[domain.User]{}, err
	}
	return result, nil
}

func (s *userService) CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if req.BaseSalaryPerDay.IsNegative() {
		return nil, apperrors.New(apperrors.ErrValidation, "base_salary_per_day cannot be negative")
	}
	email := normalizeEmail(req.Email)
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.New(apperrors.ErrDuplicate, "Email is already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	user := &domain.User{
		FullName:         strings.TrimSpace(req.FullName),
		Email:            email,
		PasswordHash:     hash,
		Phone:            req.Phone,
		Role:             role,
		BaseSalaryPerDay: req.BaseSalaryPerDay,
		IsActivated:      true,
		AuditFields:      newAudit(s.now(), actor.UserID),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, "Email is already registered", err)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, err
	}

	s.notifier.SendWelcome(ctx, user)
	s.LogInfo(ctx, "User created by admin", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if !actor.IsAdmin() {
		if actor.UserID != userID {
			return nil, apperrors.New(apperrors.ErrForbidden, "You can only update your own account")
		}
		if req.AdminOnly() {
			return nil, apperrors.New(apperrors.ErrForbidden, "Only administrators can change role, salary or activation")
		}
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, apperrors.Newf(apperrors.ErrValidation, "Unknown role %q", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.BaseSalaryPerDay != nil {
		if req.BaseSalaryPerDay.IsNegative() {
			return nil, apperrors.New(apperrors.ErrValidation, "base_salary_per_day cannot be negative")
		}
		user.BaseSalaryPerDay = *req.BaseSalaryPerDay
	}
	if req.IsActivated != nil {
		user.IsActivated = *req.IsActivated
	}
	touch(&user.AuditFields, s.now(), actor.UserID)

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) SetBlocked(ctx context.Context, actor *domain.User, userID string, blocked bool) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor.UserID == userID {
		return nil, apperrors.New(apperrors.ErrValidation, "You cannot block or unblock your own account")
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.userRepo.SetUserBlocked(ctx, userID, blocked, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to change blocked state", slog.String("user_id", userID))
		return nil, err
	}
	user.IsBlocked = blocked
	if blocked {
		user.RefreshTokenHash = ""
		user.RefreshTokenExpiryTime = nil
	}
	touch(&user.AuditFields, now, actor.UserID)

	s.notifier.SendAccountStatus(ctx, user, blocked)
	s.LogInfo(ctx, "User blocked state changed", slog.String("user_id", userID), slog.Bool("blocked", blocked))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor *domain.User, userID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == userID {
		return apperrors.New(apperrors.ErrValidation, "You cannot delete your own account")
	}
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, s.now(), actor.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return notFound(err, "User not found")
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
