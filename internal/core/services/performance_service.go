package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

type performanceService struct {
	BaseService
	reviewRepo portsrepo.PerformanceReviewRepositoryFacade
	bonusRepo  portsrepo.PerformanceBonusRepositoryFacade
	userRepo   portsrepo.UserReader
}

// NewPerformanceService creates the performance review and bonus service.
func NewPerformanceService(
	reviewRepo portsrepo.PerformanceReviewRepositoryFacade,
	bonusRepo portsrepo.PerformanceBonusRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.PerformanceSvcFacade {
	return &performanceService{reviewRepo: reviewRepo, bonusRepo: bonusRepo, userRepo: userRepo}
}

var _ portssvc.PerformanceSvcFacade = (*performanceService)(nil)

func (s *performanceService) CreateReview(ctx context.Context, actor *domain.User, req dto.CreateReviewRequest) (*domain.PerformanceReview, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !req.Grade.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "Grade must be one of A, B, C, D")
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		s.logUnexpected(ctx, err, "Failed to find reviewed user", slog.String("user_id", req.UserID))
		return nil, notFound(err, "User not found")
	}

	_, err := s.reviewRepo.FindReviewByPeriod(ctx, req.UserID, req.Month, req.Year)
	switch {
	case err == nil:
		return nil, apperrors.Newf(apperrors.ErrDuplicate, "A performance review for %02d/%d already exists for this user", req.Month, req.Year)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up existing review")
		return nil, err
	}

	review := &domain.PerformanceReview{
		UserID:      req.UserID,
		Month:       req.Month,
		Year:        req.Year,
		Grade:       req.Grade,
		Notes:       req.Notes,
		ReviewerID:  actor.UserID,
		AuditFields: newAudit(s.now(), actor.UserID),
	}
	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, "A performance review for this period already exists for this user", err)
		}
		s.LogError(ctx, err, "Failed to save review")
		return nil, err
	}
	s.LogInfo(ctx, "Performance review created", slog.String("review_id", review.ReviewID), slog.String("user_id", review.UserID))
	return review, nil
}

func (s *performanceService) findReview(ctx context.Context, reviewID string) (*domain.PerformanceReview, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find review", slog.String("review_id", reviewID))
		return nil, notFound(err, "Performance review not found")
	}
	return review, nil
}

func (s *performanceService) UpdateReview(ctx context.Context, actor *domain.User, reviewID string, req dto.UpdateReviewRequest) (*domain.PerformanceReview, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if req.Grade != nil {
		if !req.Grade.Valid() {
			return nil, apperrors.New(apperrors.ErrValidation, "Grade must be one of A, B, C, D")
		}
		review.Grade = *req.Grade
	}
	if req.Notes != nil {
		review.Notes = *req.Notes
	}
	review.ReviewerID = actor.UserID
	touch(&review.AuditFields, s.now(), actor.UserID)

	if err := s.reviewRepo.UpdateReview(ctx, *review); err != nil {
		s.LogError(ctx, err, "Failed to update review", slog.String("review_id", reviewID))
		return nil, err
	}
	return review, nil
}

func (s *performanceService) GetReview(ctx context.Context, actor *domain.User, reviewID string) (*domain.PerformanceReview, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && review.UserID != actor.UserID {
		return nil, apperrors.New(apperrors.ErrForbidden, "You can only view your own performance reviews")
	}
	return review, nil
}

func (s *performanceService) ListReviews(ctx context.Context, actor *domain.User, filter domain.ReviewFilter, page domain.PageInfo) (domain.Page[domain.PerformanceReview], error) {
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	result, err := s.reviewRepo.ListReviews(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list reviews")
		return domain.Page[domain.PerformanceReview]{}, err
	}
	return result, nil
}

func (s *performanceService) CreateBonus(ctx context.Context, actor *domain.User, req dto.CreateBonusRequest) (*domain.PerformanceBonus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !req.Grade.Valid() {
		return nil, apperrors.New(apperrors.ErrValidation, "Grade must be one of A, B, C, D")
	}
	if req.BonusAmount.IsNegative() {
		return nil, apperrors.New(apperrors.ErrValidation, "bonus_amount cannot be negative")
	}

	existing, err := s.bonusRepo.ListBonuses(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bonuses")
		return nil, err
	}
	for _, b := range existing {
		if b.Grade == req.Grade {
			return nil, apperrors.Newf(apperrors.ErrDuplicate, "A bonus for grade %s already exists", req.Grade)
		}
	}

	bonus := &domain.PerformanceBonus{
		Grade:       req.Grade,
		BonusAmount: req.BonusAmount,
		IsActive:    true,
		AuditFields: newAudit(s.now(), actor.UserID),
	}
	if err := s.bonusRepo.SaveBonus(ctx, bonus); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrDuplicate, "A bonus for grade "+string(req.Grade)+" already exists", err)
		}
		s.LogError(ctx, err, "Failed to save bonus")
		return nil, err
	}
	s.LogInfo(ctx, "Performance bonus created", slog.String("grade", string(bonus.Grade)), slog.String("amount", bonus.BonusAmount.String()))
	return bonus, nil
}

func (s *performanceService) findBonus(ctx context.Context, bonusID string) (*domain.PerformanceBonus, error) {
	bonus, err := s.bonusRepo.FindBonusByID(ctx, bonusID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find bonus", slog.String("bonus_id", bonusID))
		return nil, notFound(err, "Performance bonus not found")
	}
	return bonus, nil
}

func (s *performanceService) UpdateBonus(ctx context.Context, actor *domain.User, bonusID string, req dto.UpdateBonusRequest) (*domain.PerformanceBonus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	bonus, err := s.findBonus(ctx, bonusID)
	if err != nil {
		return nil, err
	}
	if req.Grade != nil && *req.Grade != bonus.Grade {
		return nil, apperrors.New(apperrors.ErrValidation, "The grade of a bonus cannot be changed")
	}
	if req.BonusAmount != nil {
		if req.BonusAmount.IsNegative() {
			return nil, apperrors.New(apperrors.ErrValidation, "bonus_amount cannot be negative")
		}
		bonus.BonusAmount = *req.BonusAmount
	}
	if req.IsActive != nil {
		bonus.IsActive = *req.IsActive
	}
	return s.saveBonus(ctx, actor, bonus)
}

func (s *performanceService) DeactivateBonus(ctx context.Context, actor *domain.User, bonusID string) (*domain.PerformanceBonus, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	bonus, err := s.findBonus(ctx, bonusID)
	if err != nil {
		return nil, err
	}
	if !bonus.IsActive {
		return bonus, nil
	}
	bonus.IsActive = false
	return s.saveBonus(ctx, actor, bonus)
}

func (s *performanceService) saveBonus(ctx context.Context, actor *domain.User, bonus *domain.PerformanceBonus) (*domain.PerformanceBonus, error) {
	touch(&bonus.AuditFields, s.now(), actor.UserID)
	if err := s.bonusRepo.UpdateBonus(ctx, *bonus); err != nil {
		s.LogError(ctx, err, "Failed to update bonus", slog.String("bonus_id", bonus.BonusID))
		return nil, err
	}
	return bonus, nil
}

func (s *performanceService) ListBonuses(ctx context.Context, activeOnly bool) ([]domain.PerformanceBonus, error) {
	bonuses, err := s.bonusRepo.ListBonuses(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bonuses")
		return nil, err
	}
	if bonuses == nil {
		return []domain.PerformanceBonus{}, nil
	}
	return bonuses, nil
}
