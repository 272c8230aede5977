package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// PerformanceReviewRepositoryFacade stores monthly grades. (user_id, month, year) is unique.
type PerformanceReviewRepositoryFacade interface {
	FindReviewByID(ctx context.Context, reviewID string) (*domain.PerformanceReview, error)
	FindReviewByPeriod(ctx context.Context, userID string, month, year int) (*domain.PerformanceReview, error)
	ListReviews(ctx context.Context, filter domain.ReviewFilter, page domain.PageInfo) (domain.Page[domain.PerformanceReview], error)
	SaveReview(ctx context.Context, review *domain.PerformanceReview) error
	UpdateReview(ctx context.Context, review domain.PerformanceReview) error
}

// PerformanceBonusRepositoryFacade stores the grade to bonus configuration. Grade is unique.
type PerformanceBonusRepositoryFacade interface {
	FindBonusByID(ctx context.Context, bonusID string) (*domain.PerformanceBonus, error)
	ListBonuses(ctx context.Context, activeOnly bool) ([]domain.PerformanceBonus, error)
	SaveBonus(ctx context.Context, bonus *domain.PerformanceBonus) error
	UpdateBonus(ctx context.Context, bonus domain.PerformanceBonus) error
}

// PayrollRepositoryFacade stores computed payrolls. (user_id, month, year) is unique.
type PayrollRepositoryFacade interface {
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error)

	// UpsertPayroll writes the figures for the payroll's (user, month, year), creating the
	// document on first calculation, and sets the stored ID on payroll.
	UpsertPayroll(ctx context.Context, payroll *domain.Payroll) error

	MarkPayrollPaid(ctx context.Context, payrollID string, paidBy string, paidAt time.Time) error
}
