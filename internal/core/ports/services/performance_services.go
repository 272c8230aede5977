package services

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// PerformanceSvcFacade manages monthly reviews and the grade bonus table.
type PerformanceSvcFacade interface {
	CreateReview(ctx context.Context, actor *domain.User, req dto.CreateReviewRequest) (*domain.PerformanceReview, error)
	UpdateReview(ctx context.Context, actor *domain.User, reviewID string, req dto.UpdateReviewRequest) (*domain.PerformanceReview, error)
	GetReview(ctx context.Context, actor *domain.User, reviewID string) (*domain.PerformanceReview, error)
	ListReviews(ctx context.Context, actor *domain.User, filter domain.ReviewFilter, page domain.PageInfo) (domain.Page[domain.PerformanceReview], error)

	CreateBonus(ctx context.Context, actor *domain.User, req dto.CreateBonusRequest) (*domain.PerformanceBonus, error)
	// UpdateBonus changes the amount or active flag; changing the grade is refused.
	UpdateBonus(ctx context.Context, actor *domain.User, bonusID string, req dto.UpdateBonusRequest) (*domain.PerformanceBonus, error)
	DeactivateBonus(ctx context.Context, actor *domain.User, bonusID string) (*domain.PerformanceBonus, error)
	ListBonuses(ctx context.Context, activeOnly bool) ([]domain.PerformanceBonus, error)
}

// PayrollSvcFacade calculates and tracks monthly payrolls.
type PayrollSvcFacade interface {
	CalculatePayroll(ctx context.Context, actor *domain.User, req dto.CalculatePayrollRequest) (*domain.Payroll, error)
	CalculateAll(ctx context.Context, actor *domain.User, req dto.CalculateAllPayrollRequest) (*dto.CalculateAllPayrollResponse, error)
	ListPayrolls(ctx context.Context, actor *domain.User, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error)
	GetPayroll(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error)
	MarkPaid(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error)
}
