package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReviewRequest grades a user for one month.
type CreateReviewRequest struct {
	UserID string       `json:"user_id" binding:"required,objectid"`
	Month  int          `json:"month" binding:"required,min=1,max=12"`
	Year   int          `json:"year" binding:"required,min=2000,max=2100"`
	Grade  domain.Grade `json:"grade" binding:"required,grade"`
	Notes  string       `json:"notes" binding:"max=2000"`
}

// UpdateReviewRequest changes the grade or notes of a review.
type UpdateReviewRequest struct {
	Grade *domain.Grade `json:"grade" binding:"omitempty,grade"`
	Notes *string       `json:"notes" binding:"omitempty,max=2000"`
}

// ReviewSearchCondition filters reviews. Non-admins only ever see their own.
type ReviewSearchCondition struct {
	UserID string       `json:"user_id" binding:"omitempty,objectid"`
	Month  int          `json:"month" binding:"omitempty,min=1,max=12"`
	Year   int          `json:"year" binding:"omitempty,min=2000,max=2100"`
	Grade  domain.Grade `json:"grade" binding:"omitempty,grade"`
}

func (c ReviewSearchCondition) ToDomain() domain.ReviewFilter {
	return domain.ReviewFilter{UserID: c.UserID, Month: c.Month, Year: c.Year, Grade: c.Grade}
}

// ReviewResponse defines data returned for a performance review.
type ReviewResponse struct {
	ReviewID      string       `json:"_id"`
	UserID        string       `json:"user_id"`
	Month         int          `json:"month"`
	Year          int          `json:"year"`
	Grade         domain.Grade `json:"grade"`
	Notes         string       `json:"notes"`
	ReviewerID    string       `json:"reviewer_id"`
	CreatedAt     time.Time    `json:"created_at"`
	LastUpdatedAt time.Time    `json:"updated_at"`
}

func ToReviewResponse(r *domain.PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ReviewID:      r.ReviewID,
		UserID:        r.UserID,
		Month:         r.Month,
		Year:          r.Year,
		Grade:         r.Grade,
		Notes:         r.Notes,
		ReviewerID:    r.ReviewerID,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// CreateBonusRequest configures the bonus paid for a grade.
type CreateBonusRequest struct {
	Grade       domain.Grade    `json:"grade" binding:"required,grade"`
	BonusAmount decimal.Decimal `json:"bonus_amount"`
}

// UpdateBonusRequest changes a bonus amount or reactivates it. Grade may be
// repeated but never changed.
type UpdateBonusRequest struct {
	Grade       *domain.Grade    `json:"grade" binding:"omitempty,grade"`
	BonusAmount *decimal.Decimal `json:"bonus_amount"`
	IsActive    *bool            `json:"is_active"`
}

// BonusResponse defines data returned for a performance bonus.
type BonusResponse struct {
	BonusID       string          `json:"_id"`
	Grade         domain.Grade    `json:"grade"`
	BonusAmount   decimal.Decimal `json:"bonus_amount"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdatedAt time.Time       `json:"updated_at"`
}

func ToBonusResponse(b *domain.PerformanceBonus) BonusResponse {
	return BonusResponse{
		BonusID:       b.BonusID,
		Grade:         b.Grade,
		BonusAmount:   b.BonusAmount,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

func ToBonusResponses(bs []domain.PerformanceBonus) []BonusResponse {
	out := make([]BonusResponse, len(bs))
	for i := range bs {
		out[i] = ToBonusResponse(&bs[i])
	}
	return out
}

// BonusListQuery selects whether deactivated bonuses are listed. Only admins may include them.
type BonusListQuery struct {
	IncludeInactive bool `form:"include_inactive"`
}
