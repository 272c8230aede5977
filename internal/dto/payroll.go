package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollPolicyOverrides replace the configured diligence policy for one calculation.
type PayrollPolicyOverrides struct {
	DiligenceRequiredDays *int             `json:"diligence_required_days" binding:"omitempty,min=0,max=31"`
	DiligenceBonusAmount  *decimal.Decimal `json:"diligence_bonus_amount"`
}

// CalculatePayrollRequest computes one user's payroll for a month.
type CalculatePayrollRequest struct {
	UserID string `json:"user_id" binding:"required,objectid"`
	Month  int    `json:"month" binding:"required,min=1,max=12"`
	Year   int    `json:"year" binding:"required,min=2000,max=2100"`
	PayrollPolicyOverrides
	OtherBonus *decimal.Decimal `json:"other_bonus"`
}

// CalculateAllPayrollRequest computes payroll for every payable user.
type CalculateAllPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	PayrollPolicyOverrides
}

// PayrollSearchCondition filters payrolls. Non-admins only ever see their own.
type PayrollSearchCondition struct {
	UserID string               `json:"user_id" binding:"omitempty,objectid"`
	Month  int                  `json:"month" binding:"omitempty,min=1,max=12"`
	Year   int                  `json:"year" binding:"omitempty,min=2000,max=2100"`
	Status domain.PayrollStatus `json:"status" binding:"omitempty,oneof=calculated paid"`
}

func (c PayrollSearchCondition) ToDomain() domain.PayrollFilter {
	return domain.PayrollFilter{UserID: c.UserID, Month: c.Month, Year: c.Year, Status: c.Status}
}

// PayrollResponse defines data returned for a payroll.
type PayrollResponse struct {
	PayrollID        string               `json:"_id"`
	UserID           string               `json:"user_id"`
	Month            int                  `json:"month"`
	Year             int                  `json:"year"`
	WorkingDays      int                  `json:"working_days"`
	SalaryPerDay     decimal.Decimal      `json:"salary_per_day"`
	BaseSalary       decimal.Decimal      `json:"base_salary"`
	DiligenceBonus   decimal.Decimal      `json:"diligence_bonus"`
	PerformanceGrade domain.Grade         `json:"performance_grade"`
	PerformanceBonus decimal.Decimal      `json:"performance_bonus"`
	OtherBonus       decimal.Decimal      `json:"other_bonus"`
	TotalSalary      decimal.Decimal      `json:"total_salary"`
	Status           domain.PayrollStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	LastUpdatedAt    time.Time            `json:"updated_at"`
}

func ToPayrollResponse(p *domain.Payroll) PayrollResponse {
	return PayrollResponse{
		PayrollID:        p.PayrollID,
		UserID:           p.UserID,
		Month:            p.Month,
		Year:             p.Year,
		WorkingDays:      p.WorkingDays,
		SalaryPerDay:     p.SalaryPerDay,
		BaseSalary:       p.BaseSalary,
		DiligenceBonus:   p.DiligenceBonus,
		PerformanceGrade: p.PerformanceGrade,
		PerformanceBonus: p.PerformanceBonus,
		OtherBonus:       p.OtherBonus,
		TotalSalary:      p.TotalSalary,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		LastUpdatedAt:    p.LastUpdatedAt,
	}
}

// PayrollFailure reports why one user's payroll could not be calculated.
type PayrollFailure struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// CalculateAllPayrollResponse summarises a bulk calculation.
type CalculateAllPayrollResponse struct {
	Calculated []PayrollResponse `json:"calculated"`
	Failed     []PayrollFailure  `json:"failed"`
}
