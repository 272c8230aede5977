package mapping

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToModelReview(d domain.PerformanceReview) (models.PerformanceReview, error) {
	id := primitive.NilObjectID
	if d.ReviewID != "" {
		oid, err := ToObjectID(d.ReviewID)
		if err != nil {
			return models.PerformanceReview{}, err
		}
		id = oid
	}
	userID, err := ToObjectID(d.UserID)
	if err != nil {
		return models.PerformanceReview{}, err
	}
	return models.PerformanceReview{
		ID:          id,
		UserID:      userID,
		Month:       d.Month,
		Year:        d.Year,
		Grade:       string(d.Grade),
		Notes:       d.Notes,
		ReviewerID:  d.ReviewerID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainReview(m models.PerformanceReview) domain.PerformanceReview {
	return domain.PerformanceReview{
		ReviewID:    m.ID.Hex(),
		UserID:      m.UserID.Hex(),
		Month:       m.Month,
		Year:        m.Year,
		Grade:       domain.Grade(m.Grade),
		Notes:       m.Notes,
		ReviewerID:  m.ReviewerID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainReviewSlice(ms []models.PerformanceReview) []domain.PerformanceReview {
	ds := make([]domain.PerformanceReview, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReview(m)
	}
	return ds
}

func ToModelBonus(d domain.PerformanceBonus) (models.PerformanceBonus, error) {
	id := primitive.NilObjectID
	if d.BonusID != "" {
		oid, err := ToObjectID(d.BonusID)
		if err != nil {
			return models.PerformanceBonus{}, err
		}
		id = oid
	}
	return models.PerformanceBonus{
		ID:          id,
		Grade:       string(d.Grade),
		BonusAmount: ToDecimal128(d.BonusAmount),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainBonus(m models.PerformanceBonus) domain.PerformanceBonus {
	return domain.PerformanceBonus{
		BonusID:     m.ID.Hex(),
		Grade:       domain.Grade(m.Grade),
		BonusAmount: FromDecimal128(m.BonusAmount),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainBonusSlice(ms []models.PerformanceBonus) []domain.PerformanceBonus {
	ds := make([]domain.PerformanceBonus, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBonus(m)
	}
	return ds
}

func ToModelPayroll(d domain.Payroll) (models.Payroll, error) {
	id := primitive.NilObjectID
	if d.PayrollID != "" {
		oid, err := ToObjectID(d.PayrollID)
		if err != nil {
			return models.Payroll{}, err
		}
		id = oid
	}
	userID, err := ToObjectID(d.UserID)
	if err != nil {
		return models.Payroll{}, err
	}
	return models.Payroll{
		ID:               id,
		UserID:           userID,
		Month:            d.Month,
		Year:             d.Year,
		WorkingDays:      d.WorkingDays,
		SalaryPerDay:     ToDecimal128(d.SalaryPerDay),
		BaseSalary:       ToDecimal128(d.BaseSalary),
		DiligenceBonus:   ToDecimal128(d.DiligenceBonus),
		PerformanceGrade: string(d.PerformanceGrade),
		PerformanceBonus: ToDecimal128(d.PerformanceBonus),
		OtherBonus:       ToDecimal128(d.OtherBonus),
		TotalSalary:      ToDecimal128(d.TotalSalary),
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainPayroll(m models.Payroll) domain.Payroll {
	return domain.Payroll{
		PayrollID:        m.ID.Hex(),
		UserID:           m.UserID.Hex(),
		Month:            m.Month,
		Year:             m.Year,
		WorkingDays:      m.WorkingDays,
		SalaryPerDay:     FromDecimal128(m.SalaryPerDay),
		BaseSalary:       FromDecimal128(m.BaseSalary),
		DiligenceBonus:   FromDecimal128(m.DiligenceBonus),
		PerformanceGrade: domain.Grade(m.PerformanceGrade),
		PerformanceBonus: FromDecimal128(m.PerformanceBonus),
		OtherBonus:       FromDecimal128(m.OtherBonus),
		TotalSalary:      FromDecimal128(m.TotalSalary),
		Status:           domain.PayrollStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPayrollSlice(ms []models.Payroll) []domain.Payroll {
	ds := make([]domain.Payroll, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayroll(m)
	}
	return ds
}
