package domain

import "github.com/shopspring/decimal"

// PayrollStatus tracks whether a computed payroll has been paid out.
type PayrollStatus string

const (
	PayrollCalculated PayrollStatus = "calculated"
	PayrollPaid       PayrollStatus = "paid"
)

// Payroll is the salary breakdown of one user for one month.
type Payroll struct {
	PayrollID        string          `json:"payrollID"`
	UserID           string          `json:"userID"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	WorkingDays      int             `json:"workingDays"`
	SalaryPerDay     decimal.Decimal `json:"salaryPerDay"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	DiligenceBonus   decimal.Decimal `json:"diligenceBonus"`
	PerformanceGrade Grade           `json:"performanceGrade"`
	PerformanceBonus decimal.Decimal `json:"performanceBonus"`
	OtherBonus       decimal.Decimal `json:"otherBonus"`
	TotalSalary      decimal.Decimal `json:"totalSalary"`
	Status           PayrollStatus   `json:"status"`
	AuditFields
}

// DiligencePolicy rewards users who reach a number of working days in the month.
type DiligencePolicy struct {
	RequiredDays int
	BonusAmount  decimal.Decimal
}

// PayrollInput carries everything the payroll formula needs.
type PayrollInput struct {
	WorkingDays  int
	SalaryPerDay decimal.Decimal
	Diligence    DiligencePolicy
	Grade        Grade
	BonusConfig  map[Grade]decimal.Decimal
	OtherBonus   decimal.Decimal
}

// PayrollFigures is the computed salary breakdown.
type PayrollFigures struct {
	BaseSalary       decimal.Decimal
	DiligenceBonus   decimal.Decimal
	PerformanceBonus decimal.Decimal
	TotalSalary      decimal.Decimal
}

// ComputePayroll applies the salary formula:
// base = days × per-day; diligence when days reach the threshold; performance bonus by grade
// (zero when the grade is unmapped); total is the sum of all components.
func ComputePayroll(in PayrollInput) PayrollFigures {
	base := in.SalaryPerDay.Mul(decimal.NewFromInt(int64(in.WorkingDays)))
	diligence := decimal.Zero
	if in.WorkingDays >= in.Diligence.RequiredDays {
		diligence = in.Diligence.BonusAmount
	}
	performance, ok := in.BonusConfig[in.Grade]
	if !ok {
		performance = decimal.Zero
	}
	return PayrollFigures{
		BaseSalary:       base,
		DiligenceBonus:   diligence,
		PerformanceBonus: performance,
		TotalSalary:      base.Add(diligence).Add(performance).Add(in.OtherBonus),
	}
}

// PayrollFilter narrows payroll listings.
type PayrollFilter struct {
	UserID string
	Month  int
	Year   int
	Status PayrollStatus
}
