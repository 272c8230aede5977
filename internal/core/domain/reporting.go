package domain

import "github.com/shopspring/decimal"

// DashboardStats is the admin overview of the current day.
type DashboardStats struct {
	TotalEmployees  int64 `json:"totalEmployees"`
	CheckedInToday  int64 `json:"checkedInToday"`
	CheckedOutToday int64 `json:"checkedOutToday"`
	ActiveProjects  int64 `json:"activeProjects"`
	OpenTasks       int64 `json:"openTasks"`
	PendingPayrolls int64 `json:"pendingPayrolls"`
}

// AttendanceSummaryRow is one user's attendance count for a month.
type AttendanceSummaryRow struct {
	UserID      string `json:"userID"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	WorkingDays int    `json:"workingDays"`
	CheckedOut  int    `json:"checkedOutDays"`
}

// PayrollSummary totals every payroll component for one month.
type PayrollSummary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Headcount        int             `json:"headcount"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	DiligenceBonus   decimal.Decimal `json:"diligenceBonus"`
	PerformanceBonus decimal.Decimal `json:"performanceBonus"`
	OtherBonus       decimal.Decimal `json:"otherBonus"`
	TotalSalary      decimal.Decimal `json:"totalSalary"`
}

// TaskStatusCount is the number of tasks in one status.
type TaskStatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int64      `json:"count"`
}
