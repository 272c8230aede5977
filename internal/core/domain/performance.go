package domain

import "github.com/shopspring/decimal"

// Grade is a monthly performance grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Valid reports whether g is one of A–D.
func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD:
		return true
	}
	return false
}

// PerformanceReview is the grade given to a user for one month.
type PerformanceReview struct {
	ReviewID   string `json:"reviewID"`
	UserID     string `json:"userID"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Grade      Grade  `json:"grade"`
	Notes      string `json:"notes"`
	ReviewerID string `json:"reviewerID"`
	AuditFields
}

// PerformanceBonus maps a grade to a bonus amount. Grade never changes after creation.
type PerformanceBonus struct {
	BonusID     string          `json:"bonusID"`
	Grade       Grade           `json:"grade"`
	BonusAmount decimal.Decimal `json:"bonusAmount"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// ReviewFilter narrows review listings.
type ReviewFilter struct {
	UserID string
	Month  int
	Year   int
	Grade  Grade
}
