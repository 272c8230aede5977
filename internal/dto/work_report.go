package dto

import (
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// CreateWorkReportRequest records work done during today's attendance.
type CreateWorkReportRequest struct {
	WorkTypeID  string `json:"work_type_id" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=5000"`
}

// UpdateWorkReportRequest updates a report; nil fields are left unchanged.
type UpdateWorkReportRequest struct {
	WorkTypeID  *string `json:"work_type_id" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=5000"`
}

// WorkReportSearchCondition filters work reports. Non-admins only ever see their own.
type WorkReportSearchCondition struct {
	UserID       string `json:"user_id" binding:"omitempty,objectid"`
	AttendanceID string `json:"attendance_id" binding:"omitempty,objectid"`
	FromDate     string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate       string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Month        int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year         int    `json:"year" binding:"omitempty,min=2000,max=2100"`
}

// ToDomain converts the condition; a month/year pair overrides the date range.
func (c WorkReportSearchCondition) ToDomain() domain.WorkReportFilter {
	f := domain.WorkReportFilter{
		UserID:       c.UserID,
		AttendanceID: c.AttendanceID,
		FromDate:     c.FromDate,
		ToDate:       c.ToDate,
	}
	if c.Month != 0 && c.Year != 0 {
		f.FromDate, f.ToDate = domain.MonthRange(c.Month, c.Year)
	}
	return f
}

// WorkReportResponse defines data returned for a work report.
type WorkReportResponse struct {
	WorkReportID  string    `json:"_id"`
	AttendanceID  string    `json:"attendance_id"`
	UserID        string    `json:"user_id"`
	WorkTypeID    string    `json:"work_type_id"`
	Description   string    `json:"description"`
	WorkDate      string    `json:"work_date"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"updated_at"`
}

// ToWorkReportResponse converts domain.WorkReport to DTO.
func ToWorkReportResponse(r *domain.WorkReport) WorkReportResponse {
	return WorkReportResponse{
		WorkReportID:  r.WorkReportID,
		AttendanceID:  r.AttendanceID,
		UserID:        r.UserID,
		WorkTypeID:    r.WorkTypeID,
		Description:   r.Description,
		WorkDate:      r.WorkDate,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}
