package services

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// AttendanceSvcFacade drives the per-day attendance state machine.
type AttendanceSvcFacade interface {
	// CheckIn moves today's state from not_checked_in to checked_in.
	CheckIn(ctx context.Context, actor *domain.User, coords domain.Coordinates) (*domain.Attendance, error)

	// CheckOut moves today's state from checked_in to checked_out.
	CheckOut(ctx context.Context, actor *domain.User) (*domain.Attendance, error)

	// Today returns the current work date and its record, which is nil before check-in.
	Today(ctx context.Context, actor *domain.User) (string, *domain.Attendance, error)

	// History lists the actor's records for one month.
	History(ctx context.Context, actor *domain.User, month, year int, page domain.PageInfo) (domain.Page[domain.Attendance], error)

	ListAttendances(ctx context.Context, actor *domain.User, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error)
	DeleteAttendance(ctx context.Context, actor *domain.User, attendanceID string) error

	// WorkDate is the calendar day key of now in the configured time zone.
	WorkDate() string
}

// WorkReportSvcFacade manages reports attached to today's attendance.
type WorkReportSvcFacade interface {
	CreateWorkReport(ctx context.Context, actor *domain.User, req dto.CreateWorkReportRequest) (*domain.WorkReport, error)
	UpdateWorkReport(ctx context.Context, actor *domain.User, workReportID string, req dto.UpdateWorkReportRequest) (*domain.WorkReport, error)
	DeleteWorkReport(ctx context.Context, actor *domain.User, workReportID string) error
	ListWorkReports(ctx context.Context, actor *domain.User, filter domain.WorkReportFilter, page domain.PageInfo) (domain.Page[domain.WorkReport], error)
}
