package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error)

	// FindAttendanceByUserAndDate returns the user's record for one work date, or apperrors.ErrNotFound.
	FindAttendanceByUserAndDate(ctx context.Context, userID, workDate string) (*domain.Attendance, error)

	ListAttendances(ctx context.Context, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error)

	// CountAttendanceDays counts the user's records with fromDate <= work_date <= toDate.
	CountAttendanceDays(ctx context.Context, userID, fromDate, toDate string) (int64, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	// SaveAttendance inserts a check-in. A second record for the same user and day fails with apperrors.ErrDuplicate.
	SaveAttendance(ctx context.Context, attendance *domain.Attendance) error

	// RecordCheckOut sets check_out_time only if it is still empty; otherwise apperrors.ErrConflict.
	RecordCheckOut(ctx context.Context, attendanceID string, checkOutTime time.Time) error

	MarkAttendanceDeleted(ctx context.Context, attendanceID string, deletedAt time.Time, deletedBy string) error
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

// WorkReportReader defines read operations for work reports.
type WorkReportReader interface {
	FindWorkReportByID(ctx context.Context, workReportID string) (*domain.WorkReport, error)
	ListWorkReports(ctx context.Context, filter domain.WorkReportFilter, page domain.PageInfo) (domain.Page[domain.WorkReport], error)
}

// WorkReportWriter defines write operations for work reports.
type WorkReportWriter interface {
	SaveWorkReport(ctx context.Context, report *domain.WorkReport) error
	UpdateWorkReport(ctx context.Context, report domain.WorkReport) error
	MarkWorkReportDeleted(ctx context.Context, workReportID string, deletedAt time.Time, deletedBy string) error
}

// WorkReportRepositoryFacade combines all work report repository interfaces
type WorkReportRepositoryFacade interface {
	WorkReportReader
	WorkReportWriter
}
