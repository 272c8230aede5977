package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

const msgReportAfterCheckOut = "Cannot modify work reports after check-out"

type workReportService struct {
	BaseService
	reportRepo     portsrepo.WorkReportRepositoryFacade
	attendanceRepo portsrepo.AttendanceReader
	clock          interface{ WorkDate() string }
}

// NewWorkReportService creates the work report service. The attendance service supplies the
// current work date so both agree on the time zone.
func NewWorkReportService(
	reportRepo portsrepo.WorkReportRepositoryFacade,
	attendanceRepo portsrepo.AttendanceReader,
	attendance portssvc.AttendanceSvcFacade,
) portssvc.WorkReportSvcFacade {
	return &workReportService{reportRepo: reportRepo, attendanceRepo: attendanceRepo, clock: attendance}
}

var _ portssvc.WorkReportSvcFacade = (*workReportService)(nil)

// openAttendance returns today's attendance if the actor is checked in and not yet checked out.
func (s *workReportService) openAttendance(ctx context.Context, userID string) (*domain.Attendance, error) {
	attendance, err := s.attendanceRepo.FindAttendanceByUserAndDate(ctx, userID, s.clock.WorkDate())
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load today's attendance", slog.String("user_id", userID))
		return nil, err
	}
	switch attendance.Status() {
	case domain.AttendanceNotCheckedIn:
		return nil, apperrors.New(apperrors.ErrValidation, "You must check in before submitting a work report")
	case domain.AttendanceCheckedOut:
		return nil, apperrors.New(apperrors.ErrValidation, msgReportAfterCheckOut)
	}
	return attendance, nil
}

// ownReport loads a report the actor may modify today.
func (s *workReportService) ownReport(ctx context.Context, actor *domain.User, workReportID string) (*domain.WorkReport, error) {
	report, err := s.reportRepo.FindWorkReportByID(ctx, workReportID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find work report", slog.String("work_report_id", workReportID))
		return nil, notFound(err, "Work report not found")
	}
	if report.UserID != actor.UserID {
		return nil, apperrors.New(apperrors.ErrForbidden, "You can only modify your own work reports")
	}
	attendance, err := s.openAttendance(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if attendance.AttendanceID != report.AttendanceID {
		return nil, apperrors.New(apperrors.ErrValidation, "Only today's work reports can be modified")
	}
	return report, nil
}

func (s *workReportService) CreateWorkReport(ctx context.Context, actor *domain.User, req dto.CreateWorkReportRequest) (*domain.WorkReport, error) {
	attendance, err := s.openAttendance(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	report := &domain.WorkReport{
		AttendanceID: attendance.AttendanceID,
		UserID:       actor.UserID,
		WorkTypeID:   strings.TrimSpace(req.WorkTypeID),
		Description:  req.Description,
		WorkDate:     attendance.WorkDate,
		AuditFields:  newAudit(s.now(), actor.UserID),
	}
	if err := s.reportRepo.SaveWorkReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save work report")
		return nil, err
	}
	return report, nil
}

func (s *workReportService) UpdateWorkReport(ctx context.Context, actor *domain.User, workReportID string, req dto.UpdateWorkReportRequest) (*domain.WorkReport, error) {
	report, err := s.ownReport(ctx, actor, workReportID)
	if err != nil {
		return nil, err
	}
	if req.WorkTypeID != nil {
		report.WorkTypeID = strings.TrimSpace(*req.WorkTypeID)
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	touch(&report.AuditFields, s.now(), actor.UserID)
	if err := s.reportRepo.UpdateWorkReport(ctx, *report); err != nil {
		s.LogError(ctx, err, "Failed to update work report", slog.String("work_report_id", workReportID))
		return nil, err
	}
	return report, nil
}

func (s *workReportService) DeleteWorkReport(ctx context.Context, actor *domain.User, workReportID string) error {
	if _, err := s.ownReport(ctx, actor, workReportID); err != nil {
		return err
	}
	if err := s.reportRepo.MarkWorkReportDeleted(ctx, workReportID, s.now(), actor.UserID); err != nil {
		s.LogError(ctx, err, "Failed to delete work report", slog.String("work_report_id", workReportID))
		return notFound(err, "Work report not found")
	}
	return nil
}

func (s *workReportService) ListWorkReports(ctx context.Context, actor *domain.User, filter domain.WorkReportFilter, page domain.PageInfo) (domain.Page[domain.WorkReport], error) {
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	result, err := s.reportRepo.ListWorkReports(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list work reports")
		return domain.Page[domain.WorkReport]{}, err
	}
	return result, nil
}
