package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
)

const (
	msgAlreadyCheckedIn  = "You have already checked in today"
	msgAlreadyCheckedOut = "You have already checked out today"
	msgNotCheckedIn      = "You have not checked in today"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	workplaceRepo  portsrepo.WorkplaceReader
	location       *time.Location
}

// AttendanceOption configures optional attendanceService behaviour.
type AttendanceOption func(*attendanceService)

// WithAttendanceClock pins the clock used for work dates and timestamps.
func WithAttendanceClock(now func() time.Time) AttendanceOption {
	return func(s *attendanceService) { s.Now = now }
}

// NewAttendanceService creates the attendance service. Work dates are computed in loc.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	workplaceRepo portsrepo.WorkplaceReader,
	loc *time.Location,
	opts ...AttendanceOption,
) portssvc.AttendanceSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	s := &attendanceService{attendanceRepo: attendanceRepo, workplaceRepo: workplaceRepo, location: loc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) WorkDate() string {
	return s.now().In(s.location).Format(domain.WorkDateLayout)
}

// today loads the actor's record for the current work date. A missing record is (nil, nil).
func (s *attendanceService) today(ctx context.Context, userID string) (string, *domain.Attendance, error) {
	workDate := s.WorkDate()
	attendance, err := s.attendanceRepo.FindAttendanceByUserAndDate(ctx, userID, workDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return workDate, nil, nil
		}
		s.LogError(ctx, err, "Failed to load today's attendance", slog.String("user_id", userID))
		return workDate, nil, err
	}
	return workDate, attendance, nil
}

// matchWorkplace returns the workplace containing coords. With no workplaces configured any
// position is accepted and the returned ID is empty.
func (s *attendanceService) matchWorkplace(ctx context.Context, coords domain.Coordinates) (string, error) {
	workplaces, err := s.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces")
		return "", err
	}
	if len(workplaces) == 0 {
		return "", nil
	}
	for i := range workplaces {
		if workplaces[i].Contains(coords) {
			return workplaces[i].WorkplaceID, nil
		}
	}
	return "", apperrors.New(apperrors.ErrValidation, "You are not within range of any workplace")
}

func (s *attendanceService) CheckIn(ctx context.Context, actor *domain.User, coords domain.Coordinates) (*domain.Attendance, error) {
	workDate, existing, err := s.today(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.ErrConflict, msgAlreadyCheckedIn)
	}

	workplaceID, err := s.matchWorkplace(ctx, coords)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attendance := &domain.Attendance{
		UserID:      actor.UserID,
		WorkDate:    workDate,
		CheckInTime: &now,
		Coordinates: coords,
		WorkplaceID: workplaceID,
		AuditFields: newAudit(now, actor.UserID),
	}
	if err := s.attendanceRepo.SaveAttendance(ctx, attendance); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.ErrConflict, msgAlreadyCheckedIn, err)
		}
		s.LogError(ctx, err, "Failed to save attendance")
		return nil, err
	}
	s.LogInfo(ctx, "Checked in", slog.String("attendance_id", attendance.AttendanceID), slog.String("work_date", workDate))
	return attendance, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, actor *domain.User) (*domain.Attendance, error) {
	_, attendance, err := s.today(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	switch attendance.Status() {
	case domain.AttendanceNotCheckedIn:
		return nil, apperrors.New(apperrors.ErrNotFound, msgNotCheckedIn)
	case domain.AttendanceCheckedOut:
		return nil, apperrors.New(apperrors.ErrConflict, msgAlreadyCheckedOut)
	}

	now := s.now()
	if err := s.attendanceRepo.RecordCheckOut(ctx, attendance.AttendanceID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Wrap(apperrors.ErrConflict, msgAlreadyCheckedOut, err)
		}
		s.LogError(ctx, err, "Failed to record check-out", slog.String("attendance_id", attendance.AttendanceID))
		return nil, err
	}
	attendance.CheckOutTime = &now
	touch(&attendance.AuditFields, now, actor.UserID)
	s.LogInfo(ctx, "Checked out", slog.String("attendance_id", attendance.AttendanceID))
	return attendance, nil
}

func (s *attendanceService) Today(ctx context.Context, actor *domain.User) (string, *domain.Attendance, error) {
	return s.today(ctx, actor.UserID)
}

func (s *attendanceService) History(ctx context.Context, actor *domain.User, month, year int, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	if month == 0 || year == 0 {
		current := s.now().In(s.location)
		month, year = int(current.Month()), current.Year()
	}
	from, to := domain.MonthRange(month, year)
	return s.list(ctx, domain.AttendanceFilter{UserID: actor.UserID, FromDate: from, ToDate: to}, page)
}

func (s *attendanceService) ListAttendances(ctx context.Context, actor *domain.User, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Page[domain.Attendance]{}, err
	}
	return s.list(ctx, filter, page)
}

func (s *attendanceService) list(ctx context.Context, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	result, err := s.attendanceRepo.ListAttendances(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendances")
		return domain.Page[domain.Attendance]{}, err
	}
	return result, nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, actor *domain.User, attendanceID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.attendanceRepo.MarkAttendanceDeleted(ctx, attendanceID, s.now(), actor.UserID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete attendance", slog.String("attendance_id", attendanceID))
		return notFound(err, "Attendance record not found")
	}
	s.LogInfo(ctx, "Attendance deleted", slog.String("attendance_id", attendanceID))
	return nil
}
