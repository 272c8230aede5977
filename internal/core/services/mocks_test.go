package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks of the repository ports.

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) ActivateUser(ctx context.Context, userID string, activatedAt time.Time) error {
	args := m.Called(ctx, userID, activatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}

func (m *MockUserRepository) ListPayableUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserBlocked(ctx context.Context, userID string, blocked bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, blocked, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Project]), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) AddProjectMembers(ctx context.Context, projectID string, userIDs []string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, projectID, userIDs, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProjectRepository) RemoveProjectMember(ctx context.Context, projectID string, userID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, projectID, userID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProjectRepository) MarkProjectDeleted(ctx context.Context, projectID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, projectID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

var _ portsrepo.TaskRepositoryFacade = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter, page domain.PageInfo) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Task]), args.Error(1)
}

func (m *MockTaskRepository) ListSubtasks(ctx context.Context, parentID string) ([]domain.Task, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) CountUnfinishedTasks(ctx context.Context, projectID string) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) CountUnfinishedSubtasks(ctx context.Context, parentID string) (int64, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UnassignMemberTasks(ctx context.Context, projectID string, userID string, updatedBy string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, projectID, userID, updatedBy, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) MarkTaskDeleted(ctx context.Context, taskID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, taskID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockAttendanceRepository struct {
	mock.Mock
}

var _ portsrepo.AttendanceRepositoryFacade = (*MockAttendanceRepository)(nil)

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error) {
	args := m.Called(ctx, attendanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID string, workDate string) (*domain.Attendance, error) {
	args := m.Called(ctx, userID, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListAttendances(ctx context.Context, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Attendance]), args.Error(1)
}

func (m *MockAttendanceRepository) CountAttendanceDays(ctx context.Context, userID string, fromDate string, toDate string) (int64, error) {
	args := m.Called(ctx, userID, fromDate, toDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, attendance *domain.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) RecordCheckOut(ctx context.Context, attendanceID string, checkOutTime time.Time) error {
	args := m.Called(ctx, attendanceID, checkOutTime)
	return args.Error(0)
}

func (m *MockAttendanceRepository) MarkAttendanceDeleted(ctx context.Context, attendanceID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, attendanceID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockWorkReportRepository struct {
	mock.Mock
}

var _ portsrepo.WorkReportRepositoryFacade = (*MockWorkReportRepository)(nil)

func (m *MockWorkReportRepository) FindWorkReportByID(ctx context.Context, workReportID string) (*domain.WorkReport, error) {
	args := m.Called(ctx, workReportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkReport), args.Error(1)
}

func (m *MockWorkReportRepository) ListWorkReports(ctx context.Context, filter domain.WorkReportFilter, page domain.PageInfo) (domain.Page[domain.WorkReport], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.WorkReport]), args.Error(1)
}

func (m *MockWorkReportRepository) SaveWorkReport(ctx context.Context, report *domain.WorkReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockWorkReportRepository) UpdateWorkReport(ctx context.Context, report domain.WorkReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockWorkReportRepository) MarkWorkReportDeleted(ctx context.Context, workReportID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, workReportID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

var _ portsrepo.PerformanceReviewRepositoryFacade = (*MockReviewRepository)(nil)

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.PerformanceReview, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceReview), args.Error(1)
}

func (m *MockReviewRepository) FindReviewByPeriod(ctx context.Context, userID string, month int, year int) (*domain.PerformanceReview, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceReview), args.Error(1)
}

func (m *MockReviewRepository) ListReviews(ctx context.Context, filter domain.ReviewFilter, page domain.PageInfo) (domain.Page[domain.PerformanceReview], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.PerformanceReview]), args.Error(1)
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review *domain.PerformanceReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review domain.PerformanceReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type MockBonusRepository struct {
	mock.Mock
}

var _ portsrepo.PerformanceBonusRepositoryFacade = (*MockBonusRepository)(nil)

func (m *MockBonusRepository) FindBonusByID(ctx context.Context, bonusID string) (*domain.PerformanceBonus, error) {
	args := m.Called(ctx, bonusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceBonus), args.Error(1)
}

func (m *MockBonusRepository) ListBonuses(ctx context.Context, activeOnly bool) ([]domain.PerformanceBonus, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PerformanceBonus), args.Error(1)
}

func (m *MockBonusRepository) SaveBonus(ctx context.Context, bonus *domain.PerformanceBonus) error {
	args := m.Called(ctx, bonus)
	return args.Error(0)
}

func (m *MockBonusRepository) UpdateBonus(ctx context.Context, bonus domain.PerformanceBonus) error {
	args := m.Called(ctx, bonus)
	return args.Error(0)
}

type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepositoryFacade = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) ListPayrolls(ctx context.Context, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Payroll]), args.Error(1)
}

func (m *MockPayrollRepository) UpsertPayroll(ctx context.Context, payroll *domain.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

func (m *MockPayrollRepository) MarkPayrollPaid(ctx context.Context, payrollID string, paidBy string, paidAt time.Time) error {
	args := m.Called(ctx, payrollID, paidBy, paidAt)
	return args.Error(0)
}

type MockSettingRepository struct {
	mock.Mock
}

var _ portsrepo.SettingRepository = (*MockSettingRepository)(nil)

func (m *MockSettingRepository) GetOrCreateSetting(ctx context.Context) (*domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpdateSetting(ctx context.Context, setting domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

type MockTokenRepository struct {
	mock.Mock
}

var _ portsrepo.TokenRepository = (*MockTokenRepository)(nil)

func (m *MockTokenRepository) SaveToken(ctx context.Context, token *domain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindToken(ctx context.Context, userID string, token string, purpose domain.TokenPurpose) (*domain.Token, error) {
	args := m.Called(ctx, userID, token, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *MockTokenRepository) DeleteToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteUserTokens(ctx context.Context, userID string, purpose domain.TokenPurpose) error {
	args := m.Called(ctx, userID, purpose)
	return args.Error(0)
}

type MockWorkplaceRepository struct {
	mock.Mock
}

var _ portsrepo.WorkplaceRepositoryFacade = (*MockWorkplaceRepository)(nil)

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace *domain.Workplace) error {
	args := m.Called(ctx, workplace)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	args := m.Called(ctx, workplace)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) MarkWorkplaceDeleted(ctx context.Context, workplaceID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, workplaceID, deletedAt, deletedBy)
	return args.Error(0)
}

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) CountEmployees(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountCheckIns(ctx context.Context, workDate string, checkedOutOnly bool) (int64, error) {
	args := m.Called(ctx, workDate, checkedOutOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountProjects(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountOpenTasks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountPayrolls(ctx context.Context, status domain.PayrollStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) AttendanceSummary(ctx context.Context, fromDate string, toDate string) ([]domain.AttendanceSummaryRow, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceSummaryRow), args.Error(1)
}

func (m *MockReportingRepository) PayrollSummary(ctx context.Context, month int, year int) (*domain.PayrollSummary, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSummary), args.Error(1)
}

func (m *MockReportingRepository) TaskStatusCounts(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskStatusCount), args.Error(1)
}

// MockNotifier records outgoing notifications. Every method is optional: expectations are
// only checked when a test sets them.
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.NotificationSvc = (*MockNotifier)(nil)

func (m *MockNotifier) called(method string, args ...any) {
	for _, c := range m.ExpectedCalls {
		if c.Method == method {
			m.MethodCalled(method, args...)
			return
		}
	}
}

func (m *MockNotifier) SendVerification(ctx context.Context, user *domain.User, link string) {
	m.called("SendVerification", ctx, user, link)
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, user *domain.User, code string, ttl time.Duration) {
	m.called("SendPasswordReset", ctx, user, code, ttl)
}

func (m *MockNotifier) SendWelcome(ctx context.Context, user *domain.User) {
	m.called("SendWelcome", ctx, user)
}

func (m *MockNotifier) SendAccountStatus(ctx context.Context, user *domain.User, blocked bool) {
	m.called("SendAccountStatus", ctx, user, blocked)
}

func (m *MockNotifier) SendPayroll(ctx context.Context, user *domain.User, payroll *domain.Payroll) {
	m.called("SendPayroll", ctx, user, payroll)
}

// fixedClock returns a clock pinned to t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
