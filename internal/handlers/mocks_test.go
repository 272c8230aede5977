package handlers

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) VerifyEmail(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}
func (m *MockAuthService) ResendVerification(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) GoogleLogin(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshTokenResponse), args.Error(1)
}
func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, filter domain.UserFilter, page domain.PageInfo) (domain.Page[domain.User], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, actor *domain.User, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) SetBlocked(ctx context.Context, actor *domain.User, userID string, blocked bool) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, blocked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, actor *domain.User, userID string) error {
	return m.Called(ctx, actor, userID).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) project(args mock.Arguments) (*domain.Project, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) CreateProject(ctx context.Context, actor *domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, req))
}
func (m *MockProjectService) ListProjects(ctx context.Context, actor *domain.User, filter domain.ProjectFilter, page domain.PageInfo) (domain.Page[domain.Project], error) {
	args := m.Called(ctx, actor, filter, page)
	return args.Get(0).(domain.Page[domain.Project]), args.Error(1)
}
func (m *MockProjectService) GetProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID))
}
func (m *MockProjectService) UpdateProject(ctx context.Context, actor *domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID, req))
}
func (m *MockProjectService) DeleteProject(ctx context.Context, actor *domain.User, projectID string) error {
	return m.Called(ctx, actor, projectID).Error(0)
}
func (m *MockProjectService) CompleteProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID))
}
func (m *MockProjectService) JoinProject(ctx context.Context, actor *domain.User, projectID string) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID))
}
func (m *MockProjectService) AddMembers(ctx context.Context, actor *domain.User, projectID string, userIDs []string) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID, userIDs))
}
func (m *MockProjectService) RemoveMember(ctx context.Context, actor *domain.User, projectID, userID string) (*domain.Project, error) {
	return m.project(m.Called(ctx, actor, projectID, userID))
}
func (m *MockProjectService) ListMembers(ctx context.Context, actor *domain.User, projectID string) (*domain.User, []domain.User, error) {
	args := m.Called(ctx, actor, projectID)
	var manager *domain.User
	if args.Get(0) != nil {
		manager = args.Get(0).(*domain.User)
	}
	var members []domain.User
	if args.Get(1) != nil {
		members = args.Get(1).([]domain.User)
	}
	return manager, members, args.Error(2)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) attendance(args mock.Arguments) (*domain.Attendance, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}
func (m *MockAttendanceService) CheckIn(ctx context.Context, actor *domain.User, coords domain.Coordinates) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, actor, coords))
}
func (m *MockAttendanceService) CheckOut(ctx context.Context, actor *domain.User) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, actor))
}
func (m *MockAttendanceService) Today(ctx context.Context, actor *domain.User) (string, *domain.Attendance, error) {
	args := m.Called(ctx, actor)
	var a *domain.Attendance
	if args.Get(1) != nil {
		a = args.Get(1).(*domain.Attendance)
	}
	return args.String(0), a, args.Error(2)
}
func (m *MockAttendanceService) History(ctx context.Context, actor *domain.User, month, year int, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	args := m.Called(ctx, actor, month, year, page)
	return args.Get(0).(domain.Page[domain.Attendance]), args.Error(1)
}
func (m *MockAttendanceService) ListAttendances(ctx context.Context, actor *domain.User, filter domain.AttendanceFilter, page domain.PageInfo) (domain.Page[domain.Attendance], error) {
	args := m.Called(ctx, actor, filter, page)
	return args.Get(0).(domain.Page[domain.Attendance]), args.Error(1)
}
func (m *MockAttendanceService) DeleteAttendance(ctx context.Context, actor *domain.User, attendanceID string) error {
	return m.Called(ctx, actor, attendanceID).Error(0)
}
func (m *MockAttendanceService) WorkDate() string {
	return m.Called().String(0)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) payroll(args mock.Arguments) (*domain.Payroll, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) CalculatePayroll(ctx context.Context, actor *domain.User, req dto.CalculatePayrollRequest) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, actor, req))
}
func (m *MockPayrollService) CalculateAll(ctx context.Context, actor *domain.User, req dto.CalculateAllPayrollRequest) (*dto.CalculateAllPayrollResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CalculateAllPayrollResponse), args.Error(1)
}
func (m *MockPayrollService) ListPayrolls(ctx context.Context, actor *domain.User, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error) {
	args := m.Called(ctx, actor, filter, page)
	return args.Get(0).(domain.Page[domain.Payroll]), args.Error(1)
}
func (m *MockPayrollService) GetPayroll(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, actor, payrollID))
}
func (m *MockPayrollService) MarkPaid(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, actor, payrollID))
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock SettingService ---
type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) GetSetting(ctx context.Context) (*domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}
func (m *MockSettingService) UpdateSetting(ctx context.Context, actor *domain.User, req dto.UpdateSettingRequest) (*domain.Setting, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

var _ portssvc.SettingSvcFacade = (*MockSettingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context, workDate string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, workDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockReportingService) AttendanceReport(ctx context.Context, month, year int) ([]domain.AttendanceSummaryRow, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceSummaryRow), args.Error(1)
}
func (m *MockReportingService) PayrollReport(ctx context.Context, month, year int) (*domain.PayrollSummary, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollSummary), args.Error(1)
}
func (m *MockReportingService) TaskReport(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskStatusCount), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)
