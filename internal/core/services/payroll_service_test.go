package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/core/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	userRepo    *MockUserRepository
	attendances *MockAttendanceRepository
	reviews     *MockReviewRepository
	bonuses     *MockBonusRepository
	payrolls    *MockPayrollRepository
	notifier    *MockNotifier
	service     portssvc.PayrollSvcFacade
}

func (s *PayrollServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userRepo = new(MockUserRepository)
	s.attendances = new(MockAttendanceRepository)
	s.reviews = new(MockReviewRepository)
	s.bonuses = new(MockBonusRepository)
	s.payrolls = new(MockPayrollRepository)
	s.notifier = new(MockNotifier)
	s.service = services.NewPayrollService(
		services.PayrollRepos{
			Users:       s.userRepo,
			Attendances: s.attendances,
			Reviews:     s.reviews,
			Bonuses:     s.bonuses,
			Payrolls:    s.payrolls,
		},
		domain.DiligencePolicy{RequiredDays: 22, BonusAmount: decimal.NewFromInt(100000)},
		s.notifier,
	)
}

func (s *PayrollServiceTestSuite) TearDownTest() {
	s.userRepo.AssertExpectations(s.T())
	s.attendances.AssertExpectations(s.T())
	s.reviews.AssertExpectations(s.T())
	s.bonuses.AssertExpectations(s.T())
	s.payrolls.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func employee() *domain.User {
	return &domain.User{UserID: memberID, Email: "emp@example.com", BaseSalaryPerDay: decimal.NewFromInt(100000), IsActivated: true}
}

func (s *PayrollServiceTestSuite) expectInputs(user *domain.User, days int64, grade domain.Grade) {
	s.reviews.On("FindReviewByPeriod", s.ctx, user.UserID, 3, 2025).
		Return(&domain.PerformanceReview{UserID: user.UserID, Month: 3, Year: 2025, Grade: grade}, nil).Once()
	s.payrolls.On("ListPayrolls", s.ctx, domain.PayrollFilter{UserID: user.UserID, Month: 3, Year: 2025}, domain.PageInfo{PageNum: 1, PageSize: 1}).
		Return(domain.Page[domain.Payroll]{}, nil).Once()
	s.attendances.On("CountAttendanceDays", s.ctx, user.UserID, "2025-03-01", "2025-03-31").Return(days, nil).Once()
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_GradeABonusAndDiligence() {
	user := employee()
	requiredDays := 20
	diligenceAmount := decimal.NewFromInt(200000)
	other := decimal.Zero

	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{
		{Grade: domain.GradeA, BonusAmount: decimal.NewFromInt(500000), IsActive: true},
	}, nil).Once()
	s.userRepo.On("FindUserByID", s.ctx, memberID).Return(user, nil).Once()
	s.expectInputs(user, 22, domain.GradeA)
	s.payrolls.On("UpsertPayroll", s.ctx, mock.AnythingOfType("*domain.Payroll")).Return(nil).Once()
	s.notifier.On("SendPayroll", s.ctx, user, mock.AnythingOfType("*domain.Payroll")).Once()

	payroll, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{
		UserID: memberID, Month: 3, Year: 2025,
		PayrollPolicyOverrides: dto.PayrollPolicyOverrides{
			DiligenceRequiredDays: &requiredDays,
			DiligenceBonusAmount:  &diligenceAmount,
		},
		OtherBonus: &other,
	})

	s.Require().NoError(err)
	s.Equal(22, payroll.WorkingDays)
	s.True(payroll.BaseSalary.Equal(decimal.NewFromInt(2200000)), payroll.BaseSalary.String())
	s.True(payroll.DiligenceBonus.Equal(decimal.NewFromInt(200000)))
	s.True(payroll.PerformanceBonus.Equal(decimal.NewFromInt(500000)))
	s.True(payroll.TotalSalary.Equal(decimal.NewFromInt(2900000)), payroll.TotalSalary.String())
	s.Equal(domain.PayrollCalculated, payroll.Status)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_ConfiguredDiligenceNotReached() {
	user := employee()
	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{{Grade: domain.GradeA, BonusAmount: decimal.NewFromInt(500000)}}, nil).Once()
	s.userRepo.On("FindUserByID", s.ctx, memberID).Return(user, nil).Once()
	s.expectInputs(user, 21, domain.GradeC)
	s.payrolls.On("UpsertPayroll", s.ctx, mock.AnythingOfType("*domain.Payroll")).Return(nil).Once()

	payroll, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{UserID: memberID, Month: 3, Year: 2025})

	s.Require().NoError(err)
	s.True(payroll.DiligenceBonus.IsZero())
	s.True(payroll.PerformanceBonus.IsZero(), "unmapped grade pays no performance bonus")
	s.True(payroll.TotalSalary.Equal(decimal.NewFromInt(2100000)))
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_MissingReview() {
	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{{Grade: domain.GradeA}}, nil).Once()
	s.userRepo.On("FindUserByID", s.ctx, memberID).Return(employee(), nil).Once()
	s.reviews.On("FindReviewByPeriod", s.ctx, memberID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{UserID: memberID, Month: 3, Year: 2025})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	msg, _ := apperrors.Message(err)
	s.Equal("Performance review for 03/2025 not found for this user", msg)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_NoBonusConfiguration() {
	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{}, nil).Once()

	_, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{UserID: memberID, Month: 3, Year: 2025})

	s.ErrorIs(err, apperrors.ErrMisconfigured)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_PaidPayrollIsNotRecalculated() {
	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{{Grade: domain.GradeA}}, nil).Once()
	s.userRepo.On("FindUserByID", s.ctx, memberID).Return(employee(), nil).Once()
	s.reviews.On("FindReviewByPeriod", s.ctx, memberID, 3, 2025).Return(&domain.PerformanceReview{Grade: domain.GradeA}, nil).Once()
	s.payrolls.On("ListPayrolls", s.ctx, mock.Anything, mock.Anything).
		Return(domain.Page[domain.Payroll]{Records: []domain.Payroll{{Status: domain.PayrollPaid}}, TotalRecords: 1}, nil).Once()

	_, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{UserID: memberID, Month: 3, Year: 2025})

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_EmployeeIsForbidden() {
	_, err := s.service.CalculatePayroll(s.ctx, memberUser, dto.CalculatePayrollRequest{UserID: memberID, Month: 3, Year: 2025})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_NegativeDiligenceOverride() {
	amount := decimal.NewFromInt(-100)

	_, err := s.service.CalculatePayroll(s.ctx, adminUser, dto.CalculatePayrollRequest{
		UserID: memberID, Month: 3, Year: 2025,
		PayrollPolicyOverrides: dto.PayrollPolicyOverrides{DiligenceBonusAmount: &amount},
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Equal("diligence_bonus_amount cannot be negative", err.Error())
	s.bonuses.AssertNotCalled(s.T(), "ListBonuses", mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestCalculateAll_NegativeDiligenceOverride() {
	amount := decimal.NewFromInt(-1)

	_, err := s.service.CalculateAll(s.ctx, adminUser, dto.CalculateAllPayrollRequest{
		Month: 3, Year: 2025,
		PayrollPolicyOverrides: dto.PayrollPolicyOverrides{DiligenceBonusAmount: &amount},
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "ListPayableUsers", mock.Anything)
}

func (s *PayrollServiceTestSuite) TestCalculateAll_CollectsFailuresPerUser() {
	good := employee()
	bad := &domain.User{UserID: outsideID, BaseSalaryPerDay: decimal.NewFromInt(90000)}

	s.bonuses.On("ListBonuses", s.ctx, true).Return([]domain.PerformanceBonus{{Grade: domain.GradeB, BonusAmount: decimal.NewFromInt(300000)}}, nil).Once()
	s.userRepo.On("ListPayableUsers", s.ctx).Return([]domain.User{*good, *bad}, nil).Once()
	s.expectInputs(good, 10, domain.GradeB)
	s.payrolls.On("UpsertPayroll", s.ctx, mock.AnythingOfType("*domain.Payroll")).Return(nil).Once()
	s.reviews.On("FindReviewByPeriod", s.ctx, outsideID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := s.service.CalculateAll(s.ctx, adminUser, dto.CalculateAllPayrollRequest{Month: 3, Year: 2025})

	s.Require().NoError(err)
	s.Require().Len(resp.Calculated, 1)
	s.Equal(memberID, resp.Calculated[0].UserID)
	s.Require().Len(resp.Failed, 1)
	s.Equal(outsideID, resp.Failed[0].UserID)
	s.Contains(resp.Failed[0].Message, "03/2025")
}

func (s *PayrollServiceTestSuite) TestMarkPaid() {
	s.payrolls.On("FindPayrollByID", s.ctx, "p1").Return(&domain.Payroll{PayrollID: "p1", UserID: memberID, Status: domain.PayrollCalculated}, nil).Once()
	s.payrolls.On("MarkPayrollPaid", s.ctx, "p1", adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	payroll, err := s.service.MarkPaid(s.ctx, adminUser, "p1")

	s.Require().NoError(err)
	s.Equal(domain.PayrollPaid, payroll.Status)
}

func (s *PayrollServiceTestSuite) TestGetPayroll_OtherUsersPayrollIsForbidden() {
	s.payrolls.On("FindPayrollByID", s.ctx, "p1").Return(&domain.Payroll{PayrollID: "p1", UserID: managerID}, nil).Once()

	_, err := s.service.GetPayroll(s.ctx, memberUser, "p1")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestPayrollService(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
