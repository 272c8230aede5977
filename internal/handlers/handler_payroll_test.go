package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/SscSPs/hrops_backend/internal/platform/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCalculatePayroll_AdminOnly() {
	w := suite.do(http.MethodPost, "/api/v1/payrolls/calculate",
		map[string]any{"user_id": testEmployeeID, "month": 9, "year": 2026}, suite.employee)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCalculatePayroll_Success() {
	suite.mockPayrollService.On("CalculatePayroll", mock.Anything, suite.admin,
		mock.MatchedBy(func(r dto.CalculatePayrollRequest) bool {
			return r.UserID == testEmployeeID && r.Month == 9 && r.Year == 2026
		})).
		Return(&domain.Payroll{
			PayrollID:        "650000000000000000000c01",
			UserID:           testEmployeeID,
			Month:            9,
			Year:             2026,
			WorkingDays:      22,
			SalaryPerDay:     decimal.NewFromInt(100),
			BaseSalary:       decimal.NewFromInt(2200),
			PerformanceGrade: domain.Grade("A"),
			PerformanceBonus: decimal.NewFromInt(500),
			TotalSalary:      decimal.NewFromInt(2700),
			Status:           domain.PayrollCalculated,
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payrolls/calculate",
		map[string]any{"user_id": testEmployeeID, "month": 9, "year": 2026}, suite.admin)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.Equal("Payroll calculated", env.Message)
	suite.Contains(string(env.Data), `"working_days":22`)
}

func (suite *HandlerTestSuite) TestCalculatePayroll_Misconfigured() {
	suite.mockPayrollService.On("CalculatePayroll", mock.Anything, suite.admin, mock.Anything).
		Return(nil, apperrors.New(apperrors.ErrMisconfigured, "No performance bonus is configured for grade B")).Once()

	w := suite.do(http.MethodPost, "/api/v1/payrolls/calculate",
		map[string]any{"user_id": testEmployeeID, "month": 9, "year": 2026}, suite.admin)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("No performance bonus is configured for grade B", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestMarkPaid_UnexpectedError() {
	suite.mockPayrollService.On("MarkPaid", mock.Anything, suite.admin, "650000000000000000000c01").
		Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodPost, "/api/v1/payrolls/650000000000000000000c01/pay", nil, suite.admin)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(response.GenericErrorMessage, suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestDashboard_UsesWorkDate() {
	suite.mockReportingService.On("Dashboard", mock.Anything, "2026-10-16").
		Return(&domain.DashboardStats{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/dashboard", nil, suite.admin)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestAttendanceReport_RequiresPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/admin/reports/attendance?year=2026", nil, suite.admin)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("month is required", suite.decode(w).Message)
}
