package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCheckIn_Success() {
	coords := domain.Coordinates{Latitude: 10.7769, Longitude: 106.7009}
	checkIn := time.Date(2026, 10, 16, 1, 30, 0, 0, time.UTC)
	suite.mockAttendanceService.On("CheckIn", mock.Anything, suite.employee, coords).Return(&domain.Attendance{
		AttendanceID: "650000000000000000000a01",
		UserID:       testEmployeeID,
		WorkDate:     "2026-10-16",
		CheckInTime:  &checkIn,
		Coordinates:  coords,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/attendance/check-in",
		map[string]float64{"latitude": coords.Latitude, "longitude": coords.Longitude}, suite.employee)

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decode(w)
	suite.Equal("Checked in successfully", env.Message)
	var data dto.AttendanceResponse
	suite.decodeData(env, &data)
	suite.Equal(domain.AttendanceCheckedIn, data.Status)
	suite.Equal("2026-10-16", data.WorkDate)
	suite.Nil(data.CheckOutTime)
}

func (suite *HandlerTestSuite) TestCheckIn_MissingCoordinates() {
	w := suite.do(http.MethodPost, "/api/v1/attendance/check-in", map[string]float64{"longitude": 106.7}, suite.employee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("latitude is required", suite.decode(w).Message)
	suite.mockAttendanceService.AssertNotCalled(suite.T(), "CheckIn", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCheckIn_ZeroCoordinatesAreAccepted() {
	suite.mockAttendanceService.On("CheckIn", mock.Anything, suite.employee, domain.Coordinates{}).
		Return(nil, apperrors.New(apperrors.ErrValidation, "You are not within any workplace")).Once()

	w := suite.do(http.MethodPost, "/api/v1/attendance/check-in",
		map[string]float64{"latitude": 0, "longitude": 0}, suite.employee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("You are not within any workplace", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestCheckIn_AlreadyCheckedIn() {
	suite.mockAttendanceService.On("CheckIn", mock.Anything, suite.employee, mock.Anything).
		Return(nil, apperrors.New(apperrors.ErrConflict, "You have already checked in today")).Once()

	w := suite.do(http.MethodPost, "/api/v1/attendance/check-in",
		map[string]float64{"latitude": 10, "longitude": 106}, suite.employee)

	suite.Equal(http.StatusConflict, w.Code)
	env := suite.decode(w)
	suite.False(env.OK)
	suite.Equal("You have already checked in today", env.Message)
}

func (suite *HandlerTestSuite) TestToday_NotCheckedIn() {
	suite.mockAttendanceService.On("Today", mock.Anything, suite.employee).Return("2026-10-16", nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/attendance/today", nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.TodayAttendanceResponse
	suite.decodeData(suite.decode(w), &data)
	suite.Equal(domain.AttendanceNotCheckedIn, data.Status)
	suite.Equal("2026-10-16", data.WorkDate)
	suite.Nil(data.Attendance)
}

func (suite *HandlerTestSuite) TestHistory_EmptyBodyUsesDefaults() {
	suite.mockAttendanceService.On("History", mock.Anything, suite.employee, 0, 0,
		domain.PageInfo{PageNum: 1, PageSize: 10}).
		Return(domain.Page[domain.Attendance]{PageInfo: domain.PageInfo{PageNum: 1, PageSize: 10}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/attendance/history", nil, suite.employee)

	suite.Equal(http.StatusOK, w.Code)
	var data dto.ListResponse[dto.AttendanceResponse]
	suite.decodeData(suite.decode(w), &data)
	suite.Empty(data.Records)
	suite.Equal(1, data.Pagination.CurrentPage)
	suite.Equal(0, data.Pagination.TotalPages)
}

func (suite *HandlerTestSuite) TestHistory_InvalidMonth() {
	body := map[string]any{"searchCondition": map[string]int{"month": 13, "year": 2026}}

	w := suite.do(http.MethodPost, "/api/v1/attendance/history", body, suite.employee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("month failed the max=12 constraint", suite.decode(w).Message)
}

func (suite *HandlerTestSuite) TestListAttendances_AdminOnly() {
	w := suite.do(http.MethodPost, "/api/v1/attendance/list", nil, suite.employee)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAttendanceService.AssertNotCalled(suite.T(), "ListAttendances",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListAttendances_FilterPassedThrough() {
	filter := domain.AttendanceFilter{UserID: testEmployeeID, FromDate: "2026-10-01", ToDate: "2026-10-31"}
	suite.mockAttendanceService.On("ListAttendances", mock.Anything, suite.admin, filter,
		domain.PageInfo{PageNum: 1, PageSize: 50}).
		Return(domain.Page[domain.Attendance]{TotalRecords: 0, PageInfo: domain.PageInfo{PageNum: 1, PageSize: 50}}, nil).Once()

	body := map[string]any{
		"searchCondition": map[string]string{"user_id": testEmployeeID, "from_date": "2026-10-01", "to_date": "2026-10-31"},
		"pageInfo":        map[string]int{"pageNum": 1, "pageSize": 50},
	}
	w := suite.do(http.MethodPost, "/api/v1/attendance/list", body, suite.admin)

	suite.Equal(http.StatusOK, w.Code)
}
