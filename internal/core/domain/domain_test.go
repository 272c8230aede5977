package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPageInfo_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   domain.PageInfo
		want domain.PageInfo
	}{
		{"zero values", domain.PageInfo{}, domain.PageInfo{PageNum: 1, PageSize: 10}},
		{"negative page", domain.PageInfo{PageNum: -3, PageSize: 5}, domain.PageInfo{PageNum: 1, PageSize: 5}},
		{"size capped", domain.PageInfo{PageNum: 4, PageSize: 1000}, domain.PageInfo{PageNum: 4, PageSize: 100}},
		{"page capped", domain.PageInfo{PageNum: 1 << 62, PageSize: 100}, domain.PageInfo{PageNum: domain.MaxPageNum, PageSize: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
	assert.Equal(t, 20, domain.PageInfo{PageNum: 3, PageSize: 10}.Offset())
	assert.Positive(t, domain.PageInfo{PageNum: 1 << 62, PageSize: 100}.Offset())
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, domain.Page[int]{}.TotalPages())
	assert.Equal(t, 1, domain.Page[int]{TotalRecords: 10}.TotalPages())
	assert.Equal(t, 3, domain.Page[int]{TotalRecords: 21, PageInfo: domain.PageInfo{PageSize: 10}}.TotalPages())
}

func TestAttendance_Status(t *testing.T) {
	in := time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	var none *domain.Attendance
	assert.Equal(t, domain.AttendanceNotCheckedIn, none.Status())
	assert.Equal(t, domain.AttendanceNotCheckedIn, (&domain.Attendance{}).Status())
	assert.Equal(t, domain.AttendanceCheckedIn, (&domain.Attendance{CheckInTime: &in}).Status())
	assert.Equal(t, domain.AttendanceCheckedOut, (&domain.Attendance{CheckInTime: &in, CheckOutTime: &out}).Status())
}

func TestMonthRange(t *testing.T) {
	first, last := domain.MonthRange(2, 2028)
	assert.Equal(t, "2028-02-01", first)
	assert.Equal(t, "2028-02-29", last)

	first, last = domain.MonthRange(12, 2026)
	assert.Equal(t, "2026-12-01", first)
	assert.Equal(t, "2026-12-31", last)
}

func TestWorkplace_Contains(t *testing.T) {
	office := &domain.Workplace{Latitude: 10.7769, Longitude: 106.7009, RadiusMeters: 200}

	assert.True(t, office.Contains(domain.Coordinates{Latitude: 10.7769, Longitude: 106.7009}))
	// Roughly 110 m north.
	assert.True(t, office.Contains(domain.Coordinates{Latitude: 10.7779, Longitude: 106.7009}))
	// Roughly 1.1 km north.
	assert.False(t, office.Contains(domain.Coordinates{Latitude: 10.7869, Longitude: 106.7009}))
}

func TestDistanceMeters(t *testing.T) {
	d := domain.DistanceMeters(domain.Coordinates{Latitude: 0, Longitude: 0}, domain.Coordinates{Latitude: 0, Longitude: 1})
	assert.InDelta(t, 111195, d, 10)
}

func TestComputePayroll(t *testing.T) {
	bonuses := map[domain.Grade]decimal.Decimal{
		domain.GradeA: decimal.NewFromInt(500),
		domain.GradeB: decimal.NewFromInt(300),
	}
	diligence := domain.DiligencePolicy{RequiredDays: 20, BonusAmount: decimal.NewFromInt(200)}

	tests := []struct {
		name      string
		in        domain.PayrollInput
		wantBase  string
		wantDil   string
		wantPerf  string
		wantTotal string
	}{
		{
			name: "diligent grade A",
			in: domain.PayrollInput{
				WorkingDays: 22, SalaryPerDay: decimal.NewFromInt(100), Diligence: diligence,
				Grade: domain.GradeA, BonusConfig: bonuses, OtherBonus: decimal.NewFromInt(50),
			},
			wantBase: "2200", wantDil: "200", wantPerf: "500", wantTotal: "2950",
		},
		{
			name: "threshold reached exactly",
			in: domain.PayrollInput{
				WorkingDays: 20, SalaryPerDay: decimal.RequireFromString("150.5"), Diligence: diligence,
				Grade: domain.GradeB, BonusConfig: bonuses,
			},
			wantBase: "3010", wantDil: "200", wantPerf: "300", wantTotal: "3510",
		},
		{
			name: "below threshold with unmapped grade",
			in: domain.PayrollInput{
				WorkingDays: 5, SalaryPerDay: decimal.NewFromInt(100), Diligence: diligence,
				Grade: domain.GradeD, BonusConfig: bonuses,
			},
			wantBase: "500", wantDil: "0", wantPerf: "0", wantTotal: "500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputePayroll(tt.in)
			assert.True(t, got.BaseSalary.Equal(decimal.RequireFromString(tt.wantBase)), got.BaseSalary.String())
			assert.True(t, got.DiligenceBonus.Equal(decimal.RequireFromString(tt.wantDil)), got.DiligenceBonus.String())
			assert.True(t, got.PerformanceBonus.Equal(decimal.RequireFromString(tt.wantPerf)), got.PerformanceBonus.String())
			assert.True(t, got.TotalSalary.Equal(decimal.RequireFromString(tt.wantTotal)), got.TotalSalary.String())
		})
	}
}

func TestRoleAndGradeValidity(t *testing.T) {
	assert.True(t, domain.RoleTeamLeader.Valid())
	assert.False(t, domain.UserRole("owner").Valid())
	assert.True(t, domain.GradeC.Valid())
	assert.False(t, domain.Grade("E").Valid())
}

func TestUser_Capabilities(t *testing.T) {
	var nobody *domain.User
	assert.False(t, nobody.IsAdmin())
	assert.False(t, nobody.CanSignIn())

	pm := &domain.User{Role: domain.RoleProjectManager, IsActivated: true}
	assert.True(t, pm.CanLead())
	assert.True(t, pm.CanSignIn())

	pm.IsBlocked = true
	assert.False(t, pm.CanSignIn())
}
