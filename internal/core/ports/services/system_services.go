package services

import (
	"context"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	"github.com/SscSPs/hrops_backend/internal/dto"
)

// SettingSvcFacade reads and changes the singleton system settings.
type SettingSvcFacade interface {
	GetSetting(ctx context.Context) (*domain.Setting, error)
	UpdateSetting(ctx context.Context, actor *domain.User, req dto.UpdateSettingRequest) (*domain.Setting, error)
}

// WorkplaceReaderSvc defines read operations for workplace data
type WorkplaceReaderSvc interface {
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)
}

// WorkplaceWriterSvc defines admin write operations for workplace data
type WorkplaceWriterSvc interface {
	CreateWorkplace(ctx context.Context, actor *domain.User, req dto.CreateWorkplaceRequest) (*domain.Workplace, error)
	UpdateWorkplace(ctx context.Context, actor *domain.User, workplaceID string, req dto.UpdateWorkplaceRequest) (*domain.Workplace, error)
	DeleteWorkplace(ctx context.Context, actor *domain.User, workplaceID string) error
}

// WorkplaceSvcFacade combines all workplace-related service interfaces
// This is a facade for clients that need access to all operations
type WorkplaceSvcFacade interface {
	WorkplaceReaderSvc
	WorkplaceWriterSvc
}

// ReportingSvcFacade produces the admin reports.
type ReportingSvcFacade interface {
	Dashboard(ctx context.Context, workDate string) (*domain.DashboardStats, error)
	AttendanceReport(ctx context.Context, month, year int) ([]domain.AttendanceSummaryRow, error)
	PayrollReport(ctx context.Context, month, year int) (*domain.PayrollSummary, error)
	TaskReport(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error)
}
