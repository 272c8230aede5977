package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
)

// SettingRepository manages the singleton settings document.
type SettingRepository interface {
	// GetOrCreateSetting returns the settings document, creating defaults on first access.
	GetOrCreateSetting(ctx context.Context) (*domain.Setting, error)
	UpdateSetting(ctx context.Context, setting domain.Setting) error
}

// TokenRepository stores one-time tokens. The store expires them on its own.
type TokenRepository interface {
	SaveToken(ctx context.Context, token *domain.Token) error
	FindToken(ctx context.Context, userID, token string, purpose domain.TokenPurpose) (*domain.Token, error)
	DeleteToken(ctx context.Context, tokenID string) error
	DeleteUserTokens(ctx context.Context, userID string, purpose domain.TokenPurpose) error
}

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplaces retrieves every workplace that is not deleted.
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplace persists a new workplace and sets its generated ID.
	SaveWorkplace(ctx context.Context, workplace *domain.Workplace) error
	UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error
	MarkWorkplaceDeleted(ctx context.Context, workplaceID string, deletedAt time.Time, deletedBy string) error
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
// This is a facade for clients that need access to all operations
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
}

// ReportingRepository runs the aggregate queries behind the admin reports.
type ReportingRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountCheckIns(ctx context.Context, workDate string, checkedOutOnly bool) (int64, error)
	CountProjects(ctx context.Context, status domain.ProjectStatus) (int64, error)
	CountOpenTasks(ctx context.Context) (int64, error)
	CountPayrolls(ctx context.Context, status domain.PayrollStatus) (int64, error)
	AttendanceSummary(ctx context.Context, fromDate, toDate string) ([]domain.AttendanceSummaryRow, error)
	PayrollSummary(ctx context.Context, month, year int) (*domain.PayrollSummary, error)
	TaskStatusCounts(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error)
}
