package services

import (
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	notifier portssvc.NotificationSvc,
	authOpts ...AuthServiceOption,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.TokenRepo, container.Token, notifier, authOpts...)
	container.User = NewUserService(repos.UserRepo, notifier)

	container.Project = NewProjectService(repos.ProjectRepo, repos.TaskRepo, repos.UserRepo)
	container.Task = NewTaskService(repos.TaskRepo, repos.ProjectRepo)

	// Work reports share the attendance work date so both use APP_TIMEZONE.
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.WorkplaceRepo, cfg.AppTimezone)
	container.WorkReport = NewWorkReportService(repos.WorkReportRepo, repos.AttendanceRepo, container.Attendance)

	container.Performance = NewPerformanceService(repos.ReviewRepo, repos.BonusRepo, repos.UserRepo)
	container.Payroll = NewPayrollService(
		PayrollRepos{
			Users:       repos.UserRepo,
			Attendances: repos.AttendanceRepo,
			Reviews:     repos.ReviewRepo,
			Bonuses:     repos.BonusRepo,
			Payrolls:    repos.PayrollRepo,
		},
		domain.DiligencePolicy{
			RequiredDays: cfg.DiligenceRequiredDays,
			BonusAmount:  cfg.DiligenceBonusAmount,
		},
		notifier,
	)

	container.Setting = NewSettingService(repos.SettingRepo)
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
