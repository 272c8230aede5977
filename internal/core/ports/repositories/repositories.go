package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	ProjectRepo    ProjectRepositoryFacade
	TaskRepo       TaskRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	WorkReportRepo WorkReportRepositoryFacade
	ReviewRepo     PerformanceReviewRepositoryFacade
	BonusRepo      PerformanceBonusRepositoryFacade
	PayrollRepo    PayrollRepositoryFacade
	SettingRepo    SettingRepository
	TokenRepo      TokenRepository
	WorkplaceRepo  WorkplaceRepositoryFacade
	ReportingRepo  ReportingRepository
}
