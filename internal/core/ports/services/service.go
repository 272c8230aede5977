package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Token       TokenSvcFacade
	User        UserSvcFacade
	Project     ProjectSvcFacade
	Task        TaskSvcFacade
	Attendance  AttendanceSvcFacade
	WorkReport  WorkReportSvcFacade
	Performance PerformanceSvcFacade
	Payroll     PayrollSvcFacade
	Setting     SettingSvcFacade
	Workplace   WorkplaceSvcFacade
	Reporting   ReportingSvcFacade
}
