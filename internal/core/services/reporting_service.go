package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	concurrency   int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithDashboardConcurrency caps the number of dashboard counts run at once.
func WithDashboardConcurrency(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		reportingRepo: repo,
		concurrency:   4,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Dashboard runs the independent counts concurrently. The first failure cancels the rest.
func (s *reportingService) Dashboard(ctx context.Context, workDate string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	g.Go(func() (err error) {
		stats.TotalEmployees, err = s.reportingRepo.CountEmployees(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CheckedInToday, err = s.reportingRepo.CountCheckIns(gctx, workDate, false)
		return err
	})
	g.Go(func() (err error) {
		stats.CheckedOutToday, err = s.reportingRepo.CountCheckIns(gctx, workDate, true)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveProjects, err = s.reportingRepo.CountProjects(gctx, domain.ProjectActive)
		return err
	})
	g.Go(func() (err error) {
		stats.OpenTasks, err = s.reportingRepo.CountOpenTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingPayrolls, err = s.reportingRepo.CountPayrolls(gctx, domain.PayrollCalculated)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard", slog.String("work_date", workDate))
		return nil, err
	}
	return &stats, nil
}

// AttendanceReport returns per-user working days for the month.
func (s *reportingService) AttendanceReport(ctx context.Context, month, year int) ([]domain.AttendanceSummaryRow, error) {
	from, to := domain.MonthRange(month, year)
	rows, err := s.reportingRepo.AttendanceSummary(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build attendance report", slog.Int("month", month), slog.Int("year", year))
		return nil, err
	}
	if rows == nil {
		rows = []domain.AttendanceSummaryRow{}
	}
	return rows, nil
}

// PayrollReport totals payroll components for the month.
func (s *reportingService) PayrollReport(ctx context.Context, month, year int) (*domain.PayrollSummary, error) {
	summary, err := s.reportingRepo.PayrollSummary(ctx, month, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to build payroll report", slog.Int("month", month), slog.Int("year", year))
		return nil, err
	}
	return summary, nil
}

// TaskReport counts tasks by status, optionally within one project.
func (s *reportingService) TaskReport(ctx context.Context, projectID string) ([]domain.TaskStatusCount, error) {
	counts, err := s.reportingRepo.TaskStatusCounts(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build task report", slog.String("project_id", projectID))
		return nil, err
	}
	if counts == nil {
		counts = []domain.TaskStatusCount{}
	}
	return counts, nil
}
