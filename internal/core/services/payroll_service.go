package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hrops_backend/internal/apperrors"
	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/hrops_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PayrollRepos groups the repositories the payroll calculation reads from.
type PayrollRepos struct {
	Users       portsrepo.UserReader
	Attendances portsrepo.AttendanceReader
	Reviews     portsrepo.PerformanceReviewRepositoryFacade
	Bonuses     portsrepo.PerformanceBonusRepositoryFacade
	Payrolls    portsrepo.PayrollRepositoryFacade
}

type payrollService struct {
	BaseService
	repos     PayrollRepos
	diligence domain.DiligencePolicy
	notifier  portssvc.NotificationSvc
}

// NewPayrollService creates the payroll service with the default diligence policy.
func NewPayrollService(repos PayrollRepos, diligence domain.DiligencePolicy, notifier portssvc.NotificationSvc) portssvc.PayrollSvcFacade {
	return &payrollService{repos: repos, diligence: diligence, notifier: notifier}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) policy(o dto.PayrollPolicyOverrides) (domain.DiligencePolicy, error) {
	p := s.diligence
	if o.DiligenceRequiredDays != nil {
		p.RequiredDays = *o.DiligenceRequiredDays
	}
	if o.DiligenceBonusAmount != nil {
		if o.DiligenceBonusAmount.IsNegative() {
			return domain.DiligencePolicy{}, apperrors.New(apperrors.ErrValidation, "diligence_bonus_amount cannot be negative")
		}
		p.BonusAmount = *o.DiligenceBonusAmount
	}
	return p, nil
}

// bonusConfig loads the active grade to amount table.
func (s *payrollService) bonusConfig(ctx context.Context) (map[domain.Grade]decimal.Decimal, error) {
	bonuses, err := s.repos.Bonuses.ListBonuses(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bonus configuration")
		return nil, err
	}
	if len(bonuses) == 0 {
		return nil, apperrors.New(apperrors.ErrMisconfigured, "Performance bonus configuration is missing. Configure grade bonuses before calculating payroll")
	}
	config := make(map[domain.Grade]decimal.Decimal, len(bonuses))
	for _, b := range bonuses {
		config[b.Grade] = b.BonusAmount
	}
	return config, nil
}

type payrollRun struct {
	month, year int
	policy      domain.DiligencePolicy
	bonuses     map[domain.Grade]decimal.Decimal
	otherBonus  decimal.Decimal
}

// calculate computes and upserts the payroll of one user.
func (s *payrollService) calculate(ctx context.Context, actor *domain.User, user *domain.User, run payrollRun) (*domain.Payroll, error) {
	review, err := s.repos.Reviews.FindReviewByPeriod(ctx, user.UserID, run.month, run.year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.ErrValidation, "Performance review for %02d/%d not found for this user", run.month, run.year)
		}
		s.LogError(ctx, err, "Failed to load performance review", slog.String("user_id", user.UserID))
		return nil, err
	}

	existing, err := s.repos.Payrolls.ListPayrolls(ctx,
		domain.PayrollFilter{UserID: user.UserID, Month: run.month, Year: run.year},
		domain.PageInfo{PageNum: 1, PageSize: 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to look up existing payroll", slog.String("user_id", user.UserID))
		return nil, err
	}
	if len(existing.Records) > 0 && existing.Records[0].Status == domain.PayrollPaid {
		return nil, apperrors.Newf(apperrors.ErrConflict, "Payroll for %02d/%d has already been paid", run.month, run.year)
	}

	from, to := domain.MonthRange(run.month, run.year)
	days, err := s.repos.Attendances.CountAttendanceDays(ctx, user.UserID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to count attendance days", slog.String("user_id", user.UserID))
		return nil, err
	}

	figures := domain.ComputePayroll(domain.PayrollInput{
		WorkingDays:  int(days),
		SalaryPerDay: user.BaseSalaryPerDay,
		Diligence:    run.policy,
		Grade:        review.Grade,
		BonusConfig:  run.bonuses,
		OtherBonus:   run.otherBonus,
	})

	payroll := &domain.Payroll{
		UserID:           user.UserID,
		Month:            run.month,
		Year:             run.year,
		WorkingDays:      int(days),
		SalaryPerDay:     user.BaseSalaryPerDay,
		BaseSalary:       figures.BaseSalary,
		DiligenceBonus:   figures.DiligenceBonus,
		PerformanceGrade: review.Grade,
		PerformanceBonus: figures.PerformanceBonus,
		OtherBonus:       run.otherBonus,
		TotalSalary:      figures.TotalSalary,
		Status:           domain.PayrollCalculated,
		AuditFields:      newAudit(s.now(), actor.UserID),
	}
	if err := s.repos.Payrolls.UpsertPayroll(ctx, payroll); err != nil {
		s.LogError(ctx, err, "Failed to save payroll", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll calculated",
		slog.String("user_id", user.UserID),
		slog.Int("working_days", payroll.WorkingDays),
		slog.String("total_salary", payroll.TotalSalary.String()))
	s.notifier.SendPayroll(ctx, user, payroll)
	return payroll, nil
}

func (s *payrollService) CalculatePayroll(ctx context.Context, actor *domain.User, req dto.CalculatePayrollRequest) (*domain.Payroll, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	otherBonus := decimal.Zero
	if req.OtherBonus != nil {
		if req.OtherBonus.IsNegative() {
			return nil, apperrors.New(apperrors.ErrValidation, "other_bonus cannot be negative")
		}
		otherBonus = *req.OtherBonus
	}
	policy, err := s.policy(req.PayrollPolicyOverrides)
	if err != nil {
		return nil, err
	}

	bonuses, err := s.bonusConfig(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.repos.Users.FindUserByID(ctx, req.UserID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find user", slog.String("user_id", req.UserID))
		return nil, notFound(err, "User not found")
	}

	return s.calculate(ctx, actor, user, payrollRun{
		month:      req.Month,
		year:       req.Year,
		policy:     policy,
		bonuses:    bonuses,
		otherBonus: otherBonus,
	})
}

// CalculateAll runs the calculation for every payable user and reports failures per user.
func (s *payrollService) CalculateAll(ctx context.Context, actor *domain.User, req dto.CalculateAllPayrollRequest) (*dto.CalculateAllPayrollResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	policy, err := s.policy(req.PayrollPolicyOverrides)
	if err != nil {
		return nil, err
	}
	bonuses, err := s.bonusConfig(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repos.Users.ListPayableUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payable users")
		return nil, err
	}

	run := payrollRun{
		month:      req.Month,
		year:       req.Year,
		policy:     policy,
		bonuses:    bonuses,
		otherBonus: decimal.Zero,
	}
	resp := &dto.CalculateAllPayrollResponse{
		Calculated: []dto.PayrollResponse{},
		Failed:     []dto.PayrollFailure{},
	}
	for i := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		payroll, err := s.calculate(ctx, actor, &users[i], run)
		if err != nil {
			msg, ok := apperrors.Message(err)
			if !ok {
				msg = "Unexpected error"
			}
			resp.Failed = append(resp.Failed, dto.PayrollFailure{UserID: users[i].UserID, Message: msg})
			continue
		}
		resp.Calculated = append(resp.Calculated, dto.ToPayrollResponse(payroll))
	}
	s.LogInfo(ctx, "Bulk payroll finished",
		slog.Int("calculated", len(resp.Calculated)),
		slog.Int("failed", len(resp.Failed)))
	return resp, nil
}

func (s *payrollService) ListPayrolls(ctx context.Context, actor *domain.User, filter domain.PayrollFilter, page domain.PageInfo) (domain.Page[domain.Payroll], error) {
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	result, err := s.repos.Payrolls.ListPayrolls(ctx, filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list payrolls")
		return domain.Page[domain.Payroll]{}, err
	}
	return result, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error) {
	payroll, err := s.repos.Payrolls.FindPayrollByID(ctx, payrollID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find payroll", slog.String("payroll_id", payrollID))
		return nil, notFound(err, "Payroll not found")
	}
	if !actor.IsAdmin() && payroll.UserID != actor.UserID {
		return nil, apperrors.New(apperrors.ErrForbidden, "You can only view your own payroll")
	}
	return payroll, nil
}

func (s *payrollService) MarkPaid(ctx context.Context, actor *domain.User, payrollID string) (*domain.Payroll, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	payroll, err := s.GetPayroll(ctx, actor, payrollID)
	if err != nil {
		return nil, err
	}
	if payroll.Status == domain.PayrollPaid {
		return nil, apperrors.New(apperrors.ErrConflict, "Payroll is already paid")
	}

	now := s.now()
	if err := s.repos.Payrolls.MarkPayrollPaid(ctx, payrollID, actor.UserID, now); err != nil {
		s.logUnexpected(ctx, err, "Failed to mark payroll paid", slog.String("payroll_id", payrollID))
		return nil, err
	}
	payroll.Status = domain.PayrollPaid
	touch(&payroll.AuditFields, now, actor.UserID)
	s.LogInfo(ctx, "Payroll marked paid", slog.String("payroll_id", payrollID))
	return payroll, nil
}
