package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/SscSPs/hrops_backend/internal/core/domain"
	portssvc "github.com/SscSPs/hrops_backend/internal/core/ports/services"
	"github.com/SscSPs/hrops_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// Enqueuer accepts messages for background delivery.
type Enqueuer interface {
	Enqueue(msg Message) error
}

// Notifier renders transactional emails and queues them.
type Notifier struct {
	queue     Enqueuer
	appName   string
	linkTTL   time.Duration
	templates map[string]*template.Template
}

// NewNotifier creates the NotificationSvc backed by queue. linkTTL is the
// lifetime of verification links, shown to the recipient.
func NewNotifier(queue Enqueuer, appName string, linkTTL time.Duration) *Notifier {
	if appName == "" {
		appName = "HR Ops"
	}
	return &Notifier{queue: queue, appName: appName, linkTTL: linkTTL, templates: parseTemplates()}
}

var _ portssvc.NotificationSvc = (*Notifier)(nil)

type mailData struct {
	AppName string
	Name    string
	Email   string
	Link    string
	Code    string
	TTL     string
	Blocked bool
	Period  string
	Payroll *domain.Payroll
}

func (n *Notifier) send(ctx context.Context, user *domain.User, subject, tmpl string, data mailData) {
	logger := middleware.GetLoggerFromCtx(ctx)
	data.AppName = n.appName
	data.Name = user.FullName
	data.Email = user.Email

	var buf bytes.Buffer
	if err := n.templates[tmpl].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("Failed to render mail", slog.String("template", tmpl), slog.String("error", err.Error()))
		return
	}
	msg := Message{To: user.Email, Subject: fmt.Sprintf("[%s] %s", n.appName, subject), HTMLBody: buf.String()}
	if err := n.queue.Enqueue(msg); err != nil {
		logger.Warn("Mail not queued", slog.String("template", tmpl), slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}
}

func (n *Notifier) SendVerification(ctx context.Context, user *domain.User, link string) {
	n.send(ctx, user, "Activate your account", "verification", mailData{Link: link, TTL: formatTTL(n.linkTTL)})
}

func (n *Notifier) SendPasswordReset(ctx context.Context, user *domain.User, code string, ttl time.Duration) {
	n.send(ctx, user, "Password reset code", "password_reset", mailData{Code: code, TTL: formatTTL(ttl)})
}

func (n *Notifier) SendWelcome(ctx context.Context, user *domain.User) {
	n.send(ctx, user, "Your account is ready", "welcome", mailData{})
}

func (n *Notifier) SendAccountStatus(ctx context.Context, user *domain.User, blocked bool) {
	subject := "Your account has been unblocked"
	if blocked {
		subject = "Your account has been blocked"
	}
	n.send(ctx, user, subject, "account_status", mailData{Blocked: blocked})
}

func (n *Notifier) SendPayroll(ctx context.Context, user *domain.User, payroll *domain.Payroll) {
	period := fmt.Sprintf("%02d/%d", payroll.Month, payroll.Year)
	n.send(ctx, user, "Payroll "+period, "payroll", mailData{Period: period, Payroll: payroll})
}

func formatTTL(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		return fmt.Sprintf("%d hour(s)", int(d/time.Hour))
	}
	return fmt.Sprintf("%d minute(s)", int(d.Round(time.Minute)/time.Minute))
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixedBank(0)
}
