package notification

import "html/template"

const layoutTmpl = `{{define "layout"}}<!DOCTYPE html>
<html><body style="font-family:Arial,sans-serif;color:#222;max-width:560px;margin:auto">
<h2>{{.AppName}}</h2>
<p>Hello {{.Name}},</p>
{{template "content" .}}
<p style="color:#888;font-size:12px">This is an automated message, please do not reply.</p>
</body></html>{{end}}`

var bodies = map[string]string{
	"verification": `{{define "content"}}<p>Thanks for registering. Please confirm your email address to activate your account.</p>
<p><a href="{{.Link}}">Activate my account</a></p>
<p>The link expires in {{.TTL}}.</p>{{end}}`,

	"password_reset": `{{define "content"}}<p>Use the code below to reset your password.</p>
<p style="font-size:24px;letter-spacing:6px"><strong>{{.Code}}</strong></p>
<p>The code expires in {{.TTL}}. If you did not ask for a reset you can ignore this email.</p>{{end}}`,

	"welcome": `{{define "content"}}<p>An account has been created for you. You can sign in with <strong>{{.Email}}</strong>.</p>{{end}}`,

	"account_status": `{{define "content"}}{{if .Blocked}}<p>Your account has been <strong>blocked</strong> by an administrator. Contact HR if you think this is a mistake.</p>
{{else}}<p>Your account has been <strong>unblocked</strong>. You can sign in again.</p>{{end}}{{end}}`,

	"payroll": `{{define "content"}}<p>Your payroll for {{.Period}} has been calculated.</p>
<table cellpadding="4">
<tr><td>Working days</td><td align="right">{{.Payroll.WorkingDays}}</td></tr>
<tr><td>Salary per day</td><td align="right">{{money .Payroll.SalaryPerDay}}</td></tr>
<tr><td>Base salary</td><td align="right">{{money .Payroll.BaseSalary}}</td></tr>
<tr><td>Diligence bonus</td><td align="right">{{money .Payroll.DiligenceBonus}}</td></tr>
<tr><td>Performance bonus (grade {{.Payroll.PerformanceGrade}})</td><td align="right">{{money .Payroll.PerformanceBonus}}</td></tr>
<tr><td>Other bonus</td><td align="right">{{money .Payroll.OtherBonus}}</td></tr>
<tr><td><strong>Total</strong></td><td align="right"><strong>{{money .Payroll.TotalSalary}}</strong></td></tr>
</table>{{end}}`,
}

func parseTemplates() map[string]*template.Template {
	funcs := template.FuncMap{"money": formatMoney}
	out := make(map[string]*template.Template, len(bodies))
	for name, body := range bodies {
		t := template.Must(template.New(name).Funcs(funcs).Parse(layoutTmpl))
		out[name] = template.Must(t.Parse(body))
	}
	return out
}
