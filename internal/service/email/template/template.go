package template

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/robinlg/temple-platform/internal/domain"
)

const layout = `{{define "layout"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Subject}}</title></head>
<body style="margin:0;padding:0;background:#fdf6e3;font-family:Georgia,serif;color:#3b2f2f;">
<div style="max-width:600px;margin:0 auto;background:#ffffff;border:1px solid #e8d9b5;">
<div style="background:#8b1a1a;color:#ffd700;padding:24px;text-align:center;">
<h1 style="margin:0;font-size:24px;">{{.Site.TempleName}}</h1>
{{with .Site.Tagline}}<p style="margin:8px 0 0;font-size:14px;color:#fbe9c6;">{{.}}</p>{{end}}
</div>
<div style="padding:24px;">{{template "content" .}}</div>
<div style="background:#f5ecd7;padding:16px;text-align:center;font-size:12px;color:#6b5b4b;">
{{with .Site.Address}}<p style="margin:4px 0;">{{.}}</p>{{end}}
{{with .Site.ContactEmail}}<p style="margin:4px 0;">{{.}}</p>{{end}}
{{with .Site.ContactPhone}}<p style="margin:4px 0;">{{.}}</p>{{end}}
</div>
</div>
</body>
</html>{{end}}`

const testContent = `{{define "content"}}
<h2 style="color:#8b1a1a;">Email configuration test</h2>
<p>This is a test email from the {{.Site.TempleName}} website.</p>
<p>If you are reading this, email delivery is configured correctly.</p>
<table style="width:100%;border-collapse:collapse;font-size:14px;">
<tr><td style="padding:6px 0;color:#6b5b4b;">Sender</td><td style="padding:6px 0;">{{.From}}</td></tr>
<tr><td style="padding:6px 0;color:#6b5b4b;">Sent at</td><td style="padding:6px 0;">{{.SentAt}}</td></tr>
</table>
{{end}}`

const receiptContent = `{{define "content"}}
<h2 style="color:#8b1a1a;">Donation Receipt</h2>
<p>Dear {{.DonorName}},</p>
<p>We have received your generous donation. Please keep this receipt for your records.</p>
<table style="width:100%;border-collapse:collapse;font-size:14px;">
<tr><td style="padding:6px 0;color:#6b5b4b;">Receipt No.</td><td style="padding:6px 0;"><strong>{{.ReceiptRef}}</strong></td></tr>
<tr><td style="padding:6px 0;color:#6b5b4b;">Donor</td><td style="padding:6px 0;">{{.DonorName}}</td></tr>
<tr><td style="padding:6px 0;color:#6b5b4b;">Amount</td><td style="padding:6px 0;"><strong>{{.Amount}}</strong></td></tr>
<tr><td style="padding:6px 0;color:#6b5b4b;">Purpose</td><td style="padding:6px 0;">{{.Purpose}}</td></tr>
<tr><td style="padding:6px 0;color:#6b5b4b;">Date</td><td style="padding:6px 0;">{{.Date}}</td></tr>
</table>
<p style="margin-top:24px;">May the divine blessings be with you and your family.</p>
{{end}}`

const thankYouContent = `{{define "content"}}
<h2 style="color:#8b1a1a;">Thank You, {{.DonorName}}!</h2>
<p>Your contribution supports the daily sevas, festivals and upkeep of the temple.</p>
<p>We are deeply grateful for your devotion and generosity.</p>
<p style="margin-top:24px;">With blessings,<br>{{.Site.TempleName}}</p>
{{end}}`

// Renderer 渲染邮件正文，模板在创建时解析一次
type Renderer struct {
	test     *template.Template
	receipt  *template.Template
	thankYou *template.Template
	now      func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{
		test:     must("test", testContent),
		receipt:  must("receipt", receiptContent),
		thankYou: must("thankYou", thankYouContent),
		now:      time.Now,
	}
}

func must(name, content string) *template.Template {
	t := template.Must(template.New(name).Parse(layout))
	return template.Must(t.Parse(content))
}

type page struct {
	Subject string
	Site    domain.SiteSettings
}

// Test 配置自检邮件
func (r *Renderer) Test(site domain.SiteSettings, from string) (subject, html string, err error) {
	subject = fmt.Sprintf("Test Email - %s", site.TempleName)
	html, err = render(r.test, struct {
		page
		From   string
		SentAt string
	}{
		page:   page{Subject: subject, Site: site},
		From:   from,
		SentAt: r.now().In(IST).Format("02/01/2006 15:04 MST"),
	})
	return subject, html, err
}

// Receipt 捐赠收据
func (r *Renderer) Receipt(site domain.SiteSettings, d domain.Donation) (subject, html string, err error) {
	subject = fmt.Sprintf("Donation Receipt - %s", d.ReceiptRef())
	purpose := d.Purpose
	if purpose == "" {
		purpose = "General Donation"
	}
	html, err = render(r.receipt, struct {
		page
		DonorName  string
		Amount     string
		Purpose    string
		ReceiptRef string
		Date       string
	}{
		page:       page{Subject: subject, Site: site},
		DonorName:  d.DonorName,
		Amount:     FormatINR(d.Amount),
		Purpose:    purpose,
		ReceiptRef: d.ReceiptRef(),
		Date:       FormatDate(d.CreatedAt),
	})
	return subject, html, err
}

// ThankYou 感谢信
func (r *Renderer) ThankYou(site domain.SiteSettings, donorName string) (subject, html string, err error) {
	subject = fmt.Sprintf("Thank You for Your Donation - %s", site.TempleName)
	html, err = render(r.thankYou, struct {
		page
		DonorName string
	}{
		page:      page{Subject: subject, Site: site},
		DonorName: donorName,
	})
	return subject, html, err
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("渲染邮件模板 %s 失败 %w", t.Name(), err)
	}
	return buf.String(), nil
}
