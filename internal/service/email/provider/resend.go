package provider

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
)

// Provider 邮件供应商，只在服务端使用
//
//go:generate mockgen -source=./resend.go -destination=./mocks/provider.mock.go -package=providermocks Provider
type Provider interface {
	// Send 返回供应商的原始响应
	Send(ctx context.Context, apiKey string, msg domain.EmailMessage) (map[string]any, error)
}

const resendEmailsPath = "/emails"

type resendReq struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendErr struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

type resendProvider struct {
	http *ehttp.Component
}

// NewResendProvider c 的地址一般是 https://api.resend.com
func NewResendProvider(c *ehttp.Component) Provider {
	return &resendProvider{http: c}
}

func (p *resendProvider) Send(ctx context.Context, apiKey string, msg domain.EmailMessage) (map[string]any, error) {
	var (
		ok   map[string]any
		fail resendErr
	)
	resp, err := p.http.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(resendReq{
			From:    msg.From,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		SetResult(&ok).
		SetError(&fail).
		Post(resendEmailsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrExternalServiceError, err)
	}
	if resp.IsError() {
		msg := fail.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrSendEmailFailed, msg)
	}
	return ok, nil
}
