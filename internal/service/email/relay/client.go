package relay

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/robinlg/temple-platform/internal/errs"
)

// Path 中继接口地址，服务端持有真正的供应商密钥
const Path = "/api/send-email"

// DefaultErrorMessage 中继没有返回错误信息时使用
const DefaultErrorMessage = "Failed to send email"

// Request 中继请求体，全部字段必填
type Request struct {
	APIKey  string `json:"apiKey"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Response 中继响应体
type Response struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details string         `json:"details,omitempty"`
}

// Client 邮件中继客户端
//
//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=relaymocks Client
type Client interface {
	Send(ctx context.Context, req Request) (Response, error)
}

type client struct {
	http *ehttp.Component
}

func NewClient(c *ehttp.Component) Client {
	return &client{http: c}
}

func (c *client) Send(ctx context.Context, req Request) (Response, error) {
	var (
		ok   Response
		fail Response
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&ok).
		SetError(&fail).
		Post(Path)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", errs.ErrExternalServiceError, err)
	}
	if resp.IsError() {
		msg := fail.Error
		if msg == "" {
			msg = DefaultErrorMessage
		}
		return fail, fmt.Errorf("%w: %s", errs.ErrSendEmailFailed, msg)
	}
	return ok, nil
}
