package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robinlg/temple-platform/internal/domain"
	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/robinlg/temple-platform/internal/repository"
	configsvc "github.com/robinlg/temple-platform/internal/service/config"
	"github.com/robinlg/temple-platform/internal/service/email/relay"
	"github.com/robinlg/temple-platform/internal/service/email/template"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var sendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "temple",
	Subsystem: "email",
	Name:      "send_total",
	Help:      "邮件发送次数",
}, []string{"type", "status"})

// Service 邮件发送服务
//
//go:generate mockgen -source=./email.go -destination=./mocks/email.mock.go -package=emailmocks Service
type Service interface {
	// SendTestEmail 发送配置自检邮件
	SendTestEmail(ctx context.Context, to string) (domain.SendResult, error)
	// SendDonationReceipt 发送捐赠收据
	SendDonationReceipt(ctx context.Context, to string, donation domain.Donation) (domain.SendResult, error)
	// SendThankYouEmail 发送感谢信
	SendThankYouEmail(ctx context.Context, to, donorName string) (domain.SendResult, error)
	// SendDonationEmails 收据和感谢信各自独立发送，失败记录在结果里，不会返回错误
	SendDonationEmails(ctx context.Context, donation domain.Donation) domain.DonationEmailResult
}

type service struct {
	configSvc configsvc.Service
	relay     relay.Client
	logRepo   repository.EmailLogRepository
	renderer  *template.Renderer
	tracer    trace.Tracer
	logger    *elog.Component
}

// NewService 创建邮件服务
func NewService(
	configSvc configsvc.Service,
	relayClient relay.Client,
	logRepo repository.EmailLogRepository,
) Service {
	return &service{
		configSvc: configSvc,
		relay:     relayClient,
		logRepo:   logRepo,
		renderer:  template.NewRenderer(),
		tracer:    otel.Tracer("github.com/robinlg/temple-platform/internal/service/email"),
		logger:    elog.DefaultLogger,
	}
}

func (s *service) SendTestEmail(ctx context.Context, to string) (domain.SendResult, error) {
	cfg, err := s.emailConfig(ctx)
	if err != nil {
		return domain.SendResult{}, err
	}
	site := s.configSvc.GetSiteSettings(ctx)
	subject, html, err := s.renderer.Test(site, cfg.From())
	if err != nil {
		return domain.SendResult{}, err
	}
	return s.deliver(ctx, cfg, domain.EmailMessage{
		Type:    domain.EmailTypeTest,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

func (s *service) SendDonationReceipt(ctx context.Context, to string, donation domain.Donation) (domain.SendResult, error) {
	cfg, err := s.emailConfig(ctx)
	if err != nil {
		return domain.SendResult{}, err
	}
	site := s.configSvc.GetSiteSettings(ctx)
	subject, html, err := s.renderer.Receipt(site, donation)
	if err != nil {
		return domain.SendResult{}, err
	}
	return s.deliver(ctx, cfg, domain.EmailMessage{
		Type:    domain.EmailTypeReceipt,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

func (s *service) SendThankYouEmail(ctx context.Context, to, donorName string) (domain.SendResult, error) {
	cfg, err := s.emailConfig(ctx)
	if err != nil {
		return domain.SendResult{}, err
	}
	site := s.configSvc.GetSiteSettings(ctx)
	subject, html, err := s.renderer.ThankYou(site, donorName)
	if err != nil {
		return domain.SendResult{}, err
	}
	return s.deliver(ctx, cfg, domain.EmailMessage{
		Type:    domain.EmailTypeThankYou,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
}

func (s *service) SendDonationEmails(ctx context.Context, donation domain.Donation) domain.DonationEmailResult {
	var res domain.DonationEmailResult
	to := strings.TrimSpace(donation.DonorEmail)
	if to == "" {
		res.Errors = []domain.DonationEmailError{
			{Type: domain.EmailTypeReceipt, Err: errs.ErrRecipientMissing},
			{Type: domain.EmailTypeThankYou, Err: errs.ErrRecipientMissing},
		}
		return res
	}

	var (
		receiptErr  error
		thankYouErr error
		eg          errgroup.Group
	)
	// 两封邮件互不影响，所以每个任务都返回 nil，错误单独收集
	eg.Go(func() error {
		r, err := s.SendDonationReceipt(ctx, to, donation)
		if err != nil {
			receiptErr = err
			return nil
		}
		res.Receipt = &r
		return nil
	})
	eg.Go(func() error {
		r, err := s.SendThankYouEmail(ctx, to, donation.DonorName)
		if err != nil {
			thankYouErr = err
			return nil
		}
		res.ThankYou = &r
		return nil
	})
	_ = eg.Wait()

	if receiptErr != nil {
		res.Errors = append(res.Errors, domain.DonationEmailError{Type: domain.EmailTypeReceipt, Err: receiptErr})
	}
	if thankYouErr != nil {
		res.Errors = append(res.Errors, domain.DonationEmailError{Type: domain.EmailTypeThankYou, Err: thankYouErr})
	}
	if err := res.Err(); err != nil {
		s.logger.Error("捐赠邮件部分发送失败",
			elog.String("donationId", donation.ID),
			elog.FieldErr(err))
	}
	return res
}

// emailConfig 发送前的本地检查，不满足条件时不会发起任何网络请求
func (s *service) emailConfig(ctx context.Context) (domain.EmailConfig, error) {
	cfg := s.configSvc.GetEmailConfig(ctx)
	if !cfg.Enabled {
		return domain.EmailConfig{}, errs.ErrEmailDisabled
	}
	if cfg.ResendAPIKey == "" {
		return domain.EmailConfig{}, errs.ErrEmailAPIKeyMissing
	}
	return cfg, nil
}

func (s *service) deliver(ctx context.Context, cfg domain.EmailConfig, msg domain.EmailMessage) (domain.SendResult, error) {
	ctx, span := s.tracer.Start(ctx, "email.deliver", trace.WithAttributes(
		attribute.String("email.type", msg.Type.String()),
	))
	defer span.End()

	msg.From = cfg.From()
	if err := msg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.SendResult{}, err
	}

	resp, err := s.relay.Send(ctx, relay.Request{
		APIKey:  cfg.ResendAPIKey,
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	s.record(ctx, msg, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		sendTotal.WithLabelValues(msg.Type.String(), domain.EmailStatusFailed.String()).Inc()
		return domain.SendResult{}, fmt.Errorf("发送%s邮件失败: %w", msg.Type, err)
	}
	sendTotal.WithLabelValues(msg.Type.String(), domain.EmailStatusSucceeded.String()).Inc()
	return domain.SendResult{Success: resp.Success, Data: resp.Data}, nil
}

// record 发送记录只是旁路数据，写失败不影响发送结果
func (s *service) record(ctx context.Context, msg domain.EmailMessage, sendErr error) {
	if _, err := s.logRepo.Create(ctx, domain.NewEmailLog(msg, sendErr)); err != nil {
		s.logger.Error("记录邮件发送结果失败",
			elog.String("type", msg.Type.String()),
			elog.FieldErr(err))
	}
}
