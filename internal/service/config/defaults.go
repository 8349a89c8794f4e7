package config

import "github.com/robinlg/temple-platform/internal/domain"

// 迁移到数据库之前配置都在环境变量里，文档不存在时继续读环境变量
const (
	EnvResendAPIKey      = "RESEND_API_KEY"
	EnvR2AccountID       = "R2_ACCOUNT_ID"
	EnvR2AccessKeyID     = "R2_ACCESS_KEY_ID"
	EnvR2SecretAccessKey = "R2_SECRET_ACCESS_KEY"
	EnvR2BucketName      = "R2_BUCKET_NAME"
	EnvR2PublicURL       = "R2_PUBLIC_URL"
	EnvRazorpayKeyID     = "RAZORPAY_KEY_ID"
)

const (
	DefaultSenderEmail = "noreply@slppvtempletpt.org"
	DefaultSenderName  = "SLPPV Temple"
	DefaultCurrency    = "INR"
)

func (s *service) defaultEmailConfig() domain.EmailConfig {
	return domain.EmailConfig{
		ResendAPIKey: s.getenv(EnvResendAPIKey),
		SenderEmail:  DefaultSenderEmail,
		SenderName:   DefaultSenderName,
		Enabled:      false,
	}
}

func (s *service) defaultSiteSettings() domain.SiteSettings {
	return domain.SiteSettings{
		TempleName:   DefaultSenderName,
		Tagline:      "Sri Lakshmi Padmavathi Perumal Venkateswara Temple",
		ContactEmail: DefaultSenderEmail,
		Address:      "Tirupati, Andhra Pradesh, India",
	}
}

func (s *service) defaultR2Config() domain.R2Config {
	return domain.R2Config{
		AccountID:       s.getenv(EnvR2AccountID),
		AccessKeyID:     s.getenv(EnvR2AccessKeyID),
		SecretAccessKey: s.getenv(EnvR2SecretAccessKey),
		BucketName:      s.getenv(EnvR2BucketName),
		PublicURL:       s.getenv(EnvR2PublicURL),
	}
}

func (s *service) defaultPaymentConfig() domain.PaymentConfig {
	return domain.PaymentConfig{
		RazorpayKeyID: s.getenv(EnvRazorpayKeyID),
		Currency:      DefaultCurrency,
		Enabled:       false,
	}
}

// defaults 初始化时写入的基线配置
func (s *service) defaults() map[domain.ConfigKey]any {
	return map[domain.ConfigKey]any{
		domain.ConfigKeyEmail:   s.defaultEmailConfig(),
		domain.ConfigKeySite:    s.defaultSiteSettings(),
		domain.ConfigKeyR2:      s.defaultR2Config(),
		domain.ConfigKeyPayment: s.defaultPaymentConfig(),
	}
}
