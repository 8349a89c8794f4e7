package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robinlg/temple-platform/internal/errs"
)

// EmailType 邮件类型
type EmailType string

const (
	EmailTypeTest     EmailType = "test"
	EmailTypeReceipt  EmailType = "receipt"
	EmailTypeThankYou EmailType = "thankYou"
)

func (t EmailType) String() string {
	return string(t)
}

func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeTest, EmailTypeReceipt, EmailTypeThankYou:
		return true
	default:
		return false
	}
}

// EmailMessage 一封待发送的邮件
type EmailMessage struct {
	Type    EmailType
	From    string
	To      string
	Subject string
	HTML    string
}

func (m EmailMessage) Validate() error {
	if m.From == "" {
		return fmt.Errorf("%w: 发件人", errs.ErrInvalidParameter)
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: 收件人 %s", errs.ErrInvalidParameter, m.To)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: 邮件主题", errs.ErrInvalidParameter)
	}
	if m.HTML == "" {
		return fmt.Errorf("%w: 邮件内容", errs.ErrInvalidParameter)
	}
	return nil
}

// SendResult 发送结果，Data 是中继接口原样返回的内容
type SendResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
}

// Donation 捐赠记录，只保留发邮件需要的字段
type Donation struct {
	ID            string
	DonorName     string
	DonorEmail    string
	Amount        float64
	Purpose       string
	ReceiptNumber string
	CreatedAt     time.Time
}

// ReceiptRef 收据编号，没有的时候用捐赠ID兜底
func (d Donation) ReceiptRef() string {
	if d.ReceiptNumber != "" {
		return d.ReceiptNumber
	}
	return d.ID
}

// DonationEmailError 某一封邮件的失败原因
type DonationEmailError struct {
	Type EmailType
	Err  error
}

func (e DonationEmailError) Error() string {
	return fmt.Sprintf("%s: %v", e.Type, e.Err)
}

func (e DonationEmailError) Unwrap() error {
	return e.Err
}

// DonationEmailResult 收据和感谢信各自独立发送，任何一封失败都不影响另一封
type DonationEmailResult struct {
	Receipt  *SendResult
	ThankYou *SendResult
	Errors   []DonationEmailError
}

// Err 汇总所有失败，全部成功时返回 nil
func (r DonationEmailResult) Err() error {
	var res *multierror.Error
	for i := range r.Errors {
		res = multierror.Append(res, r.Errors[i])
	}
	return res.ErrorOrNil()
}

// Failed 判断某一类邮件是否失败
func (r DonationEmailResult) Failed(typ EmailType) bool {
	for i := range r.Errors {
		if r.Errors[i].Type == typ {
			return true
		}
	}
	return false
}

// EmailStatus 发送记录状态
type EmailStatus string

const (
	EmailStatusSucceeded EmailStatus = "SUCCEEDED"
	EmailStatusFailed    EmailStatus = "FAILED"
)

func (s EmailStatus) String() string {
	return string(s)
}

// EmailLog 邮件发送记录
type EmailLog struct {
	ID        int64
	Type      EmailType
	Recipient string
	Subject   string
	Status    EmailStatus
	Error     string
	Ctime     int64
}

// NewEmailLog 根据发送结果生成记录
func NewEmailLog(msg EmailMessage, sendErr error) EmailLog {
	log := EmailLog{
		Type:      msg.Type,
		Recipient: msg.To,
		Subject:   msg.Subject,
		Status:    EmailStatusSucceeded,
	}
	if sendErr != nil {
		log.Status = EmailStatusFailed
		log.Error = sendErr.Error()
	}
	return log
}
