//go:build unit

package domain

import (
	"errors"
	"testing"

	"github.com/robinlg/temple-platform/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestEmailMessage_Validate(t *testing.T) {
	t.Parallel()

	valid := EmailMessage{
		Type:    EmailTypeTest,
		From:    "SLPPV Temple <noreply@example.org>",
		To:      "admin@example.com",
		Subject: "Test Email - SLPPV Temple",
		HTML:    "<p>ok</p>",
	}
	assert.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(m *EmailMessage){
		"from":    func(m *EmailMessage) { m.From = "" },
		"to":      func(m *EmailMessage) { m.To = "admin" },
		"subject": func(m *EmailMessage) { m.Subject = "" },
		"html":    func(m *EmailMessage) { m.HTML = "" },
	} {
		msg := valid
		mutate(&msg)
		assert.ErrorIs(t, msg.Validate(), errs.ErrInvalidParameter, name)
	}
}

func TestDonationEmailResult_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DonationEmailResult{}.Err())

	res := DonationEmailResult{Errors: []DonationEmailError{
		{Type: EmailTypeReceipt, Err: errs.ErrSendEmailFailed},
	}}
	assert.ErrorIs(t, res.Err(), errs.ErrSendEmailFailed)
	assert.True(t, res.Failed(EmailTypeReceipt))
	assert.False(t, res.Failed(EmailTypeThankYou))

	var de DonationEmailError
	assert.True(t, errors.As(res.Err(), &de))
	assert.Equal(t, EmailTypeReceipt, de.Type)
}

func TestNewEmailLog(t *testing.T) {
	t.Parallel()

	msg := EmailMessage{Type: EmailTypeReceipt, To: "a@example.com", Subject: "s"}
	assert.Equal(t, EmailStatusSucceeded, NewEmailLog(msg, nil).Status)

	log := NewEmailLog(msg, errs.ErrSendEmailFailed)
	assert.Equal(t, EmailStatusFailed, log.Status)
	assert.Equal(t, "send email failed", log.Error)
	assert.Equal(t, "RCPT-1", Donation{ID: "d1", ReceiptNumber: "RCPT-1"}.ReceiptRef())
	assert.Equal(t, "d1", Donation{ID: "d1"}.ReceiptRef())
}
