package notification

import (
	"context"
	"fmt"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: send to %s: %w", domain.ErrNotificationFailed, to, err)
	}

	return nil
}

// LogMailer only logs outgoing mail. Used when SMTP is not configured.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.LogAttrs(ctx, logger.InfoLevel, "mail (smtp disabled)",
		logger.String("to", to),
		logger.String("subject", subject),
		logger.Int("body_len", len(body)),
	)
	return nil
}
