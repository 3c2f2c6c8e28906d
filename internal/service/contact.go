package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ContactService struct {
	mailer     ports.Mailer
	chat       ports.ChatNotifier
	adminEmail string
	logger     logger.Logger
}

func NewContactService(
	mailer ports.Mailer,
	chat ports.ChatNotifier,
	adminEmail string,
	logger logger.Logger,
) *ContactService {
	return &ContactService{
		mailer:     mailer,
		chat:       chat,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Send mails the message to the admin address. Unlike booking mail, the
// delivery result is returned to the caller.
func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if s.adminEmail == "" {
		return fmt.Errorf("%w: admin address is not configured", domain.ErrNotificationFailed)
	}

	mail := contactMail(s.adminEmail, msg)
	if err := s.mailer.Send(ctx, mail.To, mail.Subject, mail.Body); err != nil {
		metrics.IncNotification(string(mail.Kind), "failed")
		s.logger.Error("failed to send contact message",
			logger.String("from", msg.Email),
			logger.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrNotificationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)
		}
		return err
	}

	metrics.IncNotification(string(mail.Kind), "sent")
	s.logger.Info("contact message sent", logger.String("from", msg.Email))

	go s.chat.AlertAdmins(context.WithoutCancel(ctx), contactAlert(msg))

	return nil
}
