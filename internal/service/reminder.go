package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReminderService struct {
	bookingRepo ports.BookingRepo
	mailer      ports.Mailer
	daysBefore  int
	logger      logger.Logger
	now         func() time.Time
}

func NewReminderService(
	bookingRepo ports.BookingRepo,
	mailer ports.Mailer,
	daysBefore int,
	logger logger.Logger,
) *ReminderService {
	if daysBefore <= 0 {
		daysBefore = domain.DefaultReminderDaysBefore
	}
	return &ReminderService{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		daysBefore:  daysBefore,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SendReminders mails every dose due in daysBefore days and returns how many
// mails went out. A failed send is logged and skipped; the dose stays armed
// for the next sweep.
func (s *ReminderService) SendReminders(ctx context.Context) (int, error) {
	bookings, err := s.bookingRepo.ListWithOpenDoses(ctx)
	if err != nil {
		return 0, fmt.Errorf("list open doses: %w", err)
	}

	candidates := domain.DueReminders(bookings, s.now(), s.daysBefore)

	sent := 0
	for _, c := range candidates {
		if err = ctx.Err(); err != nil {
			return sent, err
		}
		if c.Booking.UserInfo.Email == "" {
			continue
		}

		mail := reminderMail(c)
		if err = s.mailer.Send(ctx, mail.To, mail.Subject, mail.Body); err != nil {
			metrics.IncReminder("failed")
			s.logger.Error("failed to send dose reminder",
				logger.String("booking_id", c.Booking.ID),
				logger.Int("dose_index", c.DoseIndex),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent++
		metrics.IncReminder("sent")

		if err = s.bookingRepo.MarkReminderSent(ctx, c.Booking.ID, c.DoseIndex, c.Dose.ScheduledDate); err != nil {
			s.logger.Warn("failed to mark reminder as sent",
				logger.String("booking_id", c.Booking.ID),
				logger.Int("dose_index", c.DoseIndex),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(candidates) > 0 {
		s.logger.Info("dose reminders processed",
			logger.Int("due", len(candidates)),
			logger.Int("sent", sent),
		)
	}

	return sent, nil
}
