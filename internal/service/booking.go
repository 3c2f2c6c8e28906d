package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/export"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	vaccineRepo ports.VaccineRepo
	userRepo    ports.UserRepo
	queue       ports.NotificationQueue
	chat        ports.ChatNotifier
	cache       ports.VaccineCache
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	vaccineRepo ports.VaccineRepo,
	userRepo ports.UserRepo,
	queue ports.NotificationQueue,
	chat ports.ChatNotifier,
	cache ports.VaccineCache,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		vaccineRepo: vaccineRepo,
		userRepo:    userRepo,
		queue:       queue,
		chat:        chat,
		cache:       cache,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	// снимок данных пользователя, если бронь привязана к аккаунту
	var user *domain.User
	if input.UserID != "" {
		u, err := s.userRepo.GetByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("%w: user %s does not exist", domain.ErrInvalidReference, input.UserID)
			}
			return nil, fmt.Errorf("check user: %w", err)
		}
		user = u
		fillUserInfo(&input.UserInfo, user)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	vaccine, err := s.vaccineRepo.GetByID(ctx, input.VaccineID)
	if err != nil {
		if errors.Is(err, domain.ErrVaccineNotFound) {
			return nil, fmt.Errorf("%w: vaccine %s does not exist", domain.ErrInvalidReference, input.VaccineID)
		}
		return nil, fmt.Errorf("check vaccine: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		VaccineID:   vaccine.ID,
		BookingDate: input.BookingDate.UTC(),
		Status:      input.Status,
		UserInfo:    input.UserInfo,
		VaccineInfo: domain.VaccineInfo{Name: vaccine.Name, Location: vaccine.Location},
		Notes:       input.Notes,
		Doses:       domain.NewBookingDoses(input.Doses),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	slotsFilled, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated(string(booking.Status))
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("vaccine_id", booking.VaccineID),
		logger.String("status", string(booking.Status)),
	)

	s.queue.Enqueue(ctx, bookingCreatedMail(booking, vaccine))

	if user != nil && user.TelegramChatID != nil {
		go s.chat.NotifyUser(context.WithoutCancel(ctx), *user.TelegramChatID, bookingCreatedChat(booking))
	}

	if slotsFilled {
		metrics.IncSlotsFilled()
		s.logger.Info("vaccine slots filled, vaccine deactivated",
			logger.String("vaccine_id", vaccine.ID),
			logger.Int("slots", vaccine.AvailableSlots),
		)
		if err = s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("failed to invalidate vaccine cache",
				logger.String("error", err.Error()),
			)
		}
		go s.chat.AlertAdmins(context.WithoutCancel(ctx), slotsFilledAlert(vaccine))
	}

	return booking, nil
}

func (s *BookingService) CompleteDose(ctx context.Context, id string, index int) (*domain.Booking, error) {
	now := s.now()
	booking, err := s.bookingRepo.Update(ctx, id, func(b *domain.Booking) error {
		return b.CompleteDose(index, now)
	})
	if err != nil {
		return nil, fmt.Errorf("complete dose: %w", err)
	}

	metrics.IncDoseCompleted()
	s.logger.Info("dose completed",
		logger.String("booking_id", id),
		logger.Int("dose_index", index),
		logger.String("status", string(booking.Status)),
	)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	metrics.IncBookingCancelled()
	s.logger.Info("booking cancelled", logger.String("booking_id", id))

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	now := s.now()
	booking, err := s.bookingRepo.Update(ctx, id, func(b *domain.Booking) error {
		return input.Apply(b, now)
	})
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", id),
		logger.String("status", string(booking.Status)),
	)

	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted", logger.String("booking_id", id))
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Export writes the filtered booking list as an XLSX workbook.
func (s *BookingService) Export(ctx context.Context, filter domain.BookingFilter, w io.Writer) error {
	bookings, err := s.List(ctx, filter)
	if err != nil {
		return err
	}

	if err = export.WriteBookings(w, bookings, s.now()); err != nil {
		return fmt.Errorf("export bookings: %w", err)
	}

	s.logger.Info("bookings exported", logger.Int("count", len(bookings)))
	return nil
}

func fillUserInfo(info *domain.UserInfo, u *domain.User) {
	if info.Name == "" {
		info.Name = u.Name
	}
	if info.Email == "" {
		info.Email = u.Email
	}
	if info.Phone == "" {
		info.Phone = u.Phone
	}
}
