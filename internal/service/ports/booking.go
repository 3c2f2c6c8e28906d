package ports

import (
	"context"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type BookingRepo interface {
	// Create inserts b under the vaccine capacity check. slotsFilled reports
	// whether this booking used the last slot; b.Status then reflects the
	// bulk transition to completed.
	Create(ctx context.Context, b *domain.Booking) (slotsFilled bool, err error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListWithOpenDoses(ctx context.Context) ([]*domain.Booking, error)
	// Update loads the booking under a row lock, runs apply on it and stores
	// the result. Nothing is written when apply fails.
	Update(ctx context.Context, id string, apply func(b *domain.Booking) error) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	MarkReminderSent(ctx context.Context, id string, doseIndex int, scheduled time.Time) error
}
