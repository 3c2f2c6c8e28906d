package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vaccines[b.VaccineID]
	if !ok {
		return false, fmt.Errorf("%w: vaccine %s does not exist", domain.ErrInvalidReference, b.VaccineID)
	}
	if !v.IsActive {
		return false, domain.ErrVaccineInactive
	}
	if _, exists := r.s.bookings[b.ID]; exists {
		return false, fmt.Errorf("%w: booking %s already exists", domain.ErrInvalidRequest, b.ID)
	}

	taken := r.countTaken(v.ID)
	if taken >= v.AvailableSlots {
		return false, domain.ErrNoAvailableSlots
	}

	b.VaccineInfo = domain.VaccineInfo{Name: v.Name, Location: v.Location}
	r.s.bookings[b.ID] = cloneBooking(b)

	filled := taken+1 >= v.AvailableSlots
	if filled {
		for _, other := range r.s.bookings {
			if other.VaccineID == v.ID && slices.Contains(domain.ActiveStatuses, other.Status) {
				other.Status = domain.BookingStatusCompleted
				other.UpdatedAt = b.UpdatedAt
			}
		}
		v.IsActive = false
		v.UpdatedAt = b.UpdatedAt
		b.Status = domain.BookingStatusCompleted
	}

	return filled, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *BookingRepository) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return r.collect(filter.Matches), nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	return r.collect(func(b *domain.Booking) bool {
		return b.UserID == userID
	}), nil
}

func (r *BookingRepository) ListWithOpenDoses(_ context.Context) ([]*domain.Booking, error) {
	res := r.collect(func(b *domain.Booking) bool {
		if b.Status == domain.BookingStatusCancelled {
			return false
		}
		return slices.ContainsFunc(b.Doses, func(d domain.Dose) bool { return !d.Completed })
	})
	slices.Reverse(res)
	return res, nil
}

func (r *BookingRepository) Update(
	_ context.Context,
	id string,
	apply func(b *domain.Booking) error,
) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	b := cloneBooking(stored)
	if err := apply(b); err != nil {
		return nil, err
	}

	r.s.bookings[id] = cloneBooking(b)
	return b, nil
}

func (r *BookingRepository) Cancel(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	switch b.Status {
	case domain.BookingStatusCancelled:
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
		b.Status = domain.BookingStatusCancelled
		b.UpdatedAt = time.Now().UTC()
	default:
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, domain.BookingStatusCancelled)
	}

	return cloneBooking(b), nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	return nil
}

func (r *BookingRepository) MarkReminderSent(_ context.Context, id string, doseIndex int, scheduled time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok || doseIndex < 0 || doseIndex >= len(b.Doses) {
		return domain.ErrBookingNotFound
	}

	day := domain.CalendarDate(scheduled)
	b.Doses[doseIndex].ReminderSentFor = &day
	return nil
}

// countTaken counts the non-cancelled bookings of a vaccine. Caller holds the lock.
func (r *BookingRepository) countTaken(vaccineID string) int {
	n := 0
	for _, b := range r.s.bookings {
		if b.VaccineID == vaccineID && b.Status != domain.BookingStatusCancelled {
			n++
		}
	}
	return n
}

// collect returns matching bookings newest first.
func (r *BookingRepository) collect(match func(b *domain.Booking) bool) []*domain.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if match(b) {
			res = append(res, cloneBooking(b))
		}
	}
	slices.SortFunc(res, func(a, b *domain.Booking) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return res
}
