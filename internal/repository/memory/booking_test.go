package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVaccine(t *testing.T, s *Store, slots int) *domain.Vaccine {
	t.Helper()
	v := &domain.Vaccine{
		ID:             uuid.New().String(),
		Name:           "Hepatitis B " + uuid.NewString()[:8],
		Description:    "Hepatitis B vaccine",
		Dosage:         "3 doses",
		Availability:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Location:       "Main Hospital",
		AvailableSlots: slots,
		AgeGroups:      []domain.AgeGroup{domain.AgeGroupAll},
		IsActive:       true,
	}
	require.NoError(t, s.Vaccines().Create(context.Background(), v))
	return v
}

func newBooking(vaccineID string, status domain.BookingStatus) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:          uuid.New().String(),
		VaccineID:   vaccineID,
		BookingDate: now.AddDate(0, 0, 7),
		Status:      status,
		UserInfo:    domain.UserInfo{Name: "Alice", Email: "alice@example.com", Phone: "+100"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBookingRepository_Create_LastSlotCompletesAll(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 2)

	first := newBooking(v.ID, domain.BookingStatusPending)
	filled, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.False(t, filled)
	assert.Equal(t, v.Name, first.VaccineInfo.Name)

	second := newBooking(v.ID, domain.BookingStatusConfirmed)
	filled, err = repo.Create(ctx, second)
	require.NoError(t, err)
	assert.True(t, filled)
	assert.Equal(t, domain.BookingStatusCompleted, second.Status)

	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, stored.Status)

	got, err := s.Vaccines().GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = repo.Create(ctx, newBooking(v.ID, domain.BookingStatusPending))
	assert.ErrorIs(t, err, domain.ErrVaccineInactive)
}

func TestBookingRepository_Create_SingleSlot(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	v := seedVaccine(t, s, 1)

	b := newBooking(v.ID, domain.BookingStatusPending)
	filled, err := s.Bookings().Create(ctx, b)

	require.NoError(t, err)
	assert.True(t, filled)
	assert.Equal(t, domain.BookingStatusCompleted, b.Status)
}

func TestBookingRepository_Create_NoSlots(t *testing.T) {
	s := NewStore()
	v := seedVaccine(t, s, 0)

	_, err := s.Bookings().Create(context.Background(), newBooking(v.ID, domain.BookingStatusPending))

	assert.ErrorIs(t, err, domain.ErrNoAvailableSlots)
}

func TestBookingRepository_Create_UnknownVaccine(t *testing.T) {
	s := NewStore()

	_, err := s.Bookings().Create(context.Background(), newBooking("missing", domain.BookingStatusPending))

	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestBookingRepository_Create_ConcurrentNeverOverbooks(t *testing.T) {
	const (
		slots    = 5
		attempts = 50
	)
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, slots)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, newBooking(v.ID, domain.BookingStatusPending))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrNoAvailableSlots), errors.Is(err, domain.ErrVaccineInactive):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, slots, succeeded.Load())
	assert.EqualValues(t, attempts-slots, rejected.Load())

	got, err := s.Vaccines().GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	all, err := repo.List(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, all, slots)
	for _, b := range all {
		assert.Equal(t, domain.BookingStatusCompleted, b.Status)
	}
}

func TestBookingRepository_Cancel(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 10)

	b := newBooking(v.ID, domain.BookingStatusConfirmed)
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	cancelled, err := repo.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	again, err := repo.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, again.Status)

	_, err = repo.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Cancel_Completed(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 1)

	b := newBooking(v.ID, domain.BookingStatusPending)
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	_, err = repo.Cancel(ctx, b.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingRepository_CancelFreesSlot(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 2)

	b := newBooking(v.ID, domain.BookingStatusPending)
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)
	_, err = repo.Cancel(ctx, b.ID)
	require.NoError(t, err)

	filled, err := repo.Create(ctx, newBooking(v.ID, domain.BookingStatusPending))
	require.NoError(t, err)
	assert.False(t, filled)
}

func TestBookingRepository_Update_ApplyErrorLeavesBooking(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 10)

	b := newBooking(v.ID, domain.BookingStatusPending)
	b.Doses = []domain.Dose{{Label: "Dose 1", ScheduledDate: time.Now().UTC()}}
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	_, err = repo.Update(ctx, b.ID, func(b *domain.Booking) error {
		b.Doses[0].Completed = true
		return domain.ErrInvalidRequest
	})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, stored.Doses[0].Completed)
}

func TestBookingRepository_Update_ConcurrentDoses(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 10)

	b := newBooking(v.ID, domain.BookingStatusPending)
	for i := 0; i < 8; i++ {
		b.Doses = append(b.Doses, domain.Dose{Label: fmt.Sprintf("Dose %d", i+1), ScheduledDate: time.Now().UTC()})
	}
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range b.Doses {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, err := repo.Update(ctx, b.ID, func(b *domain.Booking) error {
				return b.CompleteDose(idx, time.Now())
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, stored.AllDosesCompleted())
	assert.Equal(t, domain.BookingStatusCompleted, stored.Status)
}

func TestBookingRepository_MarkReminderSent(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 10)

	scheduled := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	b := newBooking(v.ID, domain.BookingStatusPending)
	b.Doses = []domain.Dose{{Label: "Dose 1", ScheduledDate: scheduled}}
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	require.NoError(t, repo.MarkReminderSent(ctx, b.ID, 0, scheduled))
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, b.ID, 3, scheduled), domain.ErrBookingNotFound)

	open, err := repo.ListWithOpenDoses(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.True(t, open[0].Doses[0].ReminderSent())
}

func TestBookingRepository_ListFilters(t *testing.T) {
	s := NewStore()
	repo := s.Bookings()
	ctx := context.Background()
	v := seedVaccine(t, s, 10)

	alice := newBooking(v.ID, domain.BookingStatusPending)
	alice.UserID = "u1"
	bob := newBooking(v.ID, domain.BookingStatusConfirmed)
	bob.UserInfo.Email = "bob@example.com"
	bob.CreatedAt = alice.CreatedAt.Add(time.Minute)
	for _, b := range []*domain.Booking{alice, bob} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, bob.ID, all[0].ID)

	confirmed, err := repo.List(ctx, domain.BookingFilter{Status: domain.BookingStatusConfirmed})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, bob.ID, confirmed[0].ID)

	byUser, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, alice.ID, byUser[0].ID)
}
