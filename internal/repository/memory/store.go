// Package memory keeps vaccines, bookings and users in process memory. It backs
// the service when no database is configured and in tests.
package memory

import (
	"slices"
	"sync"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

// Store is shared by the three repositories so that a booking, its vaccine
// and the bulk transition change under one lock.
type Store struct {
	mu       sync.RWMutex
	vaccines map[string]*domain.Vaccine
	bookings map[string]*domain.Booking
	users    map[string]*domain.User
}

func NewStore() *Store {
	return &Store{
		vaccines: make(map[string]*domain.Vaccine),
		bookings: make(map[string]*domain.Booking),
		users:    make(map[string]*domain.User),
	}
}

func (s *Store) Vaccines() *VaccineRepository { return &VaccineRepository{s: s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }
func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }

func cloneVaccine(v *domain.Vaccine) *domain.Vaccine {
	c := *v
	c.AgeGroups = slices.Clone(v.AgeGroups)
	return &c
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.Doses = slices.Clone(b.Doses)
	for i, d := range c.Doses {
		if d.CompletionDate != nil {
			t := *d.CompletionDate
			c.Doses[i].CompletionDate = &t
		}
		if d.ReminderSentFor != nil {
			t := *d.ReminderSentFor
			c.Doses[i].ReminderSentFor = &t
		}
	}
	return &c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.TelegramChatID != nil {
		id := *u.TelegramChatID
		c.TelegramChatID = &id
	}
	return &c
}
