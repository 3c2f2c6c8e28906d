package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		res = append(res, cloneUser(u))
	}
	slices.SortFunc(res, func(a, b *domain.User) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return res, nil
}
