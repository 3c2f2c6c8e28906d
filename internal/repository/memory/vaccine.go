package memory

import (
	"context"
	"slices"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type VaccineRepository struct {
	s *Store
}

func (r *VaccineRepository) Create(_ context.Context, v *domain.Vaccine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(v.Name, v.ID) {
		return domain.ErrVaccineNameTaken
	}
	r.s.vaccines[v.ID] = cloneVaccine(v)
	return nil
}

func (r *VaccineRepository) GetByID(_ context.Context, id string) (*domain.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccines[id]
	if !ok {
		return nil, domain.ErrVaccineNotFound
	}
	return cloneVaccine(v), nil
}

func (r *VaccineRepository) Update(
	_ context.Context,
	id string,
	apply func(v *domain.Vaccine) error,
) (*domain.Vaccine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.vaccines[id]
	if !ok {
		return nil, domain.ErrVaccineNotFound
	}

	v := cloneVaccine(stored)
	if err := apply(v); err != nil {
		return nil, err
	}
	v.ID = id
	if r.nameTaken(v.Name, id) {
		return nil, domain.ErrVaccineNameTaken
	}
	v.EnforceCapacity(r.s.Bookings().countTaken(id))

	r.s.vaccines[id] = cloneVaccine(v)
	return v, nil
}

// Delete keeps the bookings of the vaccine; their snapshots still name it.
func (r *VaccineRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccines[id]; !ok {
		return domain.ErrVaccineNotFound
	}
	delete(r.s.vaccines, id)
	for _, b := range r.s.bookings {
		if b.VaccineID == id {
			b.VaccineID = ""
		}
	}
	return nil
}

func (r *VaccineRepository) List(_ context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Vaccine
	for _, v := range r.s.vaccines {
		if q.Matches(v) {
			res = append(res, cloneVaccine(v))
		}
	}
	slices.SortFunc(res, q.Compare)
	return res, nil
}

func (r *VaccineRepository) nameTaken(name, exceptID string) bool {
	for _, v := range r.s.vaccines {
		if v.ID != exceptID && v.Name == name {
			return true
		}
	}
	return false
}
