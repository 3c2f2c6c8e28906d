package ports

import (
	"context"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type VaccineRepo interface {
	Create(ctx context.Context, v *domain.Vaccine) error
	GetByID(ctx context.Context, id string) (*domain.Vaccine, error)
	// Update loads the vaccine under a lock, runs apply on it and stores the
	// result with EnforceCapacity applied against its current bookings.
	// Nothing is written when apply fails.
	Update(ctx context.Context, id string, apply func(v *domain.Vaccine) error) (*domain.Vaccine, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error)
}

// VaccineCache serves public catalog listings. Load is called on a miss.
type VaccineCache interface {
	GetOrLoad(
		ctx context.Context,
		q domain.VaccineQuery,
		load func(ctx context.Context) ([]*domain.Vaccine, error),
	) ([]*domain.Vaccine, error)
	Invalidate(ctx context.Context) error
}
