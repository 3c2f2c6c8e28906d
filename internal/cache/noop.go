package cache

import (
	"context"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

// Noop is used when Redis is not configured: every read goes to the loader.
type Noop struct{}

func (Noop) GetOrLoad(
	ctx context.Context,
	_ domain.VaccineQuery,
	load func(ctx context.Context) ([]*domain.Vaccine, error),
) ([]*domain.Vaccine, error) {
	return load(ctx)
}

func (Noop) Invalidate(context.Context) error { return nil }
